package domain

import "errors"

var (
	// ErrFoodNotFound is returned when a food cannot be found in the USDA database
	ErrFoodNotFound = errors.New("food not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUSDAAPIFailure is returned when a USDA API request fails
	ErrUSDAAPIFailure = errors.New("USDA API request failed")

	// ErrMatchFailure is returned when the matching backend fails or returns
	// output that cannot be parsed
	ErrMatchFailure = errors.New("candidate matching failed")

	// ErrMissingAPIKey is returned when a required credential is not configured
	ErrMissingAPIKey = errors.New("API key not configured")
)
