package domain

import "context"

// USDAClient defines the interface for interacting with the USDA FoodData
// Central API
type USDAClient interface {
	// SearchFoods returns candidate foods for a free-text query. An empty
	// slice is a valid outcome meaning "no match".
	SearchFoods(ctx context.Context, query string) ([]FoodCandidate, error)

	// GetFoodDetail fetches the full nutrient profile for one FDC ID
	GetFoodDetail(ctx context.Context, fdcID int) (*USDAFoodDetail, error)
}

// FoodMatcher defines the interface for the generative matching backend that
// picks the best candidate description for a query
type FoodMatcher interface {
	MatchFood(ctx context.Context, query string, candidates []string) (Choice, error)
}
