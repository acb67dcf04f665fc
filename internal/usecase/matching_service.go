package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/nutrikit/backend/internal/domain"
)

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	EnableDebugLogging bool
}

// MatchingService picks the best search candidate for an ingredient query.
// When no generative backend is configured it deterministically chooses the
// first candidate without any remote call.
type MatchingService struct {
	matcher            domain.FoodMatcher // nil when no backend is configured
	enableDebugLogging bool
}

// NewMatchingService creates a new matching service. A nil matcher disables
// the generative backend.
func NewMatchingService(matcher domain.FoodMatcher, config MatchConfig) *MatchingService {
	return &MatchingService{
		matcher:            matcher,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ChooseCandidate returns the index of the candidate to use for the query.
// A backend that declines to choose resolves to the first candidate; an index
// outside the candidate list is a matching failure for this ingredient.
func (s *MatchingService) ChooseCandidate(ctx context.Context, query string, candidates []domain.FoodCandidate) (int, error) {
	if len(candidates) == 0 {
		return 0, domain.ErrFoodNotFound
	}

	if s.matcher == nil {
		return 0, nil
	}

	descriptions := make([]string, len(candidates))
	for i, candidate := range candidates {
		descriptions[i] = candidate.Description
	}

	choice, err := s.matcher.MatchFood(ctx, query, descriptions)
	if err != nil {
		return 0, err
	}

	if !choice.Matched {
		if s.enableDebugLogging {
			log.Printf("[MATCH] No confident match for %q, falling back to first candidate", query)
		}
		return 0, nil
	}

	if choice.Index < 0 || choice.Index >= len(candidates) {
		return 0, fmt.Errorf("%w: index %d out of range for %d candidates", domain.ErrMatchFailure, choice.Index, len(candidates))
	}

	if s.enableDebugLogging {
		log.Printf("[MATCH] %q matched candidate %d: %q", query, choice.Index, candidates[choice.Index].Description)
	}
	return choice.Index, nil
}
