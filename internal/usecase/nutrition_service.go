package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/nutrikit/backend/internal/domain"
	"github.com/nutrikit/backend/internal/infrastructure/usda"
	"golang.org/x/sync/errgroup"
)

// notFoundMessage is the line-level error for queries with no candidates
const notFoundMessage = "Food not found"

// NutritionServiceConfig holds configuration for the nutrition service
type NutritionServiceConfig struct {
	// LookupTimeout bounds the total remote-call time spent on a single
	// ingredient
	LookupTimeout time.Duration

	// MaxConcurrent caps how many ingredients are resolved in parallel.
	// 1 gives strictly sequential resolution.
	MaxConcurrent int

	EnableDebugLogging bool
}

// NutritionService resolves a batch of (ingredient, amount) pairs to
// nutrient lines and running totals. Failures are isolated per ingredient:
// every requested ingredient produces exactly one output line, positionally
// aligned with the input, and a failed lookup never aborts the batch.
type NutritionService struct {
	usdaClient    domain.USDAClient
	matching      *MatchingService
	lookupTimeout time.Duration
	maxConcurrent int
	debug         bool
}

// NewNutritionService creates a new nutrition service with dependencies
func NewNutritionService(
	usdaClient domain.USDAClient,
	matching *MatchingService,
	config NutritionServiceConfig,
) *NutritionService {
	lookupTimeout := config.LookupTimeout
	if lookupTimeout == 0 {
		lookupTimeout = 60 * time.Second
	}

	maxConcurrent := config.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}

	return &NutritionService{
		usdaClient:    usdaClient,
		matching:      matching,
		lookupTimeout: lookupTimeout,
		maxConcurrent: maxConcurrent,
		debug:         config.EnableDebugLogging,
	}
}

// resolvedFood is one successfully resolved ingredient, unrounded
type resolvedFood struct {
	displayName string
	nutrients   domain.Nutrients
}

// AggregateNutrition resolves every ingredient independently and accumulates
// totals from the successful ones. Ingredients are resolved concurrently up
// to the configured limit; results keep input order.
func (s *NutritionService) AggregateNutrition(
	ctx context.Context,
	ingredients []domain.IngredientRequest,
) (*domain.FoodNutritionResponse, error) {
	type lineResult struct {
		line      domain.FoodLine
		nutrients domain.Nutrients
		ok        bool
	}

	results := make([]lineResult, len(ingredients))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i, ingredient := range ingredients {
		g.Go(func() error {
			ictx, cancel := context.WithTimeout(gctx, s.lookupTimeout)
			defer cancel()

			resolved, err := s.resolveIngredient(ictx, ingredient)
			if err != nil {
				if s.debug {
					log.Printf("[NUTRITION] %q failed: %v", ingredient.Name, err)
				}
				results[i] = lineResult{
					line: domain.NewFailedFoodLine(ingredient.Name, ingredient.AmountGrams, lineErrorMessage(err)),
				}
				return nil
			}

			results[i] = lineResult{
				line:      domain.NewFoodLine(resolved.displayName, ingredient.AmountGrams, resolved.nutrients),
				nutrients: resolved.nutrients,
				ok:        true,
			}
			return nil
		})
	}

	// Workers never return errors; Wait only joins them
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var totals domain.Nutrients
	foods := make([]domain.FoodLine, len(results))
	for i, result := range results {
		foods[i] = result.line
		if result.ok {
			totals = totals.Add(result.nutrients)
		}
	}

	return domain.NewFoodNutritionResponse(totals, foods), nil
}

// resolveIngredient drives search -> disambiguate -> detail -> extract ->
// normalize for a single ingredient.
func (s *NutritionService) resolveIngredient(
	ctx context.Context,
	ingredient domain.IngredientRequest,
) (*resolvedFood, error) {
	candidates, err := s.usdaClient.SearchFoods(ctx, ingredient.Name)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domain.ErrFoodNotFound
	}

	index, err := s.matching.ChooseCandidate(ctx, ingredient.Name, candidates)
	if err != nil {
		return nil, err
	}
	chosen := candidates[index]

	detail, err := s.usdaClient.GetFoodDetail(ctx, chosen.FdcID)
	if err != nil {
		return nil, err
	}

	extracted := usda.ExtractNutrients(detail.FoodNutrients)
	scaled := usda.NormalizeToAmount(extracted, detail.Basis(), ingredient.AmountGrams)

	displayName := chosen.Description
	if displayName == "" {
		displayName = ingredient.Name
	}

	return &resolvedFood{
		displayName: displayName,
		nutrients:   scaled,
	}, nil
}

// lineErrorMessage converts a resolution error to the line-level message
func lineErrorMessage(err error) string {
	if errors.Is(err, domain.ErrFoodNotFound) {
		return notFoundMessage
	}
	return err.Error()
}
