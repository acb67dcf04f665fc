package usda

import (
	"github.com/nutrikit/backend/internal/domain"
)

// USDA FoodData Central nutrient IDs for the tracked nutrients
const (
	NutrientIDEnergy       = 2047 // Energy, Atwater General Factors (kcal)
	NutrientIDEnergyLegacy = 1008 // Energy (kcal), used when 2047 is absent
	NutrientIDProtein      = 1003 // Protein (g)
	NutrientIDCarbohydrate = 1005 // Carbohydrates (g)
	NutrientIDTotalFat     = 1004 // Total Fat (g)
	NutrientIDFiber        = 1079 // Dietary Fiber (g)
	NutrientIDTotalSugars  = 2000 // Total Sugars (g)
)

// ExtractNutrients maps a food's nutrient records to the six-slot vector.
// Each recognized code assigns its amount to its slot; unknown codes are
// ignored. The legacy energy code only fills Calories while it is still
// zero, so 2047 wins over 1008 no matter where it appears in the sequence.
func ExtractNutrients(records []domain.FoodNutrient) domain.Nutrients {
	var n domain.Nutrients

	for _, rec := range records {
		switch rec.Nutrient.ID {
		case NutrientIDEnergy:
			n.Calories = rec.Amount
		case NutrientIDEnergyLegacy:
			if n.Calories == 0 {
				n.Calories = rec.Amount
			}
		case NutrientIDProtein:
			n.Protein = rec.Amount
		case NutrientIDCarbohydrate:
			n.Carbs = rec.Amount
		case NutrientIDTotalFat:
			n.Fat = rec.Amount
		case NutrientIDFiber:
			n.Fiber = rec.Amount
		case NutrientIDTotalSugars:
			n.Sugar = rec.Amount
		}
	}

	return n
}

// NormalizeToAmount rescales per-serving nutrient values to the requested
// gram amount. Values reported in non-gram units are treated as per-100g
// rather than converted.
func NormalizeToAmount(n domain.Nutrients, basis domain.ServingBasis, amountGrams float64) domain.Nutrients {
	return n.Scale(amountGrams / basis.EffectiveGrams())
}
