package domain

import "math"

// Nutrients is the six-field nutrient vector tracked by this service.
// Values are grams except Calories (kcal).
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
	Fiber    float64 `json:"fiber_g"`
	Sugar    float64 `json:"sugar_g"`
}

// Scale multiplies every field by factor and returns the result.
func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
		Fiber:    n.Fiber * factor,
		Sugar:    n.Sugar * factor,
	}
}

// Add returns the field-wise sum of n and other.
func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
		Fiber:    n.Fiber + other.Fiber,
		Sugar:    n.Sugar + other.Sugar,
	}
}

// Round2 rounds a value to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// IngredientRequest is one (name, amount) pair of a food-nutrition request.
type IngredientRequest struct {
	Name        string
	AmountGrams float64
}

// FoodLine is the per-ingredient entry of a food-nutrition response. Exactly
// one line is produced for every requested ingredient; failed lookups carry
// zero nutrients and a non-empty Error.
type FoodLine struct {
	Name     string  `json:"name"`
	AmountG  float64 `json:"amount_g"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	SugarG   float64 `json:"sugar_g"`
	Error    string  `json:"error,omitempty"`
}

// NewFoodLine builds a successful line from unrounded nutrient values,
// rounding at this presentation boundary.
func NewFoodLine(name string, amountGrams float64, n Nutrients) FoodLine {
	return FoodLine{
		Name:     name,
		AmountG:  amountGrams,
		Calories: Round2(n.Calories),
		ProteinG: Round2(n.Protein),
		CarbsG:   Round2(n.Carbs),
		FatG:     Round2(n.Fat),
		FiberG:   Round2(n.Fiber),
		SugarG:   Round2(n.Sugar),
	}
}

// NewFailedFoodLine builds a zero-nutrient line carrying an error message.
func NewFailedFoodLine(name string, amountGrams float64, errMsg string) FoodLine {
	return FoodLine{
		Name:    name,
		AmountG: amountGrams,
		Error:   errMsg,
	}
}

// FoodNutritionResponse is the aggregate result of a food-nutrition request.
// Totals are summed from unrounded per-ingredient values and rounded once.
type FoodNutritionResponse struct {
	TotalCalories float64    `json:"total_calories"`
	TotalProteinG float64    `json:"total_protein_g"`
	TotalCarbsG   float64    `json:"total_carbs_g"`
	TotalFatG     float64    `json:"total_fat_g"`
	TotalFiberG   float64    `json:"total_fiber_g"`
	TotalSugarG   float64    `json:"total_sugar_g"`
	Foods         []FoodLine `json:"foods"`
}

// NewFoodNutritionResponse rounds the accumulated totals and attaches lines.
func NewFoodNutritionResponse(totals Nutrients, foods []FoodLine) *FoodNutritionResponse {
	return &FoodNutritionResponse{
		TotalCalories: Round2(totals.Calories),
		TotalProteinG: Round2(totals.Protein),
		TotalCarbsG:   Round2(totals.Carbs),
		TotalFatG:     Round2(totals.Fat),
		TotalFiberG:   Round2(totals.Fiber),
		TotalSugarG:   Round2(totals.Sugar),
		Foods:         foods,
	}
}
