package usda

import (
	"math"
	"testing"

	"github.com/nutrikit/backend/internal/domain"
)

func record(id int, amount float64) domain.FoodNutrient {
	return domain.FoodNutrient{Nutrient: domain.NutrientRef{ID: id}, Amount: amount}
}

func TestExtractNutrients(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.FoodNutrient
		want    domain.Nutrients
	}{
		{
			name: "all slots present",
			records: []domain.FoodNutrient{
				record(NutrientIDEnergy, 61.79),
				record(NutrientIDProtein, 0.26),
				record(NutrientIDCarbohydrate, 14.6),
				record(NutrientIDTotalFat, 0.15),
				record(NutrientIDFiber, 2.1),
				record(NutrientIDTotalSugars, 12.1),
			},
			want: domain.Nutrients{
				Calories: 61.79,
				Protein:  0.26,
				Carbs:    14.6,
				Fat:      0.15,
				Fiber:    2.1,
				Sugar:    12.1,
			},
		},
		{
			name:    "no records defaults to zero",
			records: []domain.FoodNutrient{},
			want:    domain.Nutrients{},
		},
		{
			name: "unrecognized codes ignored",
			records: []domain.FoodNutrient{
				record(9999, 42.0),
				record(NutrientIDProtein, 3.3),
				record(1087, 12.0), // calcium, not tracked
			},
			want: domain.Nutrients{Protein: 3.3},
		},
		{
			name: "primary energy wins when it appears first",
			records: []domain.FoodNutrient{
				record(NutrientIDEnergy, 52.0),
				record(NutrientIDEnergyLegacy, 218.0),
			},
			want: domain.Nutrients{Calories: 52.0},
		},
		{
			name: "primary energy wins when it appears last",
			records: []domain.FoodNutrient{
				record(NutrientIDEnergyLegacy, 218.0),
				record(NutrientIDEnergy, 52.0),
			},
			want: domain.Nutrients{Calories: 52.0},
		},
		{
			name: "legacy energy used when primary absent",
			records: []domain.FoodNutrient{
				record(NutrientIDEnergyLegacy, 218.0),
			},
			want: domain.Nutrients{Calories: 218.0},
		},
		{
			name: "zero primary energy lets legacy through",
			records: []domain.FoodNutrient{
				record(NutrientIDEnergy, 0),
				record(NutrientIDEnergyLegacy, 218.0),
			},
			want: domain.Nutrients{Calories: 218.0},
		},
		{
			name: "last write wins per slot",
			records: []domain.FoodNutrient{
				record(NutrientIDProtein, 1.0),
				record(NutrientIDProtein, 2.0),
			},
			want: domain.Nutrients{Protein: 2.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNutrients(tt.records)
			if got != tt.want {
				t.Errorf("ExtractNutrients() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeToAmount(t *testing.T) {
	vector := domain.Nutrients{
		Calories: 61.79,
		Protein:  0.26,
		Carbs:    14.6,
		Fat:      0.15,
		Fiber:    2.1,
		Sugar:    12.1,
	}

	t.Run("scales from 100g serving", func(t *testing.T) {
		got := NormalizeToAmount(vector, domain.ServingBasis{Size: 100, Unit: "g"}, 150)

		if math.Abs(got.Calories-92.685) > 1e-9 {
			t.Errorf("Calories = %v, want 92.685", got.Calories)
		}
		if math.Abs(got.Carbs-21.9) > 1e-9 {
			t.Errorf("Carbs = %v, want 21.9", got.Carbs)
		}
	})

	t.Run("non-gram unit treated as per-100g", func(t *testing.T) {
		got := NormalizeToAmount(vector, domain.ServingBasis{Size: 240, Unit: "ml"}, 50)

		if math.Abs(got.Calories-61.79/2) > 1e-9 {
			t.Errorf("Calories = %v, want %v", got.Calories, 61.79/2)
		}
	})

	t.Run("serving unit compared case-insensitively", func(t *testing.T) {
		got := NormalizeToAmount(vector, domain.ServingBasis{Size: 50, Unit: "G"}, 100)

		if math.Abs(got.Calories-61.79*2) > 1e-9 {
			t.Errorf("Calories = %v, want %v", got.Calories, 61.79*2)
		}
	})

	t.Run("scale linearity", func(t *testing.T) {
		basis := domain.ServingBasis{Size: 100, Unit: "g"}
		one := NormalizeToAmount(vector, basis, 1)
		two := NormalizeToAmount(vector, basis, 2)

		if got, want := two.Calories, 2*one.Calories; math.Abs(got-want) > 1e-9 {
			t.Errorf("Calories: normalize(2g) = %v, want 2*normalize(1g) = %v", got, want)
		}
		if got, want := two.Sugar, 2*one.Sugar; math.Abs(got-want) > 1e-9 {
			t.Errorf("Sugar: normalize(2g) = %v, want 2*normalize(1g) = %v", got, want)
		}
	})
}
