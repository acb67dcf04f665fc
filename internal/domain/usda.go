package domain

import "strings"

// FoodCandidate is one search hit from the USDA FoodData Central search
// endpoint. Candidates are ephemeral; they live only for the resolution of a
// single ingredient.
type FoodCandidate struct {
	FdcID       int    `json:"fdcId"`
	Description string `json:"description"`
	DataType    string `json:"dataType,omitempty"`
}

// USDASearchResponse is the wire shape of the search endpoint response
type USDASearchResponse struct {
	Foods     []FoodCandidate `json:"foods"`
	TotalHits int             `json:"totalHits"`
}

// NutrientRef identifies a nutrient in the FDC detail schema
type NutrientRef struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// FoodNutrient is one nutrient record of a food detail payload. The ID
// vocabulary is opaque; only the handful of codes in the usda mapper are
// meaningful to this service.
type FoodNutrient struct {
	Nutrient NutrientRef `json:"nutrient"`
	Amount   float64     `json:"amount"`
}

// USDAFoodDetail is the wire shape of the food detail endpoint response
type USDAFoodDetail struct {
	FdcID           int            `json:"fdcId"`
	Description     string         `json:"description"`
	FoodNutrients   []FoodNutrient `json:"foodNutrients"`
	ServingSize     float64        `json:"servingSize"`
	ServingSizeUnit string         `json:"servingSizeUnit"`
}

// ServingBasis is the reference quantity the source nutrient values are
// reported for.
type ServingBasis struct {
	Size float64
	Unit string
}

// Basis returns the serving basis of the detail payload, defaulting to
// 100 g when the upstream record omits serving metadata.
func (d *USDAFoodDetail) Basis() ServingBasis {
	basis := ServingBasis{Size: d.ServingSize, Unit: d.ServingSizeUnit}
	if basis.Size == 0 {
		basis.Size = 100
	}
	if basis.Unit == "" {
		basis.Unit = "g"
	}
	return basis
}

// EffectiveGrams returns the serving size usable for gram normalization.
// Non-gram units are not converted; the values are treated as per-100g.
func (b ServingBasis) EffectiveGrams() float64 {
	if strings.EqualFold(b.Unit, "g") && b.Size > 0 {
		return b.Size
	}
	return 100
}
