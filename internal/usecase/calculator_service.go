package usecase

import (
	"fmt"

	"github.com/nutrikit/backend/internal/domain"
)

// activityMultipliers scale BMR to TDEE
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// CalculatorService implements the stateless health-metric formulas. Inputs
// are assumed range-validated at the delivery layer; the one conditional
// rule (hip circumference for females) is enforced here.
type CalculatorService struct{}

// NewCalculatorService creates a new calculator service
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// CalculateBMI computes the body mass index and its category
func (s *CalculatorService) CalculateBMI(req *domain.BMIRequest) *domain.BMIResponse {
	heightM := req.HeightCm / 100
	bmi := req.WeightKg / (heightM * heightM)

	return &domain.BMIResponse{
		BMI:      domain.Round2(bmi),
		Category: bmiCategory(bmi),
	}
}

// bmiCategory maps a BMI value to its WHO category
func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// CalculateBodyFrame classifies frame size from the height to wrist
// circumference ratio
func (s *CalculatorService) CalculateBodyFrame(req *domain.BodyFrameRequest) *domain.BodyFrameResponse {
	r := req.HeightCm / req.WristCircumferenceCm

	var frameSize domain.FrameSize
	if req.Gender == domain.GenderMale {
		switch {
		case r > 10.4:
			frameSize = domain.FrameSmall
		case r < 9.6:
			frameSize = domain.FrameLarge
		default:
			frameSize = domain.FrameMedium
		}
	} else {
		switch {
		case r > 11.0:
			frameSize = domain.FrameSmall
		case r < 10.1:
			frameSize = domain.FrameLarge
		default:
			frameSize = domain.FrameMedium
		}
	}

	return &domain.BodyFrameResponse{FrameSize: frameSize}
}

// CalculateBodyFat estimates body fat percentage using the U.S. Navy
// circumference method. Hip circumference is required for females.
func (s *CalculatorService) CalculateBodyFat(req *domain.BodyFatRequest) (*domain.BodyFatResponse, error) {
	if req.Gender == domain.GenderFemale && req.HipCircumferenceCm == 0 {
		return nil, fmt.Errorf("%w: hip circumference is required for females", domain.ErrInvalidRequest)
	}

	// Formula constants expect inches
	var bodyFat float64
	if req.Gender == domain.GenderMale {
		bodyFat = 495/(1.0324-
			0.19077*((req.WaistCircumferenceCm-req.NeckCircumferenceCm)/2.54)+
			0.15456*(req.HeightCm/2.54)) - 450
	} else {
		bodyFat = 495/(1.29579-
			0.35004*((req.WaistCircumferenceCm+req.HipCircumferenceCm-req.NeckCircumferenceCm)/2.54)+
			0.22100*(req.HeightCm/2.54)) - 450
	}

	return &domain.BodyFatResponse{
		BodyFatPercentage: domain.Round2(bodyFat),
		Category:          bodyFatCategory(req.Gender, bodyFat),
	}, nil
}

// bodyFatCategory maps a body fat percentage to its category per gender
func bodyFatCategory(gender domain.Gender, bodyFat float64) string {
	if gender == domain.GenderMale {
		switch {
		case bodyFat < 6:
			return "Essential fat"
		case bodyFat < 14:
			return "Athletic"
		case bodyFat < 18:
			return "Fitness"
		case bodyFat < 25:
			return "Average"
		default:
			return "Obese"
		}
	}
	switch {
	case bodyFat < 16:
		return "Essential fat"
	case bodyFat < 24:
		return "Athletic"
	case bodyFat < 31:
		return "Fitness"
	case bodyFat < 39:
		return "Average"
	default:
		return "Obese"
	}
}

// CalculateMacros derives daily calorie and macro targets from the
// Mifflin-St Jeor BMR, an activity multiplier and a goal adjustment
func (s *CalculatorService) CalculateMacros(req *domain.MacroRequest) *domain.MacroResponse {
	var bmr float64
	if req.Gender == domain.GenderMale {
		bmr = 10*req.WeightKg + 6.25*req.HeightCm - 5*float64(req.Age) + 5
	} else {
		bmr = 10*req.WeightKg + 6.25*req.HeightCm - 5*float64(req.Age) - 161
	}

	tdee := bmr * activityMultipliers[req.ActivityLevel]

	var calories int
	switch req.Goal {
	case domain.GoalLose:
		calories = int(tdee * 0.8) // 20% deficit
	case domain.GoalGain:
		calories = int(tdee * 1.1) // 10% surplus
	default:
		calories = int(tdee)
	}

	// Protein: 1.8g per kg of lean mass, or 1.6g per kg of total weight
	// when body fat is unknown
	var proteinG int
	if req.BodyFatPercentage != nil {
		leanMass := req.WeightKg * (1 - *req.BodyFatPercentage/100)
		proteinG = int(leanMass * 1.8)
	} else {
		proteinG = int(req.WeightKg * 1.6)
	}

	// Fat: 25% of calories; carbs fill the remainder
	fatG := int((float64(calories) * 0.25) / 9)
	carbsG := (calories - proteinG*4 - fatG*9) / 4

	return &domain.MacroResponse{
		Calories: calories,
		ProteinG: proteinG,
		CarbsG:   carbsG,
		FatG:     fatG,
	}
}
