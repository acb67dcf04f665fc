package domain

// Gender values accepted by the calculators
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel values accepted by the macro calculator
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal values accepted by the macro calculator
type Goal string

const (
	GoalMaintain Goal = "maintain"
	GoalLose     Goal = "lose"
	GoalGain     Goal = "gain"
)

// FrameSize is the body-frame classification
type FrameSize string

const (
	FrameSmall  FrameSize = "small"
	FrameMedium FrameSize = "medium"
	FrameLarge  FrameSize = "large"
)

// BMIRequest is the body for POST /bmi
type BMIRequest struct {
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm float64 `json:"height_cm" binding:"required,gt=0"`
}

// BMIResponse carries the computed index and its category
type BMIResponse struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// BodyFrameRequest is the body for POST /body-frame
type BodyFrameRequest struct {
	WristCircumferenceCm float64 `json:"wrist_circumference_cm" binding:"required,gt=0"`
	HeightCm             float64 `json:"height_cm" binding:"required,gt=0"`
	Gender               Gender  `json:"gender" binding:"required,oneof=male female"`
}

// BodyFrameResponse carries the frame classification
type BodyFrameResponse struct {
	FrameSize FrameSize `json:"frame_size"`
}

// BodyFatRequest is the body for POST /body-fat. Hip circumference is
// required for females; that conditional rule is enforced by the calculator,
// not by binding tags.
type BodyFatRequest struct {
	Gender               Gender  `json:"gender" binding:"required,oneof=male female"`
	Age                  int     `json:"age" binding:"required,gte=18"`
	WeightKg             float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm             float64 `json:"height_cm" binding:"required,gt=0"`
	NeckCircumferenceCm  float64 `json:"neck_circumference_cm" binding:"required,gt=0"`
	WaistCircumferenceCm float64 `json:"waist_circumference_cm" binding:"required,gt=0"`
	HipCircumferenceCm   float64 `json:"hip_circumference_cm" binding:"omitempty,gt=0"`
}

// BodyFatResponse carries the estimated percentage and its category
type BodyFatResponse struct {
	BodyFatPercentage float64 `json:"body_fat_percentage"`
	Category          string  `json:"category"`
}

// MacroRequest is the body for POST /macros
type MacroRequest struct {
	Gender            Gender        `json:"gender" binding:"required,oneof=male female"`
	Age               int           `json:"age" binding:"required,gte=18"`
	WeightKg          float64       `json:"weight_kg" binding:"required,gt=0"`
	HeightCm          float64       `json:"height_cm" binding:"required,gt=0"`
	ActivityLevel     ActivityLevel `json:"activity_level" binding:"required,oneof=sedentary light moderate active very_active"`
	Goal              Goal          `json:"goal" binding:"required,oneof=maintain lose gain"`
	BodyFatPercentage *float64      `json:"body_fat_percentage" binding:"omitempty,gte=0,lte=100"`
}

// MacroResponse carries daily calorie and macronutrient targets
type MacroResponse struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}
