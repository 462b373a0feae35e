package models

// Category — категория индекса массы тела.
type Category string

// Категории ИМТ по фиксированным пороговым значениям.
const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// DietPlan — план питания на день для одной категории ИМТ.
type DietPlan struct {
	Morning      string `json:"morning"`
	MorningSnack string `json:"morningSnack"`
	Afternoon    string `json:"afternoon"`
	EveningSnack string `json:"eveningSnack"`
	Dinner       string `json:"dinner"`
}

// ExercisePlans — комплексы упражнений на верх и низ тела.
type ExercisePlans struct {
	UpperBody []string `json:"upperBody"`
	LowerBody []string `json:"lowerBody"`
}

// Recommendations — подобранные по категории рекомендации.
type Recommendations struct {
	Diet     DietPlan      `json:"diet"`
	Exercise ExercisePlans `json:"exercise"`
}

// Assessment — результат расчёта ИМТ. Не сохраняется, вычисляется на каждый запрос.
type Assessment struct {
	BMI             float64         `json:"bmi"`
	Category        Category        `json:"category"`
	Recommendations Recommendations `json:"recommendations"`
}
