// Package services содержит расчёт индекса массы тела и подбор рекомендаций.
//
// Расчёт детерминирован и не имеет побочных эффектов: одинаковая пара
// (рост, вес) всегда даёт одинаковый ИМТ и категорию. Результат не сохраняется.
package services

import (
	"errors"
	"fmt"

	"github.com/sabari-m/fitness-tracker/internal/models"
)

// Ошибки валидации входных значений.
var (
	// ErrMissingValues — рост или вес не переданы.
	ErrMissingValues = errors.New("height and weight are required")
	// ErrInvalidHeight — рост вне допустимого диапазона.
	ErrInvalidHeight = fmt.Errorf("height must be between %.0f and %.0f cm",
		models.MinHeightCm, models.MaxHeightCm)
	// ErrInvalidWeight — вес вне допустимого диапазона.
	ErrInvalidWeight = fmt.Errorf("weight must be between %.0f and %.0f kg",
		models.MinWeightKg, models.MaxWeightKg)
)

// BMIService рассчитывает ИМТ и подбирает статические рекомендации по категории.
type BMIService struct{}

// NewBMIService создает новый экземпляр BMIService.
func NewBMIService() *BMIService {
	return &BMIService{}
}

// Classify вычисляет ИМТ по росту в сантиметрах и весу в килограммах,
// определяет категорию и прикладывает план питания и упражнений.
//
// Интервалы категорий полуоткрытые, нижняя граница входит в интервал:
// 18.5 — уже Normal, 25 — уже Overweight, 30 — уже Obese.
func (s *BMIService) Classify(heightCm, weightKg float64) (*models.Assessment, error) {
	if heightCm == 0 || weightKg == 0 {
		return nil, ErrMissingValues
	}
	if heightCm < models.MinHeightCm || heightCm > models.MaxHeightCm {
		return nil, ErrInvalidHeight
	}
	if weightKg < models.MinWeightKg || weightKg > models.MaxWeightKg {
		return nil, ErrInvalidWeight
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	var category models.Category
	switch {
	case bmi < 18.5:
		category = models.CategoryUnderweight
	case bmi < 25:
		category = models.CategoryNormal
	case bmi < 30:
		category = models.CategoryOverweight
	default:
		category = models.CategoryObese
	}

	return &models.Assessment{
		BMI:      bmi,
		Category: category,
		Recommendations: models.Recommendations{
			Diet:     dietPlans[category],
			Exercise: exercisePlans,
		},
	}, nil
}
