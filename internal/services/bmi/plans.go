package services

import "github.com/sabari-m/fitness-tracker/internal/models"

// dietPlans — планы питания по категориям ИМТ.
var dietPlans = map[models.Category]models.DietPlan{
	models.CategoryUnderweight: {
		Morning:      "3 whole eggs, 4 brown bread slices with peanut butter",
		MorningSnack: "50g peanuts or sprouts + 1 fruit (e.g. orange, watermelon)",
		Afternoon:    "Rice + curd/dal + Chicken/Fish/Soya/Paneer",
		EveningSnack: "2 boiled eggs + dry fruit milkshake",
		Dinner:       "1 egg, rice or chapati + protein foods + vegetables",
	},
	models.CategoryNormal: {
		Morning:      "2 whole eggs, 2 brown bread slices, 1 fruit",
		MorningSnack: "25g nuts or 1 fruit",
		Afternoon:    "Rice/chapati + curd/dal + protein + vegetables",
		EveningSnack: "1 protein shake or greek yogurt",
		Dinner:       "Lean protein + vegetables + small portion of whole grains",
	},
	models.CategoryOverweight: {
		Morning:      "2 egg whites, 1 whole egg, 1 slice whole grain bread",
		MorningSnack: "1 fruit or vegetable sticks",
		Afternoon:    "Grilled protein + large salad + small portion of brown rice",
		EveningSnack: "Greek yogurt or vegetable soup",
		Dinner:       "Lean protein + steamed vegetables",
	},
	models.CategoryObese: {
		Morning:      "1 whole egg + 2 egg whites, vegetable omelet",
		MorningSnack: "Cucumber/carrot sticks or small fruit",
		Afternoon:    "Grilled lean protein + large salad (no rice)",
		EveningSnack: "Protein shake with water or vegetable soup",
		Dinner:       "Lean protein + steamed vegetables (no carbs)",
	},
}

// exercisePlans — комплексы упражнений, одинаковые для всех категорий.
var exercisePlans = models.ExercisePlans{
	UpperBody: []string{
		"Push-Ups – 3 sets x 15-20 reps",
		"Pike Push-Ups – 3 sets x 12 reps",
		"Dips (with chair) – 3 sets x 12 reps",
		"Bicep Curls – 3 sets x 12 reps",
		"Plank-to-Push-Up – 3 sets x 10 reps",
	},
	LowerBody: []string{
		"Squats – 3 sets x 15 reps",
		"Lunges – 3 sets x 10 reps each leg",
		"Step-Ups – 3 sets x 12 reps",
		"Calf Raises – 3 sets x 20 reps",
		"Wall Sit – 3 rounds x 30-45 sec",
	},
}
