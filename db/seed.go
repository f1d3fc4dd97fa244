package db

import (
	"log"

	"fitness-app/entities"
)

func strPtr(s string) *string     { return &s }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Seed inserts demo data the first time the dev server runs against an empty
// database. Existing data is left untouched.
func Seed(database Database) error {
	gdb := database.GetDB()

	var count int64
	if err := gdb.Model(&entities.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding demo data...")

	user := entities.User{
		Name:       "Demo User",
		Email:      "demo@example.com",
		WeightGoal: strPtr("lose"),
		Password:   strPtr("demo"),
	}
	if err := gdb.Create(&user).Error; err != nil {
		return err
	}

	activities := []entities.Activity{
		{
			UserID:         user.ID,
			ActivityType:   "Running",
			Distance:       floatPtr(3.1),
			DistanceUnits:  strPtr("miles"),
			Time:           floatPtr(28.5),
			TimeUnits:      strPtr("minutes"),
			CaloriesBurned: intPtr(342),
			ActivityDate:   "2024-03-04",
		},
		{
			UserID:         user.ID,
			ActivityType:   "Cycling",
			Distance:       floatPtr(12.0),
			DistanceUnits:  strPtr("miles"),
			Time:           floatPtr(55.0),
			TimeUnits:      strPtr("minutes"),
			Speed:          floatPtr(13.1),
			SpeedUnits:     strPtr("mph"),
			CaloriesBurned: intPtr(510),
			ActivityDate:   "2024-03-02",
		},
		{
			UserID:       user.ID,
			ActivityType: "Yoga",
			Time:         floatPtr(40.0),
			TimeUnits:    strPtr("minutes"),
			ActivityDate: "2024-03-01",
		},
	}
	if err := gdb.Create(&activities).Error; err != nil {
		return err
	}

	biometrics := []entities.Biometric{
		{
			UserID:      user.ID,
			Date:        "2024-03-04",
			Weight:      floatPtr(180.0),
			WeightUnits: strPtr("lbs"),
			AvgHr:       intPtr(61),
			HighHr:      intPtr(148),
			LowHr:       intPtr(52),
		},
		{
			UserID:      user.ID,
			Date:        "2024-03-01",
			Weight:      floatPtr(182.5),
			WeightUnits: strPtr("lbs"),
			Notes:       strPtr("post travel"),
		},
	}
	if err := gdb.Create(&biometrics).Error; err != nil {
		return err
	}

	recipes := []entities.Recipe{
		{
			RecipeName:      "Grilled Chicken Bowl",
			RecipeType:      strPtr("Omnivore"),
			RecipeSource:    strPtr("Seed"),
			Ingredients:     strPtr("['chicken breast', 'brown rice', 'broccoli', 'olive oil']"),
			Instructions:    strPtr("['Season the chicken', 'Grill 6 minutes per side', 'Serve over rice with broccoli']"),
			Calories:        intPtr(520),
			Fat:             floatPtr(14.0),
			Carbs:           floatPtr(48.0),
			Protein:         floatPtr(46.0),
			ExtraCategories: strPtr("['high-protein', 'meal-prep']"),
		},
		{
			RecipeName:      "Tofu Stir Fry",
			RecipeType:      strPtr("Vegan"),
			RecipeSource:    strPtr("Seed"),
			Ingredients:     strPtr("['firm tofu', 'bell pepper', 'soy sauce', 'ginger']"),
			Instructions:    strPtr("['Press and cube the tofu', 'Stir fry with vegetables', 'Finish with sauce']"),
			Calories:        intPtr(410),
			Fat:             floatPtr(18.0),
			Carbs:           floatPtr(32.0),
			Protein:         floatPtr(24.0),
			ExtraCategories: strPtr("['quick', 'high-protein']"),
		},
	}
	return gdb.Create(&recipes).Error
}
