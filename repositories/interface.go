package repositories

import "fitness-app/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id int) (*entities.User, error)
	GetByCredentials(email, password string) (*entities.User, error)
}

type ActivityRepository interface {
	Create(activity *entities.Activity) error
	GetAll() ([]entities.Activity, error)
	GetByUserID(userID int) ([]entities.Activity, error)
}

type BiometricRepository interface {
	Create(biometric *entities.Biometric) error
	Update(biometric *entities.Biometric) error
	GetAll() ([]entities.Biometric, error)
	GetByUserID(userID int) ([]entities.Biometric, error)
	GetByUserAndDate(userID int, date string) (*entities.Biometric, error)
	GetLatestWeight(userID int) (*entities.Biometric, error)
}

type RecipeRepository interface {
	Create(recipe *entities.Recipe) error
	GetAll(recipeType, extraCategories string) ([]entities.Recipe, error)
	GetByID(id int) (*entities.Recipe, error)
}
