package usecases

import (
	"errors"
	"math"
	"strings"

	"fitness-app/entities"
	"fitness-app/repositories"
)

type UserUseCase struct {
	UserRepo      repositories.UserRepository
	BiometricRepo repositories.BiometricRepository
}

func NewUserUseCase(userRepo repositories.UserRepository, biometricRepo repositories.BiometricRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo, BiometricRepo: biometricRepo}
}

// Authenticate checks email and password. A miss returns (nil, nil): bad
// credentials are an envelope outcome, not an error.
func (uc *UserUseCase) Authenticate(email, password string) (*entities.UserSummary, error) {
	user, err := uc.UserRepo.GetByCredentials(email, password)
	if err != nil {
		return nil, nil
	}
	return &entities.UserSummary{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		WeightGoal: user.WeightGoal,
	}, nil
}

// GetUser retrieves a user by id.
func (uc *UserUseCase) GetUser(id int) (*entities.User, error) {
	if id <= 0 {
		return nil, errors.New("user id is required")
	}
	return uc.UserRepo.GetByID(id)
}

// LatestWeight builds the latest-weight response for a user. When no entry
// with a weight exists the response has Found=false and every other field
// absent.
func (uc *UserUseCase) LatestWeight(userID int) (*entities.LatestWeight, error) {
	entry, err := uc.BiometricRepo.GetLatestWeight(userID)
	if err != nil || entry == nil || entry.Weight == nil {
		return &entities.LatestWeight{Found: false}, nil
	}

	units := "lbs"
	if entry.WeightUnits != nil && *entry.WeightUnits != "" {
		units = *entry.WeightUnits
	}

	weightKg := toKilograms(*entry.Weight, units)
	date := entry.Date

	return &entities.LatestWeight{
		Weight:      entry.Weight,
		WeightUnits: &units,
		WeightKg:    &weightKg,
		Date:        &date,
		Notes:       entry.Notes,
		Found:       true,
	}, nil
}

// toKilograms converts pound readings for downstream calculations, rounded
// to two decimals like the production backend.
func toKilograms(weight float64, units string) float64 {
	switch strings.ToLower(units) {
	case "lbs", "lb", "pounds":
		return math.Round(weight*0.453592*100) / 100
	default:
		return math.Round(weight*100) / 100
	}
}
