package usecases

import (
	"errors"

	"fitness-app/entities"
	"fitness-app/repositories"
)

type BiometricUseCase struct {
	BiometricRepo repositories.BiometricRepository
}

func NewBiometricUseCase(biometricRepo repositories.BiometricRepository) *BiometricUseCase {
	return &BiometricUseCase{BiometricRepo: biometricRepo}
}

// ListBiometrics returns all entries, or a single user's when userID is set,
// most recent first.
func (uc *BiometricUseCase) ListBiometrics(userID int) ([]entities.Biometric, error) {
	if userID > 0 {
		return uc.BiometricRepo.GetByUserID(userID)
	}
	return uc.BiometricRepo.GetAll()
}

// SaveBiometric upserts an entry: at most one row exists per user per date,
// and posting an existing date replaces that row's measurements. The
// persisted row is returned so callers see the server-assigned id.
func (uc *BiometricUseCase) SaveBiometric(biometric *entities.Biometric) (*entities.Biometric, error) {
	if biometric.UserID <= 0 {
		return nil, errors.New("user id is required")
	}
	if biometric.Date == "" {
		return nil, errors.New("date is required")
	}

	existing, err := uc.BiometricRepo.GetByUserAndDate(biometric.UserID, biometric.Date)
	if err == nil && existing != nil {
		existing.Weight = biometric.Weight
		existing.WeightUnits = biometric.WeightUnits
		existing.AvgHr = biometric.AvgHr
		existing.HighHr = biometric.HighHr
		existing.LowHr = biometric.LowHr
		existing.Notes = biometric.Notes
		if err := uc.BiometricRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	if err := uc.BiometricRepo.Create(biometric); err != nil {
		return nil, err
	}
	return biometric, nil
}
