package repositories

import (
	"fitness-app/db"
	"fitness-app/entities"
)

type biometricDbRepository struct {
	db db.Database
}

func NewBiometricDbRepository(database db.Database) BiometricRepository {
	return &biometricDbRepository{db: database}
}

func (r *biometricDbRepository) Create(biometric *entities.Biometric) error {
	return r.db.GetDB().Create(biometric).Error
}

func (r *biometricDbRepository) Update(biometric *entities.Biometric) error {
	return r.db.GetDB().Save(biometric).Error
}

func (r *biometricDbRepository) GetAll() ([]entities.Biometric, error) {
	var biometrics []entities.Biometric
	err := r.db.GetDB().Order("date DESC").Find(&biometrics).Error
	return biometrics, err
}

func (r *biometricDbRepository) GetByUserID(userID int) ([]entities.Biometric, error) {
	var biometrics []entities.Biometric
	err := r.db.GetDB().Where("user_id = ?", userID).Order("date DESC").Find(&biometrics).Error
	return biometrics, err
}

func (r *biometricDbRepository) GetByUserAndDate(userID int, date string) (*entities.Biometric, error) {
	var biometric entities.Biometric
	err := r.db.GetDB().Where("user_id = ? AND date = ?", userID, date).First(&biometric).Error
	if err != nil {
		return nil, err
	}
	return &biometric, nil
}

// GetLatestWeight returns the newest entry that actually carries a weight.
func (r *biometricDbRepository) GetLatestWeight(userID int) (*entities.Biometric, error) {
	var biometric entities.Biometric
	err := r.db.GetDB().
		Where("user_id = ? AND weight IS NOT NULL", userID).
		Order("date DESC").
		First(&biometric).Error
	if err != nil {
		return nil, err
	}
	return &biometric, nil
}
