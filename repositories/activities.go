package repositories

import (
	"fitness-app/db"
	"fitness-app/entities"
)

type activityDbRepository struct {
	db db.Database
}

func NewActivityDbRepository(database db.Database) ActivityRepository {
	return &activityDbRepository{db: database}
}

func (r *activityDbRepository) Create(activity *entities.Activity) error {
	return r.db.GetDB().Create(activity).Error
}

func (r *activityDbRepository) GetAll() ([]entities.Activity, error) {
	var activities []entities.Activity
	err := r.db.GetDB().Order("activity_date DESC").Find(&activities).Error
	return activities, err
}

func (r *activityDbRepository) GetByUserID(userID int) ([]entities.Activity, error) {
	var activities []entities.Activity
	err := r.db.GetDB().Where("user_id = ?", userID).Order("activity_date DESC").Find(&activities).Error
	return activities, err
}
