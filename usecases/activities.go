package usecases

import (
	"errors"

	"fitness-app/entities"
	"fitness-app/repositories"
)

type ActivityUseCase struct {
	ActivityRepo repositories.ActivityRepository
}

func NewActivityUseCase(activityRepo repositories.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{ActivityRepo: activityRepo}
}

// ListActivities returns all activities, or a single user's when userID is
// set, most recent first.
func (uc *ActivityUseCase) ListActivities(userID int) ([]entities.Activity, error) {
	if userID > 0 {
		return uc.ActivityRepo.GetByUserID(userID)
	}
	return uc.ActivityRepo.GetAll()
}

// CreateActivity stores a new activity.
func (uc *ActivityUseCase) CreateActivity(activity *entities.Activity) error {
	if activity.UserID <= 0 {
		return errors.New("user id is required")
	}
	if activity.ActivityType == "" {
		return errors.New("activity type is required")
	}
	if activity.ActivityDate == "" {
		return errors.New("activity date is required")
	}
	return uc.ActivityRepo.Create(activity)
}
