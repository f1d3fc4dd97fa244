package repositories

import (
	"fitness-app/db"
	"fitness-app/entities"
)

type userDbRepository struct {
	db db.Database
}

func NewUserDbRepository(database db.Database) UserRepository {
	return &userDbRepository{db: database}
}

func (r *userDbRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userDbRepository) GetByID(id int) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByCredentials matches email and password exactly, mirroring the
// production login query.
func (r *userDbRepository) GetByCredentials(email, password string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("email = ? AND password = ?", email, password).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
