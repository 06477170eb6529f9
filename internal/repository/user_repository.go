package repository

import (
	"time"

	"github.com/jobtimizer/jobtimizer/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindUserByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "email = ?", email).Error
	return &user, err
}

func (r *UserRepository) UpdatePreferences(id string, preferences string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("preferences", preferences).Error
}

func (r *UserRepository) UpdateLastLogin(id string) error {
	now := time.Now().UTC()
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("last_login_at", &now).Error
}
