package store

import (
	"errors"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// GetUserByEmail returns the user registered under email, or ErrNotFound.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user. ErrDuplicateEmail is returned when the
// email is already registered.
func CreateUser(db *gorm.DB, user *models.User) error {
	var existing models.User
	err := db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(user).Error
}
