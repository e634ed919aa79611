package repositories

import (
	"fmt"

	"senso-backend/models"
	"senso-backend/repositories/interfaces"

	"gorm.io/gorm"
)

// UserRepository implements UserRepositoryInterface.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) interfaces.UserRepositoryInterface {
	return &UserRepository{
		db: db,
	}
}

// FindByID retrieves a user by primary key.
func (ur *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := ur.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("user %d not found: %w", id, err)
	}
	return &user, nil
}
