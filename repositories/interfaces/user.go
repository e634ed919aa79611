package interfaces

import "senso-backend/models"

// UserRepositoryInterface defines the contract for user lookups. The alert
// pipeline only ever reads; account management lives elsewhere.
type UserRepositoryInterface interface {
	// FindByID retrieves a user by primary key.
	FindByID(id uint) (*models.User, error)
}
