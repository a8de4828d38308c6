package repositories

import "questify/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUserName(userName string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
