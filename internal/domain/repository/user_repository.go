package repository

import "portfolio-api/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByNamePattern resolves a user by an anchored, case-insensitive
	// regex pattern against the display name. Callers must escape the
	// pattern before passing it in.
	GetByNamePattern(pattern string) (*entity.User, error)
}
