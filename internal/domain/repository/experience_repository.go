package repository

import "portfolio-api/internal/domain/entity"

// ExperienceRepository defines database operations for timeline entries.
// Lookups that take a userID are scoped to that owner.
type ExperienceRepository interface {
	Create(e *entity.Experience) error
	GetByID(id, userID string) (*entity.Experience, error)
	Update(e *entity.Experience) error
	Delete(id, userID string) error
	ListByUser(userID string) ([]entity.Experience, error)
}
