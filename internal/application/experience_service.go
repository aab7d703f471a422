package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"portfolio-api/internal/domain/entity"
	"portfolio-api/internal/domain/repository"
)

var ErrExperienceNotFound = errors.New("experience not found")

// ExperienceService owns the timeline entries of the acting identity.
// Every lookup is scoped to the owner; an id belonging to another user
// resolves the same as an absent one.
type ExperienceService struct {
	Experiences repository.ExperienceRepository
	Logger      *logrus.Logger
}

func NewExperienceService(experiences repository.ExperienceRepository, logger *logrus.Logger) *ExperienceService {
	return &ExperienceService{Experiences: experiences, Logger: logger}
}

type AddExperienceInput struct {
	Title   string
	Start   string
	End     string
	Details string
}

func (s *ExperienceService) Add(userID string, in AddExperienceInput) (*entity.Experience, error) {
	e := &entity.Experience{
		UserID:  userID,
		Title:   in.Title,
		Start:   in.Start,
		End:     in.End,
		Details: in.Details,
	}
	if err := s.Experiences.Create(e); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("create experience failed")
		}
		return nil, err
	}
	return e, nil
}

func (s *ExperienceService) List(userID string) ([]entity.Experience, error) {
	return s.Experiences.ListByUser(userID)
}

// UpdateExperienceInput carries a partial update. A nil field keeps
// its current value; a provided value is applied verbatim, the empty
// string included. Repeating the same patch is idempotent.
type UpdateExperienceInput struct {
	Title   *string
	Start   *string
	End     *string
	Details *string
}

func (s *ExperienceService) Update(userID, expID string, in UpdateExperienceInput) (*entity.Experience, error) {
	e, err := s.Experiences.GetByID(expID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Start != nil {
		e.Start = *in.Start
	}
	if in.End != nil {
		e.End = *in.End
	}
	if in.Details != nil {
		e.Details = *in.Details
	}
	if err := s.Experiences.Update(e); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *ExperienceService) Delete(userID, expID string) error {
	if err := s.Experiences.Delete(expID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExperienceNotFound
		}
		return err
	}
	return nil
}
