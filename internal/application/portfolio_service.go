package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"portfolio-api/internal/domain/repository"
	"portfolio-api/pkg/helpers"
)

// PortfolioService resolves the public portfolio page for a slug.
type PortfolioService struct {
	Users       repository.UserRepository
	Experiences repository.ExperienceRepository
	Logger      *logrus.Logger
}

func NewPortfolioService(users repository.UserRepository, experiences repository.ExperienceRepository, logger *logrus.Logger) *PortfolioService {
	return &PortfolioService{Users: users, Experiences: experiences, Logger: logger}
}

type PortfolioProfile struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PortfolioExperience struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Details string `json:"details"`
}

type PortfolioData struct {
	Profile     PortfolioProfile      `json:"profile"`
	Experiences []PortfolioExperience `json:"experiences"`
}

// Resolve normalizes the URL segment and matches it case-insensitively
// against the display name. An empty normalized slug answers not-found
// without touching the store.
func (s *PortfolioService) Resolve(slugSegment string) (*PortfolioData, error) {
	name := helpers.NormalizeSlug(slugSegment)
	if name == "" {
		return nil, ErrUserNotFound
	}

	u, err := s.Users.GetByNamePattern(helpers.NamePattern(name))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	items, err := s.Experiences.ListByUser(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("list experiences failed")
		}
		return nil, err
	}

	out := &PortfolioData{
		Profile:     PortfolioProfile{Name: u.Name, Slug: helpers.Slugify(u.Name)},
		Experiences: make([]PortfolioExperience, 0, len(items)),
	}
	for _, e := range items {
		out.Experiences = append(out.Experiences, PortfolioExperience{
			ID:      e.ID,
			Title:   e.Title,
			Start:   e.Start,
			End:     e.End,
			Details: e.Details,
		})
	}
	return out, nil
}
