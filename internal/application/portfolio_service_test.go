package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/domain/entity"
)

func newPortfolioFixture(t *testing.T) (*PortfolioService, *fakeUserRepo, *fakeExperienceRepo) {
	t.Helper()
	users := newFakeUserRepo()
	experiences := newFakeExperienceRepo()
	return NewPortfolioService(users, experiences, nil), users, experiences
}

func TestResolve_SlugMatchesCaseInsensitively(t *testing.T) {
	t.Parallel()

	svc, users, experiences := newPortfolioFixture(t)
	require.NoError(t, users.Create(&entity.User{Name: "jane doe", Email: "jane@x.com", Password: "hash"}))
	require.NoError(t, experiences.Create(&entity.Experience{UserID: "user-1", Title: "Engineer", Start: "2020", End: "Present", Details: "Built things"}))

	data, err := svc.Resolve("Jane-Doe")
	require.NoError(t, err)
	assert.Equal(t, "jane doe", data.Profile.Name)
	assert.Equal(t, "jane-doe", data.Profile.Slug)
	require.Len(t, data.Experiences, 1)
	assert.Equal(t, "Engineer", data.Experiences[0].Title)
}

func TestResolve_EmptyExperiencesIsEmptyArray(t *testing.T) {
	t.Parallel()

	svc, users, _ := newPortfolioFixture(t)
	require.NoError(t, users.Create(&entity.User{Name: "Jane Doe", Email: "jane@x.com", Password: "hash"}))

	data, err := svc.Resolve("jane-doe")
	require.NoError(t, err)
	assert.NotNil(t, data.Experiences)
	assert.Empty(t, data.Experiences)
}

func TestResolve_MetacharactersDoNotActAsPattern(t *testing.T) {
	t.Parallel()

	svc, users, _ := newPortfolioFixture(t)
	require.NoError(t, users.Create(&entity.User{Name: "alice", Email: "alice@x.com", Password: "hash"}))
	require.NoError(t, users.Create(&entity.User{Name: "bob", Email: "bob@x.com", Password: "hash"}))

	_, err := svc.Resolve("a.*")
	assert.ErrorIs(t, err, ErrUserNotFound, "regex metacharacters must be matched literally")
}

func TestResolve_EmptySlugSkipsTheStore(t *testing.T) {
	t.Parallel()

	svc, users, _ := newPortfolioFixture(t)
	require.NoError(t, users.Create(&entity.User{Name: "Jane Doe", Email: "jane@x.com", Password: "hash"}))

	_, err := svc.Resolve("---")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Zero(t, users.queries, "no query may be issued for an empty normalized slug")
}

func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPortfolioFixture(t)
	_, err := svc.Resolve("nobody-here")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
