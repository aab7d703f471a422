package application

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"portfolio-api/internal/domain/entity"
	"portfolio-api/internal/domain/repository"
)

// In-memory repositories mirroring the store contracts: single-record
// lookups return repository.ErrNotFound, user creation enforces email
// uniqueness, and name-pattern matching is case-insensitive like the
// store's ~* operator.

type fakeUserRepo struct {
	seq   int
	users map[string]*entity.User
	// queries counts pattern lookups so tests can assert that empty
	// slugs never reach the store.
	queries int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByNamePattern(pattern string) (*entity.User, error) {
	r.queries++
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	for _, u := range r.users {
		if re.MatchString(u.Name) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeExperienceRepo struct {
	seq   int
	items map[string]*entity.Experience
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{items: map[string]*entity.Experience{}}
}

func (r *fakeExperienceRepo) Create(e *entity.Experience) error {
	r.seq++
	e.ID = "exp-" + strconv.Itoa(r.seq)
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeExperienceRepo) GetByID(id, userID string) (*entity.Experience, error) {
	e, ok := r.items[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExperienceRepo) Update(e *entity.Experience) error {
	stored, ok := r.items[e.ID]
	if !ok || stored.UserID != e.UserID {
		return repository.ErrNotFound
	}
	e.UpdatedAt = time.Now()
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeExperienceRepo) Delete(id, userID string) error {
	e, ok := r.items[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeExperienceRepo) ListByUser(userID string) ([]entity.Experience, error) {
	out := make([]entity.Experience, 0)
	for i := 1; i <= r.seq; i++ {
		if e, ok := r.items["exp-"+strconv.Itoa(i)]; ok && e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

var (
	_ repository.UserRepository       = (*fakeUserRepo)(nil)
	_ repository.ExperienceRepository = (*fakeExperienceRepo)(nil)
)

func strptr(s string) *string { return &s }
