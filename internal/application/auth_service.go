package application

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio-api/internal/domain/entity"
	"portfolio-api/internal/domain/repository"
	"portfolio-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
)

// AuthService owns account creation and credential verification.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register hashes the password and persists the user. The stored value
// is never the plaintext credential.
func (s *AuthService) Register(in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: hash,
	}
	if err := s.Users.Create(u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create user failed")
		}
		return nil, err
	}
	return u, nil
}

// Authenticate validates email/password and returns the user without
// issuing a token. Unknown email and wrong password stay distinct so
// the handler can answer 404 vs 401.
func (s *AuthService) Authenticate(email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login verifies the credentials and mints the session token carrying
// the user's identity with a fixed expiry.
func (s *AuthService) Login(email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Authenticate(email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.JWT.GenerateToken(u.ID, u.Email, u.Name)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

func (s *AuthService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
