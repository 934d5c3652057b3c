package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongCredentials  = errors.New("wrong credentials")
)

// UserService implements registration and credential verification.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

// Register hashes the password and persists a new user. Username uniqueness is
// enforced by the storage layer and surfaces as ErrDuplicateUsername.
func (s *UserService) Register(username, password, avatar string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, PasswordHash: hash, Avatar: avatar}
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("register failed")
		}
		return nil, err
	}
	return u, nil
}

// Authenticate looks the user up by username and compares the password against
// the stored bcrypt hash. An unknown username and a bad password are reported
// as distinct errors.
func (s *UserService) Authenticate(username, password string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrWrongCredentials
	}
	return u, nil
}

// GetProfile returns the stored user for a verified identity.
func (s *UserService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
