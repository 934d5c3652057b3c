package repository

import (
	"errors"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

// Storage-level outcomes shared by all repositories. Implementations translate
// driver states into these so services never see driver errors.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
