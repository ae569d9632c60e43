package repository

import (
	"context"
	"errors"

	"github.com/phishguard/phishguard-api/internal/domain/entity"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
