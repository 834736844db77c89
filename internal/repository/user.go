package repository

import (
	"context"

	"github.com/danabekov/course-catalog/internal/domain"
)

// Usecases depend on interfaces, not the pgx implementations, so the DB can
// be swapped and tests can pass fakes.
type UserRepository interface {
	// Create inserts the user and returns the stored row. A duplicate
	// email address yields domain.ErrEmailTaken; uniqueness is enforced
	// atomically by the store.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Delete removes the user. A missing id yields domain.ErrUserNotFound.
	Delete(ctx context.Context, id int64) error
}
