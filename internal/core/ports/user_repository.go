package ports

import (
	"context"

	"github.com/opencourses/courses-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the
	// email address is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, emailAddress string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
