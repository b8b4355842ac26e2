package ports

import (
	"context"

	"github.com/opencourses/courses-api/internal/core/domain"
)

// RegisterUserInput carries the candidate account fields. Password is the
// plaintext secret; it is hashed before a User value is ever constructed.
type RegisterUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// UserService defines account use-cases.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	// Authenticate resolves the account for an email/password pair.
	// Any failure (unknown email, hash mismatch) yields domain.ErrAccessDenied.
	Authenticate(ctx context.Context, emailAddress, password string) (*domain.User, error)
}
