package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/opencourses/courses-api/internal/core/domain"
	"github.com/opencourses/courses-api/internal/core/ports"
)

const msgEmailTaken = "The email address you entered already exists"

// UserService implements account registration and credential verification.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
}

func NewUserService(repo ports.UserRepository, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost}
}

// Register hashes the plaintext secret and persists a new account. The hash
// happens here, before the User value exists; nothing downstream ever sees
// the plaintext. A duplicate email surfaces as a ValidationError so the
// client gets the same 400 message list as any other field violation.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	if input.Password == "" {
		return nil, domain.NewValidationError("A password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: input.EmailAddress,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.NewValidationError(msgEmailTaken)
		}
		return nil, err
	}
	return created, nil
}

// Authenticate resolves the account for an email/password pair. Unknown
// email and hash mismatch collapse into the same ErrAccessDenied so the
// response does not reveal which half of the pair was wrong.
func (s *UserService) Authenticate(ctx context.Context, emailAddress, password string) (*domain.User, error) {
	if emailAddress == "" || password == "" {
		return nil, domain.ErrAccessDenied
	}

	user, err := s.repo.FindByEmail(ctx, emailAddress)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAccessDenied
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrAccessDenied
	}

	return user, nil
}
