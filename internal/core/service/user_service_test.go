package service

import (
	"errors"
	"context"
	"strconv"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/opencourses/courses-api/internal/core/domain"
	"github.com/opencourses/courses-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.EmailAddress == user.EmailAddress {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, emailAddress string) (*domain.User, error) {
	for _, u := range r.users {
		if u.EmailAddress == emailAddress {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func registerInput() ports.RegisterUserInput {
	return ports.RegisterUserInput{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	}
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "joepassword" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("joepassword")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Register_EmptyPassword(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), bcrypt.MinCost)

	input := registerInput()
	input.Password = ""
	_, err := svc.Register(context.Background(), input)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Messages()) != 1 || ve.Messages()[0] != "A password is required" {
		t.Fatalf("unexpected messages: %v", ve.Messages())
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), registerInput())
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Messages()[0] != "The email address you entered already exists" {
		t.Fatalf("unexpected message: %v", ve.Messages())
	}

	// the first account must be unaffected by the failed duplicate
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

func TestUserService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "joe@smith.com", "joepassword")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user == nil || user.EmailAddress != "joe@smith.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "joe@smith.com", "wrong"); err != domain.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestUserService_Authenticate_UnknownEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), bcrypt.MinCost)

	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "x"); err != domain.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestUserService_Authenticate_EmptyCredentials(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), bcrypt.MinCost)

	if _, err := svc.Authenticate(context.Background(), "", ""); err != domain.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}
