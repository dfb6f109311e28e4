package service

import (
	"context"
	"errors"
	"testing"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/auth"
	"github.com/athletemind/backend/internal/repository/memory"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(memory.New(), auth.NewPasswordServiceForTest(4), testLogger())
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := newTestUserService(t)

	user, err := svc.Register(context.Background(), UserInput{
		Username: "moderator",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.Password == "correct horse battery" {
		t.Fatal("Register() stored the plaintext password")
	}
	if user.Password == "" {
		t.Fatal("Register() stored an empty password hash")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	in := UserInput{Username: "moderator", Password: "password-one"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	in.Password = "password-two"
	_, err := svc.Register(ctx, in)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("Register(duplicate) error = %v, want ErrConflict", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Register(context.Background(), UserInput{
		Username: "moderator",
		Password: "short",
	})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Register(short password) error = %v, want ErrValidation", err)
	}
}

func TestGetByUsername(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, UserInput{Username: "moderator", Password: "long enough"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	found, err := svc.GetByUsername(ctx, "moderator")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}
}
