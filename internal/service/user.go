package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/athletemind/backend/internal/auth"
	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
	"github.com/athletemind/backend/internal/validation"
)

// UserInput is a registration payload. There is no public user endpoint —
// accounts are created by the startup seeder — but the rules live here so
// any future surface goes through the same checks.
type UserInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UserService struct {
	repo      repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewUserService(repo repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *UserService {
	return &UserService{
		repo:      repo,
		passwords: passwords,
		logger:    logger,
	}
}

// Register validates the input, hashes the password, and stores the user.
// The plaintext never reaches the repository. Duplicate usernames surface
// as apperror.ErrConflict from the store.
func (s *UserService) Register(ctx context.Context, in UserInput) (*model.User, error) {
	if err := validation.Struct(in, "invalid user data"); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username: in.Username,
		Password: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.Int64("id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

// GetByUsername looks up a user by their unique username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}
