package memory

import (
	"context"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
)

var _ repository.UserRepository = (*Store)(nil)

// CreateUser stores a new user, enforcing username uniqueness. The scan
// over the map is fine at this scale — the user collection holds a
// handful of moderator accounts, not the public.
func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return apperror.Conflict("user", "username already taken")
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, &apperror.AppError{
		Err:     apperror.ErrNotFound,
		Message: "user not found with username " + username,
	}
}
