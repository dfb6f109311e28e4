// Package repository defines the storage interfaces for the four entity
// kinds. Two implementations exist: memory (the default) and sqlite.
//
// CONTRACT SHARED BY ALL IMPLEMENTATIONS:
//   - Create assigns the next id for the kind (starting at 1, +1 per
//     create) and stores the record otherwise as given. Ids are never
//     reused, even after a delete.
//   - Reads return copies — callers never hold a reference into the store.
//   - Listings are ordered by ascending id, which is creation order.
//   - "Not found" is apperror.ErrNotFound, never a nil-and-no-error.
//
// Method names carry the entity kind (CreateStory, not Create) so that a
// single store type can implement all four interfaces at once.
package repository

import (
	"context"

	"github.com/athletemind/backend/internal/model"
)

type UserRepository interface {
	// CreateUser stores a new user. Returns apperror.ErrConflict if the
	// username is already taken.
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type ResourceRepository interface {
	CreateResource(ctx context.Context, resource *model.Resource) error
	GetResourceByID(ctx context.Context, id int64) (*model.Resource, error)
	ListResources(ctx context.Context) ([]model.Resource, error)
	ListResourcesByCategory(ctx context.Context, category string) ([]model.Resource, error)
	// UpdateLikes replaces the likes count. Any integer is accepted,
	// including negative — the caller decides what the count means.
	UpdateLikes(ctx context.Context, id int64, likes int) (*model.Resource, error)
}

type StoryRepository interface {
	CreateStory(ctx context.Context, story *model.Story) error
	GetStoryByID(ctx context.Context, id int64) (*model.Story, error)
	ListApprovedStories(ctx context.Context) ([]model.Story, error)
	ListPendingStories(ctx context.Context) ([]model.Story, error)
	// ApproveStory sets approved=true and returns the updated story.
	// Approving an already-approved story succeeds (no state guard).
	ApproveStory(ctx context.Context, id int64) (*model.Story, error)
	// DeleteStory removes the story regardless of its approval state.
	DeleteStory(ctx context.Context, id int64) error
}

type ContactRepository interface {
	CreateContact(ctx context.Context, contact *model.Contact) error
	ListContacts(ctx context.Context) ([]model.Contact, error)
}
