package memory

import (
	"context"
	"sort"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
)

var _ repository.ResourceRepository = (*Store)(nil)

// cloneResource copies the record including the URL pointee. A plain
// struct copy would share the *string, letting a caller mutate store
// state through the pointer.
func cloneResource(r model.Resource) model.Resource {
	if r.URL != nil {
		u := *r.URL
		r.URL = &u
	}
	return r
}

func (s *Store) CreateResource(_ context.Context, resource *model.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resource.ID = s.nextResourceID
	s.nextResourceID++
	s.resources[resource.ID] = cloneResource(*resource)
	return nil
}

func (s *Store) GetResourceByID(_ context.Context, id int64) (*model.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resource, ok := s.resources[id]
	if !ok {
		return nil, apperror.NotFound("resource", id)
	}
	out := cloneResource(resource)
	return &out, nil
}

func (s *Store) ListResources(_ context.Context) ([]model.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resources := make([]model.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		resources = append(resources, cloneResource(r))
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	return resources, nil
}

func (s *Store) ListResourcesByCategory(_ context.Context, category string) ([]model.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resources := make([]model.Resource, 0)
	for _, r := range s.resources {
		if r.Category == category {
			resources = append(resources, cloneResource(r))
		}
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	return resources, nil
}

// UpdateLikes replaces the likes count wholesale. No clamping — the count
// is whatever the caller says it is, negative included.
func (s *Store) UpdateLikes(_ context.Context, id int64, likes int) (*model.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resource, ok := s.resources[id]
	if !ok {
		return nil, apperror.NotFound("resource", id)
	}
	resource.Likes = likes
	s.resources[id] = cloneResource(resource)
	out := cloneResource(resource)
	return &out, nil
}
