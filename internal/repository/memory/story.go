package memory

import (
	"context"
	"sort"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
)

// Compile-time check that *Store satisfies the interface.
var _ repository.StoryRepository = (*Store)(nil)

// CreateStory assigns the next story id and stores a copy of the record as
// given. Approval state and submission time are the caller's concern —
// the service sets them for API submissions, the seeder backdates them.
func (s *Store) CreateStory(_ context.Context, story *model.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	story.ID = s.nextStoryID
	s.nextStoryID++
	s.stories[story.ID] = *story
	return nil
}

func (s *Store) GetStoryByID(_ context.Context, id int64) (*model.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	story, ok := s.stories[id]
	if !ok {
		return nil, apperror.NotFound("story", id)
	}
	return &story, nil
}

func (s *Store) ListApprovedStories(_ context.Context) ([]model.Story, error) {
	return s.listStories(true), nil
}

func (s *Store) ListPendingStories(_ context.Context) ([]model.Story, error) {
	return s.listStories(false), nil
}

// listStories returns stories with the given approval state, ordered by
// ascending id (creation order — ids are monotonic).
func (s *Store) listStories(approved bool) []model.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stories := make([]model.Story, 0, len(s.stories))
	for _, story := range s.stories {
		if story.Approved == approved {
			stories = append(stories, story)
		}
	}
	sort.Slice(stories, func(i, j int) bool { return stories[i].ID < stories[j].ID })
	return stories
}

func (s *Store) ApproveStory(_ context.Context, id int64) (*model.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story, ok := s.stories[id]
	if !ok {
		return nil, apperror.NotFound("story", id)
	}
	story.Approved = true
	s.stories[id] = story
	return &story, nil
}

func (s *Store) DeleteStory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stories[id]; !ok {
		return apperror.NotFound("story", id)
	}
	delete(s.stories, id)
	return nil
}
