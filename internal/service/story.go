// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces the workflow
//	Repository (Data layer)  → reads/writes the store
//
// Services take repository interfaces, not concrete stores, so the same
// code runs against the memory backend, the SQLite backend, or a mock in
// tests. They accept plain inputs and return domain errors — no HTTP
// types anywhere in this package.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
	"github.com/athletemind/backend/internal/validation"
)

// StorySubmission is the client-settable portion of a story. Server-owned
// fields (id, approved, submittedAt) don't exist here, so they are
// stripped from input by construction — a client sending "approved": true
// in the JSON body changes nothing.
//
// Validation is presence-only: every field must be a non-empty string,
// nothing more. A length cap would be a business rule this API does not
// impose.
type StorySubmission struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Sport      string `json:"sport" validate:"required"`
	InjuryType string `json:"injuryType" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// StoryService owns the moderation workflow:
//
//	submit → pending → approve → published
//	                 → reject  → deleted
//
// Rejection is permissive — it also deletes already-published stories
// (effectively de-publishing). There is deliberately no guard.
type StoryService struct {
	repo   repository.StoryRepository
	logger *slog.Logger
}

func NewStoryService(repo repository.StoryRepository, logger *slog.Logger) *StoryService {
	return &StoryService{
		repo:   repo,
		logger: logger,
	}
}

// Submit validates and stores a new story. Every submission enters the
// queue unapproved; the submission time is set here, once, and never
// changes afterwards.
func (s *StoryService) Submit(ctx context.Context, in StorySubmission) (*model.Story, error) {
	if err := validation.Struct(in, "invalid story data"); err != nil {
		return nil, err
	}

	story := &model.Story{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Sport:       in.Sport,
		InjuryType:  in.InjuryType,
		Email:       in.Email,
		Title:       in.Title,
		Content:     in.Content,
		Approved:    false,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateStory(ctx, story); err != nil {
		s.logger.Error("failed to create story",
			slog.String("title", in.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating story: %w", err)
	}

	s.logger.Info("story submitted",
		slog.Int64("id", story.ID),
		slog.String("sport", story.Sport),
	)
	return story, nil
}

// ListApproved returns the publicly visible stories.
func (s *StoryService) ListApproved(ctx context.Context) ([]model.Story, error) {
	stories, err := s.repo.ListApprovedStories(ctx)
	if err != nil {
		s.logger.Error("failed to list approved stories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing approved stories: %w", err)
	}
	return stories, nil
}

// ListPending returns stories awaiting a moderator decision.
func (s *StoryService) ListPending(ctx context.Context) ([]model.Story, error) {
	stories, err := s.repo.ListPendingStories(ctx)
	if err != nil {
		s.logger.Error("failed to list pending stories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing pending stories: %w", err)
	}
	return stories, nil
}

// Approve publishes a story. Re-approving an already-published story is a
// state no-op but still succeeds — the only failure path is a missing id.
func (s *StoryService) Approve(ctx context.Context, id int64) (*model.Story, error) {
	story, err := s.repo.ApproveStory(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("story approved", slog.Int64("id", id))
	return story, nil
}

// Reject deletes a story outright. There is no transition out of deleted;
// the id is never reused.
func (s *StoryService) Reject(ctx context.Context, id int64) error {
	if err := s.repo.DeleteStory(ctx, id); err != nil {
		return err
	}

	s.logger.Info("story rejected", slog.Int64("id", id))
	return nil
}
