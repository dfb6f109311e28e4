package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
	"github.com/athletemind/backend/internal/validation"
)

// ResourceInput describes a new curated resource. Resources are created by
// the seeder (and potentially future admin tooling), never by visitors —
// there is no public create endpoint.
type ResourceInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required,max=100"`
	Icon        string  `json:"icon" validate:"required,max=100"`
	URL         *string `json:"url"`
	Rating      int     `json:"rating" validate:"gte=0,lte=5"`
	Likes       int     `json:"likes"`
}

type ResourceService struct {
	repo   repository.ResourceRepository
	logger *slog.Logger
}

func NewResourceService(repo repository.ResourceRepository, logger *slog.Logger) *ResourceService {
	return &ResourceService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and stores a resource. Rating and likes default to 0
// when the input leaves them unset (Go zero values).
func (s *ResourceService) Create(ctx context.Context, in ResourceInput) (*model.Resource, error) {
	if err := validation.Struct(in, "invalid resource data"); err != nil {
		return nil, err
	}

	resource := &model.Resource{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Icon:        in.Icon,
		URL:         in.URL,
		Rating:      in.Rating,
		Likes:       in.Likes,
	}

	if err := s.repo.CreateResource(ctx, resource); err != nil {
		s.logger.Error("failed to create resource",
			slog.String("title", in.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return resource, nil
}

// List returns all resources, or only those in the given category when
// category is non-empty. An unknown category yields an empty list, not an
// error.
func (s *ResourceService) List(ctx context.Context, category string) ([]model.Resource, error) {
	var (
		resources []model.Resource
		err       error
	)
	if category != "" {
		resources, err = s.repo.ListResourcesByCategory(ctx, category)
	} else {
		resources, err = s.repo.ListResources(ctx)
	}
	if err != nil {
		s.logger.Error("failed to list resources", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	return resources, nil
}

// Like sets the like count to exactly n. The count is client-asserted and
// unclamped — negative values are stored as sent.
func (s *ResourceService) Like(ctx context.Context, id int64, likes int) (*model.Resource, error) {
	resource, err := s.repo.UpdateLikes(ctx, id, likes)
	if err != nil {
		return nil, err
	}

	s.logger.Info("resource likes updated",
		slog.Int64("id", id),
		slog.Int("likes", likes),
	)
	return resource, nil
}
