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

// ContactSubmission is the inquiry form payload. InquiryType is free text
// on purpose: the form offers fixed choices, but the backend accepts any
// non-empty string. Like story submissions, validation is presence-only.
type ContactSubmission struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	InquiryType string `json:"inquiryType" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

type ContactService struct {
	repo   repository.ContactRepository
	logger *slog.Logger
}

func NewContactService(repo repository.ContactRepository, logger *slog.Logger) *ContactService {
	return &ContactService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ContactService) Submit(ctx context.Context, in ContactSubmission) (*model.Contact, error) {
	if err := validation.Struct(in, "invalid contact data"); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		Name:        in.Name,
		Email:       in.Email,
		InquiryType: in.InquiryType,
		Message:     in.Message,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateContact(ctx, contact); err != nil {
		s.logger.Error("failed to create contact",
			slog.String("name", in.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating contact: %w", err)
	}

	s.logger.Info("contact submitted",
		slog.Int64("id", contact.ID),
		slog.String("inquiryType", contact.InquiryType),
	)
	return contact, nil
}

func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.ListContacts(ctx)
	if err != nil {
		s.logger.Error("failed to list contacts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	return contacts, nil
}
