package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/repository/memory"
)

// Services are tested against the real memory store — it is the default
// production backend and costs nothing to construct, so mocking it would
// only re-implement the same maps.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestStoryService(t *testing.T) *StoryService {
	t.Helper()
	return NewStoryService(memory.New(), testLogger())
}

func validSubmission() StorySubmission {
	return StorySubmission{
		FirstName:  "Ana",
		LastName:   "Lee",
		Sport:      "Swimming",
		InjuryType: "Shoulder",
		Email:      "a@x.com",
		Title:      "T",
		Content:    "C",
	}
}

func TestSubmit_EntersPendingQueue(t *testing.T) {
	svc := newTestStoryService(t)
	ctx := context.Background()

	before := time.Now().UTC()
	story, err := svc.Submit(ctx, validSubmission())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if story.ID != 1 {
		t.Errorf("ID = %d, want 1", story.ID)
	}
	if story.Approved {
		t.Error("new submission has Approved = true, want false")
	}
	if story.SubmittedAt.Before(before) || story.SubmittedAt.After(time.Now().UTC()) {
		t.Errorf("SubmittedAt = %v, want close to now", story.SubmittedAt)
	}

	pending, err := svc.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending() error = %v", err)
	}
	if len(pending) != 1 || pending[0].ID != story.ID {
		t.Errorf("pending = %+v, want the new story", pending)
	}

	approved, err := svc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved() error = %v", err)
	}
	if len(approved) != 0 {
		t.Errorf("approved = %d stories before moderation, want 0", len(approved))
	}
}

func TestSubmit_ValidationEnumeratesFields(t *testing.T) {
	svc := newTestStoryService(t)

	in := validSubmission()
	in.Email = ""
	in.Content = ""

	_, err := svc.Submit(context.Background(), in)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("Submit() error = %v, want ErrValidation", err)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error is not *apperror.AppError: %v", err)
	}
	fields := map[string]bool{}
	for _, fe := range appErr.Fields {
		fields[fe.Field] = true
	}
	if !fields["email"] || !fields["content"] {
		t.Errorf("Fields = %+v, want email and content flagged", appErr.Fields)
	}
}

func TestApprove_PublishesExactlyOnce(t *testing.T) {
	svc := newTestStoryService(t)
	ctx := context.Background()

	story, err := svc.Submit(ctx, validSubmission())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	updated, err := svc.Approve(ctx, story.ID)
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if !updated.Approved {
		t.Error("Approve() returned Approved = false")
	}

	approved, _ := svc.ListApproved(ctx)
	count := 0
	for _, s := range approved {
		if s.ID == story.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("story appears %d times in approved list, want 1", count)
	}

	pending, _ := svc.ListPending(ctx)
	if len(pending) != 0 {
		t.Errorf("pending = %d stories after approval, want 0", len(pending))
	}
}

func TestApprove_NotFound(t *testing.T) {
	svc := newTestStoryService(t)

	_, err := svc.Approve(context.Background(), 99999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Approve(99999) error = %v, want ErrNotFound", err)
	}
}

func TestReject_RemovesPendingStory(t *testing.T) {
	svc := newTestStoryService(t)
	ctx := context.Background()

	story, _ := svc.Submit(ctx, validSubmission())

	if err := svc.Reject(ctx, story.ID); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}

	pending, _ := svc.ListPending(ctx)
	approved, _ := svc.ListApproved(ctx)
	if len(pending) != 0 || len(approved) != 0 {
		t.Error("rejected story still listed")
	}

	if err := svc.Reject(ctx, story.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second Reject() error = %v, want ErrNotFound", err)
	}
}

func TestReject_AlsoRemovesPublishedStory(t *testing.T) {
	// Rejection has no state guard: a published story can be deleted too.
	svc := newTestStoryService(t)
	ctx := context.Background()

	story, _ := svc.Submit(ctx, validSubmission())
	if _, err := svc.Approve(ctx, story.ID); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	if err := svc.Reject(ctx, story.ID); err != nil {
		t.Fatalf("Reject() on published story error = %v", err)
	}

	approved, _ := svc.ListApproved(ctx)
	if len(approved) != 0 {
		t.Error("de-published story still listed as approved")
	}
}
