package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/model"
)

// newTestDB opens a fresh in-memory database per test. ":memory:" lives
// only as long as the pool, so tests are isolated and leave nothing behind.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestStory(t *testing.T, db *DB, title string, approved bool) *model.Story {
	t.Helper()
	story := &model.Story{
		FirstName:   "Ana",
		LastName:    "Lee",
		Sport:       "Swimming",
		InjuryType:  "Shoulder",
		Email:       "a@x.com",
		Title:       title,
		Content:     "C",
		Approved:    approved,
		SubmittedAt: time.Now().UTC(),
	}
	if err := db.CreateStory(context.Background(), story); err != nil {
		t.Fatalf("CreateStory() error = %v", err)
	}
	return story
}

func TestCreateStory_SequentialIDs(t *testing.T) {
	db := newTestDB(t)

	first := createTestStory(t, db, "one", false)
	second := createTestStory(t, db, "two", false)

	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("second id = %d, want 2", second.ID)
	}
}

func TestDeleteStory_AutoincrementNeverReuses(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createTestStory(t, db, "one", false)
	createTestStory(t, db, "two", false)
	last := createTestStory(t, db, "three", false)

	if err := db.DeleteStory(ctx, last.ID); err != nil {
		t.Fatalf("DeleteStory() error = %v", err)
	}

	// AUTOINCREMENT keeps the sequence moving forward past deleted rows.
	next := createTestStory(t, db, "four", false)
	if next.ID != 4 {
		t.Errorf("id after delete = %d, want 4", next.ID)
	}

	if err := db.DeleteStory(ctx, last.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second DeleteStory() error = %v, want ErrNotFound", err)
	}
}

func TestStoryRoundTrip(t *testing.T) {
	db := newTestDB(t)

	created := createTestStory(t, db, "round trip", false)

	found, err := db.GetStoryByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetStoryByID() error = %v", err)
	}
	if found.Title != "round trip" || found.Sport != "Swimming" {
		t.Errorf("GetStoryByID() = %+v", found)
	}
	if found.Approved {
		t.Error("Approved = true, want false")
	}
	if found.SubmittedAt.IsZero() {
		t.Error("SubmittedAt not persisted")
	}
}

func TestApproveStory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	story := createTestStory(t, db, "pending", false)

	updated, err := db.ApproveStory(ctx, story.ID)
	if err != nil {
		t.Fatalf("ApproveStory() error = %v", err)
	}
	if !updated.Approved {
		t.Error("ApproveStory() did not set approved")
	}

	pending, err := db.ListPendingStories(ctx)
	if err != nil {
		t.Fatalf("ListPendingStories() error = %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending = %d stories, want 0", len(pending))
	}

	approved, err := db.ListApprovedStories(ctx)
	if err != nil {
		t.Fatalf("ListApprovedStories() error = %v", err)
	}
	if len(approved) != 1 || approved[0].ID != story.ID {
		t.Errorf("approved = %+v, want story %d", approved, story.ID)
	}
}

func TestApproveStory_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.ApproveStory(context.Background(), 99999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("ApproveStory(99999) error = %v, want ErrNotFound", err)
	}
}

func TestListStories_OrderedByID(t *testing.T) {
	db := newTestDB(t)

	createTestStory(t, db, "a", true)
	createTestStory(t, db, "b", true)
	createTestStory(t, db, "c", true)

	approved, err := db.ListApprovedStories(context.Background())
	if err != nil {
		t.Fatalf("ListApprovedStories() error = %v", err)
	}
	for i, want := range []string{"a", "b", "c"} {
		if approved[i].Title != want {
			t.Errorf("approved[%d].Title = %q, want %q", i, approved[i].Title, want)
		}
	}
}
