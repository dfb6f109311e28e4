package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
)

// Compile-time check that *DB implements repository.StoryRepository.
var _ repository.StoryRepository = (*DB)(nil)

// CreateStory inserts the story as given and fills in the assigned id.
// Approval state and submission time come from the caller, same as the
// memory store.
func (db *DB) CreateStory(ctx context.Context, story *model.Story) error {
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO stories (first_name, last_name, sport, injury_type, email, title, content, approved, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		story.FirstName,
		story.LastName,
		story.Sport,
		story.InjuryType,
		story.Email,
		story.Title,
		story.Content,
		story.Approved,
		story.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating story: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading story id: %w", err)
	}
	story.ID = id
	return nil
}

func (db *DB) GetStoryByID(ctx context.Context, id int64) (*model.Story, error) {
	var s model.Story
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, sport, injury_type, email, title, content, approved, submitted_at
		 FROM stories WHERE id = ?`, id,
	).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Sport, &s.InjuryType,
		&s.Email, &s.Title, &s.Content, &s.Approved, &s.SubmittedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("story", id)
		}
		return nil, fmt.Errorf("sqlite: getting story %d: %w", id, err)
	}
	return &s, nil
}

func (db *DB) ListApprovedStories(ctx context.Context) ([]model.Story, error) {
	return db.listStories(ctx, true)
}

func (db *DB) ListPendingStories(ctx context.Context) ([]model.Story, error) {
	return db.listStories(ctx, false)
}

func (db *DB) listStories(ctx context.Context, approved bool) ([]model.Story, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, first_name, last_name, sport, injury_type, email, title, content, approved, submitted_at
		 FROM stories WHERE approved = ? ORDER BY id`, approved)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing stories: %w", err)
	}
	defer rows.Close()

	stories := make([]model.Story, 0)
	for rows.Next() {
		var s model.Story
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Sport, &s.InjuryType,
			&s.Email, &s.Title, &s.Content, &s.Approved, &s.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning story row: %w", err)
		}
		stories = append(stories, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating stories: %w", err)
	}
	return stories, nil
}

// ApproveStory flips the flag and returns the updated row. RowsAffected
// distinguishes "no such story" from success; re-approving an approved
// story still touches one row, so it stays a success.
func (db *DB) ApproveStory(ctx context.Context, id int64) (*model.Story, error) {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE stories SET approved = 1 WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("sqlite: approving story %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return nil, apperror.NotFound("story", id)
	}

	return db.GetStoryByID(ctx, id)
}

func (db *DB) DeleteStory(ctx context.Context, id int64) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM stories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting story %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("story", id)
	}
	return nil
}
