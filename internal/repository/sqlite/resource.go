package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
)

var _ repository.ResourceRepository = (*DB)(nil)

func (db *DB) CreateResource(ctx context.Context, resource *model.Resource) error {
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO resources (title, description, category, icon, url, rating, likes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		resource.Title,
		resource.Description,
		resource.Category,
		resource.Icon,
		resource.URL,
		resource.Rating,
		resource.Likes,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating resource: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading resource id: %w", err)
	}
	resource.ID = id
	return nil
}

func (db *DB) GetResourceByID(ctx context.Context, id int64) (*model.Resource, error) {
	var r model.Resource
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, title, description, category, icon, url, rating, likes
		 FROM resources WHERE id = ?`, id,
	).Scan(&r.ID, &r.Title, &r.Description, &r.Category, &r.Icon, &r.URL, &r.Rating, &r.Likes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("resource", id)
		}
		return nil, fmt.Errorf("sqlite: getting resource %d: %w", id, err)
	}
	return &r, nil
}

func (db *DB) ListResources(ctx context.Context) ([]model.Resource, error) {
	return db.queryResources(ctx,
		`SELECT id, title, description, category, icon, url, rating, likes
		 FROM resources ORDER BY id`)
}

func (db *DB) ListResourcesByCategory(ctx context.Context, category string) ([]model.Resource, error) {
	return db.queryResources(ctx,
		`SELECT id, title, description, category, icon, url, rating, likes
		 FROM resources WHERE category = ? ORDER BY id`, category)
}

func (db *DB) queryResources(ctx context.Context, query string, args ...interface{}) ([]model.Resource, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing resources: %w", err)
	}
	defer rows.Close()

	resources := make([]model.Resource, 0)
	for rows.Next() {
		var r model.Resource
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Category, &r.Icon, &r.URL, &r.Rating, &r.Likes); err != nil {
			return nil, fmt.Errorf("sqlite: scanning resource row: %w", err)
		}
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating resources: %w", err)
	}
	return resources, nil
}

func (db *DB) UpdateLikes(ctx context.Context, id int64, likes int) (*model.Resource, error) {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE resources SET likes = ? WHERE id = ?`, likes, id)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating resource %d likes: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return nil, apperror.NotFound("resource", id)
	}

	return db.GetResourceByID(ctx, id)
}
