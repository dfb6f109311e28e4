package sqlite

import (
	"context"
	"fmt"

	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
)

var _ repository.ContactRepository = (*DB)(nil)

func (db *DB) CreateContact(ctx context.Context, contact *model.Contact) error {
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO contacts (name, email, inquiry_type, message, submitted_at)
		 VALUES (?, ?, ?, ?, ?)`,
		contact.Name,
		contact.Email,
		contact.InquiryType,
		contact.Message,
		contact.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading contact id: %w", err)
	}
	contact.ID = id
	return nil
}

func (db *DB) ListContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, email, inquiry_type, message, submitted_at
		 FROM contacts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.InquiryType, &c.Message, &c.SubmittedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating contacts: %w", err)
	}
	return contacts, nil
}
