package store

import (
	"context"
	"database/sql"
	"errors"

	"pocket-crm/internal/models"
)

const contactColumns = `id, name, email, phone, position, created_at, updated_at`

// CreateContact persists a new contact and returns the full row.
func (s *Store) CreateContact(ctx context.Context, in models.ContactInput) (*models.Contact, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var contact models.Contact
	err := s.db.GetContext(ctx, &contact,
		`INSERT INTO contacts (name, email, phone, position) VALUES (?, ?, ?, ?)
		 RETURNING `+contactColumns,
		in.Name, in.Email, in.Phone, in.Position)
	if err != nil {
		s.log.Error("Error inserting contact: %v", err)
		return nil, storage("contact insert", err)
	}
	return &contact, nil
}

// GetContact retrieves a single contact by id.
func (s *Store) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var contact models.Contact
	err := s.db.GetContext(ctx, &contact,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Error querying contact: %v", err)
		return nil, storage("contact lookup", err)
	}
	return &contact, nil
}

// ListContacts returns all contacts ordered by name.
func (s *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts := []models.Contact{}
	err := s.db.SelectContext(ctx, &contacts,
		`SELECT `+contactColumns+` FROM contacts ORDER BY name`)
	if err != nil {
		s.log.Error("Error querying contacts: %v", err)
		return nil, storage("contact list", err)
	}
	return contacts, nil
}

// UpdateContact full-replaces every mutable field; optional fields absent
// from the input are stored as NULL, not left at their prior value.
func (s *Store) UpdateContact(ctx context.Context, id int64, in models.ContactInput) (*models.Contact, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var contact models.Contact
	err := s.db.GetContext(ctx, &contact,
		`UPDATE contacts SET name = ?, email = ?, phone = ?, position = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+contactColumns,
		in.Name, in.Email, in.Phone, in.Position, nowTimestamp(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Error updating contact: %v", err)
		return nil, storage("contact update", err)
	}
	return &contact, nil
}

// DeleteContact removes a contact. Interactions referencing it survive with
// their contact_id nulled by the schema's ON DELETE SET NULL.
func (s *Store) DeleteContact(ctx context.Context, id int64) (*models.DeleteAck, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var deletedID int64
	err := s.db.GetContext(ctx, &deletedID,
		`DELETE FROM contacts WHERE id = ? RETURNING id`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Error deleting contact: %v", err)
		return nil, storage("contact delete", err)
	}
	return &models.DeleteAck{ID: deletedID, Message: "Contact deleted successfully"}, nil
}
