package store

import (
	"context"
	"database/sql"
	"errors"

	"pocket-crm/internal/models"
)

const interactionColumns = `id, title, date, notes, actions, contact_id, organization_id, created_at, updated_at`

const enrichedInteractionQuery = `
	SELECT
		i.id, i.title, i.date, i.notes, i.actions,
		i.contact_id, i.organization_id, i.created_at, i.updated_at,
		c.name AS contact_name,
		o.name AS organization_name,
		o.type AS organization_type
	FROM interactions i
	LEFT JOIN contacts c ON i.contact_id = c.id
	LEFT JOIN organizations o ON i.organization_id = o.id`

// CreateInteraction persists a new interaction and its tag associations in
// one transaction. The date defaults to the current timestamp when omitted.
func (s *Store) CreateInteraction(ctx context.Context, in models.InteractionInput) (*models.Interaction, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	date := in.Date
	if date == "" {
		date = nowTimestamp()
	}
	tagNames := []string{}
	if in.Tags != nil {
		tagNames = filterTagNames(*in.Tags)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storage("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	var interaction models.Interaction
	err = tx.GetContext(ctx, &interaction,
		`INSERT INTO interactions (title, date, notes, actions, contact_id, organization_id)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING `+interactionColumns,
		in.Title, date, in.Notes, in.Actions, in.ContactID, in.OrganizationID)
	if err != nil {
		s.log.Error("Error inserting interaction: %v", err)
		return nil, storage("interaction insert", err)
	}

	applied, err := s.linkTags(ctx, tx, interaction.ID, tagNames)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, storage("commit", err)
	}
	interaction.Tags = applied
	return &interaction, nil
}

// GetInteraction retrieves an interaction enriched with the linked contact's
// name, the organization's name and type, and its tag list.
func (s *Store) GetInteraction(ctx context.Context, id int64) (*models.Interaction, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var interaction models.Interaction
	err := s.db.GetContext(ctx, &interaction, enrichedInteractionQuery+` WHERE i.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Error querying interaction: %v", err)
		return nil, storage("interaction lookup", err)
	}

	tags, err := interactionTags(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	interaction.Tags = tags
	return &interaction, nil
}

// ListInteractions returns all interactions, most recent date first, each
// enriched the same way as GetInteraction.
func (s *Store) ListInteractions(ctx context.Context) ([]models.Interaction, error) {
	interactions := []models.Interaction{}
	err := s.db.SelectContext(ctx, &interactions, enrichedInteractionQuery+` ORDER BY i.date DESC`)
	if err != nil {
		s.log.Error("Error querying interactions: %v", err)
		return nil, storage("interaction list", err)
	}

	for idx := range interactions {
		tags, err := interactionTags(ctx, s.db, interactions[idx].ID)
		if err != nil {
			return nil, err
		}
		interactions[idx].Tags = tags
	}
	return interactions, nil
}

// UpdateInteraction full-replaces the interaction fields. Tags follow the
// partial-update escape hatch: a nil Tags pointer leaves the existing
// associations untouched, any present list (including empty) full-replaces
// them. Everything runs in one transaction.
func (s *Store) UpdateInteraction(ctx context.Context, id int64, in models.InteractionInput) (*models.Interaction, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	date := in.Date
	if date == "" {
		date = nowTimestamp()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storage("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	var interaction models.Interaction
	err = tx.GetContext(ctx, &interaction,
		`UPDATE interactions
		 SET title = ?, date = ?, notes = ?, actions = ?, contact_id = ?, organization_id = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+interactionColumns,
		in.Title, date, in.Notes, in.Actions, in.ContactID, in.OrganizationID, nowTimestamp(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Error updating interaction: %v", err)
		return nil, storage("interaction update", err)
	}

	var tags []string
	if in.Tags != nil {
		tags, err = s.replaceTags(ctx, tx, id, filterTagNames(*in.Tags))
	} else {
		tags, err = interactionTags(ctx, tx, id)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, storage("commit", err)
	}
	interaction.Tags = tags
	return &interaction, nil
}

// DeleteInteraction removes an interaction and all of its association rows in
// one transaction, so no orphaned links survive. Tag rows themselves are
// never deleted.
func (s *Store) DeleteInteraction(ctx context.Context, id int64) (*models.DeleteAck, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storage("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM interaction_tags WHERE interaction_id = ?`, id); err != nil {
		s.log.Error("Error deleting tag links: %v", err)
		return nil, storage("interaction tag delete", err)
	}

	var deletedID int64
	err = tx.GetContext(ctx, &deletedID,
		`DELETE FROM interactions WHERE id = ? RETURNING id`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Error deleting interaction: %v", err)
		return nil, storage("interaction delete", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storage("commit", err)
	}
	return &models.DeleteAck{ID: deletedID, Message: "Interaction deleted successfully"}, nil
}
