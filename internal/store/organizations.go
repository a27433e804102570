package store

import (
	"context"
	"database/sql"
	"errors"

	"pocket-crm/internal/models"
)

const organizationColumns = `id, name, type, address, website, created_at, updated_at`

// CreateOrganization persists a new organization and returns the full row.
// The type must be one of school, trust or organization.
func (s *Store) CreateOrganization(ctx context.Context, in models.OrganizationInput) (*models.Organization, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var org models.Organization
	err := s.db.GetContext(ctx, &org,
		`INSERT INTO organizations (name, type, address, website) VALUES (?, ?, ?, ?)
		 RETURNING `+organizationColumns,
		in.Name, in.Type, in.Address, in.Website)
	if err != nil {
		s.log.Error("Error inserting organization: %v", err)
		return nil, storage("organization insert", err)
	}
	return &org, nil
}

// GetOrganization retrieves a single organization by id.
func (s *Store) GetOrganization(ctx context.Context, id int64) (*models.Organization, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var org models.Organization
	err := s.db.GetContext(ctx, &org,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Error querying organization: %v", err)
		return nil, storage("organization lookup", err)
	}
	return &org, nil
}

// ListOrganizations returns all organizations ordered by name.
func (s *Store) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs := []models.Organization{}
	err := s.db.SelectContext(ctx, &orgs,
		`SELECT `+organizationColumns+` FROM organizations ORDER BY name`)
	if err != nil {
		s.log.Error("Error querying organizations: %v", err)
		return nil, storage("organization list", err)
	}
	return orgs, nil
}

// UpdateOrganization full-replaces every mutable field and refreshes
// updated_at.
func (s *Store) UpdateOrganization(ctx context.Context, id int64, in models.OrganizationInput) (*models.Organization, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var org models.Organization
	err := s.db.GetContext(ctx, &org,
		`UPDATE organizations SET name = ?, type = ?, address = ?, website = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+organizationColumns,
		in.Name, in.Type, in.Address, in.Website, nowTimestamp(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Error updating organization: %v", err)
		return nil, storage("organization update", err)
	}
	return &org, nil
}

// DeleteOrganization removes an organization; interactions referencing it
// keep existing with organization_id nulled.
func (s *Store) DeleteOrganization(ctx context.Context, id int64) (*models.DeleteAck, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var deletedID int64
	err := s.db.GetContext(ctx, &deletedID,
		`DELETE FROM organizations WHERE id = ? RETURNING id`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Error deleting organization: %v", err)
		return nil, storage("organization delete", err)
	}
	return &models.DeleteAck{ID: deletedID, Message: "Organization deleted successfully"}, nil
}
