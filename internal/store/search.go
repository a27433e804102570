package store

import (
	"context"
	"strings"

	"pocket-crm/internal/models"
)

// Search fans out four independent substring queries (contacts,
// organizations, interactions, tag-linked interactions) and merges the two
// interaction result sets, first-seen wins, deduplicated by interaction id.
// Matching is substring and case-insensitive per SQLite's LIKE default; there
// is no tokenization or ranking.
func (s *Store) Search(ctx context.Context, query string) (*models.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidQuery
	}
	pattern := "%" + query + "%"

	contacts := []models.ContactHit{}
	err := s.db.SelectContext(ctx, &contacts,
		`SELECT id, name, email, phone, position, 'contact' AS type
		 FROM contacts
		 WHERE name LIKE ? OR email LIKE ? OR phone LIKE ? OR position LIKE ?`,
		pattern, pattern, pattern, pattern)
	if err != nil {
		s.log.Error("Error searching contacts: %v", err)
		return nil, storage("contact search", err)
	}

	organizations := []models.OrganizationHit{}
	err = s.db.SelectContext(ctx, &organizations,
		`SELECT id, name, type, address, website, 'organization' AS result_type
		 FROM organizations
		 WHERE name LIKE ? OR address LIKE ? OR website LIKE ?`,
		pattern, pattern, pattern)
	if err != nil {
		s.log.Error("Error searching organizations: %v", err)
		return nil, storage("organization search", err)
	}

	direct := []models.InteractionHit{}
	err = s.db.SelectContext(ctx, &direct,
		`SELECT
			i.id, i.title, i.date, i.notes, i.actions,
			c.name AS contact_name,
			o.name AS organization_name,
			'interaction' AS result_type
		 FROM interactions i
		 LEFT JOIN contacts c ON i.contact_id = c.id
		 LEFT JOIN organizations o ON i.organization_id = o.id
		 WHERE i.title LIKE ? OR i.notes LIKE ? OR i.actions LIKE ?
		 OR c.name LIKE ? OR o.name LIKE ?`,
		pattern, pattern, pattern, pattern, pattern)
	if err != nil {
		s.log.Error("Error searching interactions: %v", err)
		return nil, storage("interaction search", err)
	}

	tagged := []models.InteractionHit{}
	err = s.db.SelectContext(ctx, &tagged,
		`SELECT
			i.id, i.title, i.date, i.notes, i.actions,
			c.name AS contact_name,
			o.name AS organization_name,
			t.name AS tag_name,
			'tag' AS result_type
		 FROM interactions i
		 JOIN interaction_tags it ON i.id = it.interaction_id
		 JOIN tags t ON it.tag_id = t.id
		 LEFT JOIN contacts c ON i.contact_id = c.id
		 LEFT JOIN organizations o ON i.organization_id = o.id
		 WHERE t.name LIKE ?`,
		pattern)
	if err != nil {
		s.log.Error("Error searching tags: %v", err)
		return nil, storage("tag search", err)
	}

	// Ordered set keyed by interaction id: direct matches first, then tag
	// matches, later duplicates dropped rather than merged.
	seen := make(map[int64]struct{}, len(direct)+len(tagged))
	interactions := []models.InteractionHit{}
	appendHits := func(hits []models.InteractionHit) {
		for _, hit := range hits {
			if _, dup := seen[hit.ID]; dup {
				continue
			}
			seen[hit.ID] = struct{}{}
			interactions = append(interactions, hit)
		}
	}
	appendHits(direct)
	appendHits(tagged)

	return &models.SearchResponse{
		Results: models.SearchResults{
			Contacts:      contacts,
			Organizations: organizations,
			Interactions:  interactions,
		},
		Count: models.SearchCount{
			Contacts:      len(contacts),
			Organizations: len(organizations),
			Interactions:  len(interactions),
			Total:         len(contacts) + len(organizations) + len(interactions),
		},
	}, nil
}
