package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

// filterTagNames trims each name and drops entries that are empty after
// trimming. The reconciler itself does not re-validate its input.
func filterTagNames(names []string) []string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		filtered = append(filtered, name)
	}
	return filtered
}

// linkTags ensures each distinct name in tagNames maps to exactly one
// association row for the interaction: look up the tag by exact name,
// create it if absent, then insert the link. Duplicate names are skipped via
// a seen set. Returns the applied names in first-seen order.
func (s *Store) linkTags(ctx context.Context, tx *sqlx.Tx, interactionID int64, tagNames []string) ([]string, error) {
	applied := make([]string, 0, len(tagNames))
	seen := make(map[string]struct{}, len(tagNames))
	for _, name := range tagNames {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		tagID, err := s.lookupOrCreateTag(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO interaction_tags (interaction_id, tag_id) VALUES (?, ?)`,
			interactionID, tagID); err != nil {
			s.log.Error("Error linking tag %q: %v", name, err)
			return nil, storage("interaction tag insert", err)
		}
		applied = append(applied, name)
	}
	return applied, nil
}

// replaceTags deletes all existing association rows for the interaction and
// rebuilds them from tagNames (full-replace semantics).
func (s *Store) replaceTags(ctx context.Context, tx *sqlx.Tx, interactionID int64, tagNames []string) ([]string, error) {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM interaction_tags WHERE interaction_id = ?`, interactionID); err != nil {
		s.log.Error("Error clearing tag links: %v", err)
		return nil, storage("interaction tag delete", err)
	}
	return s.linkTags(ctx, tx, interactionID, tagNames)
}

// lookupOrCreateTag resolves a tag name to its id, inserting a new tag row on
// first use. tags.name is UNIQUE, so losing a create race to a concurrent
// writer surfaces as a conflict; the name is then re-looked-up instead of
// treated as a failure.
func (s *Store) lookupOrCreateTag(ctx context.Context, tx *sqlx.Tx, name string) (int64, error) {
	var tagID int64
	err := tx.GetContext(ctx, &tagID, `SELECT id FROM tags WHERE name = ?`, name)
	if err == nil {
		return tagID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.log.Error("Error looking up tag %q: %v", name, err)
		return 0, storage("tag lookup", err)
	}

	err = tx.GetContext(ctx, &tagID,
		`INSERT INTO tags (name) VALUES (?) ON CONFLICT(name) DO NOTHING RETURNING id`, name)
	if err == nil {
		return tagID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.log.Error("Error inserting tag %q: %v", name, err)
		return 0, storage("tag insert", err)
	}

	// Another writer created the tag between lookup and insert.
	if err := tx.GetContext(ctx, &tagID, `SELECT id FROM tags WHERE name = ?`, name); err != nil {
		s.log.Error("Error re-looking up tag %q: %v", name, err)
		return 0, storage("tag lookup", err)
	}
	return tagID, nil
}

// interactionTags reads the current tag-name sequence for an interaction.
func interactionTags(ctx context.Context, q sqlx.QueryerContext, interactionID int64) ([]string, error) {
	tags := []string{}
	err := sqlx.SelectContext(ctx, q, &tags,
		`SELECT t.name
		 FROM tags t
		 JOIN interaction_tags it ON t.id = it.tag_id
		 WHERE it.interaction_id = ?`, interactionID)
	if err != nil {
		return nil, storage("tag list", err)
	}
	return tags, nil
}
