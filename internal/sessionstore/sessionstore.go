package sessionstore

import (
	"errors"
	"time"

	"github.com/tidwall/buntdb"
)

// SessionStore tracks the ids of issued login tokens so that logout can
// revoke a token before its JWT expiry.
type SessionStore interface {
	SaveSession(tokenID string, expiresAt time.Time) error
	SessionExists(tokenID string) (bool, error)
	DeleteSession(tokenID string) error
}

type BuntDBSessionStore struct {
	DB *buntdb.DB
}

// NewBuntDBSessionStore opens the buntdb database at the given path.
func NewBuntDBSessionStore(path string) (*BuntDBSessionStore, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	return &BuntDBSessionStore{DB: db}, nil
}

func sessionKey(tokenID string) string {
	return "session:" + tokenID
}

// SaveSession records a token id with a TTL matching the token expiry.
func (s *BuntDBSessionStore) SaveSession(tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt).Round(time.Second)
	return s.DB.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(sessionKey(tokenID), "1", &buntdb.SetOptions{
			Expires: true,
			TTL:     ttl,
		})
		return err
	})
}

// SessionExists reports whether the token id is still live.
func (s *BuntDBSessionStore) SessionExists(tokenID string) (bool, error) {
	var exists bool
	err := s.DB.View(func(tx *buntdb.Tx) error {
		_, err := tx.Get(sessionKey(tokenID))
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		return nil
	})
	return exists, err
}

// DeleteSession revokes a token id.
func (s *BuntDBSessionStore) DeleteSession(tokenID string) error {
	return s.DB.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(sessionKey(tokenID))
		if err != nil && !errors.Is(err, buntdb.ErrNotFound) {
			return err
		}
		return nil
	})
}

func (s *BuntDBSessionStore) Close() error {
	return s.DB.Close()
}
