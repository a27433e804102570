package store

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"pocket-crm/internal/logger"
)

// Store holds the entity stores, the tag reconciler and the search engine
// over one SQLite handle. Plain entity writes are single statements; the
// interaction write path wraps its multi-step work in one transaction.
type Store struct {
	db  *sqlx.DB
	log logger.Logger
}

func New(db *sqlx.DB, log logger.Logger) *Store {
	return &Store{db: db, log: log}
}

var validate = validator.New()

// validateInput maps validator failures onto the ValidationError taxonomy.
func validateInput(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "oneof" {
			return &ValidationError{
				Field:   fe.Field(),
				Message: "Valid type is required (school, trust, or organization)",
			}
		}
		return &ValidationError{Field: fe.Field(), Message: fe.Field() + " is required"}
	}
	return &ValidationError{Message: "invalid payload"}
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
