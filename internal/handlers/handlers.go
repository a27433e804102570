package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"

	"pocket-crm/internal/logger"
	"pocket-crm/internal/sessionstore"
	"pocket-crm/internal/store"
	"pocket-crm/internal/utils"
)

// CRMHandlers bundles the dependencies shared by every HTTP handler.
type CRMHandlers struct {
	DB           *sqlx.DB
	Store        *store.Store
	Log          logger.Logger
	Sessions     *sessionstore.BuntDBSessionStore
	PasswordHash string
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// handleStoreError maps the store error taxonomy onto HTTP status codes.
// Internal errors are logged here and never leak query details to the caller.
func (c *CRMHandlers) handleStoreError(w http.ResponseWriter, err error, entity string) {
	var verr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrInvalidID):
		utils.RespondError(w, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, store.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, store.ErrInvalidQuery):
		utils.RespondError(w, http.StatusBadRequest, "Search query is required")
	case errors.As(err, &verr):
		utils.RespondError(w, http.StatusBadRequest, verr.Message)
	default:
		c.Log.Error("%s request failed: %v", entity, err)
		utils.RespondError(w, http.StatusInternalServerError, "Database error")
	}
}
