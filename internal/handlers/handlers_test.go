package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocket-crm/internal/database"
	"pocket-crm/internal/handlers"
	"pocket-crm/internal/logger"
	"pocket-crm/internal/models"
	"pocket-crm/internal/store"
)

// apiEnvelope mirrors utils.APIResponse with a raw data payload.
type apiEnvelope struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// newTestRouter wires the CRM handlers over a fresh database, without the
// auth middleware.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	manager := database.NewDBManager(filepath.Join(t.TempDir(), "pocket-crm.db"))
	manager.Log = logger.NewConsoleLogger(io.Discard, "", logger.LogLevelFatal)
	require.NoError(t, manager.Connect())
	t.Cleanup(func() { manager.Close() })
	require.NoError(t, manager.ApplyMigrations())

	h := &handlers.CRMHandlers{
		DB:    manager.DB,
		Store: store.New(manager.DB, manager.Log),
		Log:   manager.Log,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/contacts", h.CreateContact).Methods("POST")
	r.HandleFunc("/api/contacts", h.ListContacts).Methods("GET")
	r.HandleFunc("/api/contacts/{id}", h.GetContact).Methods("GET")
	r.HandleFunc("/api/contacts/{id}", h.UpdateContact).Methods("PUT")
	r.HandleFunc("/api/contacts/{id}", h.DeleteContact).Methods("DELETE")
	r.HandleFunc("/api/interactions", h.CreateInteraction).Methods("POST")
	r.HandleFunc("/api/interactions/{id}", h.GetInteraction).Methods("GET")
	r.HandleFunc("/api/search", h.Search).Methods("GET")
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var envelope apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestContactEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec, envelope := doJSON(t, r, http.MethodPost, "/api/contacts", map[string]string{"name": "Jane Doe"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Contact
	require.NoError(t, json.Unmarshal(envelope.Data, &created))
	assert.Equal(t, "Jane Doe", created.Name)
	require.NotZero(t, created.ID)

	rec, _ = doJSON(t, r, http.MethodPost, "/api/contacts", map[string]string{"email": "no-name@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, r, http.MethodGet, "/api/contacts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, envelope = doJSON(t, r, http.MethodGet, "/api/contacts/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Contact not found", envelope.Error)

	rec, _ = doJSON(t, r, http.MethodDelete, "/api/contacts/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, r, http.MethodDelete, "/api/contacts/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInteractionEndpoint_WithTags(t *testing.T) {
	r := newTestRouter(t)

	rec, envelope := doJSON(t, r, http.MethodPost, "/api/interactions", map[string]interface{}{
		"title": "Intro call",
		"tags":  []string{"intro", "follow-up"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Interaction
	require.NoError(t, json.Unmarshal(envelope.Data, &created))
	assert.ElementsMatch(t, []string{"intro", "follow-up"}, created.Tags)

	rec, envelope = doJSON(t, r, http.MethodGet, "/api/interactions/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Interaction
	require.NoError(t, json.Unmarshal(envelope.Data, &got))
	assert.ElementsMatch(t, []string{"intro", "follow-up"}, got.Tags)
}

func TestSearchEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec, envelope := doJSON(t, r, http.MethodGet, "/api/search?q=", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Search query is required", envelope.Error)

	_, _ = doJSON(t, r, http.MethodPost, "/api/interactions", map[string]interface{}{
		"title": "Budget meeting",
		"tags":  []string{"urgent"},
	})

	rec, envelope = doJSON(t, r, http.MethodGet, "/api/search?q=urgent", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &resp))
	require.Len(t, resp.Results.Interactions, 1)
	assert.Equal(t, "tag", resp.Results.Interactions[0].ResultType)
	assert.Equal(t, 1, resp.Count.Total)
}
