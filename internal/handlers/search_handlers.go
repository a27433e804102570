package handlers

import (
	"net/http"

	"pocket-crm/internal/utils"
)

// Search runs the cross-entity keyword search. The query comes from the `q`
// parameter and must be non-empty after trimming.
func (c *CRMHandlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := c.Store.Search(r.Context(), query)
	if err != nil {
		c.handleStoreError(w, err, "Search")
		return
	}
	utils.RespondJSON(w, http.StatusOK, results)
}
