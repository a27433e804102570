package handlers

import (
	"encoding/json"
	"net/http"

	"pocket-crm/internal/models"
	"pocket-crm/internal/utils"
)

// CreateInteraction handles the creation of a new interaction, including its
// tag associations.
func (c *CRMHandlers) CreateInteraction(w http.ResponseWriter, r *http.Request) {
	var in models.InteractionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	interaction, err := c.Store.CreateInteraction(r.Context(), in)
	if err != nil {
		c.handleStoreError(w, err, "Interaction")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, interaction)
}

// GetInteraction retrieves a single interaction by ID, enriched with contact
// and organization display names and the current tag list.
func (c *CRMHandlers) GetInteraction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid interaction ID")
		return
	}

	interaction, err := c.Store.GetInteraction(r.Context(), id)
	if err != nil {
		c.handleStoreError(w, err, "Interaction")
		return
	}
	utils.RespondJSON(w, http.StatusOK, interaction)
}

// ListInteractions retrieves all interactions, most recent first.
func (c *CRMHandlers) ListInteractions(w http.ResponseWriter, r *http.Request) {
	interactions, err := c.Store.ListInteractions(r.Context())
	if err != nil {
		c.handleStoreError(w, err, "Interaction")
		return
	}
	utils.RespondJSON(w, http.StatusOK, interactions)
}

// UpdateInteraction updates an existing interaction. Omitting the tags field
// leaves existing associations untouched; supplying it (even empty)
// full-replaces them.
func (c *CRMHandlers) UpdateInteraction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid interaction ID")
		return
	}

	var in models.InteractionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	interaction, err := c.Store.UpdateInteraction(r.Context(), id, in)
	if err != nil {
		c.handleStoreError(w, err, "Interaction")
		return
	}
	utils.RespondJSON(w, http.StatusOK, interaction)
}

// DeleteInteraction deletes an interaction together with its tag
// associations.
func (c *CRMHandlers) DeleteInteraction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid interaction ID")
		return
	}

	ack, err := c.Store.DeleteInteraction(r.Context(), id)
	if err != nil {
		c.handleStoreError(w, err, "Interaction")
		return
	}
	utils.RespondJSON(w, http.StatusOK, ack)
}
