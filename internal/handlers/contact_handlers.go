package handlers

import (
	"encoding/json"
	"net/http"

	"pocket-crm/internal/models"
	"pocket-crm/internal/utils"
)

// CreateContact handles the creation of a new contact.
func (c *CRMHandlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	var in models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	contact, err := c.Store.CreateContact(r.Context(), in)
	if err != nil {
		c.handleStoreError(w, err, "Contact")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, contact)
}

// GetContact retrieves a single contact by ID.
func (c *CRMHandlers) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	contact, err := c.Store.GetContact(r.Context(), id)
	if err != nil {
		c.handleStoreError(w, err, "Contact")
		return
	}
	utils.RespondJSON(w, http.StatusOK, contact)
}

// ListContacts retrieves all contacts, ordered by name.
func (c *CRMHandlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.Store.ListContacts(r.Context())
	if err != nil {
		c.handleStoreError(w, err, "Contact")
		return
	}
	utils.RespondJSON(w, http.StatusOK, contacts)
}

// UpdateContact updates an existing contact.
func (c *CRMHandlers) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	var in models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	contact, err := c.Store.UpdateContact(r.Context(), id, in)
	if err != nil {
		c.handleStoreError(w, err, "Contact")
		return
	}
	utils.RespondJSON(w, http.StatusOK, contact)
}

// DeleteContact deletes a contact.
func (c *CRMHandlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	ack, err := c.Store.DeleteContact(r.Context(), id)
	if err != nil {
		c.handleStoreError(w, err, "Contact")
		return
	}
	utils.RespondJSON(w, http.StatusOK, ack)
}
