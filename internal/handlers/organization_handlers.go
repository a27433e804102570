package handlers

import (
	"encoding/json"
	"net/http"

	"pocket-crm/internal/models"
	"pocket-crm/internal/utils"
)

// CreateOrganization handles the creation of a new organization.
func (c *CRMHandlers) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var in models.OrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := c.Store.CreateOrganization(r.Context(), in)
	if err != nil {
		c.handleStoreError(w, err, "Organization")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, org)
}

// GetOrganization retrieves a single organization by ID.
func (c *CRMHandlers) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	org, err := c.Store.GetOrganization(r.Context(), id)
	if err != nil {
		c.handleStoreError(w, err, "Organization")
		return
	}
	utils.RespondJSON(w, http.StatusOK, org)
}

// ListOrganizations retrieves all organizations, ordered by name.
func (c *CRMHandlers) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := c.Store.ListOrganizations(r.Context())
	if err != nil {
		c.handleStoreError(w, err, "Organization")
		return
	}
	utils.RespondJSON(w, http.StatusOK, orgs)
}

// UpdateOrganization updates an existing organization.
func (c *CRMHandlers) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var in models.OrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := c.Store.UpdateOrganization(r.Context(), id, in)
	if err != nil {
		c.handleStoreError(w, err, "Organization")
		return
	}
	utils.RespondJSON(w, http.StatusOK, org)
}

// DeleteOrganization deletes an organization.
func (c *CRMHandlers) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	ack, err := c.Store.DeleteOrganization(r.Context(), id)
	if err != nil {
		c.handleStoreError(w, err, "Organization")
		return
	}
	utils.RespondJSON(w, http.StatusOK, ack)
}
