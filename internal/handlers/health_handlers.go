package handlers

import (
	"net/http"

	"pocket-crm/internal/utils"
)

func (c *CRMHandlers) Hello(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, "OK")
}

func (c *CRMHandlers) DBPing(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.PingContext(r.Context()); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, "OK")
}
