package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pocket-crm/internal/models"
	"pocket-crm/internal/utils"
)

const sessionLifetime = 24 * time.Hour

// Login verifies the owner password against the configured bcrypt hash and
// issues a session JWT whose jti is recorded in the session store.
func (c *CRMHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if c.PasswordHash == "" {
		utils.RespondError(w, http.StatusNotFound, "Authentication is not configured")
		return
	}

	var payload models.LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(payload.Password)); err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	tokenID, err := utils.GenerateTokenID()
	if err != nil {
		c.Log.Error("Error generating token id: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate session token")
		return
	}

	expiresAt := time.Now().Add(sessionLifetime)
	token, err := utils.GenerateJWT(tokenID, expiresAt)
	if err != nil {
		c.Log.Error("Error generating JWT: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate session token")
		return
	}

	if err := c.Sessions.SaveSession(tokenID, expiresAt); err != nil {
		c.Log.Error("Error saving session: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to store session")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Login successful",
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout revokes the presented session token.
func (c *CRMHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
	if authHeader == "" || tokenString == authHeader {
		utils.RespondError(w, http.StatusUnauthorized, "Bearer token required")
		return
	}

	tokenID, err := utils.ParseJWT(tokenString)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if err := c.Sessions.DeleteSession(tokenID); err != nil {
		c.Log.Error("Error deleting session: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to revoke session")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
