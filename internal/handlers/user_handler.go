package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/doctors-portal/api/internal/logger"
	"github.com/doctors-portal/api/internal/models"
)

// UpsertUser is the first-login flow: the profile is stored (or refreshed)
// under the email in the path and a fresh identity token is issued for it.
func (h *Handler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Store.UpsertUser(c.Request.Context(), email, user)
	if err != nil {
		logger.Get().Error("Failed to upsert user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	tok, err := h.Tokens.Issue(email)
	if err != nil {
		logger.Get().Error("Failed to issue token", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "token": tok})
}

// GetUsers lists all user records.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Store.Users(c.Request.Context())
	if err != nil {
		logger.Get().Error("Failed to retrieve users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the user stored under the email has the admin
// role. A missing record reads as non-admin.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	user, err := h.Store.UserByEmail(c.Request.Context(), email)
	if err != nil {
		logger.Get().Error("Failed to look up user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user != nil && user.IsAdmin()})
}

// MakeAdmin grants the admin role to the target email. The admin gate on the
// route means only an existing admin can reach this.
func (h *Handler) MakeAdmin(c *gin.Context) {
	email := c.Param("email")
	result, err := h.Store.SetUserRole(c.Request.Context(), email, "admin")
	if err != nil {
		logger.Get().Error("Failed to set admin role", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	c.JSON(http.StatusOK, result)
}
