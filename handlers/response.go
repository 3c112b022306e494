// Package handlers contains the gin handlers for the menu and auth routes.
package handlers

import (
	"errors"
	"net/http"

	"restaurant-menu-api/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondError maps err onto a status code and a message that is safe to
// show callers. Unexpected errors are logged in full under a random
// reference and only the reference is returned.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var tenantErr *apperr.TenantNotFoundError
	switch {
	case errors.As(err, &tenantErr):
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found for restaurant"})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperr.ErrInvalidTenant):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrInvalidTenant.Error()})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrInvalidCredentials.Error()})
	case errors.Is(err, apperr.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrMissingToken.Error()})
	case errors.Is(err, apperr.ErrInvalidToken):
		c.JSON(http.StatusForbidden, gin.H{"error": apperr.ErrInvalidToken.Error()})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrConflict.Error()})
	default:
		ref := uuid.NewString()
		logger.Error("request failed",
			zap.String("reference", ref),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal server error",
			"reference": ref,
		})
	}
}

func respondBadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
