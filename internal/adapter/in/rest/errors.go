package rest

import (
	"errors"
	"net/http"

	"yatube/internal/auth"
	"yatube/internal/service"
	"yatube/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	detailNotFound      = "Not found."
	detailForbidden     = "You do not have permission to perform this action."
	detailNoCredentials = "Authentication credentials were not provided."
	detailBadAccount    = "No active account found with the given credentials"
	detailInternal      = "internal error"
	codeTokenNotValid   = "token_not_valid"
)

// writeError is the single place where errors become HTTP responses.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	case errors.Is(err, service.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": detailNotFound})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": detailForbidden})
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": auth.ErrInvalidToken.Error(), "code": codeTokenNotValid})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": detailNoCredentials})
	default:
		logger.FromContext(c.Request.Context()).Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": detailInternal})
	}
}
