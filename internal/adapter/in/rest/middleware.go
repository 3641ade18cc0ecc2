package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"yatube/internal/auth"
	"yatube/internal/service"
	"yatube/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger puts a request-scoped slog logger into the request context
// and logs each completed request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(requestIDHeader, reqID)

		log := logger.FromContext(c.Request.Context()).With(
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))

		c.Next()

		attrs := []any{"status", c.Writer.Status(), "latency", time.Since(start)}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.Last().Err)
		}
		log.Info("request completed", attrs...)
	}
}

// JWTAuth resolves the bearer token into the calling user.
func JWTAuth(tokens *auth.TokenManager, users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detailNoCredentials})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authorization header must contain two space-delimited values",
				"code":   "bad_authorization_header",
			})
			return
		}

		claims, err := tokens.ParseAccess(parts[1])
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}

		u, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if errors.Is(err, service.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "User not found", "code": "user_not_found"})
			return
		}
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, u)
		c.Next()
	}
}
