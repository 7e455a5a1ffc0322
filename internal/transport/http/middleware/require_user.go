package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aibekm/item-service/internal/domain"
	"github.com/aibekm/item-service/internal/repository"
)

// RequireUser runs after Auth. It resolves the token subject to a stored
// user and puts it in the context as "user". Tokens are never invalidated
// retroactively, so a subject that no longer exists is simply unauthorized.
func RequireUser(users repository.UserRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if _, err := uuid.Parse(userID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUserNotFound):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			case errors.Is(err, context.DeadlineExceeded):
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
			default:
				logger.ErrorContext(c.Request.Context(), "resolve user", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
