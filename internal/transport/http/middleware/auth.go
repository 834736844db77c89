package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danabekov/course-catalog/internal/domain"
	"github.com/danabekov/course-catalog/internal/metrics"
	"github.com/gin-gonic/gin"
)

// errNotAuthorized is the one body every authentication failure returns.
// Missing header, unknown email and wrong password must be
// indistinguishable to the client; the reason goes to the log and the
// auth_attempts_total metric only.
const errNotAuthorized = "Not Authorized"

const identityKey = "identity"

// Authenticator is the subset of UserUsecase the middleware needs.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// Auth verifies HTTP Basic credentials against the user store and attaches
// the resolved user to the request. Credentials are re-verified on every
// request; nothing is cached across requests.
func Auth(users Authenticator, logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "auth")

	return func(c *gin.Context) {
		email, secret, ok := c.Request.BasicAuth()
		if !ok {
			logger.WarnContext(c.Request.Context(), "auth header missing or not basic")
			metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthResultNoCredentials).Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errNotAuthorized})
			return
		}

		user, err := users.Authenticate(c.Request.Context(), email, secret)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUnknownUser):
				logger.WarnContext(c.Request.Context(), "authentication failed: user not found", "email", email)
				metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthResultUnknownUser).Inc()
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errNotAuthorized})
			case errors.Is(err, domain.ErrBadPassword):
				logger.WarnContext(c.Request.Context(), "authentication failed: password mismatch", "email", email)
				metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthResultBadPassword).Inc()
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errNotAuthorized})
			default:
				logger.ErrorContext(c.Request.Context(), "authenticate", "error", err)
				metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthResultError).Inc()
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			return
		}

		metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthResultOK).Inc()
		c.Set(identityKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity resolved by Auth for this request, or nil
// on routes that did not pass through Auth.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
