package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_observatory/internal/auth"
	"github.com/shenikar/crime_observatory/internal/config"
	"github.com/shenikar/crime_observatory/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	identityKey = "identity"
	triggerKey  = "trigger"

	TriggerAPI  = "api"
	TriggerCron = "cron"
)

// CredentialChecker проверяет токен по политике доступа
type CredentialChecker interface {
	Check(ctx context.Context, credential string, policy auth.Policy) (auth.Identity, error)
}

// bearerToken извлекает токен из заголовка Authorization: Bearer
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

// RequirePolicy - middleware доступа по роли из bearer токена.
// 401 без токена или с невалидным токеном, 403 со списком допустимых ролей.
func RequirePolicy(gate CredentialChecker, policy auth.Policy, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := gate.Check(c.Request.Context(), bearerToken(c), policy)
		if err != nil {
			abortWithAuthError(c, policy, err, log)
			return
		}
		c.Set(identityKey, identity)
		c.Set(triggerKey, TriggerAPI)
		c.Next()
	}
}

// APIKeyOrPolicy пропускает служебные вызовы по X-API-Key (cron), иначе проверяет роль
func APIKeyOrPolicy(cfg *config.Config, gate CredentialChecker, policy auth.Policy, log *logrus.Logger) gin.HandlerFunc {
	byRole := RequirePolicy(gate, policy, log)
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			byRole(c)
			return
		}
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				c.Set(triggerKey, TriggerCron)
				c.Next()
				return
			}
		}
		log.WithField("policy", policy.Name).Warn("Invalid API key provided")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
	}
}

func abortWithAuthError(c *gin.Context, policy auth.Policy, err error, log *logrus.Logger) {
	entry := log.WithFields(logrus.Fields{
		"policy": policy.Name,
		"path":   c.FullPath(),
	})

	var denied *auth.AccessDeniedError
	switch {
	case errors.As(err, &denied):
		entry.WithField("role", denied.Role.String()).Warn("Access denied")
		c.AbortWithStatusJSON(http.StatusForbidden, AccessDeniedResponse{
			Error:        denied.Error(),
			AllowedRoles: denied.Allowed,
		})
	case errors.Is(err, auth.ErrMissingCredential):
		entry.Debug("Credential missing")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "credential required"})
	default:
		entry.WithError(err).Warn("Credential rejected")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credential"})
	}
}

// MetricsMiddleware учитывает каждый запрос по шаблону маршрута
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordAPIRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
