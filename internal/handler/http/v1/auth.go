package v1

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/election_monitoring/internal/config"
	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу.
// Пустой список API_KEYS отключает проверку.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(cfg.APIKeys) == 0 {
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Message: "API key required"})
			return
		}

		if !slices.Contains(cfg.APIKeys, apiKey) {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Message: "Invalid API key"})
			return
		}

		c.Next()
	}
}

// SessionReader отдаёт пользователя текущей сессии
type SessionReader interface {
	CurrentUser() *models.User
}

// RequireRole пропускает запрос, только если роль пользователя сессии входит в roles
func RequireRole(sessions SessionReader, log *logrus.Logger, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := sessions.CurrentUser()
		if user == nil {
			log.WithField("path", c.FullPath()).Warn("Request without active session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Message: "Login required."})
			return
		}
		if !slices.Contains(roles, user.Role) {
			log.WithFields(logrus.Fields{
				"path":    c.FullPath(),
				"user_id": user.ID,
				"role":    user.Role,
			}).Warn("Role not allowed")
			c.AbortWithStatusJSON(http.StatusForbidden, Response{Message: "Your role cannot perform this action."})
			return
		}
		c.Next()
	}
}
