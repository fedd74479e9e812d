package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/ardnsyh/emergency_dispatch_system/internal/config"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
)

const (
	ctxUserID   = "user_id"
	ctxUserRole = "user_role"
)

// JWTAuthMiddleware - middleware аутентификации по Bearer-токену.
// Кладет user_id и user_role из claims в контекст запроса.
func JWTAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Status: false, Message: "authorization required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			log.WithError(err).Warn("Invalid JWT presented")
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Status: false, Message: "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Status: false, Message: "invalid token"})
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Status: false, Message: "invalid token"})
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ctxUserID, int64(userID))
		c.Set(ctxUserRole, role)
		c.Next()
	}
}

// RequireRole пропускает только пользователей с указанной ролью
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxUserRole) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Status: false, Message: "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// callerID возвращает user_id аутентифицированного пользователя
func callerID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}
