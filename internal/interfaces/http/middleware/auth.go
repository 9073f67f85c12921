package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

const ContextKeyTrainerID = "trainer_id"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth authenticates the trainer from the access-token cookie, falling
// back to the Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}

			token = parts[1]
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(ContextKeyTrainerID, claims.TrainerID)

		c.Next()
	}
}

// TrainerID reads the authenticated trainer id from the request context.
func TrainerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextKeyTrainerID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
