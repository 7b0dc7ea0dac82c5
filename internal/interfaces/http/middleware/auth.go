package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/onlyfix/admin/internal/shared/logger"
	"github.com/onlyfix/admin/internal/shared/utils"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyToken  = "token"
)

// TokenResolver maps an opaque bearer token to the user it was issued for.
type TokenResolver interface {
	ResolveToken(token string) (userID int, ok bool)
}

type AuthMiddleware struct {
	tokens TokenResolver
	logger logger.Interface
}

func NewAuthMiddleware(tokens TokenResolver, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth rejects requests without a known bearer token with 401
// {"message": "Unauthenticated."}.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		userID, ok := m.tokens.ResolveToken(token)
		if !ok {
			m.logger.Debugw("unknown bearer token", "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyToken, token)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
