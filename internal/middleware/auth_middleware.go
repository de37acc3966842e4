package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danandika/mhs-api/internal/app/models/dto"
	"github.com/danandika/mhs-api/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextRecordID   = "recordID"
	ContextRecordName = "recordName"
)

// AuthMiddleware validates bearer tokens on protected routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth checks the Authorization header for a valid token. Tokens are
// stateless: only signature and expiry are checked, nothing is looked up.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewError(http.StatusUnauthorized, c.Request.Method, "authorization header missing"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewError(http.StatusUnauthorized, c.Request.Method, "invalid token format"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewError(http.StatusUnauthorized, c.Request.Method, message))
			return
		}

		c.Set(ContextRecordID, claims.ID)
		c.Set(ContextRecordName, claims.Name)
		c.Next()
	}
}
