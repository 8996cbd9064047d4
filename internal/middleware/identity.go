package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogql-be/internal/identity"
	"blogql-be/internal/jwt"
)

// IdentityMiddleware builds the per-request identity context before resolver
// dispatch. A missing Authorization header yields an anonymous context, not an
// error: anonymous access is a valid state, rejected later by the individual
// resolvers that require authentication. A token that fails verification is
// also treated as anonymous (documented policy); set rejectInvalid to refuse
// such requests with 401 instead.
func IdentityMiddleware(jwtService *jwt.JWTService, rejectInvalid bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if token == "" {
			c.Next()
			return
		}

		userID, err := jwtService.ValidateToken(token)
		if err != nil {
			if rejectInvalid {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid or expired token",
				})
				c.Abort()
				return
			}
			// Verification failure falls through to anonymous
			c.Next()
			return
		}

		ctx := identity.NewContext(c.Request.Context(), &identity.Identity{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
