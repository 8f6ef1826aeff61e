package middleware

import (
	"net/http"

	"devconnect/internal/auth"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the designated identity-token header on every
// authenticated request.
const TokenHeader = "x-auth-token"

// ContextUserID is the gin context key the gate sets for handlers.
const ContextUserID = "user_id"

// AuthRequired extracts the identity token, verifies it and attaches the
// resolved user id to the request context. Missing and invalid tokens are
// both rejected with 401; the two invalid cases (bad signature, expired)
// are not distinguished to the client.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			return
		}
		claims, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserID reads the authenticated user id the gate stored on the context.
func UserID(c *gin.Context) uint64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(uint64)
	return userID
}
