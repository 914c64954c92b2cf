package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key the verified user id is stored under.
const userIDKey = "userId"

// userIdentity gates protected routes: it requires a well-formed
// "Bearer <token>" Authorization header and a token that verifies against
// the server-held key. The verified user id is attached to the context.
func (h *Handler) userIdentity(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
			"code":  codeUnauthorized,
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
			"code":  codeUnauthorized,
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
			"code":  codeUnauthorized,
		})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}
