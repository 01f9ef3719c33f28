package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dialogue-personas/internal/service"
)

const adminClaimsKey = "admin_claims"

// AdminAuthMiddleware valida tokens de administrador y guarda claims en el contexto.
func AdminAuthMiddleware(auth *service.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "admin auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := auth.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// GetAdminClaims obtiene claims de administrador desde el contexto.
func GetAdminClaims(c *gin.Context) (service.AdminClaims, bool) {
	val, ok := c.Get(adminClaimsKey)
	if !ok {
		return service.AdminClaims{}, false
	}
	claims, ok := val.(service.AdminClaims)
	return claims, ok
}
