package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roypriyanshu02/graphic-walker-app/internal/metrics"
	"github.com/roypriyanshu02/graphic-walker-app/internal/utils"
)

// JWTAuthMiddleware validates the bearer token and stores the parsed
// claims in the request context for handlers.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			metrics.AuthErrorCounter.WithLabelValues("missing_token").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header required"})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			metrics.AuthErrorCounter.WithLabelValues("malformed_header").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header must be a bearer token"})
			return
		}

		claims, err := utils.ValidateJWT(secret, tokenString)
		if err != nil {
			metrics.AuthErrorCounter.WithLabelValues("invalid_token").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
