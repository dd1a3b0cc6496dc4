package middlewares

import (
	"net/http"
	"strings"

	"bookit/controllers"
	"bookit/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token into an Actor. With no roles
// listed any authenticated user passes.
func AuthMiddleware(secret string, requiredRoles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Authorization header is missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		actor, err := services.ParseToken(tokenString, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid token"})
			c.Abort()
			return
		}

		hasRole := len(requiredRoles) == 0
		for _, role := range requiredRoles {
			if actor.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Role is not allowed to access this resource"})
			c.Abort()
			return
		}

		controllers.SetCurrentActor(c, actor)
		c.Next()
	}
}
