package middleware

import (
	"net/http"
	"strings"

	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, http.StatusUnauthorized, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RequireRoles gates a route to the given roles. It must run after
// AuthMiddleware so the role claim is present on the context.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user_role")
		if !exists {
			utils.Error(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		role, ok := value.(models.UserRole)
		if ok {
			for _, allowed := range roles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}

		utils.Error(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}

func CurrentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

func CurrentUserRole(c *gin.Context) models.UserRole {
	if value, exists := c.Get("user_role"); exists {
		if role, ok := value.(models.UserRole); ok {
			return role
		}
	}
	return ""
}
