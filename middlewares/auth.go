package middlewares

import (
	"fmt"
	"strings"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/configs"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/pkg/resp"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token, loads the principal from the
// database and (if requiredRoles is non-empty) enforces the role gate.
// The role gate runs before any resource is touched; residency checks happen
// later, inside the services, once the target row is loaded.
func AuthMiddleware(db *gorm.DB, cfg *configs.Config, requiredRoles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		// Reload the user so role/country reflect the database, not the
		// token snapshot.
		var user entity.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			resp.Unauthorized(c, "user no longer exists")
			c.Abort()
			return
		}

		utils.SetCurrentUser(c, &user)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "operation not permitted for your role")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
