package utils

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

func SetCurrentUser(c *gin.Context, u *entity.User) {
	c.Set(currentUserKey, u)
}

// CurrentUser returns the principal the auth middleware loaded, or nil when
// the route is unauthenticated.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}
