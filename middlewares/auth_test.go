package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/configs"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*gin.Engine, *gorm.DB, *configs.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

	r := gin.New()
	r.GET("/whoami", AuthMiddleware(db, cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": utils.CurrentUser(c).Username})
	})
	r.GET("/admin-only", AuthMiddleware(db, cfg, entity.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, db, cfg
}

func request(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r, _, _ := setupAuthTest(t)

	assert.Equal(t, http.StatusUnauthorized, request(r, "/whoami", "").Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r, _, _ := setupAuthTest(t)

	assert.Equal(t, http.StatusUnauthorized, request(r, "/whoami", "not-a-jwt").Code)
}

func TestAuthMiddleware_LoadsPrincipal(t *testing.T) {
	r, db, cfg := setupAuthTest(t)

	u := &entity.User{Username: "thor", Role: entity.RoleMember, Country: "INDIA"}
	require.NoError(t, db.Create(u).Error)

	token, err := utils.GenerateToken(u, cfg.JWTSecret, cfg.JWTTTL)
	require.NoError(t, err)

	w := request(r, "/whoami", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "thor")
}

func TestAuthMiddleware_RoleGate(t *testing.T) {
	r, db, cfg := setupAuthTest(t)

	member := &entity.User{Username: "thor", Role: entity.RoleMember, Country: "INDIA"}
	admin := &entity.User{Username: "fury", Role: entity.RoleAdmin, Country: entity.CountryAll}
	require.NoError(t, db.Create(member).Error)
	require.NoError(t, db.Create(admin).Error)

	memberToken, err := utils.GenerateToken(member, cfg.JWTSecret, cfg.JWTTTL)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(admin, cfg.JWTSecret, cfg.JWTTTL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, request(r, "/admin-only", memberToken).Code)
	assert.Equal(t, http.StatusOK, request(r, "/admin-only", adminToken).Code)
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	r, db, cfg := setupAuthTest(t)

	u := &entity.User{Username: "ghost", Role: entity.RoleMember, Country: "INDIA"}
	require.NoError(t, db.Create(u).Error)

	token, err := utils.GenerateToken(u, cfg.JWTSecret, cfg.JWTTTL)
	require.NoError(t, err)
	require.NoError(t, db.Delete(u).Error)

	// a token for a removed user no longer authenticates
	assert.Equal(t, http.StatusUnauthorized, request(r, "/whoami", token).Code)
}
