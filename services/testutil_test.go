package services

import (
	"fmt"
	"testing"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test. The named DSN keeps
// the schema visible across the connections gorm may open.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.PaymentMethod{},
	))
	return db
}

func mkUser(t *testing.T, db *gorm.DB, username string, role entity.Role, country string) *entity.User {
	t.Helper()
	u := &entity.User{Name: username, Username: username, Password: "x", Role: role, Country: country}
	require.NoError(t, db.Create(u).Error)
	return u
}

func mkRestaurant(t *testing.T, db *gorm.DB, name, country string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: name, Country: country}
	require.NoError(t, db.Create(r).Error)
	return r
}

func mkMenuItem(t *testing.T, db *gorm.DB, rest *entity.Restaurant, name string, price float64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{RestaurantID: rest.ID, Name: name, Price: price}
	require.NoError(t, db.Create(m).Error)
	return m
}

func mkOrder(t *testing.T, db *gorm.DB, owner *entity.User, status entity.OrderStatus) *entity.Order {
	t.Helper()
	o := &entity.Order{UserID: owner.ID, Status: status, Country: owner.Country}
	require.NoError(t, db.Create(o).Error)
	return o
}

func mkPaymentMethod(t *testing.T, db *gorm.DB, owner *entity.User, pmType string) *entity.PaymentMethod {
	t.Helper()
	pm := &entity.PaymentMethod{UserID: owner.ID, Type: pmType}
	require.NoError(t, db.Create(pm).Error)
	return pm
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
