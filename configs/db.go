package configs

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.PaymentMethod{},
	)
}
