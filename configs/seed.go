package configs

import (
	"log"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemo loads the demo data set on first boot. It runs only while the
// users table is empty, so restarting the server never duplicates rows.
func SeedDemo() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("skip seeding: users already present")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []entity.User{
		{Name: "Nick Fury", Username: "fury", Role: entity.RoleAdmin, Country: entity.CountryAll},
		{Name: "Captain Marvel", Username: "marvel", Role: entity.RoleManager, Country: "INDIA"},
		{Name: "Captain America", Username: "america", Role: entity.RoleManager, Country: "AMERICA"},
		{Name: "Thanos", Username: "thanos", Role: entity.RoleMember, Country: "INDIA"},
		{Name: "Thor", Username: "thor", Role: entity.RoleMember, Country: "INDIA"},
		{Name: "Travis", Username: "travis", Role: entity.RoleMember, Country: "AMERICA"},
	}
	for i := range users {
		users[i].Password = string(hash)
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	restaurants := []entity.Restaurant{
		{Name: "Taj Mahal Delights", Country: "INDIA"},
		{Name: "Spice Route", Country: "INDIA"},
		{Name: "Liberty Burger", Country: "AMERICA"},
		{Name: "Empire Steakhouse", Country: "AMERICA"},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	menuItems := []entity.MenuItem{
		{RestaurantID: restaurants[0].ID, Name: "Butter Chicken", Price: 450.0},
		{RestaurantID: restaurants[0].ID, Name: "Naan", Price: 50.0},
		{RestaurantID: restaurants[1].ID, Name: "Biryani", Price: 350.0},
		{RestaurantID: restaurants[2].ID, Name: "Cheeseburger", Price: 12.0},
		{RestaurantID: restaurants[2].ID, Name: "Fries", Price: 4.0},
		{RestaurantID: restaurants[3].ID, Name: "T-Bone Steak", Price: 45.0},
	}
	if err := db.Create(&menuItems).Error; err != nil {
		return err
	}

	paymentMethods := []entity.PaymentMethod{
		{UserID: users[0].ID, Type: "CREDIT_CARD"},
		{UserID: users[1].ID, Type: "UPI"},
		{UserID: users[2].ID, Type: "DEBIT_CARD"},
		{UserID: users[3].ID, Type: "UPI"},
		{UserID: users[4].ID, Type: "CASH"},
		{UserID: users[5].ID, Type: "CREDIT_CARD"},
	}
	if err := db.Create(&paymentMethods).Error; err != nil {
		return err
	}

	log.Println("database seeded")
	return nil
}
