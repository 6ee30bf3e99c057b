package repository

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// GET /restaurants (admin) → every restaurant with its menu
func (r *RestaurantRepository) ListAll() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Preload("MenuItems").Find(&out).Error
	return out, err
}

// GET /restaurants (non-admin) → restaurants of one country only
func (r *RestaurantRepository) ListByCountry(country string) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Preload("MenuItems").Where("country = ?", country).Find(&out).Error
	return out, err
}

// GET /restaurants/:id
func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("MenuItems").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindMenuItem loads a menu item together with its restaurant; the restaurant
// carries the country used by the residency check.
func (r *RestaurantRepository) FindMenuItem(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Restaurant").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
