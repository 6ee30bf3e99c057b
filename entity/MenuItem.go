package entity

import (
	"gorm.io/gorm"
)

// MenuItem has no country column of its own: its country is always the
// owning restaurant's country.
type MenuItem struct {
	gorm.Model
	Name  string  `json:"name"`
	Price float64 `json:"price"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload when the country is needed
}
