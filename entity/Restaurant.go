package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `json:"name"`
	Country string `gorm:"index;not null" json:"country"`

	MenuItems []MenuItem `json:"menuItems"`
}
