package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     Role   `gorm:"not null;default:MEMBER" json:"role"`
	Country  string `gorm:"not null" json:"country"`

	// Relations — preload only when needed
	Orders         []Order         `json:"-"`
	PaymentMethods []PaymentMethod `json:"-"`
}
