package entity

import (
	"gorm.io/gorm"
)

// PaymentMethod types are an open string set: CREDIT_CARD, DEBIT_CARD, UPI, CASH, ...
type PaymentMethod struct {
	gorm.Model
	Type string `gorm:"not null" json:"type"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
