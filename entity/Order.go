package entity

import (
	"gorm.io/gorm"
)

// OrderStatus is the closed order lifecycle. PENDING is the only non-terminal
// state; COMPLETED and CANCELLED are terminal.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	gorm.Model
	Status OrderStatus `gorm:"not null;default:PENDING" json:"status"`

	// Country is snapshotted from the creating user and never follows the
	// user afterwards.
	Country string `gorm:"index;not null" json:"country"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for user detail

	Items []OrderItem `json:"items"`
}
