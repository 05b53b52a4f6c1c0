package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	DeliveryAddress string          `gorm:"not null" json:"deliveryAddress"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null;default:pending" json:"paymentStatus"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(20);not null" json:"paymentMethod"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload for listings and invoices

	// Cart lines attached at checkout; preload only for detail/invoice
	Items []CartItem `gorm:"foreignKey:OrderID" json:"-"`
}
