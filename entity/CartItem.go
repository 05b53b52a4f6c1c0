package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is a single cart line. While OrderID is nil the line is
// part of the user's active cart and may be repriced or removed; once
// checkout assigns an OrderID the line is an immutable order snapshot.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	// Price = menu item price at add/update time × quantity.
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	OrderID *uint  `gorm:"index" json:"orderId"`
	Order   *Order `json:"-"`
}

// Attached reports whether the line already belongs to an order.
func (ci *CartItem) Attached() bool { return ci.OrderID != nil }
