package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Address string `gorm:"not null" json:"address"`
	Phone   string `gorm:"not null" json:"phone"`
	Email   string `gorm:"not null" json:"email"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
