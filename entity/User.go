package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:user" json:"role"`

	IsVerified        bool   `json:"isVerified"`
	VerificationToken string `json:"-"`

	ResetPasswordToken   string     `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	// Relations — preload only when needed
	Orders    []Order    `json:"-"`
	CartItems []CartItem `json:"-"`
}
