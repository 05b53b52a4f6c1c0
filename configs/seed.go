package configs

import (
	"log"

	"github.com/Nitin6404/sryzen-backend/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap admin account once.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:      cfg.AdminEmail,
		Password:   string(hash),
		Name:       "Admin",
		Role:       "admin",
		IsVerified: true,
	}
	return db.Create(&admin).Error
}

// SeedDemoData inserts a couple of restaurants with menus so a fresh
// install has something to order from.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pizzaPlace := entity.Restaurant{
		Name: "Pizza Paradise", Address: "123 Main St", Phone: "555-0101", Email: "contact@pizzaparadise.com",
	}
	curryHouse := entity.Restaurant{
		Name: "Curry House", Address: "456 Spice Ave", Phone: "555-0102", Email: "hello@curryhouse.com",
	}
	if err := db.Create(&pizzaPlace).Error; err != nil {
		return err
	}
	if err := db.Create(&curryHouse).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{RestaurantID: pizzaPlace.ID, Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: decimal.NewFromFloat(9.99), Category: "Pizza"},
		{RestaurantID: pizzaPlace.ID, Name: "Pepperoni Pizza", Description: "Pepperoni and cheese", Price: decimal.NewFromFloat(11.49), Category: "Pizza"},
		{RestaurantID: pizzaPlace.ID, Name: "Garlic Bread", Description: "With herb butter", Price: decimal.NewFromFloat(4.50), Category: "Sides"},
		{RestaurantID: curryHouse.ID, Name: "Butter Chicken", Description: "Creamy tomato curry", Price: decimal.NewFromFloat(12.99), Category: "Curry"},
		{RestaurantID: curryHouse.ID, Name: "Paneer Tikka", Description: "Grilled cottage cheese", Price: decimal.NewFromFloat(10.50), Category: "Starters"},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("demo restaurants and menus seeded")
	return nil
}
