package services

import (
	"testing"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// One connection keeps the in-memory database alive for the
	// whole test.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	db         *gorm.DB
	user       entity.User
	restaurant entity.Restaurant
	pizza      entity.MenuItem // 10.00
	soda       entity.MenuItem // 5.00

	cartSvc  *CartService
	orderSvc *OrderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{db: db}
	f.user = entity.User{Email: "user@example.com", Password: "x", Name: "Test User", Role: "user", IsVerified: true}
	if err := db.Create(&f.user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	f.restaurant = entity.Restaurant{Name: "Testaurant", Address: "1 Test St", Phone: "555-0100", Email: "t@t.com"}
	if err := db.Create(&f.restaurant).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}

	f.pizza = entity.MenuItem{RestaurantID: f.restaurant.ID, Name: "Pizza", Price: decimal.NewFromInt(10), Category: "Mains"}
	f.soda = entity.MenuItem{RestaurantID: f.restaurant.ID, Name: "Soda", Price: decimal.NewFromInt(5), Category: "Drinks"}
	if err := db.Create(&f.pizza).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	if err := db.Create(&f.soda).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}

	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	f.cartSvc = NewCartService(db, cartRepo, menuRepo)
	f.orderSvc = NewOrderService(db, orderRepo, cartRepo, restRepo)
	return f
}

func (f *fixture) checkout(t *testing.T) *entity.Order {
	t.Helper()
	order, err := f.orderSvc.Create(f.user.ID, &CreateOrderIn{
		RestaurantID:    f.restaurant.ID,
		DeliveryAddress: "42 Delivery Rd",
		PaymentMethod:   "cash",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	return order
}
