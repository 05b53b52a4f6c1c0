package ws

import (
	"testing"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTrackTestHub(t *testing.T) (*TrackHub, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
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
	return NewTrackHub(repository.NewOrderRepository(db)), db
}

func TestCanTrack(t *testing.T) {
	hub, db := newTrackTestHub(t)

	rest := entity.Restaurant{Name: "Testaurant"}
	if err := db.Create(&rest).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	order := entity.Order{
		UserID:          1,
		RestaurantID:    rest.ID,
		TotalAmount:     decimal.NewFromInt(10),
		DeliveryAddress: "1 Test St",
		PaymentMethod:   entity.PayCash,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	tests := []struct {
		name    string
		userID  uint
		role    string
		orderID uint
		want    bool
	}{
		{"owner", 1, "user", order.ID, true},
		{"other user", 2, "user", order.ID, false},
		{"admin", 9, "admin", order.ID, true},
		{"missing order", 1, "user", order.ID + 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hub.CanTrack(tt.userID, tt.role, tt.orderID)
			if err != nil {
				t.Fatalf("CanTrack returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CanTrack(%d, %q, %d) = %v, want %v", tt.userID, tt.role, tt.orderID, got, tt.want)
			}
		})
	}
}
