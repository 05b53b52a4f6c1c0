package services

import (
	"encoding/json"
	"testing"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"
	"github.com/Nitin6404/sryzen-backend/repository"

	"github.com/shopspring/decimal"
)

func newAdminSvc(f *fixture) *AdminService {
	return NewAdminService(
		f.db,
		repository.NewUserRepository(f.db),
		repository.NewRestaurantRepository(f.db),
		repository.NewOrderRepository(f.db),
	)
}

func TestAdminDashboard(t *testing.T) {
	f := newFixture(t)
	if _, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: f.pizza.ID, Quantity: 2}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	f.checkout(t)

	stats, err := newAdminSvc(f).Dashboard()
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.TotalUsers != 1 || stats.TotalRestaurants != 1 || stats.TotalOrders != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1",
			stats.TotalUsers, stats.TotalRestaurants, stats.TotalOrders)
	}
	if !stats.TotalRevenue.Equal(decimal.NewFromInt(20)) {
		t.Errorf("revenue = %s, want 20", stats.TotalRevenue)
	}
	if stats.OrdersByStatus[entity.OrderPending] != 1 {
		t.Errorf("pending count = %d, want 1", stats.OrdersByStatus[entity.OrderPending])
	}
	if len(stats.DailyRevenue) != 1 {
		t.Errorf("daily revenue has %d buckets, want 1", len(stats.DailyRevenue))
	}
}

func TestAdminListOrdersStatusFilter(t *testing.T) {
	f := newFixture(t)
	if _, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: f.pizza.ID, Quantity: 1}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	f.checkout(t)

	svc := newAdminSvc(f)

	out, err := svc.ListOrders(1, 10, "pending")
	if err != nil {
		t.Fatalf("ListOrders returned error: %v", err)
	}
	if out.Total != 1 {
		t.Errorf("total = %d, want 1", out.Total)
	}

	out, err = svc.ListOrders(1, 10, "delivered")
	if err != nil {
		t.Fatalf("ListOrders returned error: %v", err)
	}
	if out.Total != 0 {
		t.Errorf("total = %d, want 0", out.Total)
	}

	if _, err := svc.ListOrders(1, 10, "bogus"); !apperr.IsValidation(err) {
		t.Errorf("ListOrders(bogus status) error = %v, want ValidationError", err)
	}
}

func TestAdminDeleteOrderOverride(t *testing.T) {
	f := newFixture(t)
	if _, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: f.pizza.ID, Quantity: 1}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	order := f.checkout(t)

	svc := newAdminSvc(f)
	if err := svc.DeleteOrder(order.ID); err != nil {
		t.Fatalf("DeleteOrder returned error: %v", err)
	}
	if err := svc.DeleteOrder(order.ID); !apperr.IsNotFound(err) {
		t.Errorf("DeleteOrder(twice) error = %v, want NotFound", err)
	}

	// Attached lines go with the order.
	var lines int64
	if err := f.db.Model(&entity.CartItem{}).Where("order_id = ?", order.ID).Count(&lines).Error; err != nil {
		t.Fatalf("count lines: %v", err)
	}
	if lines != 0 {
		t.Errorf("order still has %d lines after delete, want 0", lines)
	}
}

func TestAdminUpdateUserProtectsCredentials(t *testing.T) {
	f := newFixture(t)
	svc := newAdminSvc(f)

	name := "Renamed"
	verified := true
	user, err := svc.UpdateUser(f.user.ID, &UpdateUserIn{Name: &name, IsVerified: &verified})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if user.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", user.Name)
	}
	if !user.IsVerified {
		t.Error("isVerified not updated")
	}

	// Reload from the database: email and password hash must survive an
	// admin update byte for byte, no matter what the request carried.
	// A tampered hash would also break bcrypt login.
	var stored entity.User
	if err := f.db.First(&stored, f.user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Email != f.user.Email {
		t.Errorf("email changed to %q, want %q untouched", stored.Email, f.user.Email)
	}
	if stored.Password != f.user.Password {
		t.Error("password changed through admin update")
	}
}

func TestAdminUpdateUserIgnoresForeignKeys(t *testing.T) {
	f := newFixture(t)
	svc := newAdminSvc(f)

	// A request body can spell column names any way it likes; only the
	// allow-listed fields bind, so Email/PASSWORD variants never reach
	// the database.
	var in UpdateUserIn
	body := []byte(`{"Email":"evil@example.com","PASSWORD":"hijacked","name":"Kept"}`)
	if err := json.Unmarshal(body, &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := svc.UpdateUser(f.user.ID, &in); err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}

	var stored entity.User
	if err := f.db.First(&stored, f.user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Email != f.user.Email {
		t.Errorf("email = %q, want %q", stored.Email, f.user.Email)
	}
	if stored.Password != f.user.Password {
		t.Error("password overwritten by non-allow-listed field")
	}
	if stored.Name != "Kept" {
		t.Errorf("name = %q, want Kept", stored.Name)
	}
}

func TestAdminUpdateUserRejectsUnknownRole(t *testing.T) {
	f := newFixture(t)
	role := "superuser"
	if _, err := newAdminSvc(f).UpdateUser(f.user.ID, &UpdateUserIn{Role: &role}); !apperr.IsValidation(err) {
		t.Errorf("UpdateUser(role=superuser) error = %v, want ValidationError", err)
	}
}
