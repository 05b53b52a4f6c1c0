package services

import (
	"testing"

	"github.com/Nitin6404/sryzen-backend/pkg/apperr"

	"github.com/shopspring/decimal"
)

func TestCartAdd(t *testing.T) {
	f := newFixture(t)

	item, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: f.pizza.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if !item.Price.Equal(decimal.NewFromInt(20)) {
		t.Errorf("line price = %s, want 20", item.Price)
	}
	if item.OrderID != nil {
		t.Errorf("new line has orderID %v, want nil", *item.OrderID)
	}

	cart, err := f.cartSvc.Get(f.user.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("cart has %d items, want 1", len(cart.Items))
	}
	if !cart.Subtotal.Equal(decimal.NewFromInt(20)) {
		t.Errorf("subtotal = %s, want 20", cart.Subtotal)
	}
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	f := newFixture(t)

	_, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: 9999, Quantity: 1})
	if !apperr.IsNotFound(err) {
		t.Errorf("Add(unknown item) error = %v, want NotFound", err)
	}
}

func TestCartUpdateRepricesAgainstCatalog(t *testing.T) {
	f := newFixture(t)

	item, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: f.pizza.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	// Reprice the catalog entry after the line was added.
	if err := f.db.Model(&f.pizza).Update("price", decimal.NewFromInt(12)).Error; err != nil {
		t.Fatalf("update catalog price: %v", err)
	}

	updated, err := f.cartSvc.Update(f.user.ID, item.ID, &UpdateCartItemIn{Quantity: 3})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated.Price.Equal(decimal.NewFromInt(36)) {
		t.Errorf("repriced line = %s, want 36 (live price 12 x 3)", updated.Price)
	}
}

func TestCartUpdateMissingLine(t *testing.T) {
	f := newFixture(t)

	_, err := f.cartSvc.Update(f.user.ID, 1234, &UpdateCartItemIn{Quantity: 2})
	if !apperr.IsNotFound(err) {
		t.Errorf("Update(missing line) error = %v, want NotFound", err)
	}
}

func TestCartMutationRejectedAfterCheckout(t *testing.T) {
	f := newFixture(t)

	item, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: f.pizza.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	f.checkout(t)

	if _, err := f.cartSvc.Update(f.user.ID, item.ID, &UpdateCartItemIn{Quantity: 5}); !apperr.IsInvalidState(err) {
		t.Errorf("Update(attached line) error = %v, want InvalidState", err)
	}
	if err := f.cartSvc.Remove(f.user.ID, item.ID); !apperr.IsInvalidState(err) {
		t.Errorf("Remove(attached line) error = %v, want InvalidState", err)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	f := newFixture(t)

	item, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: f.pizza.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: f.soda.ID, Quantity: 2}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := f.cartSvc.Remove(f.user.ID, item.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := f.cartSvc.Remove(f.user.ID, item.ID); !apperr.IsNotFound(err) {
		t.Errorf("Remove(twice) error = %v, want NotFound", err)
	}

	if err := f.cartSvc.Clear(f.user.ID); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	cart, err := f.cartSvc.Get(f.user.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("cart has %d items after clear, want 0", len(cart.Items))
	}
}
