package services

import (
	"testing"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"
)

type notifierRecorder struct {
	orderIDs []uint
	statuses []entity.OrderStatus
}

func (n *notifierRecorder) OrderStatusChanged(orderID uint, status entity.OrderStatus) {
	n.orderIDs = append(n.orderIDs, orderID)
	n.statuses = append(n.statuses, status)
}

func (f *fixture) orderInStatus(t *testing.T, status entity.OrderStatus) *entity.Order {
	t.Helper()
	if _, err := f.cartSvc.Add(f.user.ID, &AddToCartIn{MenuItemID: f.pizza.ID, Quantity: 1}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	order := f.checkout(t)
	if status != entity.OrderPending {
		if err := f.db.Model(order).Update("status", status).Error; err != nil {
			t.Fatalf("force status: %v", err)
		}
		order.Status = status
	}
	return order
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     entity.OrderStatus
		to       string
		wantKind apperr.Kind
	}{
		{"pending to confirmed", entity.OrderPending, "confirmed", 0},
		{"pending to cancelled", entity.OrderPending, "cancelled", 0},
		{"confirmed to preparing", entity.OrderConfirmed, "preparing", 0},
		{"preparing to ready", entity.OrderPreparing, "ready", 0},
		{"ready to delivered", entity.OrderReady, "delivered", 0},
		{"pending skips to ready", entity.OrderPending, "ready", apperr.KindInvalidTransition},
		{"preparing back to pending", entity.OrderPreparing, "pending", apperr.KindInvalidTransition},
		{"delivered is terminal", entity.OrderDelivered, "pending", apperr.KindInvalidTransition},
		{"cancelled is terminal", entity.OrderCancelled, "confirmed", apperr.KindInvalidTransition},
		{"unknown status", entity.OrderPending, "shipped", apperr.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			order := f.orderInStatus(t, tt.from)

			updated, err := f.orderSvc.UpdateStatus(order.ID, tt.to)
			if tt.wantKind == 0 {
				if err != nil {
					t.Fatalf("UpdateStatus returned error: %v", err)
				}
				if string(updated.Status) != tt.to {
					t.Errorf("status = %s, want %s", updated.Status, tt.to)
				}
				return
			}
			if apperr.KindOf(err) != tt.wantKind {
				t.Errorf("UpdateStatus error = %v, want kind %d", err, tt.wantKind)
			}
		})
	}
}

// Delivered is terminal: the order cannot be reopened.
func TestUpdateStatusTerminalGuardPersists(t *testing.T) {
	f := newFixture(t)
	order := f.orderInStatus(t, entity.OrderReady)

	if _, err := f.orderSvc.UpdateStatus(order.ID, "delivered"); err != nil {
		t.Fatalf("UpdateStatus(delivered) returned error: %v", err)
	}
	if _, err := f.orderSvc.UpdateStatus(order.ID, "pending"); !apperr.IsInvalidTransition(err) {
		t.Fatalf("UpdateStatus(pending after delivered) error = %v, want InvalidTransition", err)
	}

	reloaded, err := f.orderSvc.GetByID(order.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if reloaded.Status != entity.OrderDelivered {
		t.Errorf("status = %s, want delivered", reloaded.Status)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	f := newFixture(t)

	if _, err := f.orderSvc.UpdateStatus(404, "confirmed"); !apperr.IsNotFound(err) {
		t.Errorf("UpdateStatus(missing order) error = %v, want NotFound", err)
	}
}

func TestUpdateStatusNotifies(t *testing.T) {
	f := newFixture(t)
	rec := &notifierRecorder{}
	f.orderSvc.Notifier = rec

	order := f.orderInStatus(t, entity.OrderPending)
	if _, err := f.orderSvc.UpdateStatus(order.ID, "confirmed"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if len(rec.statuses) != 1 || rec.statuses[0] != entity.OrderConfirmed || rec.orderIDs[0] != order.ID {
		t.Errorf("notifier saw %v/%v, want order %d confirmed", rec.orderIDs, rec.statuses, order.ID)
	}
}
