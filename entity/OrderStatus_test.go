package entity

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderPreparing, false},
		{OrderConfirmed, OrderPreparing, true},
		{OrderConfirmed, OrderDelivered, false},
		{OrderPreparing, OrderReady, true},
		{OrderPreparing, OrderCancelled, true},
		{OrderReady, OrderDelivered, true},
		{OrderReady, OrderPending, false},
		{OrderDelivered, OrderPending, false},
		{OrderDelivered, OrderCancelled, false},
		{OrderCancelled, OrderPending, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, s := range []OrderStatus{OrderDelivered, OrderCancelled} {
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false, want true", s)
		}
	}
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderReady} {
		if s.Terminal() {
			t.Errorf("%s.Terminal() = true, want false", s)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	if _, err := ParseOrderStatus("preparing"); err != nil {
		t.Errorf("ParseOrderStatus(preparing) error = %v", err)
	}
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Error("ParseOrderStatus(shipped) error = nil, want error")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, m := range []string{"cash", "card", "upi"} {
		if _, err := ParsePaymentMethod(m); err != nil {
			t.Errorf("ParsePaymentMethod(%s) error = %v", m, err)
		}
	}
	if _, err := ParsePaymentMethod("cheque"); err == nil {
		t.Error("ParsePaymentMethod(cheque) error = nil, want error")
	}
}
