package services

import (
	"errors"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"

	"gorm.io/gorm"
)

// UpdateStatus moves an order along the lifecycle state machine. The
// transition table is checked first, then the row is flipped with a
// compare-and-swap on the current status so a concurrent update can't
// slip an order through two transitions at once.
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*entity.Order, error) {
	next, err := entity.ParseOrderStatus(newStatus)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal("load order", err)
	}

	if o.Status.Terminal() {
		return nil, apperr.InvalidTransition("order is in terminal state " + string(o.Status))
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, apperr.InvalidTransition("cannot move order from " + string(o.Status) + " to " + string(next))
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return apperr.Internal("update status", err)
		}
		if affected == 0 {
			return apperr.InvalidTransition("order status changed concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = next
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(o.ID, next)
	}
	return o, nil
}
