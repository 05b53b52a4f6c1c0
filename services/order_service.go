package services

import (
	"errors"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"
	"github.com/Nitin6404/sryzen-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusNotifier is told about committed status changes. The websocket
// tracking hub implements it; tests plug in a recorder.
type StatusNotifier interface {
	OrderStatusChanged(orderID uint, status entity.OrderStatus)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository

	Notifier StatusNotifier // optional
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo}
}

type CreateOrderIn struct {
	RestaurantID    uint   `json:"restaurantId" binding:"required"`
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
}

// Create converts the user's active cart into an order. The cart is
// re-read inside the transaction and every line is attached with an
// at-most-once guard, so a line can never end up on two orders and the
// stored total always matches the attached set.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*entity.Order, error) {
	method, err := entity.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	ok, err := s.RestRepo.Exists(in.RestaurantID)
	if err != nil {
		return nil, apperr.Internal("check restaurant", err)
	}
	if !ok {
		return nil, apperr.NotFound("restaurant not found")
	}

	var order *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.ActiveItemsTx(tx, userID)
		if err != nil {
			return apperr.Internal("load cart", err)
		}
		if len(items) == 0 {
			return apperr.InvalidState("cart is empty")
		}

		// Snapshot prices from the cart, never the live catalog.
		total := decimal.Zero
		itemIDs := make([]uint, 0, len(items))
		for _, it := range items {
			total = total.Add(it.Price)
			itemIDs = append(itemIDs, it.ID)
		}

		order = &entity.Order{
			UserID:          userID,
			RestaurantID:    in.RestaurantID,
			TotalAmount:     total,
			Status:          entity.OrderPending,
			DeliveryAddress: in.DeliveryAddress,
			PaymentStatus:   entity.PaymentPending,
			PaymentMethod:   method,
		}
		if err := s.Repo.Create(tx, order); err != nil {
			return apperr.Internal("create order", err)
		}

		affected, err := s.CartRepo.AttachToOrder(tx, userID, itemIDs, order.ID)
		if err != nil {
			return apperr.Internal("attach cart items", err)
		}
		if affected != int64(len(itemIDs)) {
			// A concurrent request changed the cart between the read
			// and the attach; roll the whole order back.
			return apperr.InvalidState("cart changed during checkout")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetByID(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal("load order", err)
	}
	return o, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	orders, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, apperr.Internal("list orders", err)
	}
	return orders, nil
}

type OrderDetail struct {
	Order *entity.Order     `json:"order"`
	Items []entity.CartItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal("load order", err)
	}
	items, err := s.Repo.Items(o.ID)
	if err != nil {
		return nil, apperr.Internal("load order items", err)
	}
	return &OrderDetail{Order: o, Items: items}, nil
}
