package services

import (
	"errors"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"
	"github.com/Nitin6404/sryzen-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService owns the pending cart lines: adding, repricing, removal.
// Attached lines (those with an order id) are snapshots and rejected
// from every mutation here.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemIn struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartOut struct {
	Items    []entity.CartItem `json:"items"`
	Subtotal decimal.Decimal   `json:"subtotal"`
}

// Get returns only the active lines; lines already attached to an
// order never show up as "current cart".
func (s *CartService) Get(userID uint) (*CartOut, error) {
	items, err := s.CartRepo.ActiveItems(userID)
	if err != nil {
		return nil, apperr.Internal("load cart", err)
	}
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price)
	}
	return &CartOut{Items: items, Subtotal: subtotal}, nil
}

func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	if in.Quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	m, err := s.MenuRepo.FindByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, apperr.Internal("load menu item", err)
	}

	item := &entity.CartItem{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   in.Quantity,
		Price:      m.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
	if err := s.CartRepo.Create(item); err != nil {
		return nil, apperr.Internal("create cart item", err)
	}
	return item, nil
}

// Update reprices the line against the live catalog price, not the
// price captured at add time.
func (s *CartService) Update(userID, itemID uint, in *UpdateCartItemIn) (*entity.CartItem, error) {
	if in.Quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	item, err := s.CartRepo.FindForUser(itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cart item not found")
		}
		return nil, apperr.Internal("load cart item", err)
	}
	if item.Attached() {
		return nil, apperr.InvalidState("cart item already belongs to an order")
	}

	m, err := s.MenuRepo.FindByID(item.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, apperr.Internal("load menu item", err)
	}

	item.Quantity = in.Quantity
	item.Price = m.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Save(tx, item)
	})
	if err != nil {
		return nil, apperr.Internal("update cart item", err)
	}
	return item, nil
}

func (s *CartService) Remove(userID, itemID uint) error {
	item, err := s.CartRepo.FindForUser(itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("cart item not found")
		}
		return apperr.Internal("load cart item", err)
	}
	if item.Attached() {
		return apperr.InvalidState("cart item already belongs to an order")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.Delete(tx, itemID, userID)
		if err != nil {
			return apperr.Internal("remove cart item", err)
		}
		if affected == 0 {
			return apperr.NotFound("cart item not found")
		}
		return nil
	})
}

func (s *CartService) Clear(userID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearForUser(tx, userID)
	})
	if err != nil {
		return apperr.Internal("clear cart", err)
	}
	return nil
}
