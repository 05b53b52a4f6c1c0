package repository

import (
	"github.com/Nitin6404/sryzen-backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ActiveItems returns the user's pending lines (order_id IS NULL) with
// the menu item preloaded for name/price display.
func (r *CartRepository) ActiveItems(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ? AND order_id IS NULL", userID).
		Preload("MenuItem").
		Order("id").
		Find(&items).Error
	return items, err
}

// ActiveItemsTx re-reads the pending lines inside a checkout
// transaction so the attached set matches the computed total.
func (r *CartRepository) ActiveItemsTx(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("user_id = ? AND order_id IS NULL", userID).
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *CartRepository) FindForUser(itemID, userID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Create(item *entity.CartItem) error {
	return r.DB.Create(item).Error
}

func (r *CartRepository) Save(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) Delete(tx *gorm.DB, itemID, userID uint) (int64, error) {
	res := tx.Where("id = ? AND user_id = ?", itemID, userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}

// AttachToOrder assigns the order id to the given lines. The
// order_id IS NULL guard makes attachment at-most-once: lines removed
// or attached by a concurrent request reduce the affected count, which
// the caller compares against len(itemIDs) to abort the transaction.
func (r *CartRepository) AttachToOrder(tx *gorm.DB, userID uint, itemIDs []uint, orderID uint) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id IN ? AND user_id = ? AND order_id IS NULL", itemIDs, userID).
		Update("order_id", orderID)
	return res.RowsAffected, res.Error
}
