package repository

import (
	"time"

	"github.com/Nitin6404/sryzen-backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Restaurant").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Restaurant").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Items(orderID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("order_id = ?", orderID).
		Preload("MenuItem").
		Order("id").
		Find(&items).Error
	return items, err
}

// UpdateStatusGuard flips the status only when the row is still in the
// expected state. A zero affected count means the order moved under us.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// GetWithInvoiceData loads everything the invoice needs in one shot.
func (r *OrderRepository) GetWithInvoiceData(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Restaurant").
		Preload("Items").
		Preload("Items.MenuItem").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ---------------- Admin queries ----------------

func (r *OrderRepository) List(page, limit int, status entity.OrderStatus) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 10
	}

	q := r.DB.Model(&entity.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Preload("User").Preload("Restaurant").
		Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error
	return orders, total, err
}

// Delete removes the order and its attached lines. Admin override only.
func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) (int64, error) {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.CartItem{}).Error; err != nil {
		return 0, err
	}
	res := tx.Delete(&entity.Order{}, orderID)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Count(&n).Error
	return n, err
}

func (r *OrderRepository) TotalRevenue() (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *OrderRepository) CountByStatus() (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status entity.OrderStatus
		N      int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

func (r *OrderRepository) RevenueSince(since time.Time) ([]DailyRevenue, error) {
	var rows []DailyRevenue
	err := r.DB.Model(&entity.Order{}).
		Select("DATE(created_at) AS date, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) Recent(limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("User").Preload("Restaurant").
		Order("id DESC").Limit(limit).
		Find(&orders).Error
	return orders, err
}
