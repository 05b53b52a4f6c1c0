package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"
	"github.com/Nitin6404/sryzen-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AdminService is the bulk query and override facade. It sits outside
// the order lifecycle: nothing here bypasses the status state machine
// except the explicit order delete override.
type AdminService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	RestRepo  *repository.RestaurantRepository
	OrderRepo *repository.OrderRepository
}

func NewAdminService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	restRepo *repository.RestaurantRepository,
	orderRepo *repository.OrderRepository,
) *AdminService {
	return &AdminService{DB: db, UserRepo: userRepo, RestRepo: restRepo, OrderRepo: orderRepo}
}

type DashboardStats struct {
	TotalUsers       int64                        `json:"totalUsers"`
	TotalRestaurants int64                        `json:"totalRestaurants"`
	TotalOrders      int64                        `json:"totalOrders"`
	TotalRevenue     decimal.Decimal              `json:"totalRevenue"`
	RecentOrders     []entity.Order               `json:"recentOrders"`
	OrdersByStatus   map[entity.OrderStatus]int64 `json:"ordersByStatus"`
	DailyRevenue     []repository.DailyRevenue    `json:"dailyRevenue"`
}

func (s *AdminService) Dashboard() (*DashboardStats, error) {
	users, err := s.UserRepo.Count()
	if err != nil {
		return nil, apperr.Internal("count users", err)
	}
	restaurants, err := s.RestRepo.Count()
	if err != nil {
		return nil, apperr.Internal("count restaurants", err)
	}
	orders, err := s.OrderRepo.Count()
	if err != nil {
		return nil, apperr.Internal("count orders", err)
	}
	revenue, err := s.OrderRepo.TotalRevenue()
	if err != nil {
		return nil, apperr.Internal("sum revenue", err)
	}
	recent, err := s.OrderRepo.Recent(5)
	if err != nil {
		return nil, apperr.Internal("recent orders", err)
	}
	byStatus, err := s.OrderRepo.CountByStatus()
	if err != nil {
		return nil, apperr.Internal("orders by status", err)
	}
	daily, err := s.OrderRepo.RevenueSince(time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, apperr.Internal("daily revenue", err)
	}

	return &DashboardStats{
		TotalUsers:       users,
		TotalRestaurants: restaurants,
		TotalOrders:      orders,
		TotalRevenue:     revenue,
		RecentOrders:     recent,
		OrdersByStatus:   byStatus,
		DailyRevenue:     daily,
	}, nil
}

type UserListOut struct {
	Users []entity.User `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (s *AdminService) ListUsers(page, limit int, search string) (*UserListOut, error) {
	users, total, err := s.UserRepo.List(page, limit, search)
	if err != nil {
		return nil, apperr.Internal("list users", err)
	}
	return &UserListOut{Users: users, Total: total, Page: page, Limit: limit}, nil
}

type UpdateUserIn struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	IsVerified *bool   `json:"isVerified"`
}

// UpdateUser changes profile fields. Email and password are immutable
// through the admin path: only the columns named here can be written,
// whatever else the request body carries.
func (s *AdminService) UpdateUser(id uint, in *UpdateUserIn) (*entity.User, error) {
	if _, err := s.UserRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal("load user", err)
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Role != nil {
		role := *in.Role
		if role != "user" && role != "admin" {
			return nil, apperr.Validation("role must be user or admin")
		}
		updates["role"] = role
	}
	if in.IsVerified != nil {
		updates["is_verified"] = *in.IsVerified
	}
	if len(updates) > 0 {
		if err := s.UserRepo.Update(id, updates); err != nil {
			return nil, apperr.Internal("update user", err)
		}
	}
	u, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("load user", err)
	}
	return u, nil
}

func (s *AdminService) DeleteUser(id uint) error {
	affected, err := s.UserRepo.Delete(id)
	if err != nil {
		return apperr.Internal("delete user", err)
	}
	if affected == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

type OrderListOut struct {
	Orders []entity.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

func (s *AdminService) ListOrders(page, limit int, status string) (*OrderListOut, error) {
	var st entity.OrderStatus
	if status != "" {
		parsed, err := entity.ParseOrderStatus(status)
		if err != nil {
			return nil, apperr.Validation(err.Error())
		}
		st = parsed
	}

	orders, total, err := s.OrderRepo.List(page, limit, st)
	if err != nil {
		return nil, apperr.Internal("list orders", err)
	}
	return &OrderListOut{Orders: orders, Total: total, Page: page, Limit: limit}, nil
}

// DeleteOrder is the admin override; normal flow never deletes orders.
func (s *AdminService) DeleteOrder(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.OrderRepo.Delete(tx, id)
		if err != nil {
			return apperr.Internal("delete order", err)
		}
		if affected == 0 {
			return apperr.NotFound("order not found")
		}
		return nil
	})
}
