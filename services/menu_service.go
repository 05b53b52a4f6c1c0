package services

import (
	"errors"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"
	"github.com/Nitin6404/sryzen-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

type MenuItemIn struct {
	RestaurantID uint            `json:"restaurantId" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Category     string          `json:"category" binding:"required"`
}

func (s *MenuService) List(restaurantID uint) ([]entity.MenuItem, error) {
	items, err := s.Repo.List(restaurantID)
	if err != nil {
		return nil, apperr.Internal("list menu items", err)
	}
	return items, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, apperr.Internal("load menu item", err)
	}
	return m, nil
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, apperr.Validation("price must not be negative")
	}
	ok, err := s.RestRepo.Exists(in.RestaurantID)
	if err != nil {
		return nil, apperr.Internal("check restaurant", err)
	}
	if !ok {
		return nil, apperr.NotFound("restaurant not found")
	}

	m := &entity.MenuItem{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, apperr.Internal("create menu item", err)
	}
	return m, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, apperr.Validation("price must not be negative")
	}
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	m.Name = in.Name
	m.Description = in.Description
	m.Price = in.Price
	m.Category = in.Category
	if err := s.Repo.Update(m); err != nil {
		return nil, apperr.Internal("update menu item", err)
	}
	return m, nil
}

func (s *MenuService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return apperr.Internal("delete menu item", err)
	}
	if affected == 0 {
		return apperr.NotFound("menu item not found")
	}
	return nil
}
