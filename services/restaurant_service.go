package services

import (
	"errors"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"
	"github.com/Nitin6404/sryzen-backend/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type RestaurantIn struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
}

type RestaurantListOut struct {
	Restaurants []entity.Restaurant `json:"restaurants"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	Limit       int                 `json:"limit"`
}

func (s *RestaurantService) List(page, limit int, search string) (*RestaurantListOut, error) {
	restaurants, total, err := s.Repo.List(page, limit, search)
	if err != nil {
		return nil, apperr.Internal("list restaurants", err)
	}
	return &RestaurantListOut{Restaurants: restaurants, Total: total, Page: page, Limit: limit}, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	r, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, apperr.Internal("load restaurant", err)
	}
	return r, nil
}

func (s *RestaurantService) Create(in *RestaurantIn) (*entity.Restaurant, error) {
	r := &entity.Restaurant{Name: in.Name, Address: in.Address, Phone: in.Phone, Email: in.Email}
	if err := s.Repo.Create(r); err != nil {
		return nil, apperr.Internal("create restaurant", err)
	}
	return r, nil
}

func (s *RestaurantService) Update(id uint, in *RestaurantIn) (*entity.Restaurant, error) {
	r, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	r.Name = in.Name
	r.Address = in.Address
	r.Phone = in.Phone
	r.Email = in.Email
	if err := s.Repo.Update(r); err != nil {
		return nil, apperr.Internal("update restaurant", err)
	}
	return r, nil
}

func (s *RestaurantService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return apperr.Internal("delete restaurant", err)
	}
	if affected == 0 {
		return apperr.NotFound("restaurant not found")
	}
	return nil
}
