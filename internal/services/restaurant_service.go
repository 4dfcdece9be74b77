package services

import (
	"time"

	"gastropass_backend/internal/models"
	"gastropass_backend/internal/repositories"
	"gastropass_backend/internal/services/dto"
	"gastropass_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type RestaurantService interface {
	List() ([]models.Restaurant, error)
	Get(id string) (*models.Restaurant, error)
	Create(req *dto.CreateRestaurantRequest) (*models.Restaurant, error)
	Update(id string, req *dto.UpdateRestaurantRequest) (*models.Restaurant, error)
	Delete(id string) error
}

type restaurantService struct {
	restaurantRepo repositories.RestaurantRepository
}

func NewRestaurantService(restaurantRepo repositories.RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepo: restaurantRepo}
}

func (s *restaurantService) List() ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepo.All()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	return restaurants, nil
}

func (s *restaurantService) Get(id string) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRestaurantNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return restaurant, nil
}

func (s *restaurantService) Create(req *dto.CreateRestaurantRequest) (*models.Restaurant, error) {
	restaurant := &models.Restaurant{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Estado:      req.Estado,
		Phone:       req.Phone,
		Discount:    req.Discount,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
		CreatedAt:   time.Now(),
	}

	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return restaurant, nil
}

func (s *restaurantService) Update(id string, req *dto.UpdateRestaurantRequest) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRestaurantNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Category != nil {
		restaurant.Category = *req.Category
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.City != nil {
		restaurant.City = *req.City
	}
	if req.Estado != nil {
		restaurant.Estado = *req.Estado
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.Discount != nil {
		restaurant.Discount = *req.Discount
	}
	if req.ImageURL != nil {
		restaurant.ImageURL = *req.ImageURL
	}
	if req.Rating != nil {
		restaurant.Rating = *req.Rating
	}

	if err := s.restaurantRepo.Save(restaurant); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return restaurant, nil
}

func (s *restaurantService) Delete(id string) error {
	if err := s.restaurantRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrRestaurantNotFound) {
			return apperrors.ErrRestaurantNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
