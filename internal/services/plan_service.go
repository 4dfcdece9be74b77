package services

import (
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/repositories"
	"gastropass_backend/internal/services/dto"
	"gastropass_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type PlanService interface {
	List() ([]models.Plan, error)
	Get(id string) (*models.Plan, error)
	Create(req *dto.CreatePlanRequest) (*models.Plan, error)
	Update(id string, req *dto.UpdatePlanRequest) (*models.Plan, error)
	Delete(id string) error
}

type planService struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanService {
	return &planService{planRepo: planRepo}
}

func (s *planService) List() ([]models.Plan, error) {
	plans, err := s.planRepo.All()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if plans == nil {
		plans = []models.Plan{}
	}
	return plans, nil
}

func (s *planService) Get(id string) (*models.Plan, error) {
	plan, err := s.planRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return plan, nil
}

func (s *planService) Create(req *dto.CreatePlanRequest) (*models.Plan, error) {
	plan := &models.Plan{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Features:    req.Features,
	}

	if err := s.planRepo.Create(plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plan, nil
}

func (s *planService) Update(id string, req *dto.UpdatePlanRequest) (*models.Plan, error) {
	plan, err := s.planRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Features != nil {
		plan.Features = *req.Features
	}

	if err := s.planRepo.Save(plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plan, nil
}

func (s *planService) Delete(id string) error {
	if err := s.planRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
