package services

import (
	"fmt"
	"time"

	"gastropass_backend/internal/models"
	"gastropass_backend/internal/repositories"
	"gastropass_backend/internal/services/dto"
	"gastropass_backend/pkg/apperrors"
)

type BenefitsService interface {
	Ledger() (*dto.LedgerResponse, error)
	Consume() (*dto.ConsumeBenefitResponse, error)
	Reset() (*dto.LedgerResponse, error)
}

type benefitsService struct {
	benefitsRepo repositories.BenefitsRepository
}

func NewBenefitsService(benefitsRepo repositories.BenefitsRepository) BenefitsService {
	return &benefitsService{benefitsRepo: benefitsRepo}
}

func (s *benefitsService) Ledger() (*dto.LedgerResponse, error) {
	ledger, err := s.benefitsRepo.Ledger()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.LedgerResponse{Ledger: ledger}, nil
}

// Consume attempts to redeem one free benefit. Exhaustion is not an error:
// the response carries success=false and the upgrade prompt instead.
func (s *benefitsService) Consume() (*dto.ConsumeBenefitResponse, error) {
	denied := false
	ledger, err := s.benefitsRepo.Update(func(ledger *models.BenefitLedger) error {
		if ledger.FreeBenefitsRemaining <= 0 {
			denied = true
			return nil
		}
		now := time.Now()
		ledger.FreeBenefitsRemaining--
		ledger.TotalBenefitsUsed++
		ledger.LastBenefitDate = &now
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if denied {
		return &dto.ConsumeBenefitResponse{
			Success:   false,
			Message:   "Seus benefícios gratuitos acabaram! Assine um plano para continuar aproveitando os descontos.",
			Remaining: 0,
		}, nil
	}

	return &dto.ConsumeBenefitResponse{
		Success:   true,
		Message:   fmt.Sprintf("Benefício resgatado! Você ainda tem %d benefícios gratuitos.", ledger.FreeBenefitsRemaining),
		Remaining: ledger.FreeBenefitsRemaining,
	}, nil
}

func (s *benefitsService) Reset() (*dto.LedgerResponse, error) {
	ledger, err := s.benefitsRepo.Reset()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.LedgerResponse{Ledger: ledger}, nil
}
