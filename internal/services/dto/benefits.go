package dto

import "gastropass_backend/internal/models"

type ConsumeBenefitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Remaining int    `json:"remaining"`
}

type LedgerResponse struct {
	Ledger *models.BenefitLedger `json:"ledger"`
}
