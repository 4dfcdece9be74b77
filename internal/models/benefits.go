package models

import "time"

// DefaultFreeBenefits is how many free redemptions a fresh profile gets.
const DefaultFreeBenefits = 3

// BenefitLedger is a singleton document tracking free redemptions.
type BenefitLedger struct {
	FreeBenefitsRemaining int        `json:"freeBenefitsRemaining"`
	TotalBenefitsUsed     int        `json:"totalBenefitsUsed"`
	LastBenefitDate       *time.Time `json:"lastBenefitDate,omitempty"`
}

// NewBenefitLedger returns the seed state for a profile that never redeemed.
func NewBenefitLedger(freeQuota int) *BenefitLedger {
	if freeQuota <= 0 {
		freeQuota = DefaultFreeBenefits
	}
	return &BenefitLedger{FreeBenefitsRemaining: freeQuota}
}
