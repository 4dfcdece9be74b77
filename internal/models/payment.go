package models

// Payment records are only created by the subscription flow, always with
// status "pendente". Admin actions flip the status afterwards; the
// notification sweep marks confirmations with NotificationSent.
type Payment struct {
	ID               string        `json:"id"`
	UserID           string        `json:"userId"`
	Date             string        `json:"date"`
	Description      string        `json:"description"`
	Amount           float64       `json:"amount"`
	Status           PaymentStatus `json:"status"`
	PlanID           string        `json:"planId"`
	NotificationSent bool          `json:"notificationSent,omitempty"`
}

// PaymentDateLayout is the display format the stored documents use.
const PaymentDateLayout = "02/01/2006"
