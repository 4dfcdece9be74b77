package dto

import "gastropass_backend/internal/models"

// Subscription states as reported by the status check.
const (
	SubscriptionStateNone    = "none"
	SubscriptionStatePending = "pending"
	SubscriptionStateActive  = "active"
	SubscriptionStateExpired = "expired"
)

type SubscribeRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

type SubscribeResponse struct {
	PaymentID  string  `json:"paymentId"`
	PlanID     string  `json:"planId"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	HandoffURL string  `json:"handoffUrl"`
	Message    string  `json:"message"`
}

type CheckStatusResponse struct {
	State        string               `json:"state"`
	Message      string               `json:"message"`
	Subscription *models.Subscription `json:"subscription,omitempty"`
}

type SubscriptionInfoResponse struct {
	State          string                 `json:"state"`
	Subscription   *models.Subscription   `json:"subscription,omitempty"`
	PaymentPending *models.PaymentPending `json:"paymentPending,omitempty"`
	Plan           *models.Plan           `json:"plan,omitempty"`
}

type PaymentListResponse struct {
	Payments []models.Payment `json:"payments"`
	Total    int              `json:"total"`
}
