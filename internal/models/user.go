package models

import "time"

// Subscription is embedded in the user document. An "inativo" subscription is
// kept around so the last plan can still be shown to the user.
type Subscription struct {
	PlanID    string             `json:"planId"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Status    SubscriptionStatus `json:"status"`
}

// PaymentPending references the payment a user is waiting on. A user holds at
// most one of these; subscribing again overwrites it.
type PaymentPending struct {
	PaymentID string `json:"paymentId"`
	PlanID    string `json:"planId"`
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	Estado       string    `json:"estado,omitempty"`
	Location     string    `json:"location,omitempty"`

	Subscription   *Subscription   `json:"subscription,omitempty"`
	PaymentPending *PaymentPending `json:"paymentPending,omitempty"`
}
