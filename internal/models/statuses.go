package models

type SubscriptionStatus string
type PaymentStatus string

// Status strings are persisted as-is, so they keep the pt-BR values the
// stored documents always carried.
const (
	SubscriptionStatusActive   SubscriptionStatus = "ativo"
	SubscriptionStatusInactive SubscriptionStatus = "inativo"

	PaymentStatusPending   PaymentStatus = "pendente"
	PaymentStatusPaid      PaymentStatus = "pago"
	PaymentStatusCancelled PaymentStatus = "cancelado"
)
