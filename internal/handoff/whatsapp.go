// Package handoff builds the external messaging deep link a subscriber opens
// to confirm payment with the operator. The link is fire-and-forget: nothing
// observes whether the message was actually sent.
package handoff

import (
	"fmt"
	"net/url"

	"gastropass_backend/internal/models"
)

const defaultBaseURL = "https://wa.me"

type WhatsApp struct {
	Number  string
	BaseURL string
}

func NewWhatsApp(number string) *WhatsApp {
	return &WhatsApp{
		Number:  number,
		BaseURL: defaultBaseURL,
	}
}

// PaymentMessage is the human-readable text the subscriber sends to the
// operator, carrying everything needed to match the manual payment.
func (w *WhatsApp) PaymentMessage(user *models.User, plan *models.Plan, paymentID string) string {
	return fmt.Sprintf(
		"Olá! Quero assinar o Gastro Pass.\n\n"+
			"Nome: %s\n"+
			"Email: %s\n"+
			"Plano: %s\n"+
			"Valor: R$ %.2f\n"+
			"Código do pagamento: %s",
		user.Name, user.Email, plan.Name, plan.Price, paymentID,
	)
}

// PaymentLink returns the deep link with the message URL-encoded in the text
// query parameter.
func (w *WhatsApp) PaymentLink(user *models.User, plan *models.Plan, paymentID string) string {
	base := w.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	query := url.Values{}
	query.Set("text", w.PaymentMessage(user, plan, paymentID))

	return fmt.Sprintf("%s/%s?%s", base, w.Number, query.Encode())
}
