// Package dto contains data transfer objects for billing.
package dto

import (
	"time"

	"coachdesk/internal/application/billing/gateway"
	"coachdesk/internal/domain/trainer"
)

type BillingStateDTO struct {
	TrainerID       uint       `json:"trainer_id"`
	Plan            string     `json:"plan"`
	BillingStatus   string     `json:"billing_status"`
	CustomerID      *string    `json:"customer_id,omitempty"`
	SubscriptionID  *string    `json:"subscription_id,omitempty"`
	BillingCycleEnd *time.Time `json:"billing_cycle_end,omitempty"`
}

func ToBillingStateDTO(t *trainer.Trainer) *BillingStateDTO {
	return &BillingStateDTO{
		TrainerID:       t.ID(),
		Plan:            t.Plan().String(),
		BillingStatus:   t.BillingStatus().String(),
		CustomerID:      t.CustomerID(),
		SubscriptionID:  t.SubscriptionID(),
		BillingCycleEnd: t.BillingCycleEnd(),
	}
}

type CheckoutSessionDTO struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

type PriceDTO struct {
	Plan         string `json:"plan"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
	BillingCycle string `json:"billing_cycle"`
}

type PricingDTO struct {
	Prices []PriceDTO `json:"prices"`
}

func ToPricingDTO(list *gateway.PriceList) *PricingDTO {
	out := &PricingDTO{Prices: make([]PriceDTO, 0, len(list.Prices))}
	for _, p := range list.Prices {
		out.Prices = append(out.Prices, PriceDTO{
			Plan:         p.Plan,
			AmountCents:  p.AmountCents,
			Currency:     p.Currency,
			BillingCycle: p.BillingCycle,
		})
	}
	return out
}
