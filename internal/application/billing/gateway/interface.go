// Package gateway defines the contract with the external payment processor.
// Checkout, subscription lifecycle and pricing all live behind this interface;
// the app never talks to the processor's API directly.
package gateway

import (
	"context"
	"net/http"
	"time"
)

type BillingGateway interface {
	// CreateCheckoutSession starts a hosted checkout for a plan.
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	// VerifyWebhook authenticates an incoming webhook request and decodes the
	// carried billing event. Delivery is at-least-once; callers must be
	// duplicate-safe.
	VerifyWebhook(req *http.Request) (*BillingEvent, error)
	// ListPrices returns the current plan price listing.
	ListPrices(ctx context.Context) (*PriceList, error)
	// GetSubscription polls the processor directly, as a fallback when webhook
	// delivery is in doubt.
	GetSubscription(ctx context.Context, subscriptionID string) (*SubscriptionInfo, error)
}

type CheckoutRequest struct {
	TrainerID  uint
	Email      string
	Plan       string
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	SessionID   string
	CheckoutURL string
}

// BillingEvent is a subscription status-change notification.
type BillingEvent struct {
	EventID         string
	TrainerID       uint
	CustomerID      string
	SubscriptionID  string
	Status          string
	Plan            string
	BillingCycleEnd time.Time
}

type Price struct {
	Plan         string `json:"plan"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
	BillingCycle string `json:"billing_cycle"`
}

type PriceList struct {
	Prices []Price `json:"prices"`
}

type SubscriptionInfo struct {
	SubscriptionID  string
	CustomerID      string
	Status          string
	Plan            string
	BillingCycleEnd time.Time
}
