package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// MockGateway is an in-process gateway used in development and tests.
type MockGateway struct {
	Event      *BillingEvent
	EventErr   error
	Prices     *PriceList
	PricesErr  error
	ListCalls  atomic.Int64
}

func NewMockGateway() *MockGateway {
	return &MockGateway{
		Prices: &PriceList{
			Prices: []Price{
				{Plan: "Start", AmountCents: 0, Currency: "USD", BillingCycle: "monthly"},
				{Plan: "Pro", AmountCents: 2900, Currency: "USD", BillingCycle: "monthly"},
				{Plan: "Elite", AmountCents: 7900, Currency: "USD", BillingCycle: "monthly"},
			},
		},
	}
}

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	sessionID := fmt.Sprintf("MOCK_%d_%d", req.TrainerID, time.Now().Unix())
	return &CheckoutSession{
		SessionID:   sessionID,
		CheckoutURL: fmt.Sprintf("https://mock-billing.example.com/checkout?session=%s", sessionID),
	}, nil
}

func (m *MockGateway) VerifyWebhook(req *http.Request) (*BillingEvent, error) {
	if m.EventErr != nil {
		return nil, m.EventErr
	}
	if m.Event != nil {
		return m.Event, nil
	}
	return nil, fmt.Errorf("no event configured")
}

func (m *MockGateway) ListPrices(ctx context.Context) (*PriceList, error) {
	m.ListCalls.Add(1)
	if m.PricesErr != nil {
		return nil, m.PricesErr
	}
	return m.Prices, nil
}

func (m *MockGateway) GetSubscription(ctx context.Context, subscriptionID string) (*SubscriptionInfo, error) {
	return &SubscriptionInfo{
		SubscriptionID:  subscriptionID,
		CustomerID:      "MOCK_CUSTOMER",
		Status:          "active",
		Plan:            "Pro",
		BillingCycleEnd: time.Now().Add(30 * 24 * time.Hour),
	}, nil
}
