// Package billing implements the payment-gateway contract against a hosted
// payment processor's HTTP API.
package billing

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"coachdesk/internal/application/billing/gateway"
	sharedConfig "coachdesk/internal/shared/config"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

const (
	signatureHeader = "X-Billing-Signature"
	requestTimeout  = 15 * time.Second
	maxWebhookBody  = 1 << 20
)

// HostedGateway talks to the hosted payment processor over HTTPS. Webhooks
// are authenticated with an HMAC-SHA256 signature over the raw body.
type HostedGateway struct {
	baseURL       string
	apiKey        string
	webhookSecret []byte
	httpClient    *http.Client
	logger        logger.Interface
}

var _ gateway.BillingGateway = (*HostedGateway)(nil)

func NewHostedGateway(cfg sharedConfig.BillingConfig, log logger.Interface) *HostedGateway {
	return &HostedGateway{
		baseURL:       cfg.GatewayBaseURL,
		apiKey:        cfg.APIKey,
		webhookSecret: []byte(cfg.WebhookSecret),
		httpClient:    &http.Client{Timeout: requestTimeout},
		logger:        log,
	}
}

func (g *HostedGateway) CreateCheckoutSession(ctx context.Context, req gateway.CheckoutRequest) (*gateway.CheckoutSession, error) {
	payload := map[string]interface{}{
		"reference_id": req.TrainerID,
		"email":        req.Email,
		"plan":         req.Plan,
		"success_url":  req.SuccessURL,
		"cancel_url":   req.CancelURL,
	}

	var resp struct {
		SessionID   string `json:"session_id"`
		CheckoutURL string `json:"checkout_url"`
	}
	if err := g.post(ctx, "/v1/checkout/sessions", payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &gateway.CheckoutSession{
		SessionID:   resp.SessionID,
		CheckoutURL: resp.CheckoutURL,
	}, nil
}

// webhookPayload is the wire shape of a status-change notification.
type webhookPayload struct {
	EventID         string `json:"event_id" validate:"required"`
	ReferenceID     uint   `json:"reference_id" validate:"required"`
	CustomerID      string `json:"customer_id" validate:"required"`
	SubscriptionID  string `json:"subscription_id" validate:"required"`
	Status          string `json:"status" validate:"required"`
	Plan            string `json:"plan" validate:"required"`
	BillingCycleEnd int64  `json:"billing_cycle_end" validate:"required"`
}

func (g *HostedGateway) VerifyWebhook(req *http.Request) (*gateway.BillingEvent, error) {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxWebhookBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook body: %w", err)
	}

	signature := req.Header.Get(signatureHeader)
	if signature == "" {
		return nil, fmt.Errorf("missing webhook signature")
	}
	if !g.checkSignature(body, signature) {
		return nil, fmt.Errorf("invalid webhook signature")
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}
	if err := utils.ValidateStruct(&payload); err != nil {
		return nil, fmt.Errorf("incomplete webhook payload: %w", err)
	}

	return &gateway.BillingEvent{
		EventID:         payload.EventID,
		TrainerID:       payload.ReferenceID,
		CustomerID:      payload.CustomerID,
		SubscriptionID:  payload.SubscriptionID,
		Status:          payload.Status,
		Plan:            payload.Plan,
		BillingCycleEnd: time.Unix(payload.BillingCycleEnd, 0).UTC(),
	}, nil
}

func (g *HostedGateway) ListPrices(ctx context.Context) (*gateway.PriceList, error) {
	var prices gateway.PriceList
	if err := g.get(ctx, "/v1/prices", &prices); err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	return &prices, nil
}

func (g *HostedGateway) GetSubscription(ctx context.Context, subscriptionID string) (*gateway.SubscriptionInfo, error) {
	var resp struct {
		SubscriptionID  string `json:"subscription_id"`
		CustomerID      string `json:"customer_id"`
		Status          string `json:"status"`
		Plan            string `json:"plan"`
		BillingCycleEnd int64  `json:"billing_cycle_end"`
	}
	if err := g.get(ctx, "/v1/subscriptions/"+subscriptionID, &resp); err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &gateway.SubscriptionInfo{
		SubscriptionID:  resp.SubscriptionID,
		CustomerID:      resp.CustomerID,
		Status:          resp.Status,
		Plan:            resp.Plan,
		BillingCycleEnd: time.Unix(resp.BillingCycleEnd, 0).UTC(),
	}, nil
}

func (g *HostedGateway) checkSignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, g.webhookSecret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *HostedGateway) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return g.do(req, out)
}

func (g *HostedGateway) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}

	return g.do(req, out)
}

func (g *HostedGateway) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Warnw("gateway returned non-2xx status",
			"status", resp.StatusCode,
			"path", req.URL.Path,
			"body", string(respBody))
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}
