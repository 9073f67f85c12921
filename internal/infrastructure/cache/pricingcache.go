package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"coachdesk/internal/application/billing/gateway"
	"coachdesk/internal/shared/logger"
)

// PricingCache is a single-entry, time-bounded memoization of the payment
// gateway's price listing. Populate-on-miss, expire-on-TTL, explicit clear.
// Two concurrent refreshes may race; last writer wins, which is acceptable
// because staleness within the freshness window is tolerated.
type PricingCache struct {
	mu        sync.Mutex
	gateway   gateway.BillingGateway
	ttl       time.Duration
	prices    *gateway.PriceList
	fetchedAt time.Time
	logger    logger.Interface
}

// Metadata describes the cache state for the admin surface.
type Metadata struct {
	IsValid   bool       `json:"is_valid"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func NewPricingCache(gw gateway.BillingGateway, ttl time.Duration, log logger.Interface) *PricingCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &PricingCache{
		gateway: gw,
		ttl:     ttl,
		logger:  log,
	}
}

// Get returns the cached price listing, fetching from the gateway when the
// entry is missing or stale.
func (c *PricingCache) Get(ctx context.Context) (*gateway.PriceList, error) {
	c.mu.Lock()
	if c.valid() {
		prices := c.prices
		c.mu.Unlock()
		return prices, nil
	}
	c.mu.Unlock()

	// Fetch outside the lock so a slow gateway does not block readers of a
	// still-valid entry populated concurrently.
	prices, err := c.gateway.ListPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price listing: %w", err)
	}

	c.mu.Lock()
	c.prices = prices
	c.fetchedAt = time.Now().UTC()
	c.mu.Unlock()

	c.logger.Debugw("pricing cache refreshed", "prices", len(prices.Prices))

	return prices, nil
}

// Clear drops the cached entry. The next Get re-fetches.
func (c *PricingCache) Clear() {
	c.mu.Lock()
	c.prices = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()

	c.logger.Infow("pricing cache cleared")
}

// IsValid reports whether a fresh entry is present.
func (c *PricingCache) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid()
}

// Stats returns cache metadata for the admin surface.
func (c *PricingCache) Stats() Metadata {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.prices == nil {
		return Metadata{}
	}

	fetchedAt := c.fetchedAt
	expiresAt := c.fetchedAt.Add(c.ttl)
	return Metadata{
		IsValid:   c.valid(),
		FetchedAt: &fetchedAt,
		ExpiresAt: &expiresAt,
	}
}

// valid must be called with the lock held.
func (c *PricingCache) valid() bool {
	return c.prices != nil && time.Since(c.fetchedAt) < c.ttl
}
