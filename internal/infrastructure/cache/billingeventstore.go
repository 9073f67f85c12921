package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"coachdesk/internal/shared/logger"
)

// BillingEventStore records processed webhook event ids so at-least-once
// delivery from the payment gateway stays idempotent across processes.
type BillingEventStore interface {
	// MarkProcessed records the event id. Returns false when the id was
	// already recorded, meaning this delivery is a duplicate.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}

const (
	billingEventKeyPrefix = "billing:event:"
	billingEventTTL       = 72 * time.Hour
)

// RedisBillingEventStore implements BillingEventStore on Redis SETNX.
type RedisBillingEventStore struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisBillingEventStore(client *redis.Client, log logger.Interface) *RedisBillingEventStore {
	return &RedisBillingEventStore{
		client: client,
		logger: log,
	}
}

func (s *RedisBillingEventStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	key := billingEventKeyPrefix + eventID

	set, err := s.client.SetNX(ctx, key, "1", billingEventTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark billing event processed: %w", err)
	}

	if !set {
		s.logger.Debugw("duplicate billing event delivery", "event_id", eventID)
	}

	return set, nil
}
