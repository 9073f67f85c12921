// Package usecases contains the billing application use cases: webhook event
// reconciliation, plan changes, checkout and cached pricing.
package usecases

import (
	"context"
	"fmt"
	"time"

	"coachdesk/internal/application/billing/dto"
	"coachdesk/internal/application/billing/gateway"
	"coachdesk/internal/domain/trainer"
	vo "coachdesk/internal/domain/trainer/valueobjects"
	"coachdesk/internal/infrastructure/cache"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

const (
	syncMaxAttempts = 3
	syncBackoffBase = 100 * time.Millisecond
)

// ApplyBillingEventUseCase reconciles trainer billing state with gateway
// notifications. Delivery is at-least-once, so the same event may arrive more
// than once: the event id is checked against the event store first, and the
// sync itself is last-write-wins on the trainer's billing fields, so a
// duplicate that slips past the store still leaves state unchanged.
type ApplyBillingEventUseCase struct {
	trainerRepo trainer.Repository
	eventStore  cache.BillingEventStore
	logger      logger.Interface
}

func NewApplyBillingEventUseCase(
	trainerRepo trainer.Repository,
	eventStore cache.BillingEventStore,
	logger logger.Interface,
) *ApplyBillingEventUseCase {
	return &ApplyBillingEventUseCase{
		trainerRepo: trainerRepo,
		eventStore:  eventStore,
		logger:      logger,
	}
}

// Execute applies a billing event. Returns the resulting billing state, or
// the current state unchanged when the event is a known duplicate.
func (uc *ApplyBillingEventUseCase) Execute(ctx context.Context, event *gateway.BillingEvent) (*dto.BillingStateDTO, error) {
	status := vo.BillingStatus(event.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid billing status: %s", event.Status))
	}
	plan, err := vo.NewPlan(event.Plan)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.findTrainer(ctx, event)
	if err != nil {
		return nil, err
	}

	first, err := uc.eventStore.MarkProcessed(ctx, event.EventID)
	if err != nil {
		// The store being down must not drop billing events; proceed and rely
		// on last-write-wins for duplicate safety.
		uc.logger.Warnw("billing event store unavailable, applying without dedup",
			"event_id", event.EventID, "error", err)
	} else if !first {
		uc.logger.Infow("billing event already processed, skipping",
			"event_id", event.EventID, "trainer_id", t.ID())
		return dto.ToBillingStateDTO(t), nil
	}

	if err := t.ApplyBillingSync(event.CustomerID, event.SubscriptionID, status, plan, event.BillingCycleEnd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.persistWithRetry(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("billing event applied",
		"event_id", event.EventID,
		"trainer_id", t.ID(),
		"plan", plan.String(),
		"status", status.String(),
	)

	return dto.ToBillingStateDTO(t), nil
}

func (uc *ApplyBillingEventUseCase) findTrainer(ctx context.Context, event *gateway.BillingEvent) (*trainer.Trainer, error) {
	if event.TrainerID != 0 {
		return uc.trainerRepo.GetByID(ctx, event.TrainerID)
	}
	if event.CustomerID != "" {
		return uc.trainerRepo.GetByCustomerID(ctx, event.CustomerID)
	}
	return nil, errors.NewValidationError("billing event carries no trainer reference")
}

// persistWithRetry retries transient store failures with exponential backoff.
// Not-found and validation errors are terminal.
func (uc *ApplyBillingEventUseCase) persistWithRetry(ctx context.Context, t *trainer.Trainer) error {
	var lastErr error
	for attempt := 1; attempt <= syncMaxAttempts; attempt++ {
		lastErr = uc.trainerRepo.Update(ctx, t)
		if lastErr == nil {
			return nil
		}
		if errors.IsAppError(lastErr) {
			return lastErr
		}
		if attempt < syncMaxAttempts {
			backoff := syncBackoffBase * time.Duration(1<<(attempt-1))
			uc.logger.Warnw("billing sync persist failed, retrying",
				"attempt", attempt, "backoff", backoff, "error", lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return fmt.Errorf("failed to persist billing sync after %d attempts: %w", syncMaxAttempts, lastErr)
}
