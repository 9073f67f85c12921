// Package trainer contains the trainer aggregate: the paying subscriber who
// manages students, exercises and workouts.
package trainer

import (
	"fmt"
	"strings"
	"time"

	vo "coachdesk/internal/domain/trainer/valueobjects"
)

type Trainer struct {
	id              uint
	email           string
	name            string
	passwordHash    string
	plan            vo.Plan
	billingStatus   vo.BillingStatus
	customerID      *string
	subscriptionID  *string
	billingCycleEnd *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTrainer creates a trainer at sign-up. New trainers start on the Start
// plan with no billing identifiers until the first checkout completes.
func NewTrainer(email, name, passwordHash string) (*Trainer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email: %s", email)
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &Trainer{
		email:         email,
		name:          name,
		passwordHash:  passwordHash,
		plan:          vo.PlanStart,
		billingStatus: vo.BillingStatusTrialing,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructTrainer reconstructs a trainer from persistence.
func ReconstructTrainer(id uint, email, name, passwordHash string, plan vo.Plan,
	billingStatus vo.BillingStatus, customerID, subscriptionID *string,
	billingCycleEnd *time.Time, createdAt, updatedAt time.Time) (*Trainer, error) {

	if id == 0 {
		return nil, fmt.Errorf("trainer ID cannot be zero")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %s", plan)
	}

	return &Trainer{
		id:              id,
		email:           email,
		name:            name,
		passwordHash:    passwordHash,
		plan:            plan,
		billingStatus:   billingStatus,
		customerID:      customerID,
		subscriptionID:  subscriptionID,
		billingCycleEnd: billingCycleEnd,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Trainer) ID() uint                    { return t.id }
func (t *Trainer) Email() string               { return t.email }
func (t *Trainer) Name() string                { return t.name }
func (t *Trainer) PasswordHash() string        { return t.passwordHash }
func (t *Trainer) Plan() vo.Plan               { return t.plan }
func (t *Trainer) BillingStatus() vo.BillingStatus {
	return t.billingStatus
}
func (t *Trainer) CustomerID() *string         { return t.customerID }
func (t *Trainer) SubscriptionID() *string     { return t.subscriptionID }
func (t *Trainer) BillingCycleEnd() *time.Time { return t.billingCycleEnd }
func (t *Trainer) CreatedAt() time.Time        { return t.createdAt }
func (t *Trainer) UpdatedAt() time.Time        { return t.updatedAt }

func (t *Trainer) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("trainer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("trainer ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangePlan switches the trainer's plan tier.
func (t *Trainer) ChangePlan(plan vo.Plan) error {
	if !plan.IsValid() {
		return fmt.Errorf("invalid plan: %s", plan)
	}
	t.plan = plan
	t.updatedAt = time.Now().UTC()
	return nil
}

// ApplyBillingSync reconciles the trainer's billing fields with a gateway
// event. Last write wins on the timestamped fields; the same event applied
// twice leaves state unchanged.
func (t *Trainer) ApplyBillingSync(customerID, subscriptionID string,
	status vo.BillingStatus, plan vo.Plan, billingCycleEnd time.Time) error {

	if !status.IsValid() {
		return fmt.Errorf("invalid billing status: %s", status)
	}
	if !plan.IsValid() {
		return fmt.Errorf("invalid plan: %s", plan)
	}

	t.customerID = &customerID
	t.subscriptionID = &subscriptionID
	t.billingStatus = status
	t.plan = plan
	end := billingCycleEnd.UTC()
	t.billingCycleEnd = &end
	t.updatedAt = time.Now().UTC()
	return nil
}

// ChangeName updates the display name.
func (t *Trainer) ChangeName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	t.name = name
	t.updatedAt = time.Now().UTC()
	return nil
}
