package valueobjects

import "fmt"

// Plan is the subscription tier a trainer is on. It controls feature access
// and is synchronized from the billing gateway.
type Plan string

const (
	PlanStart Plan = "Start"
	PlanPro   Plan = "Pro"
	PlanElite Plan = "Elite"
)

var validPlans = map[Plan]bool{
	PlanStart: true,
	PlanPro:   true,
	PlanElite: true,
}

// NewPlan validates a raw plan value against the fixed enumeration.
func NewPlan(value string) (Plan, error) {
	p := Plan(value)
	if !validPlans[p] {
		return "", fmt.Errorf("invalid plan: %s", value)
	}
	return p, nil
}

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	return validPlans[p]
}

// MaxStudents returns the student limit for the plan.
func (p Plan) MaxStudents() int {
	switch p {
	case PlanStart:
		return 10
	case PlanPro:
		return 50
	case PlanElite:
		return 0 // unlimited
	default:
		return 0
	}
}

// ValidPlanNames lists the accepted plan values, for validation messages.
func ValidPlanNames() []string {
	return []string{string(PlanStart), string(PlanPro), string(PlanElite)}
}
