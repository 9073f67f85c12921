package valueobjects

// BillingStatus mirrors the subscription status reported by the payment
// gateway. Stored as-is; transitions are owned by the gateway, not by us.
type BillingStatus string

const (
	BillingStatusActive   BillingStatus = "active"
	BillingStatusTrialing BillingStatus = "trialing"
	BillingStatusPastDue  BillingStatus = "past_due"
	BillingStatusCanceled BillingStatus = "canceled"
	BillingStatusUnpaid   BillingStatus = "unpaid"
)

var validBillingStatuses = map[BillingStatus]bool{
	BillingStatusActive:   true,
	BillingStatusTrialing: true,
	BillingStatusPastDue:  true,
	BillingStatusCanceled: true,
	BillingStatusUnpaid:   true,
}

func (s BillingStatus) String() string {
	return string(s)
}

func (s BillingStatus) IsValid() bool {
	return validBillingStatuses[s]
}

// CanUseService reports whether the trainer's subscription entitles access to
// paid features.
func (s BillingStatus) CanUseService() bool {
	return s == BillingStatusActive || s == BillingStatusTrialing
}
