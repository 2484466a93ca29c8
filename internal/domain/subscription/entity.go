package subscription

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status mirrors the gateway's subscription lifecycle states.
type Status string

const (
	StatusCreated       Status = "created"
	StatusAuthenticated Status = "authenticated"
	StatusActive        Status = "active"
	StatusPending       Status = "pending"
	StatusHalted        Status = "halted"
	StatusCancelled     Status = "cancelled"
	StatusCompleted     Status = "completed"
	StatusExpired       Status = "expired"
	StatusPaused        Status = "paused"
)

// liveStatuses are the states in which the tenant retains paid access.
// Halted counts as live: payment retries are still running and access is
// only withdrawn once the gateway gives up and cancels.
var liveStatuses = map[Status]bool{
	StatusActive:        true,
	StatusAuthenticated: true,
	StatusHalted:        true,
}

// blockingStatuses are the states that forbid creating another
// subscription for the same tenant.
var blockingStatuses = []Status{StatusActive, StatusAuthenticated, StatusPending}

// BlockingStatuses returns the states that forbid a new subscription.
func BlockingStatuses() []Status {
	out := make([]Status, len(blockingStatuses))
	copy(out, blockingStatuses)
	return out
}

// Subscription is the local record of a gateway subscription. Metadata keeps
// the raw gateway payloads; business fields are promoted to typed columns.
type Subscription struct {
	ID                    string
	UserID                string
	GatewayCustomerID     string
	GatewaySubscriptionID string
	PlanID                string
	Status                Status
	Amount                decimal.Decimal
	Currency              string
	ShortURL              string
	TrialEndsAt           *time.Time
	CurrentPeriodStart    *time.Time
	CurrentPeriodEnd      *time.Time
	ChargeAt              *time.Time
	CancelAtPeriodEnd     bool
	Metadata              map[string]interface{}
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsLive reports whether the status alone grants access.
func (s Subscription) IsLive() bool {
	return liveStatuses[s.Status]
}

// IsTrialing reports whether the subscription is inside its trial window
// at the given instant.
func (s Subscription) IsTrialing(at time.Time) bool {
	return s.TrialEndsAt != nil && s.TrialEndsAt.After(at)
}

// HasActivePlan reports whether the tenant has paid access at the given
// instant: a live status, a current period that has not lapsed, and not
// merely trialing. The period end is extended to the end of its calendar
// day so access does not cut off mid-day on the renewal date.
func (s Subscription) HasActivePlan(at time.Time) bool {
	if !s.IsLive() {
		return false
	}
	if s.IsTrialing(at) {
		return false
	}
	if s.CurrentPeriodEnd == nil {
		return false
	}
	return !endOfDay(*s.CurrentPeriodEnd).Before(at)
}

// HasFreeTrial reports whether the trial window is still open at the
// given instant.
func (s Subscription) HasFreeTrial(at time.Time) bool {
	return s.IsTrialing(at)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
