package subscription

import "context"

// SubscriptionRepository persists local subscription rows. A tenant keeps a
// history of rows; the most recent by creation time is authoritative.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub Subscription) (Subscription, error)

	// GetLatestByUser returns nil when the tenant has no rows.
	GetLatestByUser(ctx context.Context, userID string) (*Subscription, error)

	// GetLatestByUserInStatuses returns the most recent row whose status is
	// in the given set, or nil.
	GetLatestByUserInStatuses(ctx context.Context, userID string, statuses []Status) (*Subscription, error)

	// GetByGatewaySubscriptionID matches webhook events to local rows;
	// returns nil for ids this system never issued.
	GetByGatewaySubscriptionID(ctx context.Context, gatewaySubscriptionID string) (*Subscription, error)

	Update(ctx context.Context, sub Subscription) (Subscription, error)

	// GetCustomerIDByUser returns the gateway customer id stored on any of
	// the tenant's rows, or "" when none exists yet.
	GetCustomerIDByUser(ctx context.Context, userID string) (string, error)

	// HasTrialRowForUser reports whether the tenant ever had a row with a
	// trial window set.
	HasTrialRowForUser(ctx context.Context, userID string) (bool, error)

	DeleteAllByUser(ctx context.Context, userID string) error
}

// TrialRepository tracks one-time trial consumption per mobile number.
// Rows outlive user accounts so re-registering the same number never grants
// a second trial.
type TrialRepository interface {
	HasUsedTrial(ctx context.Context, mobile string) (bool, error)

	// Record marks the mobile's trial consumed; recording an already
	// recorded mobile is a no-op.
	Record(ctx context.Context, userID, mobile string) error
}
