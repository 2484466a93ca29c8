package subscription

// GatewaySubscriptionParams is the payment-gateway-facing subscription
// creation request. StartAt is a unix timestamp; nil starts immediately.
type GatewaySubscriptionParams struct {
	PlanID         string
	CustomerID     string
	TotalCount     int
	Quantity       int
	CustomerNotify bool
	StartAt        *int64
	Addons         []AddonItem
	Notes          map[string]interface{}
}

// AddonItem is a one-time charge attached to the first invoice. Amount is
// in the currency's smallest unit (paise for INR).
type AddonItem struct {
	Name     string
	Amount   int64
	Currency string
}

// GatewaySubscription is the gateway's view of a subscription. Raw carries
// the full upstream payload for metadata storage.
type GatewaySubscription struct {
	ID       string
	Status   string
	ShortURL string
	Raw      map[string]interface{}
}

// Gateway abstracts the payment provider so the service layer stays
// testable without network calls.
type Gateway interface {
	// EnsureCustomer creates a gateway customer for the contact or returns
	// the existing one when the gateway reports a duplicate.
	EnsureCustomer(name, email, contact string, notes map[string]interface{}) (string, error)

	CreateSubscription(params GatewaySubscriptionParams) (GatewaySubscription, error)

	// CancelSubscription cancels upstream; cancelAtCycleEnd defers the
	// cancellation to the end of the current billing cycle.
	CancelSubscription(gatewaySubscriptionID string, cancelAtCycleEnd bool) error
}
