package razorpay

import (
	"github.com/staffbook/staffbook-backend-go/internal/domain/subscription"
)

// CreateSubscription creates a recurring subscription on the gateway and
// returns its id, initial status and checkout short URL along with the raw
// entity for the local audit trail.
func (c *Client) CreateSubscription(params subscription.GatewaySubscriptionParams) (subscription.GatewaySubscription, error) {
	data := map[string]interface{}{
		"plan_id":     params.PlanID,
		"customer_id": params.CustomerID,
		"total_count": params.TotalCount,
		"quantity":    params.Quantity,
	}
	if params.CustomerNotify {
		data["customer_notify"] = 1
	}
	if len(params.Notes) > 0 {
		data["notes"] = params.Notes
	}
	if params.StartAt != nil {
		data["start_at"] = *params.StartAt
	}
	if len(params.Addons) > 0 {
		addons := make([]interface{}, 0, len(params.Addons))
		for _, addon := range params.Addons {
			addons = append(addons, map[string]interface{}{
				"item": map[string]interface{}{
					"name":     addon.Name,
					"amount":   addon.Amount,
					"currency": addon.Currency,
				},
			})
		}
		data["addons"] = addons
	}

	resp, err := c.sdk.Subscription.Create(data, nil)
	if err != nil {
		return subscription.GatewaySubscription{}, &APIError{Op: "create subscription", Message: err.Error()}
	}

	id, ok := resp["id"].(string)
	if !ok {
		return subscription.GatewaySubscription{}, &APIError{Op: "create subscription", Message: "response missing subscription id"}
	}

	status, _ := resp["status"].(string)
	shortURL, _ := resp["short_url"].(string)

	return subscription.GatewaySubscription{
		ID:       id,
		Status:   status,
		ShortURL: shortURL,
		Raw:      resp,
	}, nil
}

// CancelSubscription cancels a gateway subscription. cancelAtCycleEnd=false
// cancels immediately (used while trialing, so no charge is ever attempted);
// true retains access until the paid period ends.
func (c *Client) CancelSubscription(gatewaySubscriptionID string, cancelAtCycleEnd bool) error {
	cycleEnd := 0
	if cancelAtCycleEnd {
		cycleEnd = 1
	}

	_, err := c.sdk.Subscription.Cancel(gatewaySubscriptionID, map[string]interface{}{
		"cancel_at_cycle_end": cycleEnd,
	}, nil)
	if err != nil {
		return &APIError{Op: "cancel subscription", Message: err.Error()}
	}
	return nil
}
