package subscription

// StatusResponse is the access-gating snapshot clients poll on app open.
// Field names match what the mobile clients already consume.
type StatusResponse struct {
	HasActivePlan      bool    `json:"has_active_plan"`
	HasFreeTrial       bool    `json:"has_free_trial"`
	TrialEndsAt        *string `json:"trial_ends_at"`
	SubscriptionStatus *string `json:"subscription_status"`
	CurrentPeriodEnd   *string `json:"current_period_end"`
	CancelAtPeriodEnd  bool    `json:"cancel_at_period_end"`
	CanUseTrial        bool    `json:"can_use_trial"`
}

// CreateResponse carries what the client needs to open the gateway's
// hosted checkout.
type CreateResponse struct {
	SubscriptionID string  `json:"subscription_id"`
	ShortURL       *string `json:"short_url"`
	Status         string  `json:"status"`
	HasTrial       bool    `json:"has_trial"`
	RazorpayKey    string  `json:"razorpay_key"`
}

// CancelResponse confirms the cancel intent was recorded.
type CancelResponse struct {
	Message          string  `json:"message"`
	CurrentPeriodEnd *string `json:"current_period_end"`
}

// WebhookRequest is the gateway's event envelope. Payload nests the
// changed entity one level deep under its type name.
type WebhookRequest struct {
	Event   string `json:"event"`
	Payload struct {
		Subscription struct {
			Entity map[string]interface{} `json:"entity"`
		} `json:"subscription"`
		Payment struct {
			Entity map[string]interface{} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// WebhookAck is the always-200 acknowledgement body.
type WebhookAck struct {
	Status string `json:"status"`
}
