package subscription

import "context"

type SubscriptionService interface {
	GetStatus(ctx context.Context, userID, mobile string) (StatusResponse, error)

	// Create provisions a gateway subscription for the tenant, granting the
	// one-time trial when their mobile is still eligible.
	Create(ctx context.Context, userID string) (CreateResponse, error)

	// Cancel records local cancel intent and then asks the gateway to
	// cancel; an upstream failure keeps the local intent.
	Cancel(ctx context.Context, userID string) (CancelResponse, error)

	// HandleWebhook applies one gateway event; idempotent under duplicate
	// or out-of-order delivery. The returned ack is always 200-worthy.
	HandleWebhook(ctx context.Context, req WebhookRequest) (WebhookAck, error)

	// CancelForUser best-effort cancels the tenant's live subscription at
	// the gateway; used by account deletion before the local purge.
	CancelForUser(ctx context.Context, userID string)
}
