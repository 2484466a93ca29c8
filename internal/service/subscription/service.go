package subscription

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffbook/staffbook-backend-go/internal/domain/auth"
	"github.com/staffbook/staffbook-backend-go/internal/domain/subscription"
)

const (
	trialDays        = 7
	trialAddonName   = "7-Day Trial"
	trialAddonAmount = 200 // paise
	planAmount       = "99.00"
	planCurrency     = "INR"
	// 120 monthly cycles, the gateway's practical "until cancelled".
	planTotalCount = 120
)

// eventStatus maps gateway webhook events to the local status they drive.
// Events outside this map (and outside payment.*) are acknowledged and
// dropped so new gateway event types never break the endpoint.
var eventStatus = map[string]subscription.Status{
	"subscription.authenticated": subscription.StatusAuthenticated,
	"subscription.activated":     subscription.StatusActive,
	"subscription.charged":       subscription.StatusActive,
	"subscription.pending":       subscription.StatusPending,
	"subscription.halted":        subscription.StatusHalted,
	"subscription.cancelled":     subscription.StatusCancelled,
	"subscription.completed":     subscription.StatusCompleted,
}

type SubscriptionServiceImpl struct {
	subscriptionRepo subscription.SubscriptionRepository
	trialRepo        subscription.TrialRepository
	userRepo         auth.UserRepository
	gateway          subscription.Gateway
	planID           string
	keyID            string
	now              func() time.Time
}

func NewSubscriptionService(
	subscriptionRepo subscription.SubscriptionRepository,
	trialRepo subscription.TrialRepository,
	userRepo auth.UserRepository,
	gateway subscription.Gateway,
	planID string,
	keyID string,
) subscription.SubscriptionService {
	return &SubscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		trialRepo:        trialRepo,
		userRepo:         userRepo,
		gateway:          gateway,
		planID:           planID,
		keyID:            keyID,
		now:              time.Now,
	}
}

func (s *SubscriptionServiceImpl) GetStatus(ctx context.Context, userID, mobile string) (subscription.StatusResponse, error) {
	canUseTrial, err := s.canUseTrial(ctx, userID, mobile)
	if err != nil {
		return subscription.StatusResponse{}, err
	}

	sub, err := s.subscriptionRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		return subscription.StatusResponse{}, err
	}

	if sub == nil {
		return subscription.StatusResponse{CanUseTrial: canUseTrial}, nil
	}

	now := s.now()
	status := string(sub.Status)

	return subscription.StatusResponse{
		HasActivePlan:      sub.HasActivePlan(now),
		HasFreeTrial:       sub.HasFreeTrial(now),
		TrialEndsAt:        formatTime(sub.TrialEndsAt),
		SubscriptionStatus: &status,
		CurrentPeriodEnd:   formatTime(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
		CanUseTrial:        canUseTrial,
	}, nil
}

// canUseTrial gates the one-time trial: the mobile must never have consumed
// one (durable across account deletion) and the tenant must never have held
// a subscription row with a trial window.
func (s *SubscriptionServiceImpl) canUseTrial(ctx context.Context, userID, mobile string) (bool, error) {
	used, err := s.trialRepo.HasUsedTrial(ctx, mobile)
	if err != nil {
		return false, err
	}
	if used {
		return false, nil
	}

	hadTrial, err := s.subscriptionRepo.HasTrialRowForUser(ctx, userID)
	if err != nil {
		return false, err
	}

	return !hadTrial, nil
}

func (s *SubscriptionServiceImpl) Create(ctx context.Context, userID string) (subscription.CreateResponse, error) {
	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return subscription.CreateResponse{}, err
	}
	mobile := usr.Mobile

	existing, err := s.subscriptionRepo.GetLatestByUserInStatuses(ctx, userID, subscription.BlockingStatuses())
	if err != nil {
		return subscription.CreateResponse{}, err
	}
	if existing != nil {
		return subscription.CreateResponse{}, subscription.ErrAlreadySubscribed
	}

	canUseTrial, err := s.canUseTrial(ctx, userID, mobile)
	if err != nil {
		return subscription.CreateResponse{}, err
	}

	customerID, err := s.getOrCreateCustomer(ctx, userID, usr.Name, usr.Email, mobile)
	if err != nil {
		log.Printf("Razorpay customer creation failed for user %s: %v", userID, err)
		return subscription.CreateResponse{}, subscription.ErrGatewayFailure
	}

	params := subscription.GatewaySubscriptionParams{
		PlanID:         s.planID,
		CustomerID:     customerID,
		TotalCount:     planTotalCount,
		Quantity:       1,
		CustomerNotify: true,
		Notes: map[string]interface{}{
			"user_id": userID,
			"mobile":  mobile,
		},
	}

	var trialEndsAt *time.Time
	if canUseTrial {
		// Paid billing starts after the trial window; the nominal addon
		// keeps a mandate charge on the first invoice.
		trialEnd := s.now().AddDate(0, 0, trialDays)
		trialEndsAt = &trialEnd
		startAt := trialEnd.Unix()
		params.StartAt = &startAt
		params.Addons = []subscription.AddonItem{
			{Name: trialAddonName, Amount: trialAddonAmount, Currency: planCurrency},
		}
	}

	gwSub, err := s.gateway.CreateSubscription(params)
	if err != nil {
		log.Printf("Razorpay subscription creation failed for user %s: %v", userID, err)
		return subscription.CreateResponse{}, subscription.ErrGatewayFailure
	}

	amount, _ := decimal.NewFromString(planAmount)
	created, err := s.subscriptionRepo.Create(ctx, subscription.Subscription{
		UserID:                userID,
		GatewayCustomerID:     customerID,
		GatewaySubscriptionID: gwSub.ID,
		PlanID:                s.planID,
		Status:                subscription.Status(gwSub.Status),
		Amount:                amount,
		Currency:              planCurrency,
		ShortURL:              gwSub.ShortURL,
		TrialEndsAt:           trialEndsAt,
		Metadata:              gwSub.Raw,
	})
	if err != nil {
		return subscription.CreateResponse{}, err
	}

	// Consume the trial now, not on webhook delivery: the grant already
	// happened at the gateway, so a lost webhook must not leave the mobile
	// eligible for a second one.
	if canUseTrial {
		if err := s.trialRepo.Record(ctx, userID, mobile); err != nil {
			log.Printf("Failed to record trial usage for mobile %s: %v", mobile, err)
		}
	}

	var shortURL *string
	if created.ShortURL != "" {
		shortURL = &created.ShortURL
	}

	return subscription.CreateResponse{
		SubscriptionID: created.GatewaySubscriptionID,
		ShortURL:       shortURL,
		Status:         string(created.Status),
		HasTrial:       canUseTrial,
		RazorpayKey:    s.keyID,
	}, nil
}

func (s *SubscriptionServiceImpl) getOrCreateCustomer(ctx context.Context, userID, name, email, mobile string) (string, error) {
	customerID, err := s.subscriptionRepo.GetCustomerIDByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if customerID != "" {
		return customerID, nil
	}

	if email == "" {
		email = mobile + "@placeholder.com"
	}

	return s.gateway.EnsureCustomer(name, email, mobile, map[string]interface{}{
		"user_id": userID,
	})
}

func (s *SubscriptionServiceImpl) Cancel(ctx context.Context, userID string) (subscription.CancelResponse, error) {
	cancelable := []subscription.Status{
		subscription.StatusActive,
		subscription.StatusAuthenticated,
		subscription.StatusPending,
		subscription.StatusCreated,
	}

	sub, err := s.subscriptionRepo.GetLatestByUserInStatuses(ctx, userID, cancelable)
	if err != nil {
		return subscription.CancelResponse{}, err
	}
	if sub == nil {
		return subscription.CancelResponse{}, subscription.ErrSubscriptionNotFound
	}

	// Local intent first: the row must reflect the user's decision even if
	// the upstream call fails. The next webhook reconciles.
	sub.CancelAtPeriodEnd = true
	sub.Metadata = mergeMetadata(sub.Metadata, map[string]interface{}{
		"cancelled_at": s.now().Format(time.RFC3339),
	})

	updated, err := s.subscriptionRepo.Update(ctx, *sub)
	if err != nil {
		return subscription.CancelResponse{}, err
	}

	// Trialing: cancel immediately so the gateway never charges. Paid:
	// cancel at cycle end so access runs through the paid period.
	cancelAtCycleEnd := !updated.IsTrialing(s.now())
	if err := s.gateway.CancelSubscription(updated.GatewaySubscriptionID, cancelAtCycleEnd); err != nil {
		log.Printf("Razorpay cancel failed (local intent already recorded) for subscription %s: %v",
			updated.GatewaySubscriptionID, err)
	}

	return subscription.CancelResponse{
		Message:          "Subscription will be cancelled at the end of the current billing period.",
		CurrentPeriodEnd: formatTime(updated.CurrentPeriodEnd),
	}, nil
}

// CancelForUser implements subscription.SubscriptionService. Account
// deletion calls this before purging local rows; the gateway cancel is
// best-effort and immediate.
func (s *SubscriptionServiceImpl) CancelForUser(ctx context.Context, userID string) {
	cancelable := []subscription.Status{
		subscription.StatusActive,
		subscription.StatusAuthenticated,
		subscription.StatusPending,
		subscription.StatusCreated,
	}

	sub, err := s.subscriptionRepo.GetLatestByUserInStatuses(ctx, userID, cancelable)
	if err != nil {
		log.Printf("Failed to look up subscription for account deletion (user %s): %v", userID, err)
		return
	}
	if sub == nil {
		return
	}

	if err := s.gateway.CancelSubscription(sub.GatewaySubscriptionID, false); err != nil {
		log.Printf("Razorpay cancel during account deletion failed for subscription %s: %v",
			sub.GatewaySubscriptionID, err)
	}
}

func (s *SubscriptionServiceImpl) HandleWebhook(ctx context.Context, req subscription.WebhookRequest) (subscription.WebhookAck, error) {
	entity := req.Payload.Subscription.Entity
	if len(entity) == 0 {
		entity = req.Payload.Payment.Entity
	}

	if req.Event == "" || len(entity) == 0 {
		return subscription.WebhookAck{Status: "ignored"}, nil
	}

	switch req.Event {
	case "payment.captured":
		log.Printf("Payment captured: payment %v amount %v", entity["id"], entity["amount"])
		return subscription.WebhookAck{Status: "ok"}, nil
	case "payment.failed":
		log.Printf("Payment failed: payment %v error %v", entity["id"], entity["error_description"])
		return subscription.WebhookAck{Status: "ok"}, nil
	}

	status, known := eventStatus[req.Event]
	if !known {
		log.Printf("Unhandled Razorpay webhook event: %s", req.Event)
		return subscription.WebhookAck{Status: "ok"}, nil
	}

	if err := s.applySubscriptionEvent(ctx, entity, status); err != nil {
		return subscription.WebhookAck{}, err
	}

	return subscription.WebhookAck{Status: "ok"}, nil
}

// applySubscriptionEvent moves the matched row to the event's status and
// refreshes billing-period fields from the gateway entity. Re-applying the
// same event yields the same end state; delivery is at-least-once with no
// ordering guarantee.
func (s *SubscriptionServiceImpl) applySubscriptionEvent(ctx context.Context, entity map[string]interface{}, status subscription.Status) error {
	gatewayID, _ := entity["id"].(string)
	if gatewayID == "" {
		return nil
	}

	sub, err := s.subscriptionRepo.GetByGatewaySubscriptionID(ctx, gatewayID)
	if err != nil {
		return err
	}
	if sub == nil {
		log.Printf("Webhook: unknown Razorpay subscription id %s", gatewayID)
		return nil
	}

	sub.Status = status
	sub.CurrentPeriodStart = entityTime(entity, "current_start")
	sub.CurrentPeriodEnd = entityTime(entity, "current_end")
	sub.ChargeAt = entityTime(entity, "charge_at")
	sub.Metadata = mergeMetadata(sub.Metadata, map[string]interface{}{
		"last_webhook_event": string(status),
		"last_webhook_at":    s.now().Format(time.RFC3339),
	})

	// The gateway's cancelled event is terminal; the pending local intent
	// flag has served its purpose.
	if status == subscription.StatusCancelled {
		sub.CancelAtPeriodEnd = false
	}

	if _, err := s.subscriptionRepo.Update(ctx, *sub); err != nil {
		return fmt.Errorf("failed to apply webhook event: %w", err)
	}

	return nil
}

// entityTime reads a unix-timestamp field off a gateway entity; numbers
// arrive as float64 through generic JSON decoding.
func entityTime(entity map[string]interface{}, key string) *time.Time {
	value, ok := entity[key]
	if !ok || value == nil {
		return nil
	}

	var unix int64
	switch v := value.(type) {
	case float64:
		unix = int64(v)
	case int64:
		unix = v
	case int:
		unix = int64(v)
	default:
		return nil
	}

	t := time.Unix(unix, 0).UTC()
	return &t
}

func mergeMetadata(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
