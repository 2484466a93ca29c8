package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffbook/staffbook-backend-go/internal/domain/subscription"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type subscriptionRepository struct {
	db *database.DB
}

const subscriptionColumns = `id, user_id, razorpay_customer_id, razorpay_subscription_id, razorpay_plan_id,
	   status, amount, currency, short_url, trial_ends_at,
	   current_period_start, current_period_end, charge_at, cancel_at_period_end,
	   metadata, created_at, updated_at`

func scanSubscription(row pgx.Row) (subscription.Subscription, error) {
	var sub subscription.Subscription
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.GatewayCustomerID, &sub.GatewaySubscriptionID, &sub.PlanID,
		&sub.Status, &sub.Amount, &sub.Currency, &sub.ShortURL, &sub.TrialEndsAt,
		&sub.CurrentPeriodStart, &sub.CurrentPeriodEnd, &sub.ChargeAt, &sub.CancelAtPeriodEnd,
		&sub.Metadata, &sub.CreatedAt, &sub.UpdatedAt,
	)
	return sub, err
}

// Create implements subscription.SubscriptionRepository.
func (s *subscriptionRepository) Create(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	q := GetQuerier(ctx, s.db)

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	query := `
		INSERT INTO subscriptions (
			id, user_id, razorpay_customer_id, razorpay_subscription_id, razorpay_plan_id,
			status, amount, currency, short_url, trial_ends_at,
			current_period_start, current_period_end, charge_at, cancel_at_period_end, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sub.ID,
		sub.UserID,
		sub.GatewayCustomerID,
		sub.GatewaySubscriptionID,
		sub.PlanID,
		sub.Status,
		sub.Amount,
		sub.Currency,
		sub.ShortURL,
		sub.TrialEndsAt,
		sub.CurrentPeriodStart,
		sub.CurrentPeriodEnd,
		sub.ChargeAt,
		sub.CancelAtPeriodEnd,
		sub.Metadata,
	).Scan(&sub.CreatedAt, &sub.UpdatedAt)

	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}

	return sub, nil
}

// GetLatestByUser implements subscription.SubscriptionRepository.
func (s *subscriptionRepository) GetLatestByUser(ctx context.Context, userID string) (*subscription.Subscription, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	sub, err := scanSubscription(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest subscription: %w", err)
	}

	return &sub, nil
}

// GetLatestByUserInStatuses implements subscription.SubscriptionRepository.
func (s *subscriptionRepository) GetLatestByUserInStatuses(ctx context.Context, userID string, statuses []subscription.Status) (*subscription.Subscription, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC
		LIMIT 1
	`

	values := make([]string, 0, len(statuses))
	for _, st := range statuses {
		values = append(values, string(st))
	}

	sub, err := scanSubscription(q.QueryRow(ctx, query, userID, values))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription by statuses: %w", err)
	}

	return &sub, nil
}

// GetByGatewaySubscriptionID implements subscription.SubscriptionRepository.
func (s *subscriptionRepository) GetByGatewaySubscriptionID(ctx context.Context, gatewaySubscriptionID string) (*subscription.Subscription, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE razorpay_subscription_id = $1
		LIMIT 1
	`

	sub, err := scanSubscription(q.QueryRow(ctx, query, gatewaySubscriptionID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription by gateway id: %w", err)
	}

	return &sub, nil
}

// Update implements subscription.SubscriptionRepository.
func (s *subscriptionRepository) Update(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE subscriptions
		SET status = $1, trial_ends_at = $2, current_period_start = $3, current_period_end = $4,
			charge_at = $5, cancel_at_period_end = $6, metadata = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		sub.Status,
		sub.TrialEndsAt,
		sub.CurrentPeriodStart,
		sub.CurrentPeriodEnd,
		sub.ChargeAt,
		sub.CancelAtPeriodEnd,
		sub.Metadata,
		sub.ID,
	).Scan(&sub.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return subscription.Subscription{}, subscription.ErrSubscriptionNotFound
		}
		return subscription.Subscription{}, fmt.Errorf("failed to update subscription: %w", err)
	}

	return sub, nil
}

// GetCustomerIDByUser implements subscription.SubscriptionRepository.
func (s *subscriptionRepository) GetCustomerIDByUser(ctx context.Context, userID string) (string, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT razorpay_customer_id
		FROM subscriptions
		WHERE user_id = $1 AND razorpay_customer_id <> ''
		ORDER BY created_at DESC
		LIMIT 1
	`

	var customerID string
	err := q.QueryRow(ctx, query, userID).Scan(&customerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get customer id: %w", err)
	}

	return customerID, nil
}

// HasTrialRowForUser implements subscription.SubscriptionRepository.
func (s *subscriptionRepository) HasTrialRowForUser(ctx context.Context, userID string) (bool, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE user_id = $1 AND trial_ends_at IS NOT NULL
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check trial rows: %w", err)
	}

	return exists, nil
}

// DeleteAllByUser implements subscription.SubscriptionRepository.
func (s *subscriptionRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, s.db)

	if _, err := q.Exec(ctx, `DELETE FROM subscriptions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete subscriptions for user: %w", err)
	}

	return nil
}

func NewSubscriptionRepository(db *database.DB) subscription.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

type trialRepository struct {
	db *database.DB
}

// HasUsedTrial implements subscription.TrialRepository.
func (t *trialRepository) HasUsedTrial(ctx context.Context, mobile string) (bool, error) {
	q := GetQuerier(ctx, t.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM subscription_trials WHERE mobile = $1)`, mobile).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check trial usage: %w", err)
	}

	return exists, nil
}

// Record implements subscription.TrialRepository. Trial rows are keyed by
// mobile and never overwritten, so re-recording is a no-op.
func (t *trialRepository) Record(ctx context.Context, userID, mobile string) error {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO subscription_trials (mobile, user_id, trial_used_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (mobile) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, mobile, userID); err != nil {
		return fmt.Errorf("failed to record trial: %w", err)
	}

	return nil
}

func NewTrialRepository(db *database.DB) subscription.TrialRepository {
	return &trialRepository{db: db}
}
