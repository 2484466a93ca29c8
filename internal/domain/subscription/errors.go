package subscription

import "errors"

// Subscription domain errors
var (
	ErrAlreadySubscribed    = errors.New("you already have an active subscription")
	ErrSubscriptionNotFound = errors.New("no active subscription found")
	ErrGatewayFailure       = errors.New("failed to create subscription, please try again")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
)
