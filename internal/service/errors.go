package service

import "errors"

// Common service errors
var (
	// ErrSubscriptionNotFound is returned when a subscription does not exist
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrSubscriptionInactive is returned when an operation targets a paused
	// or cancelled subscription
	ErrSubscriptionInactive = errors.New("subscription is not active")

	// ErrInvalidSubscription is returned when a subscription fails invariant
	// validation at the store boundary
	ErrInvalidSubscription = errors.New("invalid subscription")

	// ErrOrderNotFound is returned when an order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
