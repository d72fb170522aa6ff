package payment

import "errors"

var (
	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrLimitExceeded is returned when an amount exceeds the kind's
	// configured ceiling.
	ErrLimitExceeded = errors.New("amount exceeds kind limit")

	// ErrInsufficientBalance is returned when a debit would drive a
	// balance negative.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUnknownKind is returned when a kind is not registered.
	ErrUnknownKind = errors.New("unknown payment kind")

	// ErrUnknownMethod is returned when a method is not enrolled.
	ErrUnknownMethod = errors.New("unknown payment method")

	// ErrUnknownTransaction is returned when a transaction does not exist.
	ErrUnknownTransaction = errors.New("unknown transaction")

	// ErrDuplicateKind is returned when registering an already
	// registered kind.
	ErrDuplicateKind = errors.New("payment kind already registered")

	// ErrCapabilityUnsupported is returned when an operation requires a
	// capability the method's kind does not declare. This is an expected,
	// recoverable result; callers branch on it instead of inspecting the
	// concrete kind.
	ErrCapabilityUnsupported = errors.New("capability not supported")

	// ErrDuplicateRefund is returned when refunding an already refunded
	// transaction.
	ErrDuplicateRefund = errors.New("transaction already refunded")

	// ErrRefundExceedsAmount is returned when a refund would exceed the
	// transaction's original amount.
	ErrRefundExceedsAmount = errors.New("refund exceeds original amount")

	// ErrInvalidStatusTransition is returned when a status transition is invalid.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrBehaviorIncomplete is returned when a registration declares a
	// capability its behavior does not implement.
	ErrBehaviorIncomplete = errors.New("behavior does not implement declared capability")
)
