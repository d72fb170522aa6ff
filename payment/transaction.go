package payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transaction is the record of one payment attempt. It is created by the
// Processor and, apart from a single refund, immutable afterwards.
type Transaction struct {
	ID       uuid.UUID
	MethodID uuid.UUID

	// Amount is the original payment amount in minor currency units.
	Amount int64

	// FeesCharged is zero for kinds without the fee-bearing capability.
	FeesCharged int64

	Status Status

	// RefundedAmount is the amount returned by the transaction's refund,
	// zero while the status is not Refunded.
	RefundedAmount int64

	CreatedAt time.Time
}

// NewTransaction creates a completed transaction for a processed payment.
func NewTransaction(methodID uuid.UUID, amount, fees int64) Transaction {
	return Transaction{
		ID:          uuid.New(),
		MethodID:    methodID,
		Amount:      amount,
		FeesCharged: fees,
		Status:      StatusCompleted,
		CreatedAt:   time.Now(),
	}
}

// NewFailedTransaction records a payment attempt that passed validation but
// could not settle.
func NewFailedTransaction(methodID uuid.UUID, amount int64) Transaction {
	return Transaction{
		ID:        uuid.New(),
		MethodID:  methodID,
		Amount:    amount,
		Status:    StatusFailed,
		CreatedAt: time.Now(),
	}
}

// CanRefund reports whether a refund of the given amount is permitted,
// returning the typed error that forbids it otherwise.
func (t *Transaction) CanRefund(amount int64) error {
	if t.Status == StatusRefunded {
		return ErrDuplicateRefund
	}
	if !t.Status.CanTransitionTo(StatusRefunded) {
		return fmt.Errorf("%w: cannot refund a %s transaction", ErrInvalidStatusTransition, t.Status)
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > t.Amount-t.RefundedAmount {
		return ErrRefundExceedsAmount
	}
	return nil
}

// MarkRefunded applies a refund of the given amount. A transaction transitions
// to Refunded at most once; later refunds fail with ErrDuplicateRefund.
func (t *Transaction) MarkRefunded(amount int64) error {
	if err := t.CanRefund(amount); err != nil {
		return err
	}
	t.RefundedAmount += amount
	t.Status = StatusRefunded
	return nil
}
