package payment

import "context"

// Instruction tells the Processor how to settle an operation against the
// Ledger. A zero Instruction means the kind does not touch balance state.
type Instruction struct {
	// Debit is the amount to debit from the method's balance.
	Debit int64

	// Credit is the amount to credit back to the method's balance.
	Credit int64
}

// Behavior is the uniform contract every payment kind implements.
//
// Validate may reject an amount only for being non-positive or above the
// kind's configured ceiling; implementations delegate to CheckAmount and
// must not strengthen that precondition. Process never fails for kinds
// without balance tracking once the amount validated; balance sufficiency
// is enforced by the Ledger when the returned instruction is applied, not
// here.
type Behavior interface {
	// Kind returns the kind tag this behavior registers under.
	Kind() string

	// Validate checks the amount against the shared contract.
	Validate(amount int64) error

	// Process executes the payment and returns the ledger instruction to
	// apply, if any.
	Process(ctx context.Context, amount int64) (Instruction, error)
}

// FeeCalculator is implemented by kinds declaring CapabilityFeeBearing.
// Fees is a total function: non-negative, no error path. The Processor
// checks the capability before calling, so kinds without it never implement
// this interface.
type FeeCalculator interface {
	Fees(amount int64) int64
}

// Refunder is implemented by kinds declaring CapabilityRefundable. It is
// only invoked on transactions the Processor has already cleared for refund.
type Refunder interface {
	Refund(ctx context.Context, tx *Transaction, amount int64) (Instruction, error)
}

// CheckAmount is the shared validation rule: the amount is positive and
// within the ceiling (zero ceiling means unlimited). Variants delegate here
// so none can reject amounts the contract allows.
func CheckAmount(amount, ceiling int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if ceiling > 0 && amount > ceiling {
		return ErrLimitExceeded
	}
	return nil
}
