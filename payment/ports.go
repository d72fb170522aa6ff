package payment

import "context"

// Event names callers pass to a Notifier after the core returns a result.
const (
	EventPaymentCompleted = "payment.completed"
	EventPaymentRefunded  = "payment.refunded"
)

// Notifier delivers fire-and-forget notifications. The core never calls it;
// callers invoke it after a successful Process or Refund.
type Notifier interface {
	Notify(ctx context.Context, event string, payload any)
}

// PersistenceSink durably records transactions. The core never calls it;
// callers invoke it with the returned transaction.
type PersistenceSink interface {
	Append(ctx context.Context, tx *Transaction) error
}

// RateProvider supplies a currency conversion rate in fiat minor units per
// whole coin. Sourcing the rate is a collaborator concern; the core only
// consumes the number.
type RateProvider interface {
	Rate(ctx context.Context) (int64, error)
}
