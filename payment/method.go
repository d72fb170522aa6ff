package payment

import (
	"time"

	"github.com/google/uuid"
)

// Method is an enrolled payment method: a concrete instance of a registered
// kind. Its balance, if the kind is balance-tracked, lives in the Ledger and
// is never mutated here.
type Method struct {
	ID         uuid.UUID
	Kind       string
	Descriptor Descriptor
	CreatedAt  time.Time
}
