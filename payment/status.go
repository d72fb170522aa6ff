package payment

// Status represents the status of a transaction.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// IsTerminal returns true if the status is a terminal state.
// Completed is not terminal: it may still transition to Refunded.
func (s Status) IsTerminal() bool {
	return s == StatusFailed || s == StatusRefunded
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusCompleted:
		return target == StatusRefunded
	case StatusFailed, StatusRefunded:
		return false
	default:
		return false
	}
}
