package payment

// Capability is an optional operation a payment kind may or may not support.
type Capability string

const (
	// CapabilityFeeBearing marks kinds that charge a processing fee.
	CapabilityFeeBearing Capability = "fee_bearing"

	// CapabilityRefundable marks kinds whose transactions can be refunded.
	CapabilityRefundable Capability = "refundable"

	// CapabilityBalanceTracked marks kinds backed by a ledger balance.
	CapabilityBalanceTracked Capability = "balance_tracked"
)

// Descriptor is a kind's static declaration: the capabilities it supports
// and the bounds used by validation.
type Descriptor struct {
	Capabilities []Capability

	// Ceiling is the per-transaction limit in minor currency units.
	// Zero means no ceiling.
	Ceiling int64
}

// Has reports whether the descriptor declares the capability.
func (d Descriptor) Has(c Capability) bool {
	for _, dc := range d.Capabilities {
		if dc == c {
			return true
		}
	}
	return false
}

// HasAll reports whether the descriptor declares all given capabilities.
func (d Descriptor) HasAll(caps []Capability) bool {
	for _, c := range caps {
		if !d.Has(c) {
			return false
		}
	}
	return true
}
