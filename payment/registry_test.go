package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test Behaviors ---

// plainBehavior implements only the mandatory contract.
type plainBehavior struct {
	kind string
}

func (b *plainBehavior) Kind() string                { return b.kind }
func (b *plainBehavior) Validate(amount int64) error { return CheckAmount(amount, 0) }
func (b *plainBehavior) Process(ctx context.Context, amount int64) (Instruction, error) {
	return Instruction{}, nil
}

// fullBehavior implements the fee and refund interfaces as well.
type fullBehavior struct {
	plainBehavior
	fee int64
}

func (b *fullBehavior) Fees(amount int64) int64 { return b.fee }
func (b *fullBehavior) Refund(ctx context.Context, tx *Transaction, amount int64) (Instruction, error) {
	return Instruction{}, nil
}

func TestRegistryRegister(t *testing.T) {
	t.Run("registers a plain kind", func(t *testing.T) {
		reg := NewRegistry()

		err := reg.Register(Descriptor{}, &plainBehavior{kind: "plain"})
		require.NoError(t, err)

		entry, err := reg.Lookup("plain")
		require.NoError(t, err)
		assert.Nil(t, entry.FeeCalc)
		assert.Nil(t, entry.Refunder)
	})

	t.Run("resolves optional interfaces once at registration", func(t *testing.T) {
		reg := NewRegistry()
		desc := Descriptor{
			Capabilities: []Capability{CapabilityFeeBearing, CapabilityRefundable},
		}

		err := reg.Register(desc, &fullBehavior{plainBehavior{kind: "full"}, 7})
		require.NoError(t, err)

		entry, err := reg.Lookup("full")
		require.NoError(t, err)
		require.NotNil(t, entry.FeeCalc)
		require.NotNil(t, entry.Refunder)
		assert.Equal(t, int64(7), entry.FeeCalc.Fees(100))
	})

	t.Run("rejects duplicate kind", func(t *testing.T) {
		reg := NewRegistry()

		require.NoError(t, reg.Register(Descriptor{}, &plainBehavior{kind: "dup"}))
		err := reg.Register(Descriptor{}, &plainBehavior{kind: "dup"})
		assert.ErrorIs(t, err, ErrDuplicateKind)
	})

	t.Run("rejects declared fee capability without implementation", func(t *testing.T) {
		reg := NewRegistry()
		desc := Descriptor{Capabilities: []Capability{CapabilityFeeBearing}}

		err := reg.Register(desc, &plainBehavior{kind: "liar"})
		assert.ErrorIs(t, err, ErrBehaviorIncomplete)

		_, err = reg.Lookup("liar")
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("rejects declared refund capability without implementation", func(t *testing.T) {
		reg := NewRegistry()
		desc := Descriptor{Capabilities: []Capability{CapabilityRefundable}}

		err := reg.Register(desc, &plainBehavior{kind: "liar"})
		assert.ErrorIs(t, err, ErrBehaviorIncomplete)
	})
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Lookup("missing")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRegistryKinds(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Descriptor{}, &plainBehavior{kind: "a"}))
	require.NoError(t, reg.Register(Descriptor{}, &plainBehavior{kind: "b"}))

	assert.ElementsMatch(t, []string{"a", "b"}, reg.Kinds())
}

func TestDescriptorHas(t *testing.T) {
	desc := Descriptor{
		Capabilities: []Capability{CapabilityFeeBearing, CapabilityRefundable},
	}

	assert.True(t, desc.Has(CapabilityFeeBearing))
	assert.True(t, desc.Has(CapabilityRefundable))
	assert.False(t, desc.Has(CapabilityBalanceTracked))

	assert.True(t, desc.HasAll([]Capability{CapabilityFeeBearing, CapabilityRefundable}))
	assert.False(t, desc.HasAll([]Capability{CapabilityFeeBearing, CapabilityBalanceTracked}))
	assert.True(t, desc.HasAll(nil))
}
