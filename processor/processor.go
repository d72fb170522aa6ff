// Package processor orchestrates payment processing. Every operation is
// resolved through capability checks on the registry entry; the code path is
// identical for every kind, which is what keeps kinds substitutable while
// the catalog stays open for extension.
package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/payflow/core/ledger"
	"github.com/payflow/core/metrics"
	"github.com/payflow/core/payment"
)

const (
	outcomeCompleted = "completed"
	outcomeFailed    = "failed"
	outcomeRejected  = "rejected"
)

// Processor executes payments and refunds against enrolled methods.
type Processor struct {
	registry *payment.Registry
	ledger   *ledger.Ledger
	store    *txStore
	metrics  *metrics.Metrics
	logger   *zap.Logger

	mu      sync.RWMutex
	methods map[uuid.UUID]*payment.Method
}

// New creates a Processor. m may be nil to disable instrumentation; a nil
// logger is replaced with a no-op logger.
func New(registry *payment.Registry, led *ledger.Ledger, m *metrics.Metrics, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		registry: registry,
		ledger:   led,
		store:    newTxStore(),
		metrics:  m,
		logger:   logger,
		methods:  make(map[uuid.UUID]*payment.Method),
	}
}

// Enroll instantiates a method of a registered kind. initialBalance seeds
// the ledger for balance-tracked kinds and must be zero for all others.
func (p *Processor) Enroll(kind string, initialBalance int64) (*payment.Method, error) {
	entry, err := p.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	tracked := entry.Descriptor.Has(payment.CapabilityBalanceTracked)
	if !tracked && initialBalance != 0 {
		return nil, fmt.Errorf("%w: %s does not track balances", payment.ErrCapabilityUnsupported, kind)
	}
	if initialBalance < 0 {
		return nil, fmt.Errorf("%w: initial balance %d", payment.ErrInvalidAmount, initialBalance)
	}

	m := &payment.Method{
		ID:         uuid.New(),
		Kind:       kind,
		Descriptor: entry.Descriptor,
		CreatedAt:  time.Now(),
	}
	if tracked {
		if err := p.ledger.Open(m.ID, initialBalance); err != nil {
			return nil, err
		}
	}

	p.mu.Lock()
	p.methods[m.ID] = m
	p.mu.Unlock()

	p.logger.Info("method enrolled",
		zap.String("method_id", m.ID.String()),
		zap.String("kind", kind),
	)
	return m, nil
}

// Method returns an enrolled method.
func (p *Processor) Method(methodID uuid.UUID) (*payment.Method, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	m, ok := p.methods[methodID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", payment.ErrUnknownMethod, methodID)
	}
	return m, nil
}

// Transaction returns a copy of a recorded transaction.
func (p *Processor) Transaction(txID uuid.UUID) (*payment.Transaction, error) {
	tx, err := p.store.get(txID)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Balance returns the ledger balance of a balance-tracked method.
func (p *Processor) Balance(methodID uuid.UUID) (int64, error) {
	if _, err := p.Method(methodID); err != nil {
		return 0, err
	}
	return p.ledger.Balance(methodID)
}

// Process validates and executes a payment against the method, settles any
// ledger instruction, and records the transaction. All failures are typed
// values; nothing here panics.
func (p *Processor) Process(ctx context.Context, methodID uuid.UUID, amount int64) (*payment.Transaction, error) {
	start := time.Now()

	m, err := p.Method(methodID)
	if err != nil {
		return nil, err
	}
	entry, err := p.registry.Lookup(m.Kind)
	if err != nil {
		return nil, err
	}

	if err := entry.Behavior.Validate(amount); err != nil {
		p.record(m.Kind, outcomeRejected, 0, start)
		return nil, err
	}

	instr, err := entry.Behavior.Process(ctx, amount)
	if err != nil {
		p.record(m.Kind, outcomeFailed, 0, start)
		return nil, err
	}

	var fees int64
	if entry.Descriptor.Has(payment.CapabilityFeeBearing) {
		fees = entry.FeeCalc.Fees(amount)
	}

	if instr.Debit > 0 {
		if err := p.ledger.Debit(methodID, instr.Debit); err != nil {
			failed := payment.NewFailedTransaction(methodID, amount)
			p.store.append(failed)
			p.record(m.Kind, outcomeFailed, 0, start)
			p.logger.Warn("payment settlement failed",
				zap.String("method_id", methodID.String()),
				zap.String("kind", m.Kind),
				zap.Int64("amount", amount),
				zap.Error(err),
			)
			return nil, err
		}
	}

	tx := payment.NewTransaction(methodID, amount, fees)
	p.store.append(tx)
	p.record(m.Kind, outcomeCompleted, fees, start)

	p.logger.Info("payment processed",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("method_id", methodID.String()),
		zap.String("kind", m.Kind),
		zap.Int64("amount", amount),
		zap.Int64("fees", fees),
	)
	return &tx, nil
}

// Refund refunds a transaction. The originating kind must declare
// CapabilityRefundable; unsupported capability is an expected, typed result,
// never a kind check. The check-credit-mark sequence runs as one atomic unit
// under the transaction's record lock.
func (p *Processor) Refund(ctx context.Context, txID uuid.UUID, amount int64) (*payment.Transaction, error) {
	tx, err := p.store.get(txID)
	if err != nil {
		return nil, err
	}
	m, err := p.Method(tx.MethodID)
	if err != nil {
		return nil, err
	}
	entry, err := p.registry.Lookup(m.Kind)
	if err != nil {
		return nil, err
	}

	if !entry.Descriptor.Has(payment.CapabilityRefundable) {
		p.recordRefund(m.Kind, outcomeRejected)
		return nil, fmt.Errorf("%w: %s is not refundable", payment.ErrCapabilityUnsupported, m.Kind)
	}

	updated, err := p.store.update(txID, func(t *payment.Transaction) error {
		if err := t.CanRefund(amount); err != nil {
			return err
		}

		instr, err := entry.Refunder.Refund(ctx, t, amount)
		if err != nil {
			return err
		}
		if instr.Credit > 0 {
			if err := p.ledger.Credit(t.MethodID, instr.Credit); err != nil {
				return err
			}
		}

		return t.MarkRefunded(amount)
	})
	if err != nil {
		p.recordRefund(m.Kind, outcomeRejected)
		return nil, err
	}

	p.recordRefund(m.Kind, outcomeCompleted)
	p.logger.Info("payment refunded",
		zap.String("transaction_id", txID.String()),
		zap.String("method_id", tx.MethodID.String()),
		zap.String("kind", m.Kind),
		zap.Int64("amount", amount),
	)
	return &updated, nil
}

// Fees returns the fee the method's kind would charge for the amount. Kinds
// without the fee-bearing capability always yield zero, never an error.
func (p *Processor) Fees(ctx context.Context, methodID uuid.UUID, amount int64) (int64, error) {
	m, err := p.Method(methodID)
	if err != nil {
		return 0, err
	}
	entry, err := p.registry.Lookup(m.Kind)
	if err != nil {
		return 0, err
	}

	if !entry.Descriptor.Has(payment.CapabilityFeeBearing) {
		return 0, nil
	}
	return entry.FeeCalc.Fees(amount), nil
}

func (p *Processor) record(kind, status string, fees int64, start time.Time) {
	if p.metrics != nil {
		p.metrics.RecordPayment(kind, status, fees, time.Since(start))
	}
}

func (p *Processor) recordRefund(kind, status string) {
	if p.metrics != nil {
		p.metrics.RecordRefund(kind, status)
	}
}
