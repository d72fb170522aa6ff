// Package ledger holds authoritative balance state for balance-tracked
// payment methods.
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/payflow/core/payment"
)

// ErrAccountExists is returned when opening an account that is already open.
var ErrAccountExists = errors.New("account already exists")

// account serializes all mutation of one method's balance.
type account struct {
	mu      sync.Mutex
	balance int64
}

// Ledger tracks per-method balances. Debits on the same method serialize on
// the account lock; operations on different methods do not contend.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*account
	logger   *zap.Logger
}

// New creates a new Ledger.
func New(logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		accounts: make(map[uuid.UUID]*account),
		logger:   logger,
	}
}

// Open creates the account for a method with an initial balance.
func (l *Ledger) Open(methodID uuid.UUID, initial int64) error {
	if initial < 0 {
		return fmt.Errorf("%w: initial balance %d", payment.ErrInvalidAmount, initial)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[methodID]; ok {
		return fmt.Errorf("%w: %s", ErrAccountExists, methodID)
	}
	l.accounts[methodID] = &account{balance: initial}

	l.logger.Debug("ledger account opened",
		zap.String("method_id", methodID.String()),
		zap.Int64("balance", initial),
	)
	return nil
}

// Debit decrements the method's balance. It fails with
// payment.ErrInsufficientBalance if the debit would drive the balance
// negative; the check and the decrement are one atomic step.
func (l *Ledger) Debit(methodID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return payment.ErrInvalidAmount
	}

	acct, err := l.account(methodID)
	if err != nil {
		return err
	}

	acct.mu.Lock()
	defer acct.mu.Unlock()
	if acct.balance < amount {
		return fmt.Errorf("%w: balance %d, debit %d", payment.ErrInsufficientBalance, acct.balance, amount)
	}
	acct.balance -= amount
	return nil
}

// Credit increments the method's balance.
func (l *Ledger) Credit(methodID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return payment.ErrInvalidAmount
	}

	acct, err := l.account(methodID)
	if err != nil {
		return err
	}

	acct.mu.Lock()
	defer acct.mu.Unlock()
	acct.balance += amount
	return nil
}

// Balance returns the method's current balance.
func (l *Ledger) Balance(methodID uuid.UUID) (int64, error) {
	acct, err := l.account(methodID)
	if err != nil {
		return 0, err
	}

	acct.mu.Lock()
	defer acct.mu.Unlock()
	return acct.balance, nil
}

func (l *Ledger) account(methodID uuid.UUID) (*account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acct, ok := l.accounts[methodID]
	if !ok {
		return nil, fmt.Errorf("%w: no ledger account for %s", payment.ErrUnknownMethod, methodID)
	}
	return acct, nil
}
