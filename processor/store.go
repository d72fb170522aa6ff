package processor

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/payflow/core/payment"
)

// txStore is the append-only in-memory transaction store. Each record
// carries its own lock so the refund unit — check not-yet-refunded, credit
// the ledger, mark refunded — is atomic per transaction while transactions
// for different methods never block each other.
type txStore struct {
	mu   sync.RWMutex
	recs map[uuid.UUID]*txRecord
}

type txRecord struct {
	mu sync.Mutex
	tx payment.Transaction
}

func newTxStore() *txStore {
	return &txStore{
		recs: make(map[uuid.UUID]*txRecord),
	}
}

// append adds a transaction.
func (s *txStore) append(tx payment.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[tx.ID] = &txRecord{tx: tx}
}

// get returns a copy of the transaction.
func (s *txStore) get(id uuid.UUID) (payment.Transaction, error) {
	rec, err := s.record(id)
	if err != nil {
		return payment.Transaction{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.tx, nil
}

// update runs fn on the transaction under its record lock. The mutation is
// kept only if fn returns nil.
func (s *txStore) update(id uuid.UUID, fn func(tx *payment.Transaction) error) (payment.Transaction, error) {
	rec, err := s.record(id)
	if err != nil {
		return payment.Transaction{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	updated := rec.tx
	if err := fn(&updated); err != nil {
		return payment.Transaction{}, err
	}
	rec.tx = updated
	return updated, nil
}

func (s *txStore) record(id uuid.UUID) (*txRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", payment.ErrUnknownTransaction, id)
	}
	return rec, nil
}
