package memory

import (
	"context"
	"sync"

	"github.com/anikdas/ledgerbook/internal/domain"
)

// TransactionStore is an in-memory, versioned transaction list. It is the
// explicit owner of the growing list: producers append through it and the
// derivation engine only ever sees a copied snapshot. The version counter
// advances on every successful mutation.
type TransactionStore struct {
	mu      sync.RWMutex
	txs     []domain.Transaction
	version int64
}

// NewTransactionStore creates an empty TransactionStore.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{}
}

// Append adds a single transaction to the end of the list.
func (s *TransactionStore) Append(ctx context.Context, tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = append(s.txs, *tx)
	s.version++

	return nil
}

// AppendBatch adds multiple transactions in order, as one version step.
func (s *TransactionStore) AppendBatch(ctx context.Context, txs []*domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range txs {
		s.txs = append(s.txs, *tx)
	}
	s.version++

	return nil
}

// List returns a copy of the transaction list in append order. Callers own
// the returned slice.
func (s *TransactionStore) List(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Transaction, len(s.txs))
	copy(snapshot, s.txs)

	return snapshot, nil
}

// Reset clears the list entirely.
func (s *TransactionStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = nil
	s.version++

	return nil
}

// Count returns the number of stored transactions.
func (s *TransactionStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.txs)), nil
}

// Version returns the current mutation counter. Useful for detecting
// staleness of a previously taken snapshot.
func (s *TransactionStore) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}
