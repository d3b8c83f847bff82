package memory

import (
	"context"
	"sync"

	"github.com/iho/bytegate/internal/domain"
)

// TransactionRegistry is the in-memory record of applied loan payments,
// keyed by authorization code. Records are mutated in place exactly once,
// when reversed, and never deleted.
type TransactionRegistry struct {
	mu      sync.Mutex
	records map[string]*domain.TransactionRecord
}

// NewTransactionRegistry creates an empty registry.
func NewTransactionRegistry() *TransactionRegistry {
	return &TransactionRegistry{records: make(map[string]*domain.TransactionRecord)}
}

// Register stores a new record.
func (r *TransactionRegistry) Register(ctx context.Context, record *domain.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.AuthorizationCode]; exists {
		return domain.ErrDuplicateAuthorization.WithMessage(
			"authorization %s is already registered", record.AuthorizationCode)
	}

	stored := *record
	r.records[record.AuthorizationCode] = &stored
	return nil
}

// Find returns a copy of the record for code.
func (r *TransactionRegistry) Find(ctx context.Context, code string) (*domain.TransactionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[code]
	if !ok {
		return nil, domain.ErrAuthorizationNotFound.WithMessage("authorization %s not found", code)
	}

	out := *record
	return &out, nil
}

// MarkReversed flips the record to reversed. The check and the write happen
// under one lock, so concurrent reversal attempts on the same code are
// linearized: exactly one succeeds, the rest get ErrDuplicateReversal.
func (r *TransactionRegistry) MarkReversed(ctx context.Context, code, reversalCode, reason string) (*domain.TransactionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[code]
	if !ok {
		return nil, domain.ErrAuthorizationNotFound.WithMessage("authorization %s not found", code)
	}

	if record.Reversed {
		return nil, domain.ErrDuplicateReversal.WithMessage("authorization %s was already reversed", code)
	}

	record.Reversed = true
	record.ReversalAuthorizationCode = reversalCode
	record.ReversalReason = reason

	out := *record
	return &out, nil
}
