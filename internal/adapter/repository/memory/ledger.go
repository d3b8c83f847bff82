package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/bytegate/internal/domain"
)

// LedgerStore is the in-memory ledger backing the simulator. Mutations to the
// same account or loan are serialized through a per-entity lock; distinct
// entities proceed fully in parallel.
type LedgerStore struct {
	mu       sync.RWMutex // guards the maps, not the balances
	accounts map[string]*accountSlot
	loans    map[string]*loanSlot
}

type accountSlot struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

type loanSlot struct {
	mu   sync.Mutex
	loan domain.Loan
}

// NewLedgerStore creates a ledger populated with seed.
func NewLedgerStore(seed Seed) *LedgerStore {
	s := &LedgerStore{}
	s.Reset(seed)
	return s
}

// Reset discards all state and reloads seed. Intended for tests.
func (s *LedgerStore) Reset(seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = make(map[string]*accountSlot, len(seed.Accounts))
	for _, a := range seed.Accounts {
		s.accounts[a.Number] = &accountSlot{balance: a.Balance}
	}

	s.loans = make(map[string]*loanSlot, len(seed.Loans))
	for _, l := range seed.Loans {
		s.loans[l.Number] = &loanSlot{loan: l}
	}
}

func (s *LedgerStore) account(number string) (*accountSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.accounts[number]
	return slot, ok
}

func (s *LedgerStore) loan(number string) (*loanSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.loans[number]
	return slot, ok
}

// AccountBalance returns the current balance of an account.
func (s *LedgerStore) AccountBalance(ctx context.Context, number string) (decimal.Decimal, error) {
	slot, ok := s.account(number)
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound.WithMessage("account %s does not exist", number)
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.balance, nil
}

// UpdateAccount atomically replaces the balance with the callback's result.
// A callback error aborts the update.
func (s *LedgerStore) UpdateAccount(ctx context.Context, number string, fn func(balance decimal.Decimal) (decimal.Decimal, error)) (decimal.Decimal, error) {
	slot, ok := s.account(number)
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound.WithMessage("account %s does not exist", number)
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	next, err := fn(slot.balance)
	if err != nil {
		return slot.balance, err
	}

	slot.balance = next
	return next, nil
}

// UpdateAccountPair updates two accounts as one atomic step. Existence is
// checked in argument order; locks are taken in sorted order so two opposing
// concurrent transfers cannot deadlock.
func (s *LedgerStore) UpdateAccountPair(ctx context.Context, first, second string, fn func(firstBal, secondBal decimal.Decimal) (decimal.Decimal, decimal.Decimal, error)) error {
	if first == second {
		return domain.ErrInvalidTransaction.WithMessage("pair update requires two distinct accounts")
	}

	a, ok := s.account(first)
	if !ok {
		return domain.ErrAccountNotFound.WithMessage("account %s does not exist", first)
	}

	b, ok := s.account(second)
	if !ok {
		return domain.ErrAccountNotFound.WithMessage("account %s does not exist", second)
	}

	if first < second {
		a.mu.Lock()
		b.mu.Lock()
	} else {
		b.mu.Lock()
		a.mu.Lock()
	}
	defer a.mu.Unlock()
	defer b.mu.Unlock()

	nextA, nextB, err := fn(a.balance, b.balance)
	if err != nil {
		return err
	}

	a.balance = nextA
	b.balance = nextB
	return nil
}

// Loan returns a copy of the loan.
func (s *LedgerStore) Loan(ctx context.Context, number string) (*domain.Loan, error) {
	slot, ok := s.loan(number)
	if !ok {
		return nil, domain.ErrLoanNotFound.WithMessage("loan %s does not exist", number)
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	loan := slot.loan
	return &loan, nil
}

// UpdateLoan applies an atomic update to the loan. The callback operates on a
// copy that is committed only when it returns nil.
func (s *LedgerStore) UpdateLoan(ctx context.Context, number string, fn func(loan *domain.Loan) error) (*domain.Loan, error) {
	slot, ok := s.loan(number)
	if !ok {
		return nil, domain.ErrLoanNotFound.WithMessage("loan %s does not exist", number)
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	loan := slot.loan
	if err := fn(&loan); err != nil {
		return nil, err
	}

	slot.loan = loan
	return &loan, nil
}
