package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bytegate/internal/domain"
)

// Gateway is the single typed contract for the seven core-banking operations.
// Exactly one implementation is active per process: the in-process simulator
// (Engine) or the remote Core client, selected at startup from configuration.
type Gateway interface {
	Deposit(ctx context.Context, in DepositInput) (*DepositOutput, error)
	Withdraw(ctx context.Context, in WithdrawInput) (*WithdrawOutput, error)
	InquireAccount(ctx context.Context, in InquireAccountInput) (*InquireAccountOutput, error)
	Transfer(ctx context.Context, in TransferInput) (*TransferOutput, error)
	InquireLoan(ctx context.Context, in InquireLoanInput) (*InquireLoanOutput, error)
	ApplyLoanPayment(ctx context.Context, in LoanPaymentInput) (*LoanPaymentOutput, error)
	ReverseLoanPayment(ctx context.Context, in ReversalInput) (*ReversalOutput, error)
}

// LedgerStore holds account and loan balances. Callbacks run under the
// entity's lock; returning an error from a callback aborts the update without
// mutating anything. No validation lives here.
type LedgerStore interface {
	AccountBalance(ctx context.Context, number string) (decimal.Decimal, error)
	// UpdateAccount atomically replaces the balance with the callback's
	// result and returns the committed balance.
	UpdateAccount(ctx context.Context, number string, fn func(balance decimal.Decimal) (decimal.Decimal, error)) (decimal.Decimal, error)
	// UpdateAccountPair updates two accounts as a single atomic step. The
	// accounts are checked for existence in argument order; locks are
	// acquired in sorted order internally.
	UpdateAccountPair(ctx context.Context, first, second string, fn func(firstBal, secondBal decimal.Decimal) (decimal.Decimal, decimal.Decimal, error)) error
	Loan(ctx context.Context, number string) (*domain.Loan, error)
	// UpdateLoan applies an atomic update to the loan's balance buckets.
	UpdateLoan(ctx context.Context, number string, fn func(loan *domain.Loan) error) (*domain.Loan, error)
}

// TransactionRegistry records every applied loan payment keyed by its
// authorization code.
type TransactionRegistry interface {
	// Register stores a new record. Fails with ErrDuplicateAuthorization if
	// the code is already present.
	Register(ctx context.Context, record *domain.TransactionRecord) error
	// Find returns a copy of the record, or ErrAuthorizationNotFound.
	Find(ctx context.Context, code string) (*domain.TransactionRecord, error)
	// MarkReversed flips the record to reversed as an atomic check-and-set
	// and returns the updated record. Concurrent attempts on the same code
	// see exactly one success; the rest get ErrDuplicateReversal.
	MarkReversed(ctx context.Context, code, reversalCode, reason string) (*domain.TransactionRecord, error)
}

// AuthorizationGenerator produces authorization codes unique within the
// process lifetime.
type AuthorizationGenerator interface {
	Generate() string
}

// IdempotencyStore caches boundary responses keyed by the caller's
// transaction id. The gateway itself stays dedup-free; this exists only so an
// HTTP retry with the same idTransaccion replays the stored response.
type IdempotencyStore interface {
	// CheckAndSet claims the key if absent and reports whether it already
	// existed, returning any cached response.
	CheckAndSet(ctx context.Context, key string, value []byte, ttl time.Duration) (exists bool, cached []byte, err error)
	// Update overwrites the cached response for a claimed key.
	Update(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
