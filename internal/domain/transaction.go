package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies what a registered transaction did.
type TransactionKind string

// KindLoanPayment is the only kind with reversal tracking.
const KindLoanPayment TransactionKind = "LOAN_PAYMENT"

// TransactionRecord is the registry entry for a committed loan payment, keyed
// by its authorization code. It is mutated in place exactly once, when the
// payment is reversed, and never deleted.
type TransactionRecord struct {
	AuthorizationCode         string
	Kind                      TransactionKind
	LoanNumber                string
	AccountNumber             string // set when a debit leg was used
	DebitAmount               decimal.Decimal
	CashAmount                decimal.Decimal
	CheckAmount               decimal.Decimal
	TotalAmount               decimal.Decimal
	Reversed                  bool
	ReversalAuthorizationCode string
	ReversalReason            string
	CreatedAt                 time.Time
}
