package usecase

import "github.com/shopspring/decimal"

// ResponseCodeOK is the Core's declared-success response code.
const ResponseCodeOK = "0"

// DepositInput represents a cash/check deposit to an account.
type DepositInput struct {
	TransactionID string
	AccountNumber string
	CashAmount    decimal.Decimal
	CheckAmount   decimal.Decimal
	TotalAmount   decimal.Decimal
}

// DepositOutput is the result of a committed deposit.
type DepositOutput struct {
	TransactionID string
	Authorization string
	ResponseCode  string
	Description   string
	AccountNumber string
	NewBalance    decimal.Decimal
}

// WithdrawInput represents a cash withdrawal from an account.
type WithdrawInput struct {
	TransactionID string
	AccountNumber string
	Amount        decimal.Decimal
}

// WithdrawOutput is the result of a committed withdrawal.
type WithdrawOutput struct {
	TransactionID string
	Authorization string
	ResponseCode  string
	Description   string
	AccountNumber string
	NewBalance    decimal.Decimal
}

// InquireAccountInput requests the balance breakdown of an account.
type InquireAccountInput struct {
	TransactionID string
	AccountNumber string
}

// InquireAccountOutput carries the account's balance breakdown.
type InquireAccountOutput struct {
	TransactionID    string
	Authorization    string
	AccountStatus    string
	LastMovementDate string
	TotalBalance     decimal.Decimal
	AvailableBalance decimal.Decimal
	ReservedBalance  decimal.Decimal
	BlockedBalance   decimal.Decimal
	ResponseCode     string
	Description      string
}

// TransferInput represents an inter-account transfer.
type TransferInput struct {
	TransactionID      string
	SourceAccount      string
	DestinationAccount string
	Amount             decimal.Decimal
}

// TransferOutput is the result of a committed transfer.
type TransferOutput struct {
	TransactionID string
	Authorization string
	ResponseCode  string
	Description   string
}

// InquireLoanInput requests the outstanding balances of a loan.
type InquireLoanInput struct {
	TransactionID string
	LoanNumber    string
}

// InquireLoanOutput carries the loan's balance buckets and next payment.
type InquireLoanOutput struct {
	TransactionID      string
	Authorization      string
	LoanNumber         string
	PrincipalBalance   decimal.Decimal
	InterestBalance    decimal.Decimal
	LateFeeBalance     decimal.Decimal
	TotalBalance       decimal.Decimal
	NextPaymentAmount  decimal.Decimal
	NextPaymentDueDate string
	ResponseCode       string
	Description        string
}

// LoanPaymentInput represents a loan payment funded by any mix of an account
// debit, cash and check. AccountNumber is required when DebitAmount is
// positive.
type LoanPaymentInput struct {
	TransactionID string
	LoanNumber    string
	AccountNumber string
	DebitAmount   decimal.Decimal
	CashAmount    decimal.Decimal
	CheckAmount   decimal.Decimal
	TotalAmount   decimal.Decimal
}

// LoanPaymentOutput is the result of a committed loan payment.
type LoanPaymentOutput struct {
	TransactionID string
	Authorization string
	LoanNumber    string
	NewBalance    decimal.Decimal
	ResponseCode  string
	Description   string
}

// ReversalInput requests the reversal of a previously applied loan payment.
type ReversalInput struct {
	TransactionID         string
	LoanNumber            string
	OriginalAuthorization string
	Reason                string
}

// ReversalOutput is the result of a committed reversal.
type ReversalOutput struct {
	TransactionID  string
	Authorization  string
	LoanNumber     string
	AccountNumber  string
	NewBalance     decimal.Decimal
	AmountReversed decimal.Decimal
	ResponseCode   string
	Description    string
}
