package domain

import "github.com/shopspring/decimal"

var (
	reserveRate = decimal.NewFromFloat(0.10)
	blockRate   = decimal.NewFromFloat(0.05)
)

// Account holds the current balance of a deposit account. Accounts come from
// a fixed seed set and are never deleted during the process lifetime.
type Account struct {
	Number  string
	Balance decimal.Decimal
}

// CanDebit reports whether the balance covers amount.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// BalanceBreakdown derives the figures the Core reports on an account
// inquiry: 10% of the balance held as reserves, 5% as blocks, the remainder
// available, each rounded to two decimals.
func (a *Account) BalanceBreakdown() (reserved, blocked, available decimal.Decimal) {
	reserved = a.Balance.Mul(reserveRate).Round(2)
	blocked = a.Balance.Mul(blockRate).Round(2)
	available = a.Balance.Sub(reserved).Sub(blocked).Round(2)
	return reserved, blocked, available
}
