package domain

import "github.com/shopspring/decimal"

// Loan carries the three outstanding balance buckets of a loan plus its next
// scheduled payment.
type Loan struct {
	Number             string
	Principal          decimal.Decimal
	Interest           decimal.Decimal
	LateFee            decimal.Decimal
	NextPaymentAmount  decimal.Decimal
	NextPaymentDueDate string // DD/MM/YYYY, empty when the loan is settled
}

// TotalBalance returns principal + interest + late fee.
func (l *Loan) TotalBalance() decimal.Decimal {
	return l.Principal.Add(l.Interest).Add(l.LateFee)
}

// ApplyPayment consumes amount against the buckets in waterfall order: late
// fee first, then interest, then principal. Each reduction is bounded by the
// bucket balance, so no bucket ever goes negative. The caller must have
// verified that amount does not exceed TotalBalance.
func (l *Loan) ApplyPayment(amount decimal.Decimal) {
	remaining := amount

	if l.LateFee.IsPositive() {
		paid := decimal.Min(remaining, l.LateFee)
		l.LateFee = l.LateFee.Sub(paid)
		remaining = remaining.Sub(paid)
	}

	if remaining.IsPositive() && l.Interest.IsPositive() {
		paid := decimal.Min(remaining, l.Interest)
		l.Interest = l.Interest.Sub(paid)
		remaining = remaining.Sub(paid)
	}

	if remaining.IsPositive() && l.Principal.IsPositive() {
		paid := decimal.Min(remaining, l.Principal)
		l.Principal = l.Principal.Sub(paid)
	}
}

// RestorePayment re-credits a reversed payment. The Core restores in the
// opposite bucket order, principal first, each credit bounded by the full
// reversed amount rather than by what the original payment took from that
// bucket. A reversal therefore lands entirely on principal even when the
// payment cleared fees or interest; downstream reconciliation relies on this
// distribution, so it is kept as-is.
func (l *Loan) RestorePayment(amount decimal.Decimal) {
	remaining := amount

	credit := decimal.Min(remaining, amount)
	l.Principal = l.Principal.Add(credit)
	remaining = remaining.Sub(credit)

	if remaining.IsPositive() {
		credit = decimal.Min(remaining, amount)
		l.Interest = l.Interest.Add(credit)
		remaining = remaining.Sub(credit)
	}

	if remaining.IsPositive() {
		l.LateFee = l.LateFee.Add(remaining)
	}
}
