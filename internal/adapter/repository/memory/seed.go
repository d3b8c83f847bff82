package memory

import (
	"github.com/shopspring/decimal"

	"github.com/iho/bytegate/internal/domain"
)

// Seed is the fixed data set the simulator starts from. It mirrors the test
// accounts and loans provisioned on the Core's staging environment.
type Seed struct {
	Accounts []domain.Account
	Loans    []domain.Loan
}

// DefaultSeed returns the standard simulator data set.
func DefaultSeed() Seed {
	return Seed{
		Accounts: []domain.Account{
			{Number: "1234567890", Balance: decimal.NewFromFloat(5000.00)},
			{Number: "0987654321", Balance: decimal.NewFromFloat(10000.00)},
			{Number: "1111111111", Balance: decimal.NewFromFloat(500.00)},
			{Number: "2222222222", Balance: decimal.Zero},
		},
		Loans: []domain.Loan{
			{
				Number:             "PRES-0001234567",
				Principal:          decimal.NewFromFloat(25000.00),
				Interest:           decimal.NewFromFloat(1250.00),
				LateFee:            decimal.NewFromFloat(150.00),
				NextPaymentAmount:  decimal.NewFromFloat(1500.00),
				NextPaymentDueDate: "15/12/2025",
			},
			{
				Number:             "PRES-0009876543",
				Principal:          decimal.NewFromFloat(50000.00),
				Interest:           decimal.NewFromFloat(2500.00),
				LateFee:            decimal.Zero,
				NextPaymentAmount:  decimal.NewFromFloat(3000.00),
				NextPaymentDueDate: "01/01/2026",
			},
			{
				Number:             "PRES-0001111111",
				Principal:          decimal.NewFromFloat(5000.00),
				Interest:           decimal.NewFromFloat(250.00),
				LateFee:            decimal.NewFromFloat(50.00),
				NextPaymentAmount:  decimal.NewFromFloat(500.00),
				NextPaymentDueDate: "10/12/2025",
			},
			{
				Number:            "PRES-0002222222",
				Principal:         decimal.Zero,
				Interest:          decimal.Zero,
				LateFee:           decimal.Zero,
				NextPaymentAmount: decimal.Zero,
			},
		},
	}
}
