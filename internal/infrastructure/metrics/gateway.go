package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bytegate/internal/domain"
	"github.com/iho/bytegate/internal/usecase"
)

// InstrumentedGateway wraps any Gateway implementation with operation
// metrics. Both the simulator and the remote client sit behind the same
// decorator.
type InstrumentedGateway struct {
	next    usecase.Gateway
	metrics *Metrics
}

// NewInstrumentedGateway creates the decorator.
func NewInstrumentedGateway(next usecase.Gateway, m *Metrics) *InstrumentedGateway {
	return &InstrumentedGateway{next: next, metrics: m}
}

var _ usecase.Gateway = (*InstrumentedGateway)(nil)

func (g *InstrumentedGateway) observe(operation string, start time.Time, amount decimal.Decimal, err error) {
	g.metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		g.metrics.OperationsTotal.WithLabelValues(operation, "error").Inc()

		code := "internal"
		var gwErr *domain.Error
		if errors.As(err, &gwErr) {
			code = gwErr.Code
		}
		g.metrics.OperationErrors.WithLabelValues(operation, code).Inc()

		return
	}

	g.metrics.OperationsTotal.WithLabelValues(operation, "success").Inc()
	if amount.IsPositive() {
		amt, _ := amount.Float64()
		g.metrics.AmountsProcessed.WithLabelValues(operation).Observe(amt)
	}
}

// Deposit implements usecase.Gateway.
func (g *InstrumentedGateway) Deposit(ctx context.Context, in usecase.DepositInput) (*usecase.DepositOutput, error) {
	start := time.Now()
	out, err := g.next.Deposit(ctx, in)
	g.observe("deposit", start, in.TotalAmount, err)
	return out, err
}

// Withdraw implements usecase.Gateway.
func (g *InstrumentedGateway) Withdraw(ctx context.Context, in usecase.WithdrawInput) (*usecase.WithdrawOutput, error) {
	start := time.Now()
	out, err := g.next.Withdraw(ctx, in)
	g.observe("withdraw", start, in.Amount, err)
	return out, err
}

// InquireAccount implements usecase.Gateway.
func (g *InstrumentedGateway) InquireAccount(ctx context.Context, in usecase.InquireAccountInput) (*usecase.InquireAccountOutput, error) {
	start := time.Now()
	out, err := g.next.InquireAccount(ctx, in)
	g.observe("inquire_account", start, decimal.Zero, err)
	return out, err
}

// Transfer implements usecase.Gateway.
func (g *InstrumentedGateway) Transfer(ctx context.Context, in usecase.TransferInput) (*usecase.TransferOutput, error) {
	start := time.Now()
	out, err := g.next.Transfer(ctx, in)
	g.observe("transfer", start, in.Amount, err)
	return out, err
}

// InquireLoan implements usecase.Gateway.
func (g *InstrumentedGateway) InquireLoan(ctx context.Context, in usecase.InquireLoanInput) (*usecase.InquireLoanOutput, error) {
	start := time.Now()
	out, err := g.next.InquireLoan(ctx, in)
	g.observe("inquire_loan", start, decimal.Zero, err)
	return out, err
}

// ApplyLoanPayment implements usecase.Gateway.
func (g *InstrumentedGateway) ApplyLoanPayment(ctx context.Context, in usecase.LoanPaymentInput) (*usecase.LoanPaymentOutput, error) {
	start := time.Now()
	out, err := g.next.ApplyLoanPayment(ctx, in)
	g.observe("loan_payment", start, in.TotalAmount, err)
	return out, err
}

// ReverseLoanPayment implements usecase.Gateway.
func (g *InstrumentedGateway) ReverseLoanPayment(ctx context.Context, in usecase.ReversalInput) (*usecase.ReversalOutput, error) {
	start := time.Now()
	out, err := g.next.ReverseLoanPayment(ctx, in)
	g.observe("reversal", start, decimal.Zero, err)
	if err == nil {
		g.metrics.ReversalsTotal.Inc()
	}
	return out, err
}
