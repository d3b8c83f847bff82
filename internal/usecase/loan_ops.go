package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bytegate/internal/domain"
)

// InquireLoan reports the loan's outstanding balance buckets.
func (e *Engine) InquireLoan(ctx context.Context, in InquireLoanInput) (*InquireLoanOutput, error) {
	e.simulateLatency(ctx, e.latency.LoanInquiry)

	loan, err := e.ledger.Loan(ctx, in.LoanNumber)
	if err != nil {
		return nil, err
	}

	return &InquireLoanOutput{
		TransactionID:      in.TransactionID,
		Authorization:      e.authGen.Generate(),
		LoanNumber:         loan.Number,
		PrincipalBalance:   loan.Principal,
		InterestBalance:    loan.Interest,
		LateFeeBalance:     loan.LateFee,
		TotalBalance:       loan.TotalBalance(),
		NextPaymentAmount:  loan.NextPaymentAmount,
		NextPaymentDueDate: loan.NextPaymentDueDate,
		ResponseCode:       ResponseCodeOK,
		Description:        "inquiry successful",
	}, nil
}

// ApplyLoanPayment applies a multi-part payment to a loan. The amount is
// consumed in waterfall order (late fee, interest, principal) and the
// committed payment is registered for later reversal.
func (e *Engine) ApplyLoanPayment(ctx context.Context, in LoanPaymentInput) (*LoanPaymentOutput, error) {
	e.simulateLatency(ctx, e.latency.LoanPayment)

	if _, err := e.ledger.Loan(ctx, in.LoanNumber); err != nil {
		return nil, err
	}

	if err := domain.ValidateCompositeAmount(in.TotalAmount, in.DebitAmount, in.CashAmount, in.CheckAmount); err != nil {
		return nil, err
	}

	debited := false
	if in.DebitAmount.IsPositive() {
		if in.AccountNumber == "" {
			return nil, domain.ErrInvalidTransaction.WithMessage("an account number is required for the debit leg")
		}

		_, err := e.ledger.UpdateAccount(ctx, in.AccountNumber, func(balance decimal.Decimal) (decimal.Decimal, error) {
			if balance.LessThan(in.DebitAmount) {
				return balance, domain.ErrInsufficientBalance.WithMessage(
					"account %s: available %s, required %s", in.AccountNumber, balance, in.DebitAmount)
			}
			return balance.Sub(in.DebitAmount), nil
		})
		if err != nil {
			return nil, err
		}
		debited = true
	}

	updated, err := e.ledger.UpdateLoan(ctx, in.LoanNumber, func(loan *domain.Loan) error {
		if in.TotalAmount.GreaterThan(loan.TotalBalance()) {
			return domain.ErrInvalidAmount.WithMessage(
				"payment %s exceeds loan balance %s", in.TotalAmount, loan.TotalBalance())
		}
		loan.ApplyPayment(in.TotalAmount)
		return nil
	})
	if err != nil {
		// The loan rejected the payment after the debit leg committed;
		// put the debited funds back so no partial state is observable.
		if debited {
			if _, cerr := e.ledger.UpdateAccount(ctx, in.AccountNumber, func(balance decimal.Decimal) (decimal.Decimal, error) {
				return balance.Add(in.DebitAmount), nil
			}); cerr != nil {
				e.log.Error().Err(cerr).Str("account", in.AccountNumber).Msg("failed to undo debit leg")
			}
		}
		return nil, err
	}

	auth := e.authGen.Generate()
	record := &domain.TransactionRecord{
		AuthorizationCode: auth,
		Kind:              domain.KindLoanPayment,
		LoanNumber:        in.LoanNumber,
		AccountNumber:     in.AccountNumber,
		DebitAmount:       in.DebitAmount,
		CashAmount:        in.CashAmount,
		CheckAmount:       in.CheckAmount,
		TotalAmount:       in.TotalAmount,
		CreatedAt:         time.Now().UTC(),
	}

	if err := e.registry.Register(ctx, record); err != nil {
		// Codes are unique within the process; a collision here means the
		// generator is broken.
		e.log.Error().Err(err).Str("authorization", auth).Msg("failed to register payment")
		return nil, err
	}

	e.log.Info().
		Str("loan", in.LoanNumber).
		Str("amount", in.TotalAmount.String()).
		Str("new_balance", updated.TotalBalance().String()).
		Str("authorization", auth).
		Msg("loan payment applied")

	return &LoanPaymentOutput{
		TransactionID: in.TransactionID,
		Authorization: auth,
		LoanNumber:    in.LoanNumber,
		NewBalance:    updated.TotalBalance(),
		ResponseCode:  ResponseCodeOK,
		Description:   "payment applied",
	}, nil
}

// ReverseLoanPayment undoes exactly one previously applied loan payment. The
// reversed flag is flipped first as an atomic check-and-set, so concurrent
// attempts on the same authorization produce exactly one success.
func (e *Engine) ReverseLoanPayment(ctx context.Context, in ReversalInput) (*ReversalOutput, error) {
	e.simulateLatency(ctx, e.latency.Reversal)

	if _, err := e.ledger.Loan(ctx, in.LoanNumber); err != nil {
		return nil, err
	}

	record, err := e.registry.Find(ctx, in.OriginalAuthorization)
	if err != nil {
		return nil, err
	}

	if record.LoanNumber != in.LoanNumber {
		return nil, domain.ErrInvalidTransaction.WithMessage(
			"authorization %s does not belong to loan %s", in.OriginalAuthorization, in.LoanNumber)
	}

	reversalAuth := e.authGen.Generate()

	record, err = e.registry.MarkReversed(ctx, in.OriginalAuthorization, reversalAuth, in.Reason)
	if err != nil {
		return nil, err
	}

	updated, err := e.ledger.UpdateLoan(ctx, in.LoanNumber, func(loan *domain.Loan) error {
		loan.RestorePayment(record.TotalAmount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if record.DebitAmount.IsPositive() && record.AccountNumber != "" {
		if _, err := e.ledger.UpdateAccount(ctx, record.AccountNumber, func(balance decimal.Decimal) (decimal.Decimal, error) {
			return balance.Add(record.DebitAmount), nil
		}); err != nil {
			// The debit account is gone; the refund leg is skipped and only
			// logged, matching the Core's behavior.
			e.log.Warn().
				Str("account", record.AccountNumber).
				Str("amount", record.DebitAmount.String()).
				Msg("refund skipped, debit account no longer exists")
		}
	}

	e.log.Info().
		Str("loan", in.LoanNumber).
		Str("amount_reversed", record.TotalAmount.String()).
		Str("original_authorization", in.OriginalAuthorization).
		Str("reversal_authorization", reversalAuth).
		Str("reason", in.Reason).
		Msg("loan payment reversed")

	return &ReversalOutput{
		TransactionID:  in.TransactionID,
		Authorization:  reversalAuth,
		LoanNumber:     in.LoanNumber,
		AccountNumber:  record.AccountNumber,
		NewBalance:     updated.TotalBalance(),
		AmountReversed: record.TotalAmount,
		ResponseCode:   ResponseCodeOK,
		Description:    "reversal applied",
	}, nil
}
