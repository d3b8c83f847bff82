package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bytegate/internal/domain"
)

// Deposit credits an account with a cash/check deposit.
func (e *Engine) Deposit(ctx context.Context, in DepositInput) (*DepositOutput, error) {
	e.simulateLatency(ctx, e.latency.Deposit)

	if _, err := e.ledger.AccountBalance(ctx, in.AccountNumber); err != nil {
		return nil, err
	}

	if err := domain.ValidateCompositeAmount(in.TotalAmount, in.CashAmount, in.CheckAmount); err != nil {
		return nil, err
	}

	newBalance, err := e.ledger.UpdateAccount(ctx, in.AccountNumber, func(balance decimal.Decimal) (decimal.Decimal, error) {
		return balance.Add(in.TotalAmount), nil
	})
	if err != nil {
		return nil, err
	}

	auth := e.authGen.Generate()

	e.log.Info().
		Str("account", in.AccountNumber).
		Str("amount", in.TotalAmount.String()).
		Str("new_balance", newBalance.String()).
		Str("authorization", auth).
		Msg("deposit applied")

	return &DepositOutput{
		TransactionID: in.TransactionID,
		Authorization: auth,
		ResponseCode:  ResponseCodeOK,
		Description:   "deposit applied",
		AccountNumber: in.AccountNumber,
		NewBalance:    newBalance,
	}, nil
}

// Withdraw debits an account, rejecting amounts above the current balance.
func (e *Engine) Withdraw(ctx context.Context, in WithdrawInput) (*WithdrawOutput, error) {
	e.simulateLatency(ctx, e.latency.Withdrawal)

	if err := domain.ValidatePositiveAmount(in.Amount); err != nil {
		return nil, err
	}

	newBalance, err := e.ledger.UpdateAccount(ctx, in.AccountNumber, func(balance decimal.Decimal) (decimal.Decimal, error) {
		if balance.LessThan(in.Amount) {
			return balance, domain.ErrInsufficientBalance.WithMessage(
				"account %s: available %s, required %s", in.AccountNumber, balance, in.Amount)
		}
		return balance.Sub(in.Amount), nil
	})
	if err != nil {
		return nil, err
	}

	auth := e.authGen.Generate()

	e.log.Info().
		Str("account", in.AccountNumber).
		Str("amount", in.Amount.String()).
		Str("new_balance", newBalance.String()).
		Str("authorization", auth).
		Msg("withdrawal applied")

	return &WithdrawOutput{
		TransactionID: in.TransactionID,
		Authorization: auth,
		ResponseCode:  ResponseCodeOK,
		Description:   "withdrawal applied",
		AccountNumber: in.AccountNumber,
		NewBalance:    newBalance,
	}, nil
}

// InquireAccount reports the account's balance breakdown.
func (e *Engine) InquireAccount(ctx context.Context, in InquireAccountInput) (*InquireAccountOutput, error) {
	e.simulateLatency(ctx, e.latency.AccountInquiry)

	balance, err := e.ledger.AccountBalance(ctx, in.AccountNumber)
	if err != nil {
		return nil, err
	}

	acc := domain.Account{Number: in.AccountNumber, Balance: balance}
	reserved, blocked, available := acc.BalanceBreakdown()

	return &InquireAccountOutput{
		TransactionID:    in.TransactionID,
		Authorization:    e.authGen.Generate(),
		AccountStatus:    "ACTIVA",
		LastMovementDate: time.Now().UTC().Format("2006-01-02"),
		TotalBalance:     balance,
		AvailableBalance: available,
		ReservedBalance:  reserved,
		BlockedBalance:   blocked,
		ResponseCode:     ResponseCodeOK,
		Description:      "inquiry successful",
	}, nil
}

// Transfer moves funds between two accounts; both legs commit together or not
// at all.
func (e *Engine) Transfer(ctx context.Context, in TransferInput) (*TransferOutput, error) {
	e.simulateLatency(ctx, e.latency.Transfer)

	if in.SourceAccount == in.DestinationAccount {
		return nil, domain.ErrInvalidTransaction.WithMessage("cannot transfer to the same account")
	}

	if err := domain.ValidatePositiveAmount(in.Amount); err != nil {
		return nil, err
	}

	err := e.ledger.UpdateAccountPair(ctx, in.SourceAccount, in.DestinationAccount,
		func(src, dst decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
			if src.LessThan(in.Amount) {
				return src, dst, domain.ErrInsufficientBalance.WithMessage(
					"source account %s: available %s, required %s", in.SourceAccount, src, in.Amount)
			}
			return src.Sub(in.Amount), dst.Add(in.Amount), nil
		})
	if err != nil {
		return nil, err
	}

	auth := e.authGen.Generate()

	e.log.Info().
		Str("source", in.SourceAccount).
		Str("destination", in.DestinationAccount).
		Str("amount", in.Amount.String()).
		Str("authorization", auth).
		Msg("transfer applied")

	return &TransferOutput{
		TransactionID: in.TransactionID,
		Authorization: auth,
		ResponseCode:  ResponseCodeOK,
		Description:   "transfer applied",
	}, nil
}
