package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/bytegate/internal/adapter/repository/memory"
	"github.com/iho/bytegate/internal/domain"
	"github.com/iho/bytegate/internal/usecase"
)

type seqAuthGen struct{ n atomic.Int64 }

func (g *seqAuthGen) Generate() string {
	return fmt.Sprintf("AUTH%06d", g.n.Add(1))
}

func newTestEngine() (*usecase.Engine, *memory.LedgerStore, *memory.TransactionRegistry) {
	ledger := memory.NewLedgerStore(memory.DefaultSeed())
	registry := memory.NewTransactionRegistry()
	engine := usecase.NewEngine(ledger, registry, &seqAuthGen{}, usecase.NoLatency(), zerolog.Nop())
	return engine, ledger, registry
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func balanceOf(t *testing.T, ledger *memory.LedgerStore, account string) decimal.Decimal {
	t.Helper()
	balance, err := ledger.AccountBalance(context.Background(), account)
	if err != nil {
		t.Fatalf("failed to read balance of %s: %v", account, err)
	}
	return balance
}

func TestEngineDeposit(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.DepositInput
		wantBalance string
		wantErr     error
	}{
		{
			name: "cash and check deposit",
			input: usecase.DepositInput{
				TransactionID: "TXN-001",
				AccountNumber: "1234567890",
				CashAmount:    dec("500.00"),
				CheckAmount:   dec("1000.00"),
				TotalAmount:   dec("1500.00"),
			},
			wantBalance: "6500.00",
		},
		{
			name: "unknown account",
			input: usecase.DepositInput{
				AccountNumber: "9999999999",
				CashAmount:    dec("100.00"),
				TotalAmount:   dec("100.00"),
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "component sum mismatch",
			input: usecase.DepositInput{
				AccountNumber: "1234567890",
				CashAmount:    dec("500.00"),
				CheckAmount:   dec("1000.00"),
				TotalAmount:   dec("1600.00"),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "both components zero",
			input: usecase.DepositInput{
				AccountNumber: "1234567890",
				TotalAmount:   dec("0"),
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, ledger, _ := newTestEngine()

			out, err := engine.Deposit(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if tt.input.AccountNumber == "1234567890" {
					if got := balanceOf(t, ledger, "1234567890"); !got.Equal(dec("5000.00")) {
						t.Errorf("failed deposit must not change the balance, got %s", got)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.ResponseCode != usecase.ResponseCodeOK {
				t.Errorf("response code = %q, want %q", out.ResponseCode, usecase.ResponseCodeOK)
			}
			if out.Authorization == "" {
				t.Error("expected an authorization code")
			}
			if !out.NewBalance.Equal(dec(tt.wantBalance)) {
				t.Errorf("new balance = %s, want %s", out.NewBalance, tt.wantBalance)
			}
			if out.TransactionID != tt.input.TransactionID {
				t.Errorf("transaction id = %q, want %q", out.TransactionID, tt.input.TransactionID)
			}
		})
	}
}

func TestEngineWithdraw(t *testing.T) {
	tests := []struct {
		name        string
		account     string
		amount      string
		wantBalance string
		wantErr     error
	}{
		{name: "successful withdrawal", account: "1234567890", amount: "1000.00", wantBalance: "4000.00"},
		{name: "exact balance", account: "1111111111", amount: "500.00", wantBalance: "0.00"},
		{name: "insufficient balance", account: "1111111111", amount: "500.01", wantErr: domain.ErrInsufficientBalance},
		{name: "unknown account fails not-found, never insufficient", account: "9999999999", amount: "10.00", wantErr: domain.ErrAccountNotFound},
		{name: "zero amount", account: "1234567890", amount: "0", wantErr: domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, ledger, _ := newTestEngine()

			out, err := engine.Withdraw(context.Background(), usecase.WithdrawInput{
				TransactionID: "TXN-002",
				AccountNumber: tt.account,
				Amount:        dec(tt.amount),
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.NewBalance.Equal(dec(tt.wantBalance)) {
				t.Errorf("new balance = %s, want %s", out.NewBalance, tt.wantBalance)
			}
			if got := balanceOf(t, ledger, tt.account); got.IsNegative() {
				t.Errorf("balance went negative: %s", got)
			}
		})
	}
}

func TestEngineWithdrawInsufficientLeavesBalance(t *testing.T) {
	engine, ledger, _ := newTestEngine()

	_, err := engine.Withdraw(context.Background(), usecase.WithdrawInput{
		AccountNumber: "1111111111",
		Amount:        dec("9999.00"),
	})
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	if got := balanceOf(t, ledger, "1111111111"); !got.Equal(dec("500.00")) {
		t.Errorf("failed withdrawal must not change the balance, got %s", got)
	}
}

func TestEngineTransfer(t *testing.T) {
	engine, ledger, _ := newTestEngine()
	ctx := context.Background()

	// Seed the concrete scenario: deposit 1500 first so the source holds 6500.
	_, err := engine.Deposit(ctx, usecase.DepositInput{
		AccountNumber: "1234567890",
		CashAmount:    dec("500.00"),
		CheckAmount:   dec("1000.00"),
		TotalAmount:   dec("1500.00"),
	})
	if err != nil {
		t.Fatalf("setup deposit failed: %v", err)
	}

	out, err := engine.Transfer(ctx, usecase.TransferInput{
		TransactionID:      "TXN-003",
		SourceAccount:      "1234567890",
		DestinationAccount: "0987654321",
		Amount:             dec("1000.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ResponseCode != usecase.ResponseCodeOK {
		t.Errorf("response code = %q, want 0", out.ResponseCode)
	}

	if got := balanceOf(t, ledger, "1234567890"); !got.Equal(dec("5500.00")) {
		t.Errorf("source balance = %s, want 5500.00", got)
	}
	if got := balanceOf(t, ledger, "0987654321"); !got.Equal(dec("11000.00")) {
		t.Errorf("destination balance = %s, want 11000.00", got)
	}
}

func TestEngineTransferFailures(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		dest    string
		amount  string
		wantErr error
	}{
		{name: "same account regardless of balance", source: "1234567890", dest: "1234567890", amount: "1.00", wantErr: domain.ErrInvalidTransaction},
		{name: "unknown source", source: "9999999999", dest: "0987654321", amount: "1.00", wantErr: domain.ErrAccountNotFound},
		{name: "unknown destination", source: "1234567890", dest: "9999999999", amount: "1.00", wantErr: domain.ErrAccountNotFound},
		{name: "insufficient source balance", source: "1111111111", dest: "0987654321", amount: "501.00", wantErr: domain.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, ledger, _ := newTestEngine()

			_, err := engine.Transfer(context.Background(), usecase.TransferInput{
				SourceAccount:      tt.source,
				DestinationAccount: tt.dest,
				Amount:             dec(tt.amount),
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			// Neither leg may have applied.
			if got := balanceOf(t, ledger, "0987654321"); !got.Equal(dec("10000.00")) {
				t.Errorf("destination balance changed on failed transfer: %s", got)
			}
		})
	}
}

func TestEngineTransferChecksSourceBeforeDestination(t *testing.T) {
	engine, _, _ := newTestEngine()

	var domErr *domain.Error
	_, err := engine.Transfer(context.Background(), usecase.TransferInput{
		SourceAccount:      "8888888888",
		DestinationAccount: "9999999999",
		Amount:             dec("1.00"),
	})
	if !errors.As(err, &domErr) {
		t.Fatalf("expected a taxonomy error, got %v", err)
	}
	if !strings.Contains(domErr.Message, "8888888888") {
		t.Errorf("source must be checked first, got message %q", domErr.Message)
	}
}

func TestEngineInquireAccount(t *testing.T) {
	engine, _, _ := newTestEngine()

	out, err := engine.InquireAccount(context.Background(), usecase.InquireAccountInput{
		TransactionID: "TXN-004",
		AccountNumber: "1234567890",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.TotalBalance.Equal(dec("5000.00")) {
		t.Errorf("total = %s, want 5000.00", out.TotalBalance)
	}
	if !out.ReservedBalance.Equal(dec("500.00")) {
		t.Errorf("reserved = %s, want 500.00", out.ReservedBalance)
	}
	if !out.BlockedBalance.Equal(dec("250.00")) {
		t.Errorf("blocked = %s, want 250.00", out.BlockedBalance)
	}
	if !out.AvailableBalance.Equal(dec("4250.00")) {
		t.Errorf("available = %s, want 4250.00", out.AvailableBalance)
	}
	if out.AccountStatus == "" {
		t.Error("expected an account status")
	}

	_, err = engine.InquireAccount(context.Background(), usecase.InquireAccountInput{AccountNumber: "9999999999"})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestEngineConcurrentWithdrawalsDoNotLoseUpdates(t *testing.T) {
	engine, ledger, _ := newTestEngine()
	ctx := context.Background()

	// 5000 available, 100 workers withdrawing 10 each: all must succeed and
	// the final balance must reflect every one of them.
	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := engine.Withdraw(ctx, usecase.WithdrawInput{
				AccountNumber: "1234567890",
				Amount:        dec("10.00"),
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := balanceOf(t, ledger, "1234567890"); !got.Equal(dec("4000.00")) {
		t.Errorf("balance = %s, want 4000.00", got)
	}
}
