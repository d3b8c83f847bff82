package byteclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/bytegate/internal/domain"
	"github.com/iho/bytegate/internal/usecase"
)

// Client talks to the live Core over HTTP. It serializes each operation into
// the Core's wire envelope, coerces string-encoded amounts back into
// decimals, and converts every transport failure into the gateway taxonomy;
// no raw transport error ever reaches a caller.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client with a bounded request timeout.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "byteclient").Logger(),
	}
}

var _ usecase.Gateway = (*Client)(nil)

// post sends {op}_request and decodes {op}_response into out.
func (c *Client) post(ctx context.Context, op string, body, out any) error {
	payload, err := json.Marshal(map[string]any{op + "_request": body})
	if err != nil {
		return domain.ErrServiceUnavailable.WithMessage("failed to encode %s request: %v", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+op, bytes.NewReader(payload))
	if err != nil {
		return domain.ErrServiceUnavailable.WithMessage("failed to build %s request: %v", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.Error().Err(err).Str("operation", op).Msg("core request timed out")
			return domain.ErrTimeout.WithMessage("core did not answer %s within the deadline", op)
		}
		c.log.Error().Err(err).Str("operation", op).Msg("core request failed")
		return domain.ErrServiceUnavailable.WithMessage("core request %s failed: %v", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Error().Int("status", resp.StatusCode).Str("operation", op).Msg("core returned non-2xx status")
		return domain.ErrServiceUnavailable.WithMessage("core answered %s with status %d", op, resp.StatusCode)
	}

	var outer map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&outer); err != nil {
		return domain.ErrServiceUnavailable.WithMessage("malformed core response for %s: %v", op, err)
	}

	raw, ok := outer[op+"_response"]
	if !ok {
		return domain.ErrServiceUnavailable.WithMessage("core response for %s is missing the %s_response envelope", op, op)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return domain.ErrServiceUnavailable.WithMessage("malformed core response for %s: %v", op, err)
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// parseAmount coerces a string-encoded amount, defaulting absent or
// malformed fields to zero as the Core contract specifies.
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// amountString renders an amount for the wire, sending "0" for zero values
// so the Core's parsers never see an empty field.
func amountString(d decimal.Decimal) string {
	return d.String()
}

// Deposit sends a depositoCta request to the Core.
func (c *Client) Deposit(ctx context.Context, in usecase.DepositInput) (*usecase.DepositOutput, error) {
	body := envelope[depositDetail]{
		InfoTx: infoTx{TransactionID: in.TransactionID},
		Detalle: depositDetail{
			AccountNumber: in.AccountNumber,
			CashAmount:    amountString(in.CashAmount),
			CheckAmount:   amountString(in.CheckAmount),
			TotalAmount:   amountString(in.TotalAmount),
		},
	}

	var out envelope[depositResult]
	if err := c.post(ctx, opDeposit, body, &out); err != nil {
		return nil, err
	}

	d := out.Detalle
	if rc := orDefault(d.ResponseCode, usecase.ResponseCodeOK); rc != usecase.ResponseCodeOK {
		return nil, classify(opDeposit, rc, d.Description)
	}

	return &usecase.DepositOutput{
		TransactionID: orDefault(out.InfoTx.TransactionID, in.TransactionID),
		Authorization: d.Authorization,
		ResponseCode:  usecase.ResponseCodeOK,
		Description:   d.Description,
		AccountNumber: orDefault(d.AccountNumber, in.AccountNumber),
		NewBalance:    parseAmount(d.NewBalance),
	}, nil
}

// Withdraw sends a retiroCta request to the Core.
func (c *Client) Withdraw(ctx context.Context, in usecase.WithdrawInput) (*usecase.WithdrawOutput, error) {
	body := envelope[withdrawDetail]{
		InfoTx: infoTx{TransactionID: in.TransactionID},
		Detalle: withdrawDetail{
			AccountNumber: in.AccountNumber,
			Amount:        amountString(in.Amount),
		},
	}

	var out envelope[withdrawResult]
	if err := c.post(ctx, opWithdraw, body, &out); err != nil {
		return nil, err
	}

	d := out.Detalle
	if rc := orDefault(d.ResponseCode, usecase.ResponseCodeOK); rc != usecase.ResponseCodeOK {
		return nil, classify(opWithdraw, rc, d.Description)
	}

	return &usecase.WithdrawOutput{
		TransactionID: orDefault(out.InfoTx.TransactionID, in.TransactionID),
		Authorization: d.Authorization,
		ResponseCode:  usecase.ResponseCodeOK,
		Description:   d.Description,
		AccountNumber: orDefault(d.AccountNumber, in.AccountNumber),
		NewBalance:    parseAmount(d.NewBalance),
	}, nil
}

// InquireAccount sends a consultaCta request to the Core.
func (c *Client) InquireAccount(ctx context.Context, in usecase.InquireAccountInput) (*usecase.InquireAccountOutput, error) {
	body := envelope[inquireAccountDetail]{
		InfoTx:  infoTx{TransactionID: in.TransactionID},
		Detalle: inquireAccountDetail{AccountNumber: in.AccountNumber},
	}

	var out envelope[inquireAccountResult]
	if err := c.post(ctx, opInquireAccount, body, &out); err != nil {
		return nil, err
	}

	d := out.Detalle
	if rc := orDefault(d.ResponseCode, usecase.ResponseCodeOK); rc != usecase.ResponseCodeOK {
		return nil, classify(opInquireAccount, rc, d.Description)
	}

	return &usecase.InquireAccountOutput{
		TransactionID:    orDefault(out.InfoTx.TransactionID, in.TransactionID),
		Authorization:    d.Authorization,
		AccountStatus:    d.AccountStatus,
		LastMovementDate: d.LastMovementDate,
		TotalBalance:     parseAmount(d.TotalBalance),
		AvailableBalance: parseAmount(d.AvailableBalance),
		ReservedBalance:  parseAmount(d.ReservedBalance),
		BlockedBalance:   parseAmount(d.BlockedBalance),
		ResponseCode:     usecase.ResponseCodeOK,
		Description:      d.Description,
	}, nil
}

// Transfer sends a transferCta request to the Core.
func (c *Client) Transfer(ctx context.Context, in usecase.TransferInput) (*usecase.TransferOutput, error) {
	body := envelope[transferDetail]{
		InfoTx: infoTx{TransactionID: in.TransactionID},
		Detalle: transferDetail{
			SourceAccount:      in.SourceAccount,
			DestinationAccount: in.DestinationAccount,
			Amount:             amountString(in.Amount),
		},
	}

	var out envelope[transferResult]
	if err := c.post(ctx, opTransfer, body, &out); err != nil {
		return nil, err
	}

	d := out.Detalle
	if rc := orDefault(d.ResponseCode, usecase.ResponseCodeOK); rc != usecase.ResponseCodeOK {
		return nil, classify(opTransfer, rc, d.Description)
	}

	return &usecase.TransferOutput{
		TransactionID: orDefault(out.InfoTx.TransactionID, in.TransactionID),
		Authorization: d.Authorization,
		ResponseCode:  usecase.ResponseCodeOK,
		Description:   d.Description,
	}, nil
}

// InquireLoan sends a consultaPrestamo request to the Core.
func (c *Client) InquireLoan(ctx context.Context, in usecase.InquireLoanInput) (*usecase.InquireLoanOutput, error) {
	body := envelope[inquireLoanDetail]{
		InfoTx:  infoTx{TransactionID: in.TransactionID},
		Detalle: inquireLoanDetail{LoanNumber: in.LoanNumber},
	}

	var out envelope[inquireLoanResult]
	if err := c.post(ctx, opInquireLoan, body, &out); err != nil {
		return nil, err
	}

	d := out.Detalle
	if rc := orDefault(d.ResponseCode, usecase.ResponseCodeOK); rc != usecase.ResponseCodeOK {
		return nil, classify(opInquireLoan, rc, d.Description)
	}

	return &usecase.InquireLoanOutput{
		TransactionID:      orDefault(out.InfoTx.TransactionID, in.TransactionID),
		Authorization:      d.Authorization,
		LoanNumber:         orDefault(d.LoanNumber, in.LoanNumber),
		PrincipalBalance:   parseAmount(d.PrincipalBalance),
		InterestBalance:    parseAmount(d.InterestBalance),
		LateFeeBalance:     parseAmount(d.LateFeeBalance),
		TotalBalance:       parseAmount(d.TotalBalance),
		NextPaymentAmount:  parseAmount(d.NextPaymentAmount),
		NextPaymentDueDate: d.NextPaymentDueDate,
		ResponseCode:       usecase.ResponseCodeOK,
		Description:        d.Description,
	}, nil
}

// ApplyLoanPayment sends a pagoPrestamo request to the Core.
func (c *Client) ApplyLoanPayment(ctx context.Context, in usecase.LoanPaymentInput) (*usecase.LoanPaymentOutput, error) {
	body := envelope[loanPaymentDetail]{
		InfoTx: infoTx{TransactionID: in.TransactionID},
		Detalle: loanPaymentDetail{
			LoanNumber:    in.LoanNumber,
			AccountNumber: in.AccountNumber,
			DebitAmount:   amountString(in.DebitAmount),
			CashAmount:    amountString(in.CashAmount),
			CheckAmount:   amountString(in.CheckAmount),
			TotalAmount:   amountString(in.TotalAmount),
		},
	}

	var out envelope[loanPaymentResult]
	if err := c.post(ctx, opLoanPayment, body, &out); err != nil {
		return nil, err
	}

	d := out.Detalle
	if rc := orDefault(d.ResponseCode, usecase.ResponseCodeOK); rc != usecase.ResponseCodeOK {
		return nil, classify(opLoanPayment, rc, d.Description)
	}

	return &usecase.LoanPaymentOutput{
		TransactionID: orDefault(out.InfoTx.TransactionID, in.TransactionID),
		Authorization: d.Authorization,
		LoanNumber:    orDefault(d.LoanNumber, in.LoanNumber),
		NewBalance:    parseAmount(d.NewBalance),
		ResponseCode:  usecase.ResponseCodeOK,
		Description:   d.Description,
	}, nil
}

// ReverseLoanPayment sends a reversaPagoPrestamo request to the Core.
func (c *Client) ReverseLoanPayment(ctx context.Context, in usecase.ReversalInput) (*usecase.ReversalOutput, error) {
	body := envelope[reversalDetail]{
		InfoTx: infoTx{TransactionID: in.TransactionID},
		Detalle: reversalDetail{
			LoanNumber:            in.LoanNumber,
			OriginalAuthorization: in.OriginalAuthorization,
			Reason:                in.Reason,
		},
	}

	var out envelope[reversalResult]
	if err := c.post(ctx, opReversal, body, &out); err != nil {
		return nil, err
	}

	d := out.Detalle
	if rc := orDefault(d.ResponseCode, usecase.ResponseCodeOK); rc != usecase.ResponseCodeOK {
		return nil, classify(opReversal, rc, d.Description)
	}

	return &usecase.ReversalOutput{
		TransactionID:  orDefault(out.InfoTx.TransactionID, in.TransactionID),
		Authorization:  d.Authorization,
		LoanNumber:     orDefault(d.LoanNumber, in.LoanNumber),
		AccountNumber:  d.AccountNumber,
		NewBalance:     parseAmount(d.NewBalance),
		AmountReversed: parseAmount(d.AmountReversed),
		ResponseCode:   usecase.ResponseCodeOK,
		Description:    d.Description,
	}, nil
}

// Healthcheck probes the Core endpoint without performing an operation.
func (c *Client) Healthcheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to build healthcheck request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("core unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}
