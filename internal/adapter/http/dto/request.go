package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/bytegate/internal/usecase"
)

// Request bodies carry the Core's field names so callers of the original
// service migrate without changing their payloads. Amounts arrive as JSON
// numbers or strings; decimal.Decimal accepts both.

// DepositRequest is the body for POST /api/v1/byte/deposito-cta.
type DepositRequest struct {
	TransactionID string          `json:"idTransaccion"`
	AccountNumber string          `json:"numCuenta"`
	CashAmount    decimal.Decimal `json:"montoEfectivo"`
	CheckAmount   decimal.Decimal `json:"montoCheque"`
	TotalAmount   decimal.Decimal `json:"montoTotal"`
}

// ToUseCaseInput converts to use case input.
func (r *DepositRequest) ToUseCaseInput() usecase.DepositInput {
	return usecase.DepositInput{
		TransactionID: r.TransactionID,
		AccountNumber: r.AccountNumber,
		CashAmount:    r.CashAmount,
		CheckAmount:   r.CheckAmount,
		TotalAmount:   r.TotalAmount,
	}
}

// WithdrawRequest is the body for POST /api/v1/byte/retiro-cta.
type WithdrawRequest struct {
	TransactionID string          `json:"idTransaccion"`
	AccountNumber string          `json:"numCuenta"`
	Amount        decimal.Decimal `json:"montoRetiro"`
}

// ToUseCaseInput converts to use case input.
func (r *WithdrawRequest) ToUseCaseInput() usecase.WithdrawInput {
	return usecase.WithdrawInput{
		TransactionID: r.TransactionID,
		AccountNumber: r.AccountNumber,
		Amount:        r.Amount,
	}
}

// InquireAccountRequest is the body for POST /api/v1/byte/consulta-cta.
type InquireAccountRequest struct {
	TransactionID string `json:"idTransaccion"`
	AccountNumber string `json:"numCuenta"`
}

// ToUseCaseInput converts to use case input.
func (r *InquireAccountRequest) ToUseCaseInput() usecase.InquireAccountInput {
	return usecase.InquireAccountInput{
		TransactionID: r.TransactionID,
		AccountNumber: r.AccountNumber,
	}
}

// TransferRequest is the body for POST /api/v1/byte/transfer-cta.
type TransferRequest struct {
	TransactionID      string          `json:"idTransaccion"`
	SourceAccount      string          `json:"numCuentaOrigen"`
	DestinationAccount string          `json:"numCuentaDestino"`
	Amount             decimal.Decimal `json:"montoTransferencia"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		TransactionID:      r.TransactionID,
		SourceAccount:      r.SourceAccount,
		DestinationAccount: r.DestinationAccount,
		Amount:             r.Amount,
	}
}

// InquireLoanRequest is the body for POST /api/v1/byte/consulta-prestamo.
type InquireLoanRequest struct {
	TransactionID string `json:"idTransaccion"`
	LoanNumber    string `json:"numPrestamo"`
}

// ToUseCaseInput converts to use case input.
func (r *InquireLoanRequest) ToUseCaseInput() usecase.InquireLoanInput {
	return usecase.InquireLoanInput{
		TransactionID: r.TransactionID,
		LoanNumber:    r.LoanNumber,
	}
}

// LoanPaymentRequest is the body for POST /api/v1/byte/pago-prestamo.
type LoanPaymentRequest struct {
	TransactionID string          `json:"idTransaccion"`
	LoanNumber    string          `json:"numPrestamo"`
	AccountNumber string          `json:"numCuenta"`
	DebitAmount   decimal.Decimal `json:"montoDebito"`
	CashAmount    decimal.Decimal `json:"montoEfectivo"`
	CheckAmount   decimal.Decimal `json:"montoCheque"`
	TotalAmount   decimal.Decimal `json:"montoTotal"`
}

// ToUseCaseInput converts to use case input.
func (r *LoanPaymentRequest) ToUseCaseInput() usecase.LoanPaymentInput {
	return usecase.LoanPaymentInput{
		TransactionID: r.TransactionID,
		LoanNumber:    r.LoanNumber,
		AccountNumber: r.AccountNumber,
		DebitAmount:   r.DebitAmount,
		CashAmount:    r.CashAmount,
		CheckAmount:   r.CheckAmount,
		TotalAmount:   r.TotalAmount,
	}
}

// ReversalRequest is the body for POST /api/v1/byte/reversa-pago-prestamo.
type ReversalRequest struct {
	TransactionID         string `json:"idTransaccion"`
	LoanNumber            string `json:"numPrestamo"`
	OriginalAuthorization string `json:"autorizacionOriginal"`
	Reason                string `json:"motivo"`
}

// ToUseCaseInput converts to use case input.
func (r *ReversalRequest) ToUseCaseInput() usecase.ReversalInput {
	return usecase.ReversalInput{
		TransactionID:         r.TransactionID,
		LoanNumber:            r.LoanNumber,
		OriginalAuthorization: r.OriginalAuthorization,
		Reason:                r.Reason,
	}
}
