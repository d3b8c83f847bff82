package dto

import (
	"github.com/iho/bytegate/internal/usecase"
)

// Responses mirror the Core contract: amounts are string-encoded on the way
// out, exactly as the Core renders them.

// ErrorResponse is the body returned for every failed operation.
type ErrorResponse struct {
	Code    string `json:"codigo"`
	Message string `json:"mensaje"`
}

// DepositResponse is the success body for deposito-cta.
type DepositResponse struct {
	TransactionID string `json:"idTransaccion"`
	Authorization string `json:"autorizacion"`
	ResponseCode  string `json:"codRespuesta"`
	Description   string `json:"descRespuesta"`
	AccountNumber string `json:"numCuenta"`
	NewBalance    string `json:"nuevoSaldo"`
}

// DepositFromOutput converts a use case output.
func DepositFromOutput(out *usecase.DepositOutput) DepositResponse {
	return DepositResponse{
		TransactionID: out.TransactionID,
		Authorization: out.Authorization,
		ResponseCode:  out.ResponseCode,
		Description:   out.Description,
		AccountNumber: out.AccountNumber,
		NewBalance:    out.NewBalance.StringFixed(2),
	}
}

// WithdrawResponse is the success body for retiro-cta.
type WithdrawResponse struct {
	TransactionID string `json:"idTransaccion"`
	Authorization string `json:"autorizacion"`
	ResponseCode  string `json:"codRespuesta"`
	Description   string `json:"descRespuesta"`
	AccountNumber string `json:"numCuenta"`
	NewBalance    string `json:"nuevoSaldo"`
}

// WithdrawFromOutput converts a use case output.
func WithdrawFromOutput(out *usecase.WithdrawOutput) WithdrawResponse {
	return WithdrawResponse{
		TransactionID: out.TransactionID,
		Authorization: out.Authorization,
		ResponseCode:  out.ResponseCode,
		Description:   out.Description,
		AccountNumber: out.AccountNumber,
		NewBalance:    out.NewBalance.StringFixed(2),
	}
}

// InquireAccountResponse is the success body for consulta-cta.
type InquireAccountResponse struct {
	TransactionID    string `json:"idTransaccion"`
	Authorization    string `json:"autorizacion"`
	ResponseCode     string `json:"codRespuesta"`
	Description      string `json:"descRespuesta"`
	AccountStatus    string `json:"estadoCuenta"`
	LastMovementDate string `json:"fechaUltimoMovimiento"`
	TotalBalance     string `json:"saldoTotal"`
	AvailableBalance string `json:"saldoDisponible"`
	ReservedBalance  string `json:"saldoReservado"`
	BlockedBalance   string `json:"saldoBloqueado"`
}

// InquireAccountFromOutput converts a use case output.
func InquireAccountFromOutput(out *usecase.InquireAccountOutput) InquireAccountResponse {
	return InquireAccountResponse{
		TransactionID:    out.TransactionID,
		Authorization:    out.Authorization,
		ResponseCode:     out.ResponseCode,
		Description:      out.Description,
		AccountStatus:    out.AccountStatus,
		LastMovementDate: out.LastMovementDate,
		TotalBalance:     out.TotalBalance.StringFixed(2),
		AvailableBalance: out.AvailableBalance.StringFixed(2),
		ReservedBalance:  out.ReservedBalance.StringFixed(2),
		BlockedBalance:   out.BlockedBalance.StringFixed(2),
	}
}

// TransferResponse is the success body for transfer-cta.
type TransferResponse struct {
	TransactionID string `json:"idTransaccion"`
	Authorization string `json:"autorizacion"`
	ResponseCode  string `json:"codRespuesta"`
	Description   string `json:"descRespuesta"`
}

// TransferFromOutput converts a use case output.
func TransferFromOutput(out *usecase.TransferOutput) TransferResponse {
	return TransferResponse{
		TransactionID: out.TransactionID,
		Authorization: out.Authorization,
		ResponseCode:  out.ResponseCode,
		Description:   out.Description,
	}
}

// InquireLoanResponse is the success body for consulta-prestamo.
type InquireLoanResponse struct {
	TransactionID      string `json:"idTransaccion"`
	Authorization      string `json:"autorizacion"`
	ResponseCode       string `json:"codRespuesta"`
	Description        string `json:"descRespuesta"`
	LoanNumber         string `json:"numPrestamo"`
	PrincipalBalance   string `json:"saldoCapital"`
	InterestBalance    string `json:"saldoInteres"`
	LateFeeBalance     string `json:"saldoMora"`
	TotalBalance       string `json:"saldoTotal"`
	NextPaymentAmount  string `json:"montoProximoPago"`
	NextPaymentDueDate string `json:"fechaProximoPago"`
}

// InquireLoanFromOutput converts a use case output.
func InquireLoanFromOutput(out *usecase.InquireLoanOutput) InquireLoanResponse {
	return InquireLoanResponse{
		TransactionID:      out.TransactionID,
		Authorization:      out.Authorization,
		ResponseCode:       out.ResponseCode,
		Description:        out.Description,
		LoanNumber:         out.LoanNumber,
		PrincipalBalance:   out.PrincipalBalance.StringFixed(2),
		InterestBalance:    out.InterestBalance.StringFixed(2),
		LateFeeBalance:     out.LateFeeBalance.StringFixed(2),
		TotalBalance:       out.TotalBalance.StringFixed(2),
		NextPaymentAmount:  out.NextPaymentAmount.StringFixed(2),
		NextPaymentDueDate: out.NextPaymentDueDate,
	}
}

// LoanPaymentResponse is the success body for pago-prestamo.
type LoanPaymentResponse struct {
	TransactionID string `json:"idTransaccion"`
	Authorization string `json:"autorizacion"`
	ResponseCode  string `json:"codRespuesta"`
	Description   string `json:"descRespuesta"`
	LoanNumber    string `json:"numPrestamo"`
	NewBalance    string `json:"nuevoSaldo"`
}

// LoanPaymentFromOutput converts a use case output.
func LoanPaymentFromOutput(out *usecase.LoanPaymentOutput) LoanPaymentResponse {
	return LoanPaymentResponse{
		TransactionID: out.TransactionID,
		Authorization: out.Authorization,
		ResponseCode:  out.ResponseCode,
		Description:   out.Description,
		LoanNumber:    out.LoanNumber,
		NewBalance:    out.NewBalance.StringFixed(2),
	}
}

// ReversalResponse is the success body for reversa-pago-prestamo.
type ReversalResponse struct {
	TransactionID  string `json:"idTransaccion"`
	Authorization  string `json:"autorizacion"`
	ResponseCode   string `json:"codRespuesta"`
	Description    string `json:"descRespuesta"`
	LoanNumber     string `json:"numPrestamo"`
	AccountNumber  string `json:"numCuenta,omitempty"`
	NewBalance     string `json:"nuevoSaldo"`
	AmountReversed string `json:"montoReversado"`
}

// ReversalFromOutput converts a use case output.
func ReversalFromOutput(out *usecase.ReversalOutput) ReversalResponse {
	return ReversalResponse{
		TransactionID:  out.TransactionID,
		Authorization:  out.Authorization,
		ResponseCode:   out.ResponseCode,
		Description:    out.Description,
		LoanNumber:     out.LoanNumber,
		AccountNumber:  out.AccountNumber,
		NewBalance:     out.NewBalance.StringFixed(2),
		AmountReversed: out.AmountReversed.StringFixed(2),
	}
}
