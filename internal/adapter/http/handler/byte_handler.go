package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/bytegate/internal/adapter/http/dto"
	"github.com/iho/bytegate/internal/usecase"
)

// ByteHandler exposes the seven gateway operations over HTTP. It is agnostic
// to which Gateway implementation is behind it.
type ByteHandler struct {
	gateway usecase.Gateway
}

// NewByteHandler creates a new ByteHandler.
func NewByteHandler(gateway usecase.Gateway) *ByteHandler {
	return &ByteHandler{gateway: gateway}
}

// Deposit handles POST /api/v1/byte/deposito-cta.
func (h *ByteHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.AccountNumber == "" {
		writeBadRequest(w, "numCuenta is required")
		return
	}

	out, err := h.gateway.Deposit(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DepositFromOutput(out))
}

// Withdraw handles POST /api/v1/byte/retiro-cta.
func (h *ByteHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.AccountNumber == "" {
		writeBadRequest(w, "numCuenta is required")
		return
	}

	out, err := h.gateway.Withdraw(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.WithdrawFromOutput(out))
}

// InquireAccount handles POST /api/v1/byte/consulta-cta.
func (h *ByteHandler) InquireAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.InquireAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.AccountNumber == "" {
		writeBadRequest(w, "numCuenta is required")
		return
	}

	out, err := h.gateway.InquireAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.InquireAccountFromOutput(out))
}

// Transfer handles POST /api/v1/byte/transfer-cta.
func (h *ByteHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.SourceAccount == "" || req.DestinationAccount == "" {
		writeBadRequest(w, "numCuentaOrigen and numCuentaDestino are required")
		return
	}

	out, err := h.gateway.Transfer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransferFromOutput(out))
}

// InquireLoan handles POST /api/v1/byte/consulta-prestamo.
func (h *ByteHandler) InquireLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.InquireLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.LoanNumber == "" {
		writeBadRequest(w, "numPrestamo is required")
		return
	}

	out, err := h.gateway.InquireLoan(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.InquireLoanFromOutput(out))
}

// LoanPayment handles POST /api/v1/byte/pago-prestamo.
func (h *ByteHandler) LoanPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.LoanNumber == "" {
		writeBadRequest(w, "numPrestamo is required")
		return
	}

	out, err := h.gateway.ApplyLoanPayment(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LoanPaymentFromOutput(out))
}

// Reversal handles POST /api/v1/byte/reversa-pago-prestamo.
func (h *ByteHandler) Reversal(w http.ResponseWriter, r *http.Request) {
	var req dto.ReversalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.LoanNumber == "" || req.OriginalAuthorization == "" {
		writeBadRequest(w, "numPrestamo and autorizacionOriginal are required")
		return
	}

	out, err := h.gateway.ReverseLoanPayment(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReversalFromOutput(out))
}
