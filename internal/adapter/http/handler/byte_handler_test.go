package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/bytegate/internal/domain"
	"github.com/iho/bytegate/internal/usecase"
	"github.com/iho/bytegate/internal/usecase/mocks"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	h(rec, req)

	return rec
}

func TestDepositSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	h := NewByteHandler(gw)

	gw.EXPECT().
		Deposit(gomock.Any(), usecase.DepositInput{
			TransactionID: "TXN-1",
			AccountNumber: "1234567890",
			CashAmount:    dec("1500"),
			CheckAmount:   dec("0"),
			TotalAmount:   dec("1500"),
		}).
		Return(&usecase.DepositOutput{
			TransactionID: "TXN-1",
			Authorization: "AUTH001",
			ResponseCode:  "0",
			Description:   "TRANSACCION EXITOSA",
			AccountNumber: "1234567890",
			NewBalance:    dec("6500"),
		}, nil)

	rec := postJSON(t, h.Deposit, `{
		"idTransaccion": "TXN-1",
		"numCuenta": "1234567890",
		"montoEfectivo": 1500,
		"montoCheque": 0,
		"montoTotal": 1500
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "AUTH001", resp["autorizacion"])
	assert.Equal(t, "0", resp["codRespuesta"])
	assert.Equal(t, "6500.00", resp["nuevoSaldo"])
}

func TestDepositRejectsMissingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewByteHandler(mocks.NewMockGateway(ctrl))

	rec := postJSON(t, h.Deposit, `{"idTransaccion": "TXN-1", "montoTotal": 100}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDepositRejectsMalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewByteHandler(mocks.NewMockGateway(ctrl))

	rec := postJSON(t, h.Deposit, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *domain.Error
		wantStatus int
		wantCode   string
	}{
		{name: "account not found", err: domain.ErrAccountNotFound, wantStatus: http.StatusNotFound, wantCode: "BYTE_001"},
		{name: "insufficient balance", err: domain.ErrInsufficientBalance, wantStatus: http.StatusBadRequest, wantCode: "BYTE_003"},
		{name: "duplicate reversal", err: domain.ErrDuplicateReversal, wantStatus: http.StatusConflict, wantCode: "BYTE_DUPLICATE"},
		{name: "inactive account", err: domain.ErrAccountInactive, wantStatus: http.StatusForbidden, wantCode: "BYTE_007"},
		{name: "core unavailable", err: domain.ErrServiceUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: "BYTE_503"},
		{name: "core timeout", err: domain.ErrTimeout, wantStatus: http.StatusGatewayTimeout, wantCode: "BYTE_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := mocks.NewMockGateway(ctrl)
			h := NewByteHandler(gw)

			gw.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := postJSON(t, h.Withdraw, `{"idTransaccion": "T", "numCuenta": "1", "montoRetiro": 50}`)
			require.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp["codigo"])
			assert.NotEmpty(t, resp["mensaje"])
		})
	}
}

func TestInquireAccountSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	h := NewByteHandler(gw)

	gw.EXPECT().InquireAccount(gomock.Any(), gomock.Any()).Return(&usecase.InquireAccountOutput{
		TransactionID:    "TXN-2",
		Authorization:    "AUTH002",
		AccountStatus:    "ACTIVA",
		LastMovementDate: "2025-12-01",
		TotalBalance:     dec("5000"),
		AvailableBalance: dec("4250"),
		ReservedBalance:  dec("500"),
		BlockedBalance:   dec("250"),
		ResponseCode:     "0",
	}, nil)

	rec := postJSON(t, h.InquireAccount, `{"idTransaccion": "TXN-2", "numCuenta": "1234567890"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ACTIVA", resp["estadoCuenta"])
	assert.Equal(t, "5000.00", resp["saldoTotal"])
	assert.Equal(t, "4250.00", resp["saldoDisponible"])
	assert.Equal(t, "500.00", resp["saldoReservado"])
	assert.Equal(t, "250.00", resp["saldoBloqueado"])
}

func TestTransferRequiresBothAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewByteHandler(mocks.NewMockGateway(ctrl))

	rec := postJSON(t, h.Transfer, `{"idTransaccion": "T", "numCuentaOrigen": "1", "montoTransferencia": 10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoanPaymentSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	h := NewByteHandler(gw)

	gw.EXPECT().
		ApplyLoanPayment(gomock.Any(), usecase.LoanPaymentInput{
			TransactionID: "TXN-3",
			LoanNumber:    "PRES-0001234567",
			AccountNumber: "1234567890",
			DebitAmount:   dec("1500"),
			CashAmount:    dec("0"),
			CheckAmount:   dec("0"),
			TotalAmount:   dec("1500"),
		}).
		Return(&usecase.LoanPaymentOutput{
			TransactionID: "TXN-3",
			Authorization: "AUTH003",
			LoanNumber:    "PRES-0001234567",
			NewBalance:    dec("24900"),
			ResponseCode:  "0",
		}, nil)

	rec := postJSON(t, h.LoanPayment, `{
		"idTransaccion": "TXN-3",
		"numPrestamo": "PRES-0001234567",
		"numCuenta": "1234567890",
		"montoDebito": 1500,
		"montoEfectivo": 0,
		"montoCheque": 0,
		"montoTotal": 1500
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "24900.00", resp["nuevoSaldo"])
}

func TestReversalRequiresAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewByteHandler(mocks.NewMockGateway(ctrl))

	rec := postJSON(t, h.Reversal, `{"idTransaccion": "T", "numPrestamo": "PRES-1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReversalSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	h := NewByteHandler(gw)

	gw.EXPECT().ReverseLoanPayment(gomock.Any(), gomock.Any()).Return(&usecase.ReversalOutput{
		TransactionID:  "TXN-4",
		Authorization:  "AUTH004",
		LoanNumber:     "PRES-0001234567",
		AccountNumber:  "1234567890",
		NewBalance:     dec("26400"),
		AmountReversed: dec("1500"),
		ResponseCode:   "0",
	}, nil)

	rec := postJSON(t, h.Reversal, `{
		"idTransaccion": "TXN-4",
		"numPrestamo": "PRES-0001234567",
		"autorizacionOriginal": "AUTH003",
		"motivo": "customer request"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1500.00", resp["montoReversado"])
	assert.Equal(t, "26400.00", resp["nuevoSaldo"])
}
