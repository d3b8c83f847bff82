package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/bytegate/internal/adapter/http/handler"
	"github.com/iho/bytegate/internal/adapter/repository/memory"
	"github.com/iho/bytegate/internal/usecase"
)

// newTestServer wires the full simulator stack behind the router, the same
// shape cmd/server builds.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ledger := memory.NewLedgerStore(memory.DefaultSeed())
	registry := memory.NewTransactionRegistry()
	engine := usecase.NewEngine(ledger, registry, usecase.NewAuthCodeGenerator(), usecase.NoLatency(), zerolog.Nop())

	router := NewRouter(RouterConfig{
		ByteHandler:   handler.NewByteHandler(engine),
		HealthHandler: handler.NewHealthHandler(nil),
		Logger:        zerolog.Nop(),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (int, map[string]string) {
	t.Helper()

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp.StatusCode, decoded
}

func TestEndToEndDepositAndInquiry(t *testing.T) {
	srv := newTestServer(t)

	status, resp := post(t, srv, "/api/v1/byte/deposito-cta", `{
		"idTransaccion": "E2E-1",
		"numCuenta": "1234567890",
		"montoEfectivo": 1500,
		"montoCheque": 0,
		"montoTotal": 1500
	}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "6500.00", resp["nuevoSaldo"])

	status, resp = post(t, srv, "/api/v1/byte/consulta-cta", `{
		"idTransaccion": "E2E-2",
		"numCuenta": "1234567890"
	}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "6500.00", resp["saldoTotal"])
	assert.Equal(t, "ACTIVA", resp["estadoCuenta"])
}

func TestEndToEndTransfer(t *testing.T) {
	srv := newTestServer(t)

	status, _ := post(t, srv, "/api/v1/byte/transfer-cta", `{
		"idTransaccion": "E2E-3",
		"numCuentaOrigen": "1234567890",
		"numCuentaDestino": "0987654321",
		"montoTransferencia": 1000
	}`)
	require.Equal(t, http.StatusOK, status)

	_, resp := post(t, srv, "/api/v1/byte/consulta-cta", `{"idTransaccion": "E2E-4", "numCuenta": "0987654321"}`)
	assert.Equal(t, "11000.00", resp["saldoTotal"])
}

func TestEndToEndLoanPaymentAndReversal(t *testing.T) {
	srv := newTestServer(t)

	status, resp := post(t, srv, "/api/v1/byte/pago-prestamo", `{
		"idTransaccion": "E2E-5",
		"numPrestamo": "PRES-0001234567",
		"numCuenta": "1234567890",
		"montoDebito": 1500,
		"montoEfectivo": 0,
		"montoCheque": 0,
		"montoTotal": 1500
	}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "24900.00", resp["nuevoSaldo"])
	auth := resp["autorizacion"]
	require.NotEmpty(t, auth)

	status, resp = post(t, srv, "/api/v1/byte/reversa-pago-prestamo", `{
		"idTransaccion": "E2E-6",
		"numPrestamo": "PRES-0001234567",
		"autorizacionOriginal": "`+auth+`",
		"motivo": "duplicate charge"
	}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1500.00", resp["montoReversado"])
	assert.Equal(t, "26400.00", resp["nuevoSaldo"])

	// A second reversal of the same authorization must be rejected.
	status, resp = post(t, srv, "/api/v1/byte/reversa-pago-prestamo", `{
		"idTransaccion": "E2E-7",
		"numPrestamo": "PRES-0001234567",
		"autorizacionOriginal": "`+auth+`",
		"motivo": "duplicate charge"
	}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "BYTE_DUPLICATE", resp["codigo"])
}

func TestEndToEndUnknownLoan(t *testing.T) {
	srv := newTestServer(t)

	status, resp := post(t, srv, "/api/v1/byte/consulta-prestamo", `{
		"idTransaccion": "E2E-8",
		"numPrestamo": "PRES-MISSING"
	}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "BYTE_001", resp["codigo"])
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
