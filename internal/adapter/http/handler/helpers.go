package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/bytegate/internal/adapter/http/dto"
	"github.com/iho/bytegate/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError renders a taxonomy error as {codigo, mensaje} with the HTTP
// status its category maps to. Anything outside the taxonomy becomes a 500.
func writeError(w http.ResponseWriter, err error) {
	var gwErr *domain.Error
	if !errors.As(err, &gwErr) {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Code:    "BYTE_500",
			Message: "internal error",
		})
		return
	}

	writeJSON(w, statusCode(gwErr.Status), dto.ErrorResponse{
		Code:    gwErr.Code,
		Message: gwErr.Message,
	})
}

// writeBadRequest rejects a request before it reaches the gateway.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Code:    "BYTE_400",
		Message: message,
	})
}

func statusCode(s domain.Status) int {
	switch s {
	case domain.StatusNotFound:
		return http.StatusNotFound
	case domain.StatusBadRequest:
		return http.StatusBadRequest
	case domain.StatusConflict:
		return http.StatusConflict
	case domain.StatusForbidden:
		return http.StatusForbidden
	case domain.StatusUnavailable:
		return http.StatusServiceUnavailable
	case domain.StatusTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
