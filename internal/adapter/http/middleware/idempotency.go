package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/iho/bytegate/internal/usecase"
)

// maxIdempotencyBody bounds how much of a request body is buffered to read
// the transaction id.
const maxIdempotencyBody = 1 << 20

const processingMarker = "processing"

// IdempotencyMiddleware replays cached responses for repeated transaction
// ids. Callers that retry a mutating request with the same idTransaccion get
// the original response instead of a second execution.
type IdempotencyMiddleware struct {
	store usecase.IdempotencyStore
	ttl   time.Duration
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware.
func NewIdempotencyMiddleware(store usecase.IdempotencyStore, ttl time.Duration) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{store: store, ttl: ttl}
}

type keyedRequest struct {
	TransactionID string `json:"idTransaccion"`
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxIdempotencyBody))
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var keyed keyedRequest
		if json.Unmarshal(body, &keyed) != nil || keyed.TransactionID == "" {
			// No transaction id, nothing to dedup on.
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.Path + ":" + keyed.TransactionID

		exists, cached, err := m.store.CheckAndSet(r.Context(), key, []byte(processingMarker), m.ttl)
		if err != nil {
			// The cache being down must not block operations.
			next.ServeHTTP(w, r)
			return
		}

		if exists && len(cached) > 0 && string(cached) != processingMarker {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Idempotency-Replay", "true")
			w.Write(cached)
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		// Only successful responses are worth replaying; a failed attempt may
		// legitimately be retried.
		if recorder.statusCode >= 200 && recorder.statusCode < 300 {
			m.store.Update(r.Context(), key, recorder.body.Bytes(), m.ttl)
		}
	})
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
