package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Latency models the Core's per-operation response time. The simulator waits
// these durations before answering so callers see realistic round trips; the
// values are not functionally significant and tests run with NoLatency.
type Latency struct {
	Deposit        time.Duration
	Withdrawal     time.Duration
	AccountInquiry time.Duration
	Transfer       time.Duration
	LoanInquiry    time.Duration
	LoanPayment    time.Duration
	Reversal       time.Duration
}

// DefaultLatency matches the response times of the live Core.
func DefaultLatency() Latency {
	return Latency{
		Deposit:        500 * time.Millisecond,
		Withdrawal:     500 * time.Millisecond,
		AccountInquiry: 300 * time.Millisecond,
		Transfer:       600 * time.Millisecond,
		LoanInquiry:    400 * time.Millisecond,
		LoanPayment:    600 * time.Millisecond,
		Reversal:       500 * time.Millisecond,
	}
}

// NoLatency disables the artificial delay.
func NoLatency() Latency { return Latency{} }

// Engine is the in-process simulator of the Core: it implements every Gateway
// operation against the ledger store and transaction registry, reproducing
// the Core's external contract without live connectivity.
type Engine struct {
	ledger   LedgerStore
	registry TransactionRegistry
	authGen  AuthorizationGenerator
	latency  Latency
	log      zerolog.Logger
}

// NewEngine creates the simulator.
func NewEngine(ledger LedgerStore, registry TransactionRegistry, authGen AuthorizationGenerator, latency Latency, log zerolog.Logger) *Engine {
	return &Engine{
		ledger:   ledger,
		registry: registry,
		authGen:  authGen,
		latency:  latency,
		log:      log.With().Str("component", "simulator").Logger(),
	}
}

func (e *Engine) simulateLatency(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

var _ Gateway = (*Engine)(nil)
