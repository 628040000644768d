package circuit

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
	"github.com/riskibarqy/fpl-stats-api/internal/metrics"
	"github.com/riskibarqy/fpl-stats-api/internal/platform/resilience"
)

const (
	opFind    = "find"
	opCount   = "count"
	opGetByID = "get_by_id"
)

// PlayerRepository guards a player store with a circuit breaker and records
// per-operation metrics. A nil breaker only records metrics.
type PlayerRepository struct {
	next    player.Repository
	breaker *resilience.CircuitBreaker
	metrics metrics.Metrics
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(next player.Repository, breaker *resilience.CircuitBreaker, m metrics.Metrics) *PlayerRepository {
	if m == nil {
		m = metrics.Nop{}
	}
	return &PlayerRepository{next: next, breaker: breaker, metrics: m}
}

func (r *PlayerRepository) Find(ctx context.Context, query player.Query) ([]player.Document, error) {
	var out []player.Document
	err := r.do(ctx, opFind, func(ctx context.Context) error {
		var err error
		out, err = r.next.Find(ctx, query)
		return err
	})
	return out, err
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.Filter) (int64, error) {
	var total int64
	err := r.do(ctx, opCount, func(ctx context.Context) error {
		var err error
		total, err = r.next.Count(ctx, filter)
		return err
	})
	return total, err
}

func (r *PlayerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (player.Document, bool, error) {
	var (
		doc   player.Document
		found bool
	)
	err := r.do(ctx, opGetByID, func(ctx context.Context) error {
		var err error
		doc, found, err = r.next.GetByID(ctx, id)
		return err
	})
	return doc, found, err
}

// Ping bypasses the breaker so readiness reflects the store itself.
func (r *PlayerRepository) Ping(ctx context.Context) error {
	pinger, ok := r.next.(player.Pinger)
	if !ok {
		return nil
	}
	return pinger.Ping(ctx)
}

func (r *PlayerRepository) do(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	var err error
	if r.breaker != nil {
		err = r.breaker.ExecuteClassified(ctx, fn, isStoreFailure)
	} else {
		err = fn(ctx)
	}

	r.metrics.ObserveStoreOperation(op, outcomeOf(ctx, err), time.Since(start))
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		return crerr.Mark(crerr.Wrapf(err, "player store %s", op), player.ErrStoreUnavailable)
	}
	return err
}

// isStoreFailure counts only unreachable-store errors against the breaker.
// A query the store rejects says nothing about its health.
func isStoreFailure(err error) bool {
	return crerr.Is(err, player.ErrStoreUnavailable)
}

func outcomeOf(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case crerr.Is(err, resilience.ErrCircuitOpen):
		return metrics.OutcomeRejected
	case ctx.Err() != nil:
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeError
	}
}
