package circuit

import (
	"context"
	"errors"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
	"github.com/riskibarqy/fpl-stats-api/internal/metrics"
	playermock "github.com/riskibarqy/fpl-stats-api/internal/mocks/domain/player"
	"github.com/riskibarqy/fpl-stats-api/internal/platform/resilience"
)

func newBreaker(threshold int) *resilience.CircuitBreaker {
	return resilience.NewCircuitBreaker("player-store", resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	}, nil)
}

func TestPlayerRepository_OpensAfterFailures(t *testing.T) {
	next := playermock.NewRepository(t)
	storeErr := crerr.Mark(errors.New("connection reset"), player.ErrStoreUnavailable)
	next.On("Count", mock.Anything, player.Filter{}).Return(int64(0), storeErr).Twice()

	m := metrics.NewMock()
	repo := NewPlayerRepository(next, newBreaker(2), m)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.Count(ctx, player.Filter{}); !errors.Is(err, storeErr) {
			t.Fatalf("call %d: expected store error, got %v", i, err)
		}
	}

	_, err := repo.Count(ctx, player.Filter{})
	if !crerr.Is(err, player.ErrStoreUnavailable) {
		t.Fatalf("expected open breaker to report store unavailable, got %v", err)
	}
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected circuit open cause, got %v", err)
	}

	if got := m.StoreOperations(opCount, metrics.OutcomeError); got != 2 {
		t.Fatalf("expected 2 failed counts, got %d", got)
	}
	if got := m.StoreOperations(opCount, metrics.OutcomeRejected); got != 1 {
		t.Fatalf("expected 1 rejected count, got %d", got)
	}
}

func TestPlayerRepository_PassesResultsThrough(t *testing.T) {
	next := playermock.NewRepository(t)
	query := player.Query{Pagination: player.NewPagination(1, 25)}
	name := "Bukayo Saka"
	next.On("Find", mock.Anything, query).Return([]player.Document{{Name: &name}}, nil).Once()

	m := metrics.NewMock()
	repo := NewPlayerRepository(next, nil, m)

	docs, err := repo.Find(context.Background(), query)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 1 || *docs[0].Name != name {
		t.Fatalf("unexpected documents: %+v", docs)
	}
	if got := m.StoreOperations(opFind, metrics.OutcomeSuccess); got != 1 {
		t.Fatalf("expected 1 successful find, got %d", got)
	}
}

func TestPlayerRepository_CanceledCallsDoNotTrip(t *testing.T) {
	next := playermock.NewRepository(t)
	next.On("GetByID", mock.Anything, mock.Anything).Return(player.Document{}, false, context.Canceled).Times(3)

	m := metrics.NewMock()
	breaker := newBreaker(1)
	repo := NewPlayerRepository(next, breaker, m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 3; i++ {
		if _, _, err := repo.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected canceled, got %v", err)
		}
	}
	if state := breaker.State(); state != resilience.CircuitStateClosed {
		t.Fatalf("expected closed breaker, got %s", state)
	}
	if got := m.StoreOperations(opGetByID, metrics.OutcomeCanceled); got != 3 {
		t.Fatalf("expected 3 canceled lookups, got %d", got)
	}
}

func TestPlayerRepository_RejectedQueriesDoNotTrip(t *testing.T) {
	next := playermock.NewRepository(t)
	query := player.Query{
		Pagination: player.NewPagination(1, 25),
		Sort:       player.Sort{Field: "bad\x00key", Direction: player.SortDescending},
	}
	queryErr := errors.New("BSON element key cannot contain null bytes")
	next.On("Find", mock.Anything, query).Return(nil, queryErr).Times(5)
	next.On("Count", mock.Anything, player.Filter{}).Return(int64(3), nil).Once()

	m := metrics.NewMock()
	breaker := newBreaker(5)
	repo := NewPlayerRepository(next, breaker, m)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := repo.Find(ctx, query); !errors.Is(err, queryErr) {
			t.Fatalf("call %d: expected query error, got %v", i, err)
		}
	}
	if state := breaker.State(); state != resilience.CircuitStateClosed {
		t.Fatalf("expected closed breaker, got %s", state)
	}

	total, err := repo.Count(ctx, player.Filter{})
	if err != nil || total != 3 {
		t.Fatalf("expected count to pass through, got %d, %v", total, err)
	}
	if got := m.StoreOperations(opFind, metrics.OutcomeError); got != 5 {
		t.Fatalf("expected 5 failed finds, got %d", got)
	}
}
