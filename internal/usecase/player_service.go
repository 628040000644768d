package usecase

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
)

// PlayerPage is one window of a player listing.
type PlayerPage struct {
	Page        int64
	PageCount   int64
	ResultCount int64
	TotalCount  int64
	Players     []player.Document
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// ListPlayers fetches the requested window and the total match count
// concurrently. Either failure fails the whole listing.
func (s *PlayerService) ListPlayers(ctx context.Context, query player.Query) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers",
		attribute.Int64("players.page", query.Pagination.Page),
		attribute.Int64("players.limit", query.Pagination.Limit),
		attribute.String("players.sort_by", query.Sort.Field),
	)
	defer span.End()

	var (
		docs  []player.Document
		total int64
	)

	p := pool.New().WithContext(ctx).WithMaxGoroutines(2).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		docs, err = s.playerRepo.Find(ctx, query)
		if err != nil {
			return storeError(err, "find players")
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		total, err = s.playerRepo.Count(ctx, query.Filter)
		if err != nil {
			return storeError(err, "count players")
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		recordSpanError(span, err)
		return PlayerPage{}, err
	}

	if docs == nil {
		docs = []player.Document{}
	}
	page := PlayerPage{
		Page:        query.Pagination.Page,
		PageCount:   pageCount(total, query.Pagination.Limit),
		ResultCount: int64(len(docs)),
		TotalCount:  total,
		Players:     docs,
	}
	span.SetAttributes(attribute.Int64("players.total", total))
	return page, nil
}

func (s *PlayerService) GetPlayerByID(ctx context.Context, playerID string) (player.Document, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerByID",
		attribute.String("player.id", playerID),
	)
	defer span.End()

	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(playerID))
	if err != nil {
		return player.Document{}, crerr.Wrapf(ErrInvalidInput, "player id %q is not a valid object id", playerID)
	}

	doc, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		err = storeError(err, "get player by id")
		recordSpanError(span, err)
		return player.Document{}, err
	}
	if !exists {
		return player.Document{}, crerr.Wrapf(ErrNotFound, "player=%s", id.Hex())
	}

	return doc, nil
}

func pageCount(total, limit int64) int64 {
	if limit < 1 || total <= 0 {
		return 0
	}
	n := total / limit
	if total%limit != 0 {
		n++
	}
	return n
}

// storeError keeps the store failure as the cause and marks unreachable
// stores so the transport can answer 503 instead of 500.
func storeError(err error, op string) error {
	wrapped := crerr.Wrap(err, op)
	if crerr.Is(err, player.ErrStoreUnavailable) {
		return crerr.Mark(wrapped, ErrDependencyUnavailable)
	}
	return wrapped
}
