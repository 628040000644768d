package mongodb

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
	qb "github.com/riskibarqy/fpl-stats-api/internal/platform/querybuilder"
)

// Listing results leave out the heavy nested sections.
var summaryExcludedFields = []string{"season_stats", "history", "fixtures"}

type PlayerRepository struct {
	client     *Client
	collection *mongo.Collection
}

var (
	_ player.Repository = (*PlayerRepository)(nil)
	_ player.Pinger     = (*PlayerRepository)(nil)
)

func NewPlayerRepository(client *Client, collection string) *PlayerRepository {
	return &PlayerRepository{
		client:     client,
		collection: client.Collection(collection),
	}
}

func (r *PlayerRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func (r *PlayerRepository) Find(ctx context.Context, query player.Query) ([]player.Document, error) {
	filter, opts, err := buildFind(query).ToFind()
	if err != nil {
		return nil, crerr.Wrap(err, "build find players query")
	}

	opCtx, cancel := r.client.withOperationTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(opCtx, filter, opts)
	if err != nil {
		return nil, classify(err, "find players")
	}

	var out []player.Document
	if err := cursor.All(opCtx, &out); err != nil {
		return nil, classify(err, "decode players")
	}
	if out == nil {
		out = []player.Document{}
	}
	return out, nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.Filter) (int64, error) {
	opCtx, cancel := r.client.withOperationTimeout(ctx)
	defer cancel()

	total, err := r.collection.CountDocuments(opCtx, qb.Find().Where(filterConditions(filter)...).Filter())
	if err != nil {
		return 0, classify(err, "count players")
	}
	return total, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (player.Document, bool, error) {
	opCtx, cancel := r.client.withOperationTimeout(ctx)
	defer cancel()

	var doc player.Document
	err := r.collection.FindOne(opCtx, bson.D{{Key: "_id", Value: id}}, options.FindOne()).Decode(&doc)
	if crerr.Is(err, mongo.ErrNoDocuments) {
		return player.Document{}, false, nil
	}
	if err != nil {
		return player.Document{}, false, classify(err, "find player by id")
	}
	return doc, true, nil
}

func buildFind(query player.Query) *qb.FindBuilder {
	b := qb.Find().
		Where(filterConditions(query.Filter)...).
		Exclude(summaryExcludedFields...).
		Skip(query.Pagination.Skip).
		Limit(query.Pagination.Limit)
	if !query.Sort.IsZero() {
		b.OrderBy(query.Sort.Field, int(query.Sort.Direction))
	}
	return b
}

func filterConditions(filter player.Filter) []qb.Condition {
	var conditions []qb.Condition
	if filter.Team != nil {
		conditions = append(conditions, qb.Eq(player.FieldTeam, *filter.Team))
	}
	if filter.Position != nil {
		conditions = append(conditions, qb.Eq(player.FieldPosition, *filter.Position))
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, qb.Lte(player.FieldPrice, *filter.MaxPrice))
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, qb.Gte(player.FieldPrice, *filter.MinPrice))
	}
	return conditions
}

// classify marks connectivity failures so callers can tell an unreachable
// store apart from a bad query.
func classify(err error, op string) error {
	wrapped := crerr.Wrap(err, op)
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) ||
		crerr.Is(err, mongo.ErrClientDisconnected) ||
		crerr.Is(err, context.DeadlineExceeded) {
		return crerr.Mark(wrapped, player.ErrStoreUnavailable)
	}
	return wrapped
}
