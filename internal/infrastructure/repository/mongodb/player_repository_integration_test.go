package mongodb

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
	"github.com/riskibarqy/fpl-stats-api/internal/platform/logging"
)

func TestPlayerRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("start mongodb container: %v", err)
	}
	defer func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate container: %v", err)
		}
	}()

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	client, err := Connect(ctx, Config{
		URI:              uri,
		Database:         "fpl_test",
		ConnectTimeout:   30 * time.Second,
		OperationTimeout: 5 * time.Second,
		MaxPoolSize:      5,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close(ctx)

	if err := client.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	ids := seedCollection(ctx, t, client, "players", 30)
	repo := NewPlayerRepository(client, "players")

	t.Run("page window and count", func(t *testing.T) {
		query := player.Query{
			Pagination: player.NewPagination(2, 10),
			Sort:       player.Sort{Field: "total_points", Direction: player.SortAscending},
		}
		docs, err := repo.Find(ctx, query)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(docs) != 10 {
			t.Fatalf("expected 10 documents, got %d", len(docs))
		}
		if *docs[0].Name != "Player 11" || *docs[9].Name != "Player 20" {
			t.Fatalf("unexpected page: first=%s last=%s", *docs[0].Name, *docs[9].Name)
		}
		for _, doc := range docs {
			if doc.History != nil || doc.Fixtures != nil || doc.SeasonStats != nil {
				t.Fatalf("expected nested sections to be projected out: %+v", doc)
			}
		}

		total, err := repo.Count(ctx, query.Filter)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if total != 30 {
			t.Fatalf("expected total 30, got %d", total)
		}
	})

	t.Run("huge limit returns every match", func(t *testing.T) {
		docs, err := repo.Find(ctx, player.Query{Pagination: player.NewPagination(1, math.MaxInt64)})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(docs) != 30 {
			t.Fatalf("expected 30 documents, got %d", len(docs))
		}
	})

	t.Run("no match is an empty list", func(t *testing.T) {
		team := "Nowhere FC"
		docs, err := repo.Find(ctx, player.Query{
			Pagination: player.NewPagination(1, 1_000_000_000),
			Filter:     player.Filter{Team: &team},
		})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if docs == nil || len(docs) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", docs)
		}
	})

	t.Run("filter by team and price", func(t *testing.T) {
		team := "Arsenal"
		minPrice := int64(8)
		filter := player.Filter{Team: &team, MinPrice: &minPrice}
		docs, err := repo.Find(ctx, player.Query{Pagination: player.NewPagination(1, 25), Filter: filter})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		for _, doc := range docs {
			if *doc.Team != "Arsenal" || *doc.Price < 8 {
				t.Fatalf("document does not match filter: team=%s price=%v", *doc.Team, *doc.Price)
			}
		}
		total, err := repo.Count(ctx, filter)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if int(total) != len(docs) {
			t.Fatalf("count %d does not match find %d", total, len(docs))
		}
	})

	t.Run("get by id", func(t *testing.T) {
		doc, ok, err := repo.GetByID(ctx, ids[0])
		if err != nil || !ok {
			t.Fatalf("get by id: ok=%t err=%v", ok, err)
		}
		if doc.History == nil || len(*doc.History) != 0 {
			t.Fatalf("expected present but empty history, got %v", doc.History)
		}
		if doc.Fixtures != nil {
			t.Fatalf("expected absent fixtures, got %v", doc.Fixtures)
		}
		if doc.SeasonStats == nil || doc.SeasonStats.AggregateStats == nil ||
			*doc.SeasonStats.AggregateStats.SeasonTotals.BonusPointSystem != 42 {
			t.Fatalf("unexpected season stats: %+v", doc.SeasonStats)
		}

		_, ok, err = repo.GetByID(ctx, primitive.NewObjectID())
		if err != nil || ok {
			t.Fatalf("expected miss, got ok=%t err=%v", ok, err)
		}
	})
}

func seedCollection(ctx context.Context, t *testing.T, client *Client, collection string, n int) []primitive.ObjectID {
	t.Helper()

	teams := []string{"Arsenal", "Chelsea", "Liverpool"}
	docs := make([]any, 0, n)
	ids := make([]primitive.ObjectID, 0, n)
	for i := 1; i <= n; i++ {
		id := primitive.NewObjectID()
		ids = append(ids, id)
		doc := bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: fmt.Sprintf("Player %d", i)},
			{Key: "team", Value: teams[i%len(teams)]},
			{Key: "position", Value: "MID"},
			{Key: "price", Value: 4.0 + float64(i%8)},
			{Key: "total_points", Value: int64(i)},
		}
		if i == 1 {
			doc = append(doc,
				bson.E{Key: "history", Value: bson.A{}},
				bson.E{Key: "season_stats", Value: bson.D{
					{Key: "gameweek_stats", Value: bson.A{}},
					{Key: "aggregate_stats", Value: bson.D{
						{Key: "season_totals", Value: bson.D{{Key: "bonus_point_system", Value: int64(42)}}},
					}},
				}},
			)
		}
		docs = append(docs, doc)
	}

	if _, err := client.Collection(collection).InsertMany(ctx, docs); err != nil {
		t.Fatalf("seed collection: %v", err)
	}
	return ids
}
