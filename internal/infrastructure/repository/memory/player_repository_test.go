package memory

import (
	"context"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
)

func numberedPlayers(n int) []player.Document {
	teams := []string{"Arsenal", "Chelsea", "Liverpool"}
	out := make([]player.Document, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, player.Document{
			ID:          primitive.NewObjectID(),
			Name:        ptr(fmt.Sprintf("Player %d", i)),
			Team:        ptr(teams[i%len(teams)]),
			Price:       ptr(4.0 + float64(i%8)),
			TotalPoints: ptr(int64(i)),
			History:     &[]player.HistoryEntry{},
		})
	}
	return out
}

func newRepo(t *testing.T, docs []player.Document) *PlayerRepository {
	t.Helper()
	repo, err := NewPlayerRepository(docs)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo
}

func TestPlayerRepository_FindWindowAndCount(t *testing.T) {
	repo := newRepo(t, numberedPlayers(30))
	ctx := context.Background()

	docs, err := repo.Find(ctx, player.Query{Pagination: player.NewPagination(2, 10)})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 10 {
		t.Fatalf("expected 10 documents, got %d", len(docs))
	}
	if *docs[0].Name != "Player 11" || *docs[9].Name != "Player 20" {
		t.Fatalf("unexpected window: %s..%s", *docs[0].Name, *docs[9].Name)
	}
	if docs[0].History != nil {
		t.Fatalf("expected history to be projected out of listing results")
	}

	total, err := repo.Count(ctx, player.Filter{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 30 {
		t.Fatalf("expected 30, got %d", total)
	}

	docs, err = repo.Find(ctx, player.Query{Pagination: player.NewPagination(4, 10)})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 0 || docs == nil {
		t.Fatalf("expected empty non-nil page past the end, got %v", docs)
	}
}

func TestPlayerRepository_FindSortsByField(t *testing.T) {
	repo := newRepo(t, numberedPlayers(5))
	ctx := context.Background()

	docs, err := repo.Find(ctx, player.Query{
		Pagination: player.NewPagination(1, 25),
		Sort:       player.Sort{Field: "total_points", Direction: player.SortDescending},
	})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	for i, want := range []int64{5, 4, 3, 2, 1} {
		if *docs[i].TotalPoints != want {
			t.Fatalf("position %d: want %d got %d", i, want, *docs[i].TotalPoints)
		}
	}

	docs, _ = repo.Find(ctx, player.Query{
		Pagination: player.NewPagination(1, 25),
		Sort:       player.Sort{Field: "name", Direction: player.SortAscending},
	})
	if *docs[0].Name != "Player 1" || *docs[4].Name != "Player 5" {
		t.Fatalf("unexpected name order: %s..%s", *docs[0].Name, *docs[4].Name)
	}
}

func TestPlayerRepository_SortPlacesMissingFirstAscending(t *testing.T) {
	docs := numberedPlayers(3)
	docs[1].TotalPoints = nil
	repo := newRepo(t, docs)

	got, err := repo.Find(context.Background(), player.Query{
		Pagination: player.NewPagination(1, 25),
		Sort:       player.Sort{Field: "total_points", Direction: player.SortAscending},
	})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got[0].TotalPoints != nil {
		t.Fatalf("expected missing value first, got %d", *got[0].TotalPoints)
	}
	if *got[1].TotalPoints != 1 || *got[2].TotalPoints != 3 {
		t.Fatalf("unexpected order: %d, %d", *got[1].TotalPoints, *got[2].TotalPoints)
	}
}

func TestPlayerRepository_SortByNestedFieldIsStable(t *testing.T) {
	docs := numberedPlayers(4)
	docs[0].Status = &player.Status{Flag: ptr("d")}
	docs[2].Status = &player.Status{Flag: ptr("a")}
	repo := newRepo(t, docs)

	got, err := repo.Find(context.Background(), player.Query{
		Pagination: player.NewPagination(1, 25),
		Sort:       player.Sort{Field: "status.flag", Direction: player.SortAscending},
	})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	want := []string{"Player 2", "Player 4", "Player 3", "Player 1"}
	for i := range want {
		if *got[i].Name != want[i] {
			t.Fatalf("position %d: want %s got %s", i, want[i], *got[i].Name)
		}
	}
}

func TestPlayerRepository_Filter(t *testing.T) {
	repo := newRepo(t, numberedPlayers(30))
	ctx := context.Background()

	team := "Arsenal"
	minPrice := int64(8)
	filter := player.Filter{Team: &team, MinPrice: &minPrice}
	docs, err := repo.Find(ctx, player.Query{Pagination: player.NewPagination(1, 25), Filter: filter})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) == 0 {
		t.Fatalf("expected matches")
	}
	for _, doc := range docs {
		if *doc.Team != "Arsenal" || *doc.Price < 8 {
			t.Fatalf("unexpected match: team=%s price=%v", *doc.Team, *doc.Price)
		}
	}
	total, _ := repo.Count(ctx, filter)
	if int(total) != len(docs) {
		t.Fatalf("count %d does not match find %d", total, len(docs))
	}

	maxPrice := int64(3)
	total, _ = repo.Count(ctx, player.Filter{MaxPrice: &maxPrice})
	if total != 0 {
		t.Fatalf("expected no players under 3.0, got %d", total)
	}

	position := "GK"
	total, _ = repo.Count(ctx, player.Filter{Position: &position})
	if total != 0 {
		t.Fatalf("expected documents without position not to match, got %d", total)
	}
}

func TestPlayerRepository_GetByID(t *testing.T) {
	seed := SeedPlayers()
	repo := newRepo(t, seed)
	ctx := context.Background()

	doc, ok, err := repo.GetByID(ctx, seed[0].ID)
	if err != nil || !ok {
		t.Fatalf("get by id: ok=%t err=%v", ok, err)
	}
	if doc.History == nil || doc.SeasonStats == nil || doc.Fixtures == nil {
		t.Fatalf("expected full document")
	}

	_, ok, err = repo.GetByID(ctx, primitive.NewObjectID())
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%t err=%v", ok, err)
	}
}

func TestPlayerRepository_HonoursCanceledContext(t *testing.T) {
	repo := newRepo(t, numberedPlayers(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.Find(ctx, player.Query{Pagination: player.NewPagination(1, 25)}); err == nil {
		t.Fatalf("expected error on canceled context")
	}
	if _, err := repo.Count(ctx, player.Filter{}); err == nil {
		t.Fatalf("expected error on canceled context")
	}
}
