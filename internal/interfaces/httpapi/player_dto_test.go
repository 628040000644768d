package httpapi

import (
	"testing"

	sonic "github.com/bytedance/sonic"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
)

func ptr[T any](v T) *T { return &v }

func encodeToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := sonic.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestToPlayer_AbsentNestedFieldsAreOmitted(t *testing.T) {
	doc := player.Document{
		ID:   primitive.NewObjectID(),
		Name: ptr("Bukayo Saka"),
		Team: ptr("Arsenal"),
	}

	out := encodeToMap(t, toPlayer(doc))

	for _, key := range []string{"history", "fixtures", "seasonStats", "price", "status"} {
		if _, ok := out[key]; ok {
			t.Fatalf("expected %s to be absent, got %v", key, out[key])
		}
	}
	if out["name"] != "Bukayo Saka" || out["team"] != "Arsenal" {
		t.Fatalf("unexpected scalar copy: %v", out)
	}
}

func TestToPlayer_PresentEmptyListsStayEmpty(t *testing.T) {
	doc := player.Document{
		ID:       primitive.NewObjectID(),
		History:  &[]player.HistoryEntry{},
		Fixtures: &[]player.Fixture{},
	}

	out := encodeToMap(t, toPlayer(doc))

	history, ok := out["history"].([]any)
	if !ok || len(history) != 0 {
		t.Fatalf("expected empty history list, got %#v", out["history"])
	}
	fixtures, ok := out["fixtures"].([]any)
	if !ok || len(fixtures) != 0 {
		t.Fatalf("expected empty fixtures list, got %#v", out["fixtures"])
	}
}

func TestToPlayer_BonusPointSpellings(t *testing.T) {
	doc := player.Document{
		ID: primitive.NewObjectID(),
		SeasonStats: &player.SeasonStats{
			GameweekStats: &[]player.GameweekStats{{Gameweek: ptr[int64](1), BonusPointsSystem: ptr[int64](3)}},
			AggregateStats: &player.AggregateStats{
				SeasonTotals: &player.SeasonTotals{BonusPointSystem: ptr[int64](12)},
			},
		},
		History: &[]player.HistoryEntry{{Season: ptr("2023/24"), BonusPointsSystem: ptr[int64](540)}},
	}

	out := encodeToMap(t, toPlayer(doc))

	seasonStats := out["seasonStats"].(map[string]any)
	totals := seasonStats["aggregateStats"].(map[string]any)["seasonTotals"].(map[string]any)
	if totals["bonusPointSystem"] != float64(12) {
		t.Fatalf("expected seasonTotals.bonusPointSystem=12, got %v", totals)
	}
	if _, ok := totals["bonusPointsSystem"]; ok {
		t.Fatalf("season totals must not use the plural spelling: %v", totals)
	}

	gw := seasonStats["gameweekStats"].([]any)[0].(map[string]any)
	if gw["bonusPointsSystem"] != float64(3) {
		t.Fatalf("expected gameweek bonusPointsSystem=3, got %v", gw)
	}
	if _, ok := gw["bonusPointSystem"]; ok {
		t.Fatalf("gameweek stats must not use the singular spelling: %v", gw)
	}

	history := out["history"].([]any)[0].(map[string]any)
	if history["bonusPointsSystem"] != float64(540) {
		t.Fatalf("expected history bonusPointsSystem=540, got %v", history)
	}
}

func TestToPlayer_AggregateSubBlocksAreIndependent(t *testing.T) {
	doc := player.Document{
		SeasonStats: &player.SeasonStats{
			AggregateStats: &player.AggregateStats{
				StatsPerNinety: &player.StatsPerNinety{ExpectedGoals: ptr(0.41)},
			},
		},
	}

	out := encodeToMap(t, toPlayer(doc))

	seasonStats := out["seasonStats"].(map[string]any)
	if _, ok := seasonStats["gameweekStats"]; ok {
		t.Fatalf("expected gameweekStats to be absent: %v", seasonStats)
	}
	agg := seasonStats["aggregateStats"].(map[string]any)
	if _, ok := agg["seasonTotals"]; ok {
		t.Fatalf("expected seasonTotals to be absent: %v", agg)
	}
	p90 := agg["statsPerNinety"].(map[string]any)
	if p90["expectedGoals"] != 0.41 {
		t.Fatalf("unexpected statsPerNinety: %v", p90)
	}
}

func TestToPlayerSummary_EmptyDocument(t *testing.T) {
	out := encodeToMap(t, toPlayerSummary(player.Document{}))
	if len(out) != 0 {
		t.Fatalf("expected every field absent, got %v", out)
	}
}

func TestToPlayerSummary_CopiesScalars(t *testing.T) {
	id := primitive.NewObjectID()
	doc := player.Document{
		ID:             id,
		Status:         &player.Status{Flag: ptr("d"), Reason: ptr("Knock - 75% chance of playing")},
		Position:       ptr("DEF"),
		Name:           ptr("Gabriel"),
		Team:           ptr("Arsenal"),
		Price:          ptr(6.2),
		Form:           ptr(0.0),
		PointsPerMatch: ptr(4.1),
		GameweekPoints: ptr[int64](0),
		TotalPoints:    ptr[int64](29),
		TotalBonus:     ptr[int64](3),
		ICTIndex:       ptr(30.5),
		TSB:            ptr(22.8),
		LastUpdated:    ptr("2025-10-06T08:00:00Z"),
		History:        &[]player.HistoryEntry{{Season: ptr("2024/25")}},
	}

	out := encodeToMap(t, toPlayerSummary(doc))

	if out["id"] != id.Hex() {
		t.Fatalf("expected id %s, got %v", id.Hex(), out["id"])
	}
	// zero values present in storage are copied, not dropped
	if out["form"] != float64(0) || out["gameweekPoints"] != float64(0) {
		t.Fatalf("expected zero values to be kept, got form=%v gameweekPoints=%v", out["form"], out["gameweekPoints"])
	}
	status := out["status"].(map[string]any)
	if status["flag"] != "d" || status["reason"] != "Knock - 75% chance of playing" {
		t.Fatalf("unexpected status: %v", status)
	}
	if _, ok := out["history"]; ok {
		t.Fatalf("summary must not carry nested data: %v", out)
	}
	if len(out) != 14 {
		t.Fatalf("expected 14 summary fields, got %d: %v", len(out), out)
	}
}
