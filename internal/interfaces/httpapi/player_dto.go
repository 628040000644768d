package httpapi

import (
	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
	"github.com/riskibarqy/fpl-stats-api/internal/usecase"
)

// Output records keep every field optional: a value missing in storage is
// omitted from the response rather than rendered as a zero value.

type playerListDTO struct {
	Page        int64              `json:"page"`
	PageCount   int64              `json:"pageCount"`
	ResultCount int64              `json:"resultCount"`
	TotalCount  int64              `json:"totalCount"`
	Players     []playerSummaryDTO `json:"players"`
}

type playerStatusDTO struct {
	Flag   *string `json:"flag,omitempty"`
	Reason *string `json:"reason,omitempty"`
}

type playerSummaryDTO struct {
	ID             string           `json:"id,omitempty"`
	Status         *playerStatusDTO `json:"status,omitempty"`
	Position       *string          `json:"position,omitempty"`
	Name           *string          `json:"name,omitempty"`
	Team           *string          `json:"team,omitempty"`
	Price          *float64         `json:"price,omitempty"`
	Form           *float64         `json:"form,omitempty"`
	PointsPerMatch *float64         `json:"pointsPerMatch,omitempty"`
	GameweekPoints *int64           `json:"gameweekPoints,omitempty"`
	TotalPoints    *int64           `json:"totalPoints,omitempty"`
	TotalBonus     *int64           `json:"totalBonus,omitempty"`
	ICTIndex       *float64         `json:"ictIndex,omitempty"`
	TSB            *float64         `json:"tsb,omitempty"`
	LastUpdated    *string          `json:"lastUpdated,omitempty"`
}

type playerDTO struct {
	playerSummaryDTO
	SeasonStats *seasonStatsDTO    `json:"seasonStats,omitempty"`
	History     *[]historyEntryDTO `json:"history,omitempty"`
	Fixtures    *[]fixtureDTO      `json:"fixtures,omitempty"`
}

type seasonStatsDTO struct {
	GameweekStats  *[]gameweekStatsDTO `json:"gameweekStats,omitempty"`
	AggregateStats *aggregateStatsDTO  `json:"aggregateStats,omitempty"`
}

type aggregateStatsDTO struct {
	SeasonTotals   *seasonTotalsDTO   `json:"seasonTotals,omitempty"`
	StatsPerNinety *statsPerNinetyDTO `json:"statsPerNinety,omitempty"`
}

type gameweekStatsDTO struct {
	Gameweek                 *int64   `json:"gameweek,omitempty"`
	Opponent                 *string  `json:"opponent,omitempty"`
	Outcome                  *string  `json:"outcome,omitempty"`
	Points                   *int64   `json:"points,omitempty"`
	Start                    *int64   `json:"start,omitempty"`
	MinutesPlayed            *int64   `json:"minutesPlayed,omitempty"`
	GoalsScored              *int64   `json:"goalsScored,omitempty"`
	Assists                  *int64   `json:"assists,omitempty"`
	ExpectedGoals            *float64 `json:"expectedGoals,omitempty"`
	ExpectedAssists          *float64 `json:"expectedAssists,omitempty"`
	ExpectedGoalInvolvements *float64 `json:"expectedGoalInvolvements,omitempty"`
	CleanSheets              *int64   `json:"cleanSheets,omitempty"`
	GoalsConceded            *int64   `json:"goalsConceded,omitempty"`
	ExpectedGoalsConceded    *float64 `json:"expectedGoalsConceded,omitempty"`
	OwnGoals                 *int64   `json:"ownGoals,omitempty"`
	PenaltiesSaved           *int64   `json:"penaltiesSaved,omitempty"`
	PenaltiesMissed          *int64   `json:"penaltiesMissed,omitempty"`
	YellowCards              *int64   `json:"yellowCards,omitempty"`
	RedCards                 *int64   `json:"redCards,omitempty"`
	Saves                    *int64   `json:"saves,omitempty"`
	BonusPoints              *int64   `json:"bonusPoints,omitempty"`
	BonusPointsSystem        *int64   `json:"bonusPointsSystem,omitempty"`
	Influence                *float64 `json:"influence,omitempty"`
	Creativity               *float64 `json:"creativity,omitempty"`
	Threat                   *float64 `json:"threat,omitempty"`
	ICTIndex                 *float64 `json:"ictIndex,omitempty"`
	NetTransfers             *int64   `json:"nt,omitempty"`
	SelectedBy               *int64   `json:"sb,omitempty"`
	Price                    *float64 `json:"price,omitempty"`
}

// seasonTotalsDTO writes bonusPointSystem, singular, which existing
// consumers read. Gameweek and history records use bonusPointsSystem.
type seasonTotalsDTO struct {
	Points                   *int64   `json:"points,omitempty"`
	Starts                   *int64   `json:"starts,omitempty"`
	Minutes                  *int64   `json:"minutes,omitempty"`
	GoalsScored              *int64   `json:"goalsScored,omitempty"`
	Assists                  *int64   `json:"assists,omitempty"`
	ExpectedGoals            *float64 `json:"expectedGoals,omitempty"`
	ExpectedAssists          *float64 `json:"expectedAssists,omitempty"`
	ExpectedGoalInvolvements *float64 `json:"expectedGoalInvolvements,omitempty"`
	CleanSheets              *int64   `json:"cleanSheets,omitempty"`
	GoalsConceded            *int64   `json:"goalsConceded,omitempty"`
	ExpectedGoalsConceded    *float64 `json:"expectedGoalsConceded,omitempty"`
	OwnGoals                 *int64   `json:"ownGoals,omitempty"`
	PenaltiesSaved           *int64   `json:"penaltiesSaved,omitempty"`
	PenaltiesMissed          *int64   `json:"penaltiesMissed,omitempty"`
	YellowCards              *int64   `json:"yellowCards,omitempty"`
	RedCards                 *int64   `json:"redCards,omitempty"`
	Saves                    *int64   `json:"saves,omitempty"`
	BonusPoints              *int64   `json:"bonusPoints,omitempty"`
	BonusPointSystem         *int64   `json:"bonusPointSystem,omitempty"`
	Influence                *float64 `json:"influence,omitempty"`
	Creativity               *float64 `json:"creativity,omitempty"`
	Threat                   *float64 `json:"threat,omitempty"`
	ICTIndex                 *float64 `json:"ictIndex,omitempty"`
}

type statsPerNinetyDTO struct {
	ExpectedGoals            *float64 `json:"expectedGoals,omitempty"`
	ExpectedAssists          *float64 `json:"expectedAssists,omitempty"`
	ExpectedGoalInvolvements *float64 `json:"expectedGoalInvolvements,omitempty"`
	CleanSheets              *float64 `json:"cleanSheets,omitempty"`
	GoalsConceded            *float64 `json:"goalsConceded,omitempty"`
	ExpectedGoalsConceded    *float64 `json:"expectedGoalsConceded,omitempty"`
	Saves                    *float64 `json:"saves,omitempty"`
}

type historyEntryDTO struct {
	Season                   *string  `json:"season,omitempty"`
	Points                   *int64   `json:"points,omitempty"`
	GamesStarted             *int64   `json:"gamesStarted,omitempty"`
	MinutesPlayed            *int64   `json:"minutesPlayed,omitempty"`
	GoalsScored              *int64   `json:"goalsScored,omitempty"`
	Assists                  *int64   `json:"assists,omitempty"`
	ExpectedGoals            *float64 `json:"expectedGoals,omitempty"`
	ExpectedAssists          *float64 `json:"expectedAssists,omitempty"`
	ExpectedGoalInvolvements *float64 `json:"expectedGoalInvolvements,omitempty"`
	CleanSheets              *int64   `json:"cleanSheets,omitempty"`
	GoalsConceded            *int64   `json:"goalsConceded,omitempty"`
	ExpectedGoalsConceded    *float64 `json:"expectedGoalsConceded,omitempty"`
	OwnGoals                 *int64   `json:"ownGoals,omitempty"`
	PenaltiesSaved           *int64   `json:"penaltiesSaved,omitempty"`
	PenaltiesMissed          *int64   `json:"penaltiesMissed,omitempty"`
	YellowCards              *int64   `json:"yellowCards,omitempty"`
	RedCards                 *int64   `json:"redCards,omitempty"`
	Saves                    *int64   `json:"saves,omitempty"`
	BonusPoints              *int64   `json:"bonusPoints,omitempty"`
	BonusPointsSystem        *int64   `json:"bonusPointsSystem,omitempty"`
	Influence                *float64 `json:"influence,omitempty"`
	Creativity               *float64 `json:"creativity,omitempty"`
	Threat                   *float64 `json:"threat,omitempty"`
	ICTIndex                 *float64 `json:"ictIndex,omitempty"`
	SeasonStartPrice         *float64 `json:"seasonStartPrice,omitempty"`
	SeasonEndPrice           *float64 `json:"seasonEndPrice,omitempty"`
}

type fixtureDTO struct {
	Date       *string `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`
	Gameweek   *string `json:"gameweek,omitempty"`
	Opponent   *string `json:"opponent,omitempty"`
	HomeAway   *string `json:"homeAway,omitempty"`
	Difficulty *int64  `json:"difficulty,omitempty"`
}

func playerPageToDTO(page usecase.PlayerPage) playerListDTO {
	items := make([]playerSummaryDTO, 0, len(page.Players))
	for _, doc := range page.Players {
		items = append(items, toPlayerSummary(doc))
	}
	return playerListDTO{
		Page:        page.Page,
		PageCount:   page.PageCount,
		ResultCount: page.ResultCount,
		TotalCount:  page.TotalCount,
		Players:     items,
	}
}

func toPlayerSummary(doc player.Document) playerSummaryDTO {
	out := playerSummaryDTO{
		Position:       doc.Position,
		Name:           doc.Name,
		Team:           doc.Team,
		Price:          doc.Price,
		Form:           doc.Form,
		PointsPerMatch: doc.PointsPerMatch,
		GameweekPoints: doc.GameweekPoints,
		TotalPoints:    doc.TotalPoints,
		TotalBonus:     doc.TotalBonus,
		ICTIndex:       doc.ICTIndex,
		TSB:            doc.TSB,
		LastUpdated:    doc.LastUpdated,
	}
	if !doc.ID.IsZero() {
		out.ID = doc.ID.Hex()
	}
	if doc.Status != nil {
		out.Status = &playerStatusDTO{Flag: doc.Status.Flag, Reason: doc.Status.Reason}
	}
	return out
}

func toPlayer(doc player.Document) playerDTO {
	out := playerDTO{playerSummaryDTO: toPlayerSummary(doc)}
	if doc.SeasonStats != nil {
		out.SeasonStats = toSeasonStats(*doc.SeasonStats)
	}
	if doc.History != nil {
		items := make([]historyEntryDTO, 0, len(*doc.History))
		for _, h := range *doc.History {
			items = append(items, toHistoryEntry(h))
		}
		out.History = &items
	}
	if doc.Fixtures != nil {
		items := make([]fixtureDTO, 0, len(*doc.Fixtures))
		for _, f := range *doc.Fixtures {
			items = append(items, fixtureDTO{
				Date:       f.Date,
				Time:       f.Time,
				Gameweek:   f.Gameweek,
				Opponent:   f.Opponent,
				HomeAway:   f.HomeAway,
				Difficulty: f.Difficulty,
			})
		}
		out.Fixtures = &items
	}
	return out
}

func toSeasonStats(stats player.SeasonStats) *seasonStatsDTO {
	out := &seasonStatsDTO{}
	if stats.GameweekStats != nil {
		items := make([]gameweekStatsDTO, 0, len(*stats.GameweekStats))
		for _, gw := range *stats.GameweekStats {
			items = append(items, toGameweekStats(gw))
		}
		out.GameweekStats = &items
	}
	if agg := stats.AggregateStats; agg != nil {
		out.AggregateStats = &aggregateStatsDTO{}
		if agg.SeasonTotals != nil {
			out.AggregateStats.SeasonTotals = toSeasonTotals(*agg.SeasonTotals)
		}
		if p90 := agg.StatsPerNinety; p90 != nil {
			out.AggregateStats.StatsPerNinety = &statsPerNinetyDTO{
				ExpectedGoals:            p90.ExpectedGoals,
				ExpectedAssists:          p90.ExpectedAssists,
				ExpectedGoalInvolvements: p90.ExpectedGoalInvolvements,
				CleanSheets:              p90.CleanSheets,
				GoalsConceded:            p90.GoalsConceded,
				ExpectedGoalsConceded:    p90.ExpectedGoalsConceded,
				Saves:                    p90.Saves,
			}
		}
	}
	return out
}

func toGameweekStats(gw player.GameweekStats) gameweekStatsDTO {
	return gameweekStatsDTO{
		Gameweek:                 gw.Gameweek,
		Opponent:                 gw.Opponent,
		Outcome:                  gw.Outcome,
		Points:                   gw.Points,
		Start:                    gw.Start,
		MinutesPlayed:            gw.MinutesPlayed,
		GoalsScored:              gw.GoalsScored,
		Assists:                  gw.Assists,
		ExpectedGoals:            gw.ExpectedGoals,
		ExpectedAssists:          gw.ExpectedAssists,
		ExpectedGoalInvolvements: gw.ExpectedGoalInvolvements,
		CleanSheets:              gw.CleanSheets,
		GoalsConceded:            gw.GoalsConceded,
		ExpectedGoalsConceded:    gw.ExpectedGoalsConceded,
		OwnGoals:                 gw.OwnGoals,
		PenaltiesSaved:           gw.PenaltiesSaved,
		PenaltiesMissed:          gw.PenaltiesMissed,
		YellowCards:              gw.YellowCards,
		RedCards:                 gw.RedCards,
		Saves:                    gw.Saves,
		BonusPoints:              gw.BonusPoints,
		BonusPointsSystem:        gw.BonusPointsSystem,
		Influence:                gw.Influence,
		Creativity:               gw.Creativity,
		Threat:                   gw.Threat,
		ICTIndex:                 gw.ICTIndex,
		NetTransfers:             gw.NetTransfers,
		SelectedBy:               gw.SelectedBy,
		Price:                    gw.Price,
	}
}

func toSeasonTotals(st player.SeasonTotals) *seasonTotalsDTO {
	return &seasonTotalsDTO{
		Points:                   st.Points,
		Starts:                   st.Starts,
		Minutes:                  st.Minutes,
		GoalsScored:              st.GoalsScored,
		Assists:                  st.Assists,
		ExpectedGoals:            st.ExpectedGoals,
		ExpectedAssists:          st.ExpectedAssists,
		ExpectedGoalInvolvements: st.ExpectedGoalInvolvements,
		CleanSheets:              st.CleanSheets,
		GoalsConceded:            st.GoalsConceded,
		ExpectedGoalsConceded:    st.ExpectedGoalsConceded,
		OwnGoals:                 st.OwnGoals,
		PenaltiesSaved:           st.PenaltiesSaved,
		PenaltiesMissed:          st.PenaltiesMissed,
		YellowCards:              st.YellowCards,
		RedCards:                 st.RedCards,
		Saves:                    st.Saves,
		BonusPoints:              st.BonusPoints,
		BonusPointSystem:         st.BonusPointSystem,
		Influence:                st.Influence,
		Creativity:               st.Creativity,
		Threat:                   st.Threat,
		ICTIndex:                 st.ICTIndex,
	}
}

func toHistoryEntry(h player.HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		Season:                   h.Season,
		Points:                   h.Points,
		GamesStarted:             h.GamesStarted,
		MinutesPlayed:            h.MinutesPlayed,
		GoalsScored:              h.GoalsScored,
		Assists:                  h.Assists,
		ExpectedGoals:            h.ExpectedGoals,
		ExpectedAssists:          h.ExpectedAssists,
		ExpectedGoalInvolvements: h.ExpectedGoalInvolvements,
		CleanSheets:              h.CleanSheets,
		GoalsConceded:            h.GoalsConceded,
		ExpectedGoalsConceded:    h.ExpectedGoalsConceded,
		OwnGoals:                 h.OwnGoals,
		PenaltiesSaved:           h.PenaltiesSaved,
		PenaltiesMissed:          h.PenaltiesMissed,
		YellowCards:              h.YellowCards,
		RedCards:                 h.RedCards,
		Saves:                    h.Saves,
		BonusPoints:              h.BonusPoints,
		BonusPointsSystem:        h.BonusPointsSystem,
		Influence:                h.Influence,
		Creativity:               h.Creativity,
		Threat:                   h.Threat,
		ICTIndex:                 h.ICTIndex,
		SeasonStartPrice:         h.SeasonStartPrice,
		SeasonEndPrice:           h.SeasonEndPrice,
	}
}
