package player

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document is a stored player record. Every field is optional in storage, so
// scalars are pointers and nested lists are pointers to slices: a nil pointer
// means the field is absent, a pointer to an empty slice means it is present
// but empty.
type Document struct {
	ID             primitive.ObjectID `bson:"_id"`
	Status         *Status            `bson:"status,omitempty"`
	Position       *string            `bson:"position,omitempty"`
	Name           *string            `bson:"name,omitempty"`
	Team           *string            `bson:"team,omitempty"`
	Price          *float64           `bson:"price,omitempty"`
	Form           *float64           `bson:"form,omitempty"`
	PointsPerMatch *float64           `bson:"points_per_match,omitempty"`
	GameweekPoints *int64             `bson:"gameweek_points,omitempty"`
	TotalPoints    *int64             `bson:"total_points,omitempty"`
	TotalBonus     *int64             `bson:"total_bonus,omitempty"`
	ICTIndex       *float64           `bson:"ict_index,omitempty"`
	TSB            *float64           `bson:"tsb,omitempty"`
	SeasonStats    *SeasonStats       `bson:"season_stats,omitempty"`
	History        *[]HistoryEntry    `bson:"history,omitempty"`
	Fixtures       *[]Fixture         `bson:"fixtures,omitempty"`
	LastUpdated    *string            `bson:"last_updated,omitempty"`
}

// Status is the availability flag of a player, e.g. "a" with no reason or
// "d" with an injury description.
type Status struct {
	Flag   *string `bson:"flag,omitempty"`
	Reason *string `bson:"reason,omitempty"`
}

type SeasonStats struct {
	GameweekStats  *[]GameweekStats `bson:"gameweek_stats,omitempty"`
	AggregateStats *AggregateStats  `bson:"aggregate_stats,omitempty"`
}

type AggregateStats struct {
	SeasonTotals   *SeasonTotals   `bson:"season_totals,omitempty"`
	StatsPerNinety *StatsPerNinety `bson:"stats_per_ninety,omitempty"`
}

// GameweekStats is one gameweek line of the current season.
type GameweekStats struct {
	Gameweek                 *int64   `bson:"gameweek,omitempty"`
	Opponent                 *string  `bson:"opponent,omitempty"`
	Outcome                  *string  `bson:"outcome,omitempty"`
	Points                   *int64   `bson:"points,omitempty"`
	Start                    *int64   `bson:"start,omitempty"`
	MinutesPlayed            *int64   `bson:"minutes_played,omitempty"`
	GoalsScored              *int64   `bson:"goals_scored,omitempty"`
	Assists                  *int64   `bson:"assists,omitempty"`
	ExpectedGoals            *float64 `bson:"expected_goals,omitempty"`
	ExpectedAssists          *float64 `bson:"expected_assists,omitempty"`
	ExpectedGoalInvolvements *float64 `bson:"expected_goal_involvements,omitempty"`
	CleanSheets              *int64   `bson:"clean_sheets,omitempty"`
	GoalsConceded            *int64   `bson:"goals_conceded,omitempty"`
	ExpectedGoalsConceded    *float64 `bson:"expected_goals_conceded,omitempty"`
	OwnGoals                 *int64   `bson:"own_goals,omitempty"`
	PenaltiesSaved           *int64   `bson:"penalties_saved,omitempty"`
	PenaltiesMissed          *int64   `bson:"penalties_missed,omitempty"`
	YellowCards              *int64   `bson:"yellow_cards,omitempty"`
	RedCards                 *int64   `bson:"red_cards,omitempty"`
	Saves                    *int64   `bson:"saves,omitempty"`
	BonusPoints              *int64   `bson:"bonus_points,omitempty"`
	BonusPointsSystem        *int64   `bson:"bonus_points_system,omitempty"`
	Influence                *float64 `bson:"influence,omitempty"`
	Creativity               *float64 `bson:"creativity,omitempty"`
	Threat                   *float64 `bson:"threat,omitempty"`
	ICTIndex                 *float64 `bson:"ict_index,omitempty"`
	NetTransfers             *int64   `bson:"nt,omitempty"`
	SelectedBy               *int64   `bson:"sb,omitempty"`
	Price                    *float64 `bson:"price,omitempty"`
}

// SeasonTotals stores the bonus point system under "bonus_point_system",
// unlike the gameweek and history records.
type SeasonTotals struct {
	Points                   *int64   `bson:"points,omitempty"`
	Starts                   *int64   `bson:"starts,omitempty"`
	Minutes                  *int64   `bson:"minutes,omitempty"`
	GoalsScored              *int64   `bson:"goals_scored,omitempty"`
	Assists                  *int64   `bson:"assists,omitempty"`
	ExpectedGoals            *float64 `bson:"expected_goals,omitempty"`
	ExpectedAssists          *float64 `bson:"expected_assists,omitempty"`
	ExpectedGoalInvolvements *float64 `bson:"expected_goal_involvements,omitempty"`
	CleanSheets              *int64   `bson:"clean_sheets,omitempty"`
	GoalsConceded            *int64   `bson:"goals_conceded,omitempty"`
	ExpectedGoalsConceded    *float64 `bson:"expected_goals_conceded,omitempty"`
	OwnGoals                 *int64   `bson:"own_goals,omitempty"`
	PenaltiesSaved           *int64   `bson:"penalties_saved,omitempty"`
	PenaltiesMissed          *int64   `bson:"penalties_missed,omitempty"`
	YellowCards              *int64   `bson:"yellow_cards,omitempty"`
	RedCards                 *int64   `bson:"red_cards,omitempty"`
	Saves                    *int64   `bson:"saves,omitempty"`
	BonusPoints              *int64   `bson:"bonus_points,omitempty"`
	BonusPointSystem         *int64   `bson:"bonus_point_system,omitempty"`
	Influence                *float64 `bson:"influence,omitempty"`
	Creativity               *float64 `bson:"creativity,omitempty"`
	Threat                   *float64 `bson:"threat,omitempty"`
	ICTIndex                 *float64 `bson:"ict_index,omitempty"`
}

type StatsPerNinety struct {
	ExpectedGoals            *float64 `bson:"expected_goals,omitempty"`
	ExpectedAssists          *float64 `bson:"expected_assists,omitempty"`
	ExpectedGoalInvolvements *float64 `bson:"expected_goal_involvements,omitempty"`
	CleanSheets              *float64 `bson:"clean_sheets,omitempty"`
	GoalsConceded            *float64 `bson:"goals_conceded,omitempty"`
	ExpectedGoalsConceded    *float64 `bson:"expected_goals_conceded,omitempty"`
	Saves                    *float64 `bson:"saves,omitempty"`
}

// HistoryEntry is one completed season.
type HistoryEntry struct {
	Season                   *string  `bson:"season,omitempty"`
	Points                   *int64   `bson:"points,omitempty"`
	GamesStarted             *int64   `bson:"games_started,omitempty"`
	MinutesPlayed            *int64   `bson:"minutes_played,omitempty"`
	GoalsScored              *int64   `bson:"goals_scored,omitempty"`
	Assists                  *int64   `bson:"assists,omitempty"`
	ExpectedGoals            *float64 `bson:"expected_goals,omitempty"`
	ExpectedAssists          *float64 `bson:"expected_assists,omitempty"`
	ExpectedGoalInvolvements *float64 `bson:"expected_goal_involvements,omitempty"`
	CleanSheets              *int64   `bson:"clean_sheets,omitempty"`
	GoalsConceded            *int64   `bson:"goals_conceded,omitempty"`
	ExpectedGoalsConceded    *float64 `bson:"expected_goals_conceded,omitempty"`
	OwnGoals                 *int64   `bson:"own_goals,omitempty"`
	PenaltiesSaved           *int64   `bson:"penalties_saved,omitempty"`
	PenaltiesMissed          *int64   `bson:"penalties_missed,omitempty"`
	YellowCards              *int64   `bson:"yellow_cards,omitempty"`
	RedCards                 *int64   `bson:"red_cards,omitempty"`
	Saves                    *int64   `bson:"saves,omitempty"`
	BonusPoints              *int64   `bson:"bonus_points,omitempty"`
	BonusPointsSystem        *int64   `bson:"bonus_points_system,omitempty"`
	Influence                *float64 `bson:"influence,omitempty"`
	Creativity               *float64 `bson:"creativity,omitempty"`
	Threat                   *float64 `bson:"threat,omitempty"`
	ICTIndex                 *float64 `bson:"ict_index,omitempty"`
	SeasonStartPrice         *float64 `bson:"season_start_price,omitempty"`
	SeasonEndPrice           *float64 `bson:"season_end_price,omitempty"`
}

// Fixture is an upcoming match. Gameweek is a display label such as "GW12".
type Fixture struct {
	Date       *string `bson:"date,omitempty"`
	Time       *string `bson:"time,omitempty"`
	Gameweek   *string `bson:"gameweek,omitempty"`
	Opponent   *string `bson:"opponent,omitempty"`
	HomeAway   *string `bson:"home_away,omitempty"`
	Difficulty *int64  `bson:"difficulty,omitempty"`
}
