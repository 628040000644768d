package memory

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
)

const seedLastUpdated = "2025-10-06T08:00:00Z"

// SeedPlayers returns a small fixed data set for local runs without a
// document store.
func SeedPlayers() []player.Document {
	return []player.Document{
		{
			ID:             objectID("66f1a2b3c4d5e6f7a8b9c001"),
			Status:         &player.Status{Flag: ptr("a")},
			Position:       ptr("MID"),
			Name:           ptr("Bukayo Saka"),
			Team:           ptr("Arsenal"),
			Price:          ptr(10.1),
			Form:           ptr(6.3),
			PointsPerMatch: ptr(5.9),
			GameweekPoints: ptr[int64](8),
			TotalPoints:    ptr[int64](41),
			TotalBonus:     ptr[int64](5),
			ICTIndex:       ptr(72.4),
			TSB:            ptr(38.2),
			SeasonStats: &player.SeasonStats{
				GameweekStats: &[]player.GameweekStats{
					{
						Gameweek:                 ptr[int64](7),
						Opponent:                 ptr("WHU (H)"),
						Outcome:                  ptr("W 2-0"),
						Points:                   ptr[int64](8),
						Start:                    ptr[int64](1),
						MinutesPlayed:            ptr[int64](90),
						GoalsScored:              ptr[int64](1),
						Assists:                  ptr[int64](0),
						ExpectedGoals:            ptr(0.62),
						ExpectedAssists:          ptr(0.21),
						ExpectedGoalInvolvements: ptr(0.83),
						CleanSheets:              ptr[int64](1),
						GoalsConceded:            ptr[int64](0),
						ExpectedGoalsConceded:    ptr(0.54),
						OwnGoals:                 ptr[int64](0),
						PenaltiesSaved:           ptr[int64](0),
						PenaltiesMissed:          ptr[int64](0),
						YellowCards:              ptr[int64](0),
						RedCards:                 ptr[int64](0),
						Saves:                    ptr[int64](0),
						BonusPoints:              ptr[int64](2),
						BonusPointsSystem:        ptr[int64](31),
						Influence:                ptr(38.6),
						Creativity:               ptr(27.1),
						Threat:                   ptr(44.0),
						ICTIndex:                 ptr(11.0),
						NetTransfers:             ptr[int64](120543),
						SelectedBy:               ptr[int64](3821044),
						Price:                    ptr(10.1),
					},
				},
				AggregateStats: &player.AggregateStats{
					SeasonTotals: &player.SeasonTotals{
						Points:                   ptr[int64](41),
						Starts:                   ptr[int64](7),
						Minutes:                  ptr[int64](598),
						GoalsScored:              ptr[int64](3),
						Assists:                  ptr[int64](4),
						ExpectedGoals:            ptr(2.71),
						ExpectedAssists:          ptr(1.94),
						ExpectedGoalInvolvements: ptr(4.65),
						CleanSheets:              ptr[int64](4),
						GoalsConceded:            ptr[int64](4),
						ExpectedGoalsConceded:    ptr(5.12),
						OwnGoals:                 ptr[int64](0),
						PenaltiesSaved:           ptr[int64](0),
						PenaltiesMissed:          ptr[int64](0),
						YellowCards:              ptr[int64](1),
						RedCards:                 ptr[int64](0),
						Saves:                    ptr[int64](0),
						BonusPoints:              ptr[int64](5),
						BonusPointSystem:         ptr[int64](187),
						Influence:                ptr(231.4),
						Creativity:               ptr(246.9),
						Threat:                   ptr(245.0),
						ICTIndex:                 ptr(72.4),
					},
					StatsPerNinety: &player.StatsPerNinety{
						ExpectedGoals:            ptr(0.41),
						ExpectedAssists:          ptr(0.29),
						ExpectedGoalInvolvements: ptr(0.7),
						CleanSheets:              ptr(0.6),
						GoalsConceded:            ptr(0.6),
						ExpectedGoalsConceded:    ptr(0.77),
						Saves:                    ptr(0.0),
					},
				},
			},
			History: &[]player.HistoryEntry{
				{
					Season:                   ptr("2024/25"),
					Points:                   ptr[int64](150),
					GamesStarted:             ptr[int64](22),
					MinutesPlayed:            ptr[int64](1720),
					GoalsScored:              ptr[int64](6),
					Assists:                  ptr[int64](10),
					ExpectedGoals:            ptr(7.2),
					ExpectedAssists:          ptr(6.8),
					ExpectedGoalInvolvements: ptr(14.0),
					CleanSheets:              ptr[int64](9),
					GoalsConceded:            ptr[int64](18),
					ExpectedGoalsConceded:    ptr(19.4),
					OwnGoals:                 ptr[int64](0),
					PenaltiesSaved:           ptr[int64](0),
					PenaltiesMissed:          ptr[int64](1),
					YellowCards:              ptr[int64](3),
					RedCards:                 ptr[int64](0),
					Saves:                    ptr[int64](0),
					BonusPoints:              ptr[int64](14),
					BonusPointsSystem:        ptr[int64](512),
					Influence:                ptr(612.2),
					Creativity:               ptr(845.5),
					Threat:                   ptr(701.0),
					ICTIndex:                 ptr(215.9),
					SeasonStartPrice:         ptr(10.0),
					SeasonEndPrice:           ptr(10.3),
				},
			},
			Fixtures: &[]player.Fixture{
				{Date: ptr("2025-10-18"), Time: ptr("15:00"), Gameweek: ptr("GW8"), Opponent: ptr("FUL"), HomeAway: ptr("A"), Difficulty: ptr[int64](2)},
				{Date: ptr("2025-10-25"), Time: ptr("17:30"), Gameweek: ptr("GW9"), Opponent: ptr("CRY"), HomeAway: ptr("H"), Difficulty: ptr[int64](3)},
			},
			LastUpdated: ptr(seedLastUpdated),
		},
		{
			ID:             objectID("66f1a2b3c4d5e6f7a8b9c002"),
			Status:         &player.Status{Flag: ptr("a")},
			Position:       ptr("GK"),
			Name:           ptr("David Raya"),
			Team:           ptr("Arsenal"),
			Price:          ptr(5.6),
			Form:           ptr(5.0),
			PointsPerMatch: ptr(5.1),
			GameweekPoints: ptr[int64](6),
			TotalPoints:    ptr[int64](36),
			TotalBonus:     ptr[int64](3),
			ICTIndex:       ptr(18.9),
			TSB:            ptr(29.7),
			History:        &[]player.HistoryEntry{},
			Fixtures:       &[]player.Fixture{},
			LastUpdated:    ptr(seedLastUpdated),
		},
		{
			ID:             objectID("66f1a2b3c4d5e6f7a8b9c003"),
			Status:         &player.Status{Flag: ptr("d"), Reason: ptr("Hamstring injury - 75% chance of playing")},
			Position:       ptr("DEF"),
			Name:           ptr("Gabriel Magalhaes"),
			Team:           ptr("Arsenal"),
			Price:          ptr(6.3),
			Form:           ptr(4.2),
			PointsPerMatch: ptr(4.8),
			GameweekPoints: ptr[int64](1),
			TotalPoints:    ptr[int64](34),
			TotalBonus:     ptr[int64](4),
			ICTIndex:       ptr(24.5),
			TSB:            ptr(21.4),
			LastUpdated:    ptr(seedLastUpdated),
		},
		{
			ID:             objectID("66f1a2b3c4d5e6f7a8b9c004"),
			Status:         &player.Status{Flag: ptr("a")},
			Position:       ptr("MID"),
			Name:           ptr("Mohamed Salah"),
			Team:           ptr("Liverpool"),
			Price:          ptr(14.5),
			Form:           ptr(5.7),
			PointsPerMatch: ptr(6.1),
			GameweekPoints: ptr[int64](3),
			TotalPoints:    ptr[int64](43),
			TotalBonus:     ptr[int64](6),
			ICTIndex:       ptr(80.2),
			TSB:            ptr(52.6),
			SeasonStats: &player.SeasonStats{
				GameweekStats: &[]player.GameweekStats{},
				AggregateStats: &player.AggregateStats{
					SeasonTotals: &player.SeasonTotals{
						Points:           ptr[int64](43),
						Starts:           ptr[int64](7),
						Minutes:          ptr[int64](630),
						GoalsScored:      ptr[int64](4),
						Assists:          ptr[int64](3),
						BonusPoints:      ptr[int64](6),
						BonusPointSystem: ptr[int64](201),
						ICTIndex:         ptr(80.2),
					},
				},
			},
			LastUpdated: ptr(seedLastUpdated),
		},
		{
			ID:             objectID("66f1a2b3c4d5e6f7a8b9c005"),
			Status:         &player.Status{Flag: ptr("a")},
			Position:       ptr("FWD"),
			Name:           ptr("Erling Haaland"),
			Team:           ptr("Man City"),
			Price:          ptr(14.4),
			Form:           ptr(9.4),
			PointsPerMatch: ptr(8.3),
			GameweekPoints: ptr[int64](13),
			TotalPoints:    ptr[int64](58),
			TotalBonus:     ptr[int64](11),
			ICTIndex:       ptr(89.6),
			TSB:            ptr(61.0),
			LastUpdated:    ptr(seedLastUpdated),
		},
		{
			ID:             objectID("66f1a2b3c4d5e6f7a8b9c006"),
			Status:         &player.Status{Flag: ptr("a")},
			Position:       ptr("MID"),
			Name:           ptr("Cole Palmer"),
			Team:           ptr("Chelsea"),
			Price:          ptr(10.4),
			Form:           ptr(2.1),
			PointsPerMatch: ptr(3.4),
			GameweekPoints: ptr[int64](2),
			TotalPoints:    ptr[int64](17),
			TotalBonus:     ptr[int64](1),
			ICTIndex:       ptr(31.7),
			TSB:            ptr(14.9),
			LastUpdated:    ptr(seedLastUpdated),
		},
	}
}

func objectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

func ptr[T any](v T) *T {
	return &v
}
