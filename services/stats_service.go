package services

import (
	"sort"

	"oracle-manager-api/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// GetOpponentStats groups games by exact opponent team name and tallies the
// result labels per group. Opponents we never played do not produce a row.
func (s *StatsService) GetOpponentStats() ([]models.OpponentStats, error) {
	var stats []models.OpponentStats

	err := s.db.Model(&models.Game{}).
		Select(`opponent_team,
			COUNT(id) AS total_games,
			SUM(CASE WHEN result = 'WIN' THEN 1 ELSE 0 END) AS wins,
			SUM(CASE WHEN result = 'LOSE' THEN 1 ELSE 0 END) AS losses,
			SUM(CASE WHEN result = 'DRAW' THEN 1 ELSE 0 END) AS draws`).
		Group("opponent_team").
		Order("opponent_team ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetLeaderboard tallies goals and assists per player over all games. Every
// roster member appears, scoreless players with zero tallies. Sorted by
// points descending, player id ascending on ties.
func (s *StatsService) GetLeaderboard() ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry

	err := s.db.Table("players").
		Select(`players.id AS player_id,
			players.name,
			COALESCE(SUM(CASE WHEN game_events.event_type = 'GOAL' THEN 1 ELSE 0 END), 0) AS goals,
			COALESCE(SUM(CASE WHEN game_events.event_type = 'ASSIST' THEN 1 ELSE 0 END), 0) AS assists`).
		Joins("LEFT JOIN game_events ON game_events.player_id = players.id").
		Group("players.id, players.name").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Points = entries[i].Goals + entries[i].Assists
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	return entries, nil
}
