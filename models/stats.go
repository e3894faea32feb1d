package models

// OpponentStats is the head-to-head record against one opponent team name.
type OpponentStats struct {
	OpponentTeam string `json:"opponent_team"`
	TotalGames   int    `json:"total_games"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Draws        int    `json:"draws"`
}

// LeaderboardEntry tallies goals and assists for one player; points is the
// primary sort key (goals + assists).
type LeaderboardEntry struct {
	PlayerID uint   `json:"player_id"`
	Name     string `json:"name"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Points   int    `json:"points"`
}
