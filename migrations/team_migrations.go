package migrations

import "gorm.io/gorm"

func GetTeamMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2026_08_20_000000_create_team_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL UNIQUE,
						position VARCHAR(50),
						dominant_foot VARCHAR(20),
						stamina INT DEFAULT 0,
						speed INT DEFAULT 0,
						shooting_accuracy INT DEFAULT 0,
						dribbling INT DEFAULT 0,
						passing INT DEFAULT 0,
						finishing INT DEFAULT 0,
						crossing INT DEFAULT 0,
						vision INT DEFAULT 0,
						interceptions INT DEFAULT 0,
						tackling INT DEFAULT 0,
						heading INT DEFAULT 0,
						saving INT DEFAULT 0,
						defense_coordination INT DEFAULT 0,
						catching INT DEFAULT 0
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_players_name ON players(name);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS games (
						id BIGSERIAL PRIMARY KEY,
						opponent_team VARCHAR(255) NOT NULL,
						game_date TIMESTAMP NOT NULL,
						our_score INT DEFAULT 0,
						opponent_score INT DEFAULT 0,
						result VARCHAR(10)
					);
					CREATE INDEX IF NOT EXISTS idx_games_game_date ON games(game_date);
					CREATE INDEX IF NOT EXISTS idx_games_opponent_team ON games(opponent_team);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS game_events (
						id BIGSERIAL PRIMARY KEY,
						game_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						event_type VARCHAR(10) NOT NULL,
						FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE,
						FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_game_events_game_id ON game_events(game_id);
					CREATE INDEX IF NOT EXISTS idx_game_events_player_id ON game_events(player_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS game_events;
					DROP TABLE IF EXISTS games;
					DROP TABLE IF EXISTS players;
				`).Error
			},
		},
	}
}
