package services

import (
	"testing"
	"time"

	"oracle-manager-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// openTestDB opens an isolated in-memory sqlite database migrated to the
// current schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DSN:        "file:" + t.Name() + "?mode=memory&cache=shared",
		DriverName: "sqlite",
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	db.Exec("PRAGMA foreign_keys = ON;")

	if err := db.AutoMigrate(&models.Player{}, &models.Game{}, &models.GameEvent{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func createTestPlayer(t *testing.T, s *PlayerService, name string) *models.Player {
	t.Helper()

	player, err := s.CreatePlayer(models.CreatePlayerRequest{Name: name, Position: "CM", DominantFoot: "Right"})
	if err != nil {
		t.Fatalf("create player %q: %v", name, err)
	}
	return player
}

func createTestGame(t *testing.T, s *GameService, req models.CreateGameRequest) *models.Game {
	t.Helper()

	if req.GameDate.IsZero() {
		req.GameDate = time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)
	}
	game, err := s.CreateGame(req)
	if err != nil {
		t.Fatalf("create game vs %q: %v", req.OpponentTeam, err)
	}
	return game
}
