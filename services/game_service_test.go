package services

import (
	"errors"
	"testing"
	"time"

	"oracle-manager-api/models"
)

func TestCreateGameDerivesResult(t *testing.T) {
	db := openTestDB(t)
	games := NewGameService(db)

	tests := []struct {
		name          string
		ourScore      int
		opponentScore int
		want          string
	}{
		{"win", 3, 1, models.ResultWin},
		{"loss", 0, 2, models.ResultLose},
		{"draw", 1, 1, models.ResultDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := createTestGame(t, games, models.CreateGameRequest{
				OpponentTeam:  "Falcons",
				OurScore:      tt.ourScore,
				OpponentScore: tt.opponentScore,
			})
			if game.Result != tt.want {
				t.Fatalf("result = %q, want %q", game.Result, tt.want)
			}
		})
	}
}

func TestCreateGameExpandsEvents(t *testing.T) {
	db := openTestDB(t)
	players := NewPlayerService(db)
	games := NewGameService(db)

	p1 := createTestPlayer(t, players, "Kim")
	p2 := createTestPlayer(t, players, "Lee")

	game := createTestGame(t, games, models.CreateGameRequest{
		OpponentTeam:  "Falcons",
		OurScore:      2,
		OpponentScore: 0,
		Scorers:       []uint{p1.ID, p2.ID},
		Assisters:     []uint{p2.ID},
	})

	if len(game.Events) != 3 {
		t.Fatalf("event count = %d, want 3", len(game.Events))
	}

	type key struct {
		playerID  uint
		eventType string
	}
	counts := map[key]int{}
	for _, event := range game.Events {
		counts[key{event.Player.ID, event.EventType}]++
	}

	want := map[key]int{
		{p1.ID, models.EventGoal}:   1,
		{p2.ID, models.EventGoal}:   1,
		{p2.ID, models.EventAssist}: 1,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Fatalf("events = %v, want %v", counts, want)
		}
	}

	// the read-time join carries the player's name
	for _, event := range game.Events {
		if event.Player.Name == "" {
			t.Fatalf("event %d has no player name", event.ID)
		}
	}
}

func TestCreateGameUnknownPlayerIsAtomic(t *testing.T) {
	db := openTestDB(t)
	players := NewPlayerService(db)
	games := NewGameService(db)

	p1 := createTestPlayer(t, players, "Kim")

	_, err := games.CreateGame(models.CreateGameRequest{
		OpponentTeam: "Falcons",
		GameDate:     time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC),
		OurScore:     2,
		Scorers:      []uint{p1.ID, 9999},
	})
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("error = %v, want ErrPlayerNotFound", err)
	}

	var gameCount, eventCount int64
	db.Model(&models.Game{}).Count(&gameCount)
	db.Model(&models.GameEvent{}).Count(&eventCount)
	if gameCount != 0 || eventCount != 0 {
		t.Fatalf("partial state persisted: %d games, %d events", gameCount, eventCount)
	}
}

func TestGetGamesOrderedByDateDesc(t *testing.T) {
	db := openTestDB(t)
	games := NewGameService(db)

	old := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)

	createTestGame(t, games, models.CreateGameRequest{OpponentTeam: "Falcons", GameDate: old})
	createTestGame(t, games, models.CreateGameRequest{OpponentTeam: "Thunder FC", GameDate: recent})

	list, err := games.GetGames(0, 100)
	if err != nil {
		t.Fatalf("GetGames: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].OpponentTeam != "Thunder FC" || list[1].OpponentTeam != "Falcons" {
		t.Fatalf("order = [%s %s], want most recent first", list[0].OpponentTeam, list[1].OpponentTeam)
	}
}

func TestUpdateGameSingleScoreRederivesResult(t *testing.T) {
	db := openTestDB(t)
	games := NewGameService(db)

	game := createTestGame(t, games, models.CreateGameRequest{
		OpponentTeam:  "Falcons",
		OurScore:      1,
		OpponentScore: 2,
	})
	if game.Result != models.ResultLose {
		t.Fatalf("initial result = %q, want LOSE", game.Result)
	}

	// patch only our score; the stored opponent score must be used
	ourScore := 3
	updated, err := games.UpdateGame(game.ID, models.UpdateGameRequest{OurScore: &ourScore})
	if err != nil {
		t.Fatalf("UpdateGame: %v", err)
	}
	if updated.Result != models.ResultWin {
		t.Fatalf("result = %q, want WIN", updated.Result)
	}
	if updated.OpponentScore != 2 {
		t.Fatalf("opponent score = %d, want unchanged 2", updated.OpponentScore)
	}
}

func TestUpdateGameWithoutScoresKeepsResult(t *testing.T) {
	db := openTestDB(t)
	games := NewGameService(db)

	game := createTestGame(t, games, models.CreateGameRequest{
		OpponentTeam:  "Falcons",
		OurScore:      2,
		OpponentScore: 1,
	})

	opponent := "Thunder FC"
	updated, err := games.UpdateGame(game.ID, models.UpdateGameRequest{OpponentTeam: &opponent})
	if err != nil {
		t.Fatalf("UpdateGame: %v", err)
	}

	if updated.OpponentTeam != "Thunder FC" {
		t.Fatalf("opponent = %q, want Thunder FC", updated.OpponentTeam)
	}
	if updated.Result != models.ResultWin {
		t.Fatalf("result = %q, want unchanged WIN", updated.Result)
	}
}

func TestUpdateGameNotFound(t *testing.T) {
	db := openTestDB(t)
	games := NewGameService(db)

	score := 1
	if _, err := games.UpdateGame(9999, models.UpdateGameRequest{OurScore: &score}); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("error = %v, want ErrGameNotFound", err)
	}
}

func TestDeleteGameCascadesEvents(t *testing.T) {
	db := openTestDB(t)
	players := NewPlayerService(db)
	games := NewGameService(db)

	p1 := createTestPlayer(t, players, "Kim")

	game := createTestGame(t, games, models.CreateGameRequest{
		OpponentTeam: "Falcons",
		OurScore:     1,
		Scorers:      []uint{p1.ID},
	})

	deleted, err := games.DeleteGame(game.ID)
	if err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	if len(deleted.Events) != 1 {
		t.Fatalf("deleted game should return its prior events, got %d", len(deleted.Events))
	}

	if _, err := games.GetGameByID(game.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("game still retrievable after delete: %v", err)
	}

	var count int64
	db.Model(&models.GameEvent{}).Where("game_id = ?", game.ID).Count(&count)
	if count != 0 {
		t.Fatalf("%d events survived the cascade", count)
	}

	// the referenced player is untouched
	if _, err := players.GetPlayerByID(p1.ID); err != nil {
		t.Fatalf("player should survive game deletion: %v", err)
	}
}

func TestDeleteGameNotFound(t *testing.T) {
	db := openTestDB(t)
	games := NewGameService(db)

	if _, err := games.DeleteGame(9999); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("error = %v, want ErrGameNotFound", err)
	}
}
