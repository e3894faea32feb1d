// Package fixtures seeds a demo roster and season for local development.
package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"oracle-manager-api/models"
	"oracle-manager-api/services"

	"gorm.io/gorm"
)

type Fixtures struct {
	playerService *services.PlayerService
	gameService   *services.GameService
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{
		playerService: services.NewPlayerService(db),
		gameService:   services.NewGameService(db),
	}
}

// GenerateTestData creates a demo roster and a season of games with goal and
// assist events consistent with the recorded scores.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	players, err := f.generatePlayers()
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	games, err := f.generateGames(players)
	if err != nil {
		return fmt.Errorf("failed to generate games: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d players and %d games", len(players), len(games))
	return nil
}

type rosterEntry struct {
	name     string
	position string
	foot     string
}

func (f *Fixtures) generatePlayers() ([]models.Player, error) {
	roster := []rosterEntry{
		{"Minjun Kim", "ST", "Right"},
		{"Jiho Park", "LW", "Left"},
		{"Seungwoo Lee", "RW", "Right"},
		{"Doyun Choi", "AM", "Right"},
		{"Hajun Jung", "CM", "Both"},
		{"Siwoo Kang", "CM", "Right"},
		{"Juwon Cho", "LCB", "Left"},
		{"Eunwoo Yoon", "RCB", "Right"},
		{"Jihun Jang", "LB", "Left"},
		{"Sunghyun Lim", "RB", "Right"},
		{"Yejun Han", "GK", "Right"},
		{"Woojin Oh", "CDM", "Right"},
	}

	var players []models.Player
	for _, entry := range roster {
		req := models.CreatePlayerRequest{
			Name:             entry.name,
			Position:         entry.position,
			DominantFoot:     entry.foot,
			Stamina:          rating(),
			Speed:            rating(),
			ShootingAccuracy: rating(),
			Dribbling:        rating(),
			Passing:          rating(),
			Finishing:        rating(),
			Crossing:         rating(),
			Vision:           rating(),
			Interceptions:    rating(),
			Tackling:         rating(),
			Heading:          rating(),
		}
		if entry.position == "GK" {
			req.Saving = rating()
			req.DefenseCoordination = rating()
			req.Catching = rating()
		}

		player, err := f.playerService.CreatePlayer(req)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
		log.Printf("Created player: %s (%s)", player.Name, player.Position)
	}

	return players, nil
}

func (f *Fixtures) generateGames(players []models.Player) ([]models.Game, error) {
	opponents := []string{"Falcons", "Thunder FC", "Riverside United", "Black Tigers"}

	var games []models.Game
	now := time.Now()

	// 20 games over the last six months
	for i := 0; i < 20; i++ {
		ourScore := rand.Intn(5)   // #nosec G404
		theirScore := rand.Intn(4) // #nosec G404

		var scorers, assisters []uint
		for g := 0; g < ourScore; g++ {
			scorers = append(scorers, players[rand.Intn(len(players))].ID) // #nosec G404
			if rand.Intn(2) == 0 {                                         // #nosec G404
				assisters = append(assisters, players[rand.Intn(len(players))].ID) // #nosec G404
			}
		}

		req := models.CreateGameRequest{
			OpponentTeam:  opponents[rand.Intn(len(opponents))], // #nosec G404
			GameDate:      now.AddDate(0, 0, -rand.Intn(180)),   // #nosec G404
			OurScore:      ourScore,
			OpponentScore: theirScore,
			Scorers:       scorers,
			Assisters:     assisters,
		}

		game, err := f.gameService.CreateGame(req)
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
		log.Printf("Created game: vs %s %d-%d (%s)", game.OpponentTeam, game.OurScore, game.OpponentScore, game.Result)
	}

	return games, nil
}

func rating() int {
	return rand.Intn(50) + 45 // #nosec G404
}
