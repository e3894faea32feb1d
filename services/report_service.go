package services

import (
	"context"
	"fmt"
	"strings"

	"oracle-manager-api/llm"
	"oracle-manager-api/models"
)

// TeamName is our side's name as it appears in generated reports.
const TeamName = "Oracle"

// ReportService builds analysis prompts from stored data and delegates text
// generation to the injected llm.Client. Client failures wrap
// ErrReportGeneration and carry the underlying cause; they are never retried.
type ReportService struct {
	client        llm.Client
	playerService *PlayerService
	gameService   *GameService
	statsService  *StatsService
}

func NewReportService(client llm.Client, playerService *PlayerService, gameService *GameService, statsService *StatsService) *ReportService {
	return &ReportService{
		client:        client,
		playerService: playerService,
		gameService:   gameService,
		statsService:  statsService,
	}
}

// GenerateReport runs a caller-supplied prompt through the client unchanged.
func (s *ReportService) GenerateReport(ctx context.Context, prompt string) (string, error) {
	report, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReportGeneration, err)
	}
	return report, nil
}

// GenerateGameReport writes a news-style match summary for one recorded game.
func (s *ReportService) GenerateGameReport(ctx context.Context, gameID uint) (string, error) {
	game, err := s.gameService.GetGameByID(gameID)
	if err != nil {
		return "", err
	}

	resultLabel := "a draw"
	switch game.Result {
	case models.ResultWin:
		resultLabel = "a win for us"
	case models.ResultLose:
		resultLabel = "a loss for us"
	}

	prompt := fmt.Sprintf(`You are a professional football match analyst. Based on the result below, write an engaging news-style match report from the perspective of our team '%s'.

- Match date: %s
- Opponent: %s
- %s score: %d
- Opponent score: %d
- Result: %s

Cover the overall flow of the match and the decisive factors behind the result, and close with at least three witty hashtags for social media.`,
		TeamName,
		game.GameDate.Format("January 2, 2006"),
		game.OpponentTeam,
		TeamName,
		game.OurScore,
		game.OpponentScore,
		resultLabel,
	)

	return s.GenerateReport(ctx, prompt)
}

// GeneratePlayerAnalysis writes a strengths/weaknesses report for one player
// based on their skill ratings.
func (s *ReportService) GeneratePlayerAnalysis(ctx context.Context, playerID uint) (string, error) {
	player, err := s.playerService.GetPlayerByID(playerID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are an experienced football coach. Based on the ratings below, analyze this player's strengths and weaknesses and recommend concrete training drills for improvement.
Write as if the player will read it themselves: friendly and motivating.

- Player name: %s
- Position: %s
- Dominant foot: %s
%s

Structure the answer clearly into three sections: 'Strengths', 'Weaknesses' and 'Recommended drills'.`,
		player.Name,
		player.Position,
		player.DominantFoot,
		skillLines(player),
	)

	return s.GenerateReport(ctx, prompt)
}

// GenerateFormationRecommendation asks for a formation and starting lineup
// against the named opponent, feeding in the full roster and our head-to-head
// record against them.
func (s *ReportService) GenerateFormationRecommendation(ctx context.Context, opponentTeam, opponentStyle string) (string, error) {
	players, err := s.playerService.GetPlayers(0, 100)
	if err != nil {
		return "", err
	}
	if len(players) == 0 {
		return "", ErrEmptyRoster
	}

	var roster strings.Builder
	for i := range players {
		fmt.Fprintf(&roster, "### %s\n- Position: %s\n%s\n", players[i].Name, players[i].Position, skillLines(&players[i]))
	}

	opponentInfo := fmt.Sprintf("This is our first meeting with '%s'.", opponentTeam)
	stats, err := s.statsService.GetOpponentStats()
	if err != nil {
		return "", err
	}
	for _, stat := range stats {
		if stat.OpponentTeam == opponentTeam {
			opponentInfo = fmt.Sprintf("Against '%s' we have played %d games: %d wins, %d draws, %d losses.",
				opponentTeam, stat.TotalGames, stat.Wins, stat.Draws, stat.Losses)
			break
		}
	}

	styleInfo := ""
	if opponentStyle != "" {
		styleInfo = fmt.Sprintf("3. **Expected opponent style**: %s\n", opponentStyle)
	}

	prompt := fmt.Sprintf(`You are a world-class football tactician. Recommend the best formation and starting lineup for the amateur team '%s' in their next match.

## Inputs
1. **Opponent record**: %s
%s2. **Our roster and ratings**:
%s

## Asks
1. **Recommended formation** (e.g. 4-3-3) with a short justification.
2. **Starting lineup**: which player goes where in that formation, with reasons.
3. **Key tactics**: the two or three tactical points we should focus on in this match.`,
		TeamName,
		opponentInfo,
		styleInfo,
		roster.String(),
	)

	return s.GenerateReport(ctx, prompt)
}

// skillLines renders every skill rating as "- Label: value / 100" lines for
// prompt embedding.
func skillLines(p *models.Player) string {
	skills := []struct {
		label string
		value int
	}{
		{"Stamina", p.Stamina},
		{"Speed", p.Speed},
		{"Shooting accuracy", p.ShootingAccuracy},
		{"Dribbling", p.Dribbling},
		{"Passing", p.Passing},
		{"Finishing", p.Finishing},
		{"Crossing", p.Crossing},
		{"Vision", p.Vision},
		{"Interceptions", p.Interceptions},
		{"Tackling", p.Tackling},
		{"Heading", p.Heading},
		{"Saving", p.Saving},
		{"Defense coordination", p.DefenseCoordination},
		{"Catching", p.Catching},
	}

	lines := make([]string, 0, len(skills))
	for _, skill := range skills {
		lines = append(lines, fmt.Sprintf("- %s: %d / 100", skill.label, skill.value))
	}

	return strings.Join(lines, "\n")
}
