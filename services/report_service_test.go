package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"oracle-manager-api/models"
)

// fakeLLMClient records the last prompt and returns canned output.
type fakeLLMClient struct {
	lastPrompt string
	report     string
	err        error
}

func (f *fakeLLMClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.report, nil
}

func newReportFixture(t *testing.T) (*ReportService, *fakeLLMClient, *PlayerService, *GameService) {
	t.Helper()

	db := openTestDB(t)
	playerService := NewPlayerService(db)
	gameService := NewGameService(db)
	statsService := NewStatsService(db)
	client := &fakeLLMClient{report: "generated report"}

	return NewReportService(client, playerService, gameService, statsService), client, playerService, gameService
}

func TestGenerateReportPassesPromptThrough(t *testing.T) {
	s, client, _, _ := newReportFixture(t)

	report, err := s.GenerateReport(context.Background(), "summarize our season")
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if report != "generated report" {
		t.Fatalf("report = %q", report)
	}
	if client.lastPrompt != "summarize our season" {
		t.Fatalf("prompt = %q, want pass-through", client.lastPrompt)
	}
}

func TestGenerateReportWrapsClientFailure(t *testing.T) {
	s, client, _, _ := newReportFixture(t)
	client.err = errors.New("quota exceeded")

	_, err := s.GenerateReport(context.Background(), "anything")
	if !errors.Is(err, ErrReportGeneration) {
		t.Fatalf("error = %v, want ErrReportGeneration", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("error %q should carry the underlying cause", err)
	}
}

func TestGenerateGameReportPrompt(t *testing.T) {
	s, client, _, games := newReportFixture(t)

	game := createTestGame(t, games, models.CreateGameRequest{
		OpponentTeam:  "Falcons",
		OurScore:      2,
		OpponentScore: 1,
	})

	if _, err := s.GenerateGameReport(context.Background(), game.ID); err != nil {
		t.Fatalf("GenerateGameReport: %v", err)
	}

	for _, want := range []string{"Falcons", "a win for us", TeamName} {
		if !strings.Contains(client.lastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, client.lastPrompt)
		}
	}
}

func TestGenerateGameReportNotFound(t *testing.T) {
	s, _, _, _ := newReportFixture(t)

	if _, err := s.GenerateGameReport(context.Background(), 9999); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("error = %v, want ErrGameNotFound", err)
	}
}

func TestGeneratePlayerAnalysisPrompt(t *testing.T) {
	s, client, players, _ := newReportFixture(t)

	player, err := players.CreatePlayer(models.CreatePlayerRequest{Name: "Kim", Position: "ST", Finishing: 88})
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}

	if _, err := s.GeneratePlayerAnalysis(context.Background(), player.ID); err != nil {
		t.Fatalf("GeneratePlayerAnalysis: %v", err)
	}

	for _, want := range []string{"Kim", "Finishing: 88 / 100", "Strengths"} {
		if !strings.Contains(client.lastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, client.lastPrompt)
		}
	}
}

func TestGeneratePlayerAnalysisNotFound(t *testing.T) {
	s, _, _, _ := newReportFixture(t)

	if _, err := s.GeneratePlayerAnalysis(context.Background(), 9999); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("error = %v, want ErrPlayerNotFound", err)
	}
}

func TestGenerateFormationRecommendation(t *testing.T) {
	s, client, players, games := newReportFixture(t)

	createTestPlayer(t, players, "Kim")
	createTestPlayer(t, players, "Lee")
	createTestGame(t, games, models.CreateGameRequest{OpponentTeam: "Falcons", OurScore: 2, OpponentScore: 1})

	if _, err := s.GenerateFormationRecommendation(context.Background(), "Falcons", "high press"); err != nil {
		t.Fatalf("GenerateFormationRecommendation: %v", err)
	}

	for _, want := range []string{"Kim", "Lee", "1 wins", "high press"} {
		if !strings.Contains(client.lastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, client.lastPrompt)
		}
	}
}

func TestGenerateFormationFirstMeeting(t *testing.T) {
	s, client, players, _ := newReportFixture(t)

	createTestPlayer(t, players, "Kim")

	if _, err := s.GenerateFormationRecommendation(context.Background(), "Strangers", ""); err != nil {
		t.Fatalf("GenerateFormationRecommendation: %v", err)
	}
	if !strings.Contains(client.lastPrompt, "first meeting") {
		t.Fatalf("prompt should mention a first meeting:\n%s", client.lastPrompt)
	}
}

func TestGenerateFormationEmptyRoster(t *testing.T) {
	s, _, _, _ := newReportFixture(t)

	if _, err := s.GenerateFormationRecommendation(context.Background(), "Falcons", ""); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("error = %v, want ErrEmptyRoster", err)
	}
}
