// Package app wires services and handlers together and owns the route table.
package app

import (
	"oracle-manager-api/handlers"
	"oracle-manager-api/llm"
	"oracle-manager-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler *handlers.PlayerHandler
	PlayerService *services.PlayerService
	GameHandler   *handlers.GameHandler
	GameService   *services.GameService
	StatsHandler  *handlers.StatsHandler
	StatsService  *services.StatsService
	ReportHandler *handlers.ReportHandler
	ReportService *services.ReportService
	db            *gorm.DB
}

// NewModule constructs every service and handler over the shared database
// handle. The llm client is injected so the report service never reaches for
// ambient configuration.
func NewModule(db *gorm.DB, llmClient llm.Client) *Module {
	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	gameService := services.NewGameService(db)
	gameHandler := handlers.NewGameHandler(gameService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	reportService := services.NewReportService(llmClient, playerService, gameService, statsService)
	reportHandler := handlers.NewReportHandler(reportService)

	return &Module{
		PlayerHandler: playerHandler,
		PlayerService: playerService,
		GameHandler:   gameHandler,
		GameService:   gameService,
		StatsHandler:  statsHandler,
		StatsService:  statsService,
		ReportHandler: reportHandler,
		ReportService: reportService,
		db:            db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	players := r.Group("/players")
	{
		players.POST("/", m.PlayerHandler.CreatePlayer)
		players.GET("/", m.PlayerHandler.GetPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.PUT("/:id", m.PlayerHandler.UpdatePlayer)
		players.DELETE("/:id", m.PlayerHandler.DeletePlayer)
		players.POST("/:id/analysis", m.ReportHandler.GeneratePlayerAnalysis)
	}

	games := r.Group("/games")
	{
		games.POST("/", m.GameHandler.CreateGame)
		games.GET("/", m.GameHandler.GetGames)
		games.GET("/:id", m.GameHandler.GetGame)
		games.PUT("/:id", m.GameHandler.UpdateGame)
		games.DELETE("/:id", m.GameHandler.DeleteGame)
		games.POST("/:id/report", m.ReportHandler.GenerateGameReport)
	}

	stats := r.Group("/stats")
	{
		stats.GET("/opponents", m.StatsHandler.GetOpponentStats)
		stats.GET("/leaderboard", m.StatsHandler.GetLeaderboard)
	}

	analysis := r.Group("/analysis")
	{
		analysis.POST("/report", m.ReportHandler.GenerateReport)
		analysis.POST("/formation", m.ReportHandler.GenerateFormation)
	}
}
