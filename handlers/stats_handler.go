package handlers

import (
	"net/http"

	"oracle-manager-api/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetOpponentStats retrieves head-to-head records
// @Summary Get opponent records
// @Description Win/loss/draw tallies grouped by opponent team name
// @Tags stats
// @Produce json
// @Success 200 {array} models.OpponentStats
// @Failure 500 {object} map[string]string
// @Router /stats/opponents [get]
func (h *StatsHandler) GetOpponentStats(c *gin.Context) {
	stats, err := h.statsService.GetOpponentStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve opponent statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetLeaderboard retrieves the scoring leaderboard
// @Summary Get scoring leaderboard
// @Description Goals, assists and points per player, every roster member included, sorted by points
// @Tags stats
// @Produce json
// @Success 200 {array} models.LeaderboardEntry
// @Failure 500 {object} map[string]string
// @Router /stats/leaderboard [get]
func (h *StatsHandler) GetLeaderboard(c *gin.Context) {
	leaderboard, err := h.statsService.GetLeaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve leaderboard"})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}
