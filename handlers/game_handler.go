package handlers

import (
	"errors"
	"net/http"

	"oracle-manager-api/models"
	"oracle-manager-api/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// CreateGame records a match with its goal and assist events
// @Summary Record a game
// @Description Record a match result; scorer and assister ids expand into GOAL/ASSIST events atomically
// @Tags games
// @Accept json
// @Produce json
// @Param game body models.CreateGameRequest true "Game data"
// @Success 200 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	game, err := h.gameService.CreateGame(req)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Referenced player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusOK, game)
}

// GetGame retrieves a game by ID
// @Summary Get game by ID
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	game, err := h.gameService.GetGameByID(id)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, game)
}

// GetGames lists recorded games
// @Summary List games
// @Description List games most recent first, each with its full event list
// @Tags games
// @Produce json
// @Param skip query int false "Rows to skip (default: 0)"
// @Param limit query int false "Max rows to return (default: 100)"
// @Success 200 {array} models.Game
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	games, err := h.gameService.GetGames(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	c.JSON(http.StatusOK, games)
}

// UpdateGame partially updates a game
// @Summary Update a game
// @Description Patch opponent, date or scores; the result is re-derived when a score changes. Events cannot be modified here.
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param game body models.UpdateGameRequest true "Fields to update"
// @Success 200 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	game, err := h.gameService.UpdateGame(id, req)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame removes a game and its events
// @Summary Delete a game
// @Description Delete a game together with all of its goal and assist events
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	game, err := h.gameService.DeleteGame(id)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	c.JSON(http.StatusOK, game)
}
