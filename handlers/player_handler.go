package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"oracle-manager-api/models"
	"oracle-manager-api/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// CreatePlayer registers a new player
// @Summary Register a player
// @Description Register a new roster member; player names must be unique
// @Tags players
// @Accept json
// @Produce json
// @Param player body models.CreatePlayerRequest true "Player data"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	player, err := h.playerService.CreatePlayer(req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicatePlayerName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player name already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetPlayer retrieves a player by ID
// @Summary Get player by ID
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayerByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetPlayers lists the roster
// @Summary List players
// @Description List players ordered by id with skip/limit pagination
// @Tags players
// @Produce json
// @Param skip query int false "Rows to skip (default: 0)"
// @Param limit query int false "Max rows to return (default: 100)"
// @Success 200 {array} models.Player
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players [get]
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	players, err := h.playerService.GetPlayers(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve players"})
		return
	}

	c.JSON(http.StatusOK, players)
}

// UpdatePlayer partially updates a player
// @Summary Update a player
// @Description Apply only the supplied fields; omitted fields keep their stored values
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param player body models.UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	player, err := h.playerService.UpdatePlayer(id, req)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer removes a player
// @Summary Delete a player
// @Description Delete a player and every game event attributed to them
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	player, err := h.playerService.DeletePlayer(id)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// parseIDParam reads the :id path parameter, answering 400 itself when the
// value is not a valid id.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads the skip/limit query parameters with the original
// wire defaults (skip=0, limit=100), answering 400 itself on bad input.
func parsePagination(c *gin.Context) (int, int, bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip parameter"})
		return 0, 0, false
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return 0, 0, false
	}

	return skip, limit, true
}
