package handlers

import (
	"errors"
	"net/http"

	"oracle-manager-api/services"

	"github.com/gin-gonic/gin"
)

type AnalysisRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type FormationRequest struct {
	OpponentTeam  string `json:"opponent_team" binding:"required"`
	OpponentStyle string `json:"opponent_style,omitempty"`
}

type AnalysisResponse struct {
	Report string `json:"report"`
}

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GenerateReport runs a free-form analysis prompt
// @Summary Generate a generic analysis report
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body handlers.AnalysisRequest true "Prompt"
// @Success 200 {object} handlers.AnalysisResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analysis/report [post]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{Report: report})
}

// GenerateGameReport writes a match summary for one game
// @Summary Generate a match report
// @Tags analysis
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} handlers.AnalysisResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id}/report [post]
func (h *ReportHandler) GenerateGameReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	report, err := h.reportService.GenerateGameReport(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{Report: report})
}

// GeneratePlayerAnalysis writes a strengths/weaknesses report for one player
// @Summary Generate a player analysis
// @Tags analysis
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} handlers.AnalysisResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/analysis [post]
func (h *ReportHandler) GeneratePlayerAnalysis(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	report, err := h.reportService.GeneratePlayerAnalysis(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{Report: report})
}

// GenerateFormation recommends a formation against a named opponent
// @Summary Generate a formation recommendation
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body handlers.FormationRequest true "Opponent"
// @Success 200 {object} handlers.AnalysisResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analysis/formation [post]
func (h *ReportHandler) GenerateFormation(c *gin.Context) {
	var req FormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	report, err := h.reportService.GenerateFormationRecommendation(c.Request.Context(), req.OpponentTeam, req.OpponentStyle)
	if err != nil {
		if errors.Is(err, services.ErrEmptyRoster) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No players registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{Report: report})
}
