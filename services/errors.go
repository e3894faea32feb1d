package services

import "errors"

// Domain errors surfaced to the handler layer, matched with errors.Is.
var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrGameNotFound        = errors.New("game not found")
	ErrDuplicatePlayerName = errors.New("player name already registered")
	ErrEmptyRoster         = errors.New("no players registered")
	ErrReportGeneration    = errors.New("report generation failed")
)
