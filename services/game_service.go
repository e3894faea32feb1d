package services

import (
	"errors"

	"oracle-manager-api/models"
	"oracle-manager-api/utils"

	"gorm.io/gorm"
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{
		db: db,
	}
}

// CreateGame records a match together with its goal and assist events in a
// single transaction: either the game row and every event row are persisted,
// or nothing is. The result label is derived from the scores, never taken
// from the caller.
func (s *GameService) CreateGame(req models.CreateGameRequest) (*models.Game, error) {
	if err := s.checkPlayersExist(append(append([]uint{}, req.Scorers...), req.Assisters...)); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	game := models.Game{
		OpponentTeam:  req.OpponentTeam,
		GameDate:      req.GameDate,
		OurScore:      req.OurScore,
		OpponentScore: req.OpponentScore,
		Result:        utils.DeriveResult(req.OurScore, req.OpponentScore),
	}

	if err := tx.Create(&game).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, playerID := range req.Scorers {
		event := models.GameEvent{GameID: game.ID, PlayerID: playerID, EventType: models.EventGoal}
		if err := tx.Create(&event).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	for _, playerID := range req.Assisters {
		event := models.GameEvent{GameID: game.ID, PlayerID: playerID, EventType: models.EventAssist}
		if err := tx.Create(&event).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetGameByID(game.ID)
}

func (s *GameService) GetGameByID(id uint) (*models.Game, error) {
	var game models.Game

	if err := s.db.Preload("Events").
		Preload("Events.Player").
		First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &game, nil
}

// GetGames returns games most recent first, each with its full event list and
// the referenced players' id and name.
func (s *GameService) GetGames(skip, limit int) ([]models.Game, error) {
	var games []models.Game

	if err := s.db.Order("game_date DESC").
		Offset(skip).
		Limit(limit).
		Preload("Events").
		Preload("Events.Player").
		Find(&games).Error; err != nil {
		return nil, err
	}

	return games, nil
}

// UpdateGame patches opponent, date and score fields. Whenever either score
// is part of the patch the result is re-derived from the post-merge scores,
// so patching one score alone recomputes against the other score's stored
// value. Events are immutable through this path.
func (s *GameService) UpdateGame(id uint, req models.UpdateGameRequest) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if req.OpponentTeam != nil {
		game.OpponentTeam = *req.OpponentTeam
	}
	if req.GameDate != nil {
		game.GameDate = *req.GameDate
	}
	if req.OurScore != nil {
		game.OurScore = *req.OurScore
	}
	if req.OpponentScore != nil {
		game.OpponentScore = *req.OpponentScore
	}

	if req.OurScore != nil || req.OpponentScore != nil {
		game.Result = utils.DeriveResult(game.OurScore, game.OpponentScore)
	}

	if err := s.db.Save(&game).Error; err != nil {
		return nil, err
	}

	return s.GetGameByID(game.ID)
}

// DeleteGame removes the game and, through ownership, all of its events.
// Returns the game's prior state including the deleted events.
func (s *GameService) DeleteGame(id uint) (*models.Game, error) {
	game, err := s.GetGameByID(id)
	if err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("game_id = ?", id).Delete(&models.GameEvent{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Delete(&models.Game{}, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return game, nil
}

// checkPlayersExist validates that every referenced player id resolves to a
// roster member before any event row is written.
func (s *GameService) checkPlayersExist(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	seen := map[uint]bool{}
	distinct := []uint{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	var count int64
	if err := s.db.Model(&models.Player{}).Where("id IN ?", distinct).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(distinct)) {
		return ErrPlayerNotFound
	}

	return nil
}
