package services

import (
	"errors"

	"oracle-manager-api/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

// CreatePlayer registers a new roster member. Player names are unique; a
// collision fails with ErrDuplicatePlayerName and leaves the existing player
// untouched.
func (s *PlayerService) CreatePlayer(req models.CreatePlayerRequest) (*models.Player, error) {
	var count int64
	if err := s.db.Model(&models.Player{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicatePlayerName
	}

	player := &models.Player{
		Name:                req.Name,
		Position:            req.Position,
		DominantFoot:        req.DominantFoot,
		Stamina:             req.Stamina,
		Speed:               req.Speed,
		ShootingAccuracy:    req.ShootingAccuracy,
		Dribbling:           req.Dribbling,
		Passing:             req.Passing,
		Finishing:           req.Finishing,
		Crossing:            req.Crossing,
		Vision:              req.Vision,
		Interceptions:       req.Interceptions,
		Tackling:            req.Tackling,
		Heading:             req.Heading,
		Saving:              req.Saving,
		DefenseCoordination: req.DefenseCoordination,
		Catching:            req.Catching,
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	return &player, nil
}

// GetPlayers returns the roster ordered by id, skipping the first skip rows
// and returning at most limit.
func (s *PlayerService) GetPlayers(skip, limit int) ([]models.Player, error) {
	var players []models.Player

	if err := s.db.Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&players).Error; err != nil {
		return nil, err
	}

	return players, nil
}

// UpdatePlayer applies only the fields set in req; nil pointers leave the
// stored values unchanged. An empty request is a no-op returning the current
// row.
func (s *PlayerService) UpdatePlayer(id uint, req models.UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.GetPlayerByID(id)
	if err != nil {
		return nil, err
	}

	updates := playerUpdates(req)
	if len(updates) == 0 {
		return player, nil
	}

	if err := s.db.Model(player).Updates(updates).Error; err != nil {
		return nil, err
	}

	return player, nil
}

// DeletePlayer removes the player and every game event attributed to them, so
// no event is left referencing a missing roster member. Returns the player's
// prior state.
func (s *PlayerService) DeletePlayer(id uint) (*models.Player, error) {
	player, err := s.GetPlayerByID(id)
	if err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("player_id = ?", id).Delete(&models.GameEvent{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Delete(&models.Player{}, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return player, nil
}

func playerUpdates(req models.UpdatePlayerRequest) map[string]interface{} {
	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.DominantFoot != nil {
		updates["dominant_foot"] = *req.DominantFoot
	}
	if req.Stamina != nil {
		updates["stamina"] = *req.Stamina
	}
	if req.Speed != nil {
		updates["speed"] = *req.Speed
	}
	if req.ShootingAccuracy != nil {
		updates["shooting_accuracy"] = *req.ShootingAccuracy
	}
	if req.Dribbling != nil {
		updates["dribbling"] = *req.Dribbling
	}
	if req.Passing != nil {
		updates["passing"] = *req.Passing
	}
	if req.Finishing != nil {
		updates["finishing"] = *req.Finishing
	}
	if req.Crossing != nil {
		updates["crossing"] = *req.Crossing
	}
	if req.Vision != nil {
		updates["vision"] = *req.Vision
	}
	if req.Interceptions != nil {
		updates["interceptions"] = *req.Interceptions
	}
	if req.Tackling != nil {
		updates["tackling"] = *req.Tackling
	}
	if req.Heading != nil {
		updates["heading"] = *req.Heading
	}
	if req.Saving != nil {
		updates["saving"] = *req.Saving
	}
	if req.DefenseCoordination != nil {
		updates["defense_coordination"] = *req.DefenseCoordination
	}
	if req.Catching != nil {
		updates["catching"] = *req.Catching
	}

	return updates
}
