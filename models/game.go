package models

import "time"

// Result labels derived from the two scores, never set by callers.
const (
	ResultWin  = "WIN"
	ResultLose = "LOSE"
	ResultDraw = "DRAW"
)

// Game event types.
const (
	EventGoal   = "GOAL"
	EventAssist = "ASSIST"
)

type Game struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OpponentTeam  string    `gorm:"size:255;not null" json:"opponent_team"`
	GameDate      time.Time `gorm:"not null" json:"game_date"`
	OurScore      int       `gorm:"default:0" json:"our_score"`
	OpponentScore int       `gorm:"default:0" json:"opponent_score"`
	Result        string    `gorm:"size:10" json:"result"`

	// A game exclusively owns its events; deleting the game deletes them.
	Events []GameEvent `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"events"`
}

func (Game) TableName() string {
	return "games"
}

type GameEvent struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	GameID    uint   `gorm:"not null;index" json:"game_id"`
	PlayerID  uint   `gorm:"not null;index" json:"-"`
	EventType string `gorm:"size:10;not null" json:"event_type"`

	Player EventPlayer `gorm:"foreignKey:PlayerID;references:ID" json:"player"`
}

func (GameEvent) TableName() string {
	return "game_events"
}

// EventPlayer is the read-time projection of the referenced player carried
// inside serialized game events.
type EventPlayer struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (EventPlayer) TableName() string {
	return "players"
}

type CreateGameRequest struct {
	OpponentTeam  string    `json:"opponent_team" binding:"required"`
	GameDate      time.Time `json:"game_date" binding:"required"`
	OurScore      int       `json:"our_score"`
	OpponentScore int       `json:"opponent_score"`
	Scorers       []uint    `json:"scorers"`
	Assisters     []uint    `json:"assisters"`
}

// UpdateGameRequest patches score, date and opponent fields only; the event
// list is fixed at creation and cannot be modified through this path.
type UpdateGameRequest struct {
	OpponentTeam  *string    `json:"opponent_team,omitempty"`
	GameDate      *time.Time `json:"game_date,omitempty"`
	OurScore      *int       `json:"our_score,omitempty"`
	OpponentScore *int       `json:"opponent_score,omitempty"`
}
