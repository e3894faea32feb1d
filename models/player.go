package models

type Player struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Position     string `gorm:"size:50" json:"position"`
	DominantFoot string `gorm:"size:20" json:"dominant_foot"`

	// Shared / attacking ratings
	Stamina          int `gorm:"default:0" json:"stamina"`
	Speed            int `gorm:"default:0" json:"speed"`
	ShootingAccuracy int `gorm:"default:0" json:"shooting_accuracy"`
	Dribbling        int `gorm:"default:0" json:"dribbling"`
	Passing          int `gorm:"default:0" json:"passing"`

	// Forward / winger ratings
	Finishing int `gorm:"default:0" json:"finishing"`
	Crossing  int `gorm:"default:0" json:"crossing"`

	// Midfielder ratings
	Vision        int `gorm:"default:0" json:"vision"`
	Interceptions int `gorm:"default:0" json:"interceptions"`

	// Defender ratings
	Tackling int `gorm:"default:0" json:"tackling"`
	Heading  int `gorm:"default:0" json:"heading"`

	// Goalkeeper ratings
	Saving              int `gorm:"default:0" json:"saving"`
	DefenseCoordination int `gorm:"default:0" json:"defense_coordination"`
	Catching            int `gorm:"default:0" json:"catching"`
}

func (Player) TableName() string {
	return "players"
}

type CreatePlayerRequest struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position,omitempty"`
	DominantFoot string `json:"dominant_foot,omitempty"`

	Stamina          int `json:"stamina,omitempty"`
	Speed            int `json:"speed,omitempty"`
	ShootingAccuracy int `json:"shooting_accuracy,omitempty"`
	Dribbling        int `json:"dribbling,omitempty"`
	Passing          int `json:"passing,omitempty"`

	Finishing int `json:"finishing,omitempty"`
	Crossing  int `json:"crossing,omitempty"`

	Vision        int `json:"vision,omitempty"`
	Interceptions int `json:"interceptions,omitempty"`

	Tackling int `json:"tackling,omitempty"`
	Heading  int `json:"heading,omitempty"`

	Saving              int `json:"saving,omitempty"`
	DefenseCoordination int `json:"defense_coordination,omitempty"`
	Catching            int `json:"catching,omitempty"`
}

// UpdatePlayerRequest is a PATCH-style partial update: nil pointers mean
// "leave the stored value untouched", set pointers overwrite it.
type UpdatePlayerRequest struct {
	Name         *string `json:"name,omitempty"`
	Position     *string `json:"position,omitempty"`
	DominantFoot *string `json:"dominant_foot,omitempty"`

	Stamina          *int `json:"stamina,omitempty"`
	Speed            *int `json:"speed,omitempty"`
	ShootingAccuracy *int `json:"shooting_accuracy,omitempty"`
	Dribbling        *int `json:"dribbling,omitempty"`
	Passing          *int `json:"passing,omitempty"`

	Finishing *int `json:"finishing,omitempty"`
	Crossing  *int `json:"crossing,omitempty"`

	Vision        *int `json:"vision,omitempty"`
	Interceptions *int `json:"interceptions,omitempty"`

	Tackling *int `json:"tackling,omitempty"`
	Heading  *int `json:"heading,omitempty"`

	Saving              *int `json:"saving,omitempty"`
	DefenseCoordination *int `json:"defense_coordination,omitempty"`
	Catching            *int `json:"catching,omitempty"`
}
