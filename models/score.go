// models/score.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Score is one logged result. Game and Category are carried as plain
// strings on purpose — scores survive a game being renamed or removed.
// Contributor is the player or group name as typed by the admin; it is
// matched to Player.FullName at display time only, never enforced.
type Score struct {
	ID          string   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TeamID      string   `gorm:"type:uuid;index;not null" json:"team_id"`
	Team        *Team    `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Game        string   `gorm:"not null" json:"game"`
	Category    string   `gorm:"index" json:"category"`
	Points      int      `json:"points"` // negative = deduction
	Contributor string   `json:"contributor"`
	IsGroup     bool     `gorm:"default:false" json:"is_group"`
	Members     []string `gorm:"type:jsonb;serializer:json" json:"members"` // only populated for group scores

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
