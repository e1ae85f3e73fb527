// models/player.go
package models

import "time"

// Player is a registered participant. Team membership is optional —
// unassigned players stay in the registry until an admin places them.
type Player struct {
	ID       string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	FullName string  `gorm:"not null" json:"full_name"`
	CYS      string  `gorm:"column:cys;not null" json:"cys"` // course/year/section, e.g. "BSCS-3A"
	TeamID   *string `gorm:"type:uuid;index" json:"team_id,omitempty"`
	Team     *Team   `gorm:"foreignKey:TeamID" json:"team,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
