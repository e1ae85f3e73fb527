// models/team.go
package models

import "time"

// Team is one competing team on the fair leaderboard.
// SectionRepresented is the larger organizational group the team stands
// for (e.g. "CPE-1A"), distinct from the team's own display name.
type Team struct {
	ID                 string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name               string `gorm:"not null" json:"name"`
	Color              string `json:"color"` // hex or tailwind token, display only
	SectionRepresented string `gorm:"index" json:"section_represented"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Dependents — RESTRICT so deleting a team with players or scores
	// is rejected by the database rather than checked application-side.
	Players []Player `gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"players,omitempty"`
	Scores  []Score  `gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"scores,omitempty"`
}
