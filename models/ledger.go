// models/ledger.go
package models

import "time"

// LedgerEntry is one row of the master score ledger: a score joined
// with the team it was earned for. Read-only view scanned from a raw
// query — never persisted, never migrated.
type LedgerEntry struct {
	ScoreID     string    `json:"score_id"`
	TeamID      string    `json:"team_id"`
	TeamName    string    `json:"team_name"`
	Section     string    `json:"section"`
	Game        string    `json:"game"`
	Category    string    `json:"category"`
	Points      int       `json:"points"`
	Contributor string    `json:"contributor"`
	IsGroup     bool      `json:"is_group"`
	CreatedAt   time.Time `json:"created_at"`
}
