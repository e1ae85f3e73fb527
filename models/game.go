// models/game.go
package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	CategorySports    = "Sports"
	CategoryBoard     = "Board"
	CategoryQuizBee   = "Quiz Bee"
	CategoryEsports   = "Esports"
	CategoryTalents   = "Talents"
	CategoryMiniGames = "Mini Games"
)

// Categories lists every recognized game category, in display order.
var Categories = []string{
	CategorySports,
	CategoryBoard,
	CategoryQuizBee,
	CategoryEsports,
	CategoryTalents,
	CategoryMiniGames,
}

type Game struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Category string `gorm:"index;not null" json:"category"`
	IsGroup  bool   `gorm:"default:false" json:"is_group"` // party game vs solo

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var titleCaser = cases.Title(language.English)

// NormalizeCategory title-cases free-form category input so "quiz bee",
// "QUIZ BEE" and "Quiz Bee" all land on the stored form.
func NormalizeCategory(raw string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(raw)))
}

// ValidCategory reports whether cat (already normalized) is one of the
// recognized categories.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
