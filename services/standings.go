// services/standings.go
package services

import (
	"sort"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/models"

	log "github.com/sirupsen/logrus"
)

// ScoreFilter narrows the score set before aggregation or listing.
// The zero value means no filtering.
type ScoreFilter struct {
	Type     string // "player" = solo scores, "team" = group scores
	Category string
	Game     string
}

// TeamStanding is one leaderboard row. TopContributor is the score
// with the most points for the team, nil when the team has none.
type TeamStanding struct {
	Team           models.Team    `json:"team"`
	TotalPoints    int            `json:"total_points"`
	Scores         []models.Score `json:"scores"`
	TopContributor *models.Score  `json:"top_contributor,omitempty"`
}

// FilterScores returns the subset of scores matching f.
func FilterScores(scores []models.Score, f ScoreFilter) []models.Score {
	out := make([]models.Score, 0, len(scores))
	for _, s := range scores {
		if f.Type == "player" && s.IsGroup {
			continue
		}
		if f.Type == "team" && !s.IsGroup {
			continue
		}
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if f.Game != "" && s.Game != f.Game {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SumPoints adds up points over scores. Deductions (negative points)
// count like any other entry; the sum is never clamped.
func SumPoints(scores []models.Score) int {
	total := 0
	for _, s := range scores {
		total += s.Points
	}
	return total
}

// BuildStandings turns a flat score list into per-team standings.
// Every team appears even with zero scores. Scores whose team id
// matches no known team are dropped. The result is sorted by total
// descending; a stable sort keeps the incoming team order for ties.
func BuildStandings(teams []models.Team, scores []models.Score) []TeamStanding {
	index := make(map[string]*TeamStanding, len(teams))
	standings := make([]TeamStanding, len(teams))
	for i, t := range teams {
		standings[i] = TeamStanding{Team: t, Scores: []models.Score{}}
		index[t.ID] = &standings[i]
	}

	for _, s := range scores {
		entry, ok := index[s.TeamID]
		if !ok {
			log.Debugf("dropping score %s: team %s not in standings", s.ID, s.TeamID)
			continue
		}
		entry.TotalPoints += s.Points
		entry.Scores = append(entry.Scores, s)
	}

	for i := range standings {
		standings[i].TopContributor = topContributor(standings[i].Scores)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalPoints > standings[j].TotalPoints
	})
	return standings
}

// topContributor picks the score with the highest points; the earliest
// one wins a tie.
func topContributor(scores []models.Score) *models.Score {
	if len(scores) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Points > scores[best].Points {
			best = i
		}
	}
	return &scores[best]
}
