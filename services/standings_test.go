package services

import (
	"testing"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func team(id, name, section string) models.Team {
	return models.Team{ID: id, Name: name, SectionRepresented: section}
}

func score(id, teamID, game, category string, points int, contributor string) models.Score {
	return models.Score{ID: id, TeamID: teamID, Game: game, Category: category, Points: points, Contributor: contributor}
}

func TestBuildStandingsTeamsWithNoScoresAppearAtZero(t *testing.T) {
	teams := []models.Team{team("t1", "Alpha", "CPE-1A"), team("t2", "Bravo", "CPE-2B")}
	scores := []models.Score{score("s1", "t1", "Chess", models.CategoryBoard, 50, "Alice")}

	standings := BuildStandings(teams, scores)
	require.Len(t, standings, 2)

	assert.Equal(t, "Alpha", standings[0].Team.Name)
	assert.Equal(t, 50, standings[0].TotalPoints)
	assert.Equal(t, "Bravo", standings[1].Team.Name)
	assert.Equal(t, 0, standings[1].TotalPoints)
	assert.Empty(t, standings[1].Scores)
	assert.Nil(t, standings[1].TopContributor)
}

func TestBuildStandingsTotalIsOrderIndependent(t *testing.T) {
	teams := []models.Team{team("t1", "Alpha", "CPE-1A")}
	forward := []models.Score{
		score("s1", "t1", "Chess", models.CategoryBoard, 10, "A"),
		score("s2", "t1", "Mobile Legends", models.CategoryEsports, 25, "B"),
		score("s3", "t1", "Penalty", "", -5, ""),
	}
	reversed := []models.Score{forward[2], forward[1], forward[0]}

	a := BuildStandings(teams, forward)
	b := BuildStandings(teams, reversed)

	assert.Equal(t, 30, a[0].TotalPoints)
	assert.Equal(t, a[0].TotalPoints, b[0].TotalPoints)
}

func TestBuildStandingsNegativeTotalsAreNotClamped(t *testing.T) {
	teams := []models.Team{team("t1", "Alpha", "CPE-1A")}
	scores := []models.Score{
		score("s1", "t1", "Chess", models.CategoryBoard, 10, "A"),
		score("s2", "t1", "Conduct", "", -40, ""),
	}

	standings := BuildStandings(teams, scores)
	assert.Equal(t, -30, standings[0].TotalPoints)
}

func TestBuildStandingsDropsOrphanedScores(t *testing.T) {
	teams := []models.Team{team("t1", "Alpha", "CPE-1A")}
	scores := []models.Score{
		score("s1", "t1", "Chess", models.CategoryBoard, 10, "A"),
		score("s2", "deleted-team", "Chess", models.CategoryBoard, 999, "B"),
	}

	standings := BuildStandings(teams, scores)
	require.Len(t, standings, 1)
	assert.Equal(t, 10, standings[0].TotalPoints)
	assert.Len(t, standings[0].Scores, 1)
}

func TestBuildStandingsSortsDescendingStable(t *testing.T) {
	teams := []models.Team{
		team("t1", "Alpha", "CPE-1A"),
		team("t2", "Bravo", "CPE-2B"),
		team("t3", "Charlie", "CPE-3C"),
	}
	scores := []models.Score{
		score("s1", "t2", "Chess", models.CategoryBoard, 100, "B"),
		score("s2", "t1", "Chess", models.CategoryBoard, 40, "A"),
		score("s3", "t3", "Chess", models.CategoryBoard, 40, "C"),
	}

	standings := BuildStandings(teams, scores)
	require.Len(t, standings, 3)
	assert.Equal(t, "Bravo", standings[0].Team.Name)
	// tie at 40: stable sort keeps the incoming team order
	assert.Equal(t, "Alpha", standings[1].Team.Name)
	assert.Equal(t, "Charlie", standings[2].Team.Name)
}

func TestBuildStandingsTopContributor(t *testing.T) {
	teams := []models.Team{team("t1", "Alpha", "CPE-1A")}
	scores := []models.Score{
		score("s1", "t1", "Chess", models.CategoryBoard, 10, "Alice"),
		score("s2", "t1", "Singing", models.CategoryTalents, 80, "Bob"),
		score("s3", "t1", "Quiz", models.CategoryQuizBee, 80, "Carol"),
	}

	standings := BuildStandings(teams, scores)
	require.NotNil(t, standings[0].TopContributor)
	// earliest score wins the 80-point tie
	assert.Equal(t, "Bob", standings[0].TopContributor.Contributor)
}

func TestFilterScores(t *testing.T) {
	scores := []models.Score{
		{ID: "s1", Category: models.CategoryEsports, Game: "Valorant", IsGroup: true},
		{ID: "s2", Category: models.CategoryBoard, Game: "Chess", IsGroup: false},
		{ID: "s3", Category: models.CategoryEsports, Game: "Tekken", IsGroup: false},
	}

	tests := []struct {
		name    string
		filter  ScoreFilter
		wantIDs []string
	}{
		{"no filter", ScoreFilter{}, []string{"s1", "s2", "s3"}},
		{"by category", ScoreFilter{Category: models.CategoryEsports}, []string{"s1", "s3"}},
		{"by game", ScoreFilter{Game: "Chess"}, []string{"s2"}},
		{"solo only", ScoreFilter{Type: "player"}, []string{"s2", "s3"}},
		{"group only", ScoreFilter{Type: "team"}, []string{"s1"}},
		{"category and type", ScoreFilter{Category: models.CategoryEsports, Type: "player"}, []string{"s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterScores(scores, tt.filter)
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSumPoints(t *testing.T) {
	assert.Equal(t, 0, SumPoints(nil))
	assert.Equal(t, 5, SumPoints([]models.Score{{Points: 10}, {Points: -5}}))
}
