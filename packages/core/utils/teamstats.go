package utils

import (
	"fmt"
	"sort"

	"clubmanager-api/packages/core/models"
)

// ResultPolicy controls how finished matches without a recorded result are handled.
type ResultPolicy int

const (
	// SkipMissingResults silently excludes finished matches that carry no result.
	SkipMissingResults ResultPolicy = iota
	// RejectMissingResults treats a finished match without a result as a data
	// integrity error and aborts the aggregation.
	RejectMissingResults
)

// ComputeTeamStats folds the matches a team played (home or away) into its
// aggregate statistics. Only matches with status "finished" are considered; what
// happens to finished matches without a result depends on the policy. The
// function is pure: it touches no clock and no store, so recomputing over an
// unchanged match set always yields the same aggregate.
//
// The current streak is derived by walking the counted matches in kickoff order,
// newest first, and counting consecutive identical outcomes. A team with no
// counted matches gets a zero-count win streak.
func ComputeTeamStats(teamID uint, matches []models.Match, policy ResultPolicy) (models.TeamStats, error) {
	stats := models.TeamStats{
		CurrentStreak: models.Streak{Type: models.StreakWin, Count: 0},
	}

	counted := make([]models.Match, 0, len(matches))
	for _, match := range matches {
		if match.Status != models.MatchFinished {
			continue
		}
		if !match.HasResult() {
			if policy == RejectMissingResults {
				return models.TeamStats{}, fmt.Errorf("finished match %d has no recorded result", match.ID)
			}
			continue
		}
		counted = append(counted, match)
	}

	for _, match := range counted {
		scored, conceded := goalsFor(&match, teamID)
		stats.GoalsFor += scored
		stats.GoalsAgainst += conceded

		switch outcome(&match, teamID) {
		case models.StreakWin:
			stats.Wins++
		case models.StreakDraw:
			stats.Draws++
		case models.StreakLoss:
			stats.Losses++
		}
	}

	stats.MatchesPlayed = stats.Wins + stats.Draws + stats.Losses
	stats.Points = stats.Wins*3 + stats.Draws

	if len(counted) > 0 {
		stats.CurrentStreak = currentStreak(counted, teamID)
	}

	return stats, nil
}

// goalsFor returns the goals scored and conceded by the team in a match,
// depending on which side it played.
func goalsFor(match *models.Match, teamID uint) (scored, conceded int) {
	if match.HomeTeamID == teamID {
		return *match.HomeGoals, *match.AwayGoals
	}
	return *match.AwayGoals, *match.HomeGoals
}

func outcome(match *models.Match, teamID uint) string {
	scored, conceded := goalsFor(match, teamID)
	switch {
	case scored > conceded:
		return models.StreakWin
	case scored < conceded:
		return models.StreakLoss
	default:
		return models.StreakDraw
	}
}

// currentStreak counts consecutive identical outcomes starting from the most
// recently kicked-off match. The caller guarantees at least one match.
func currentStreak(counted []models.Match, teamID uint) models.Streak {
	ordered := make([]models.Match, len(counted))
	copy(ordered, counted)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].KickoffAt.After(ordered[j].KickoffAt)
	})

	streak := models.Streak{
		Type:  outcome(&ordered[0], teamID),
		Count: 1,
	}
	for i := 1; i < len(ordered); i++ {
		if outcome(&ordered[i], teamID) != streak.Type {
			break
		}
		streak.Count++
	}

	return streak
}
