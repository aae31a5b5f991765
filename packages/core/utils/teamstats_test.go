package utils

import (
	"reflect"
	"testing"
	"time"

	"clubmanager-api/packages/core/models"
)

func finishedMatch(id, homeTeam, awayTeam uint, homeGoals, awayGoals int, kickoff time.Time) models.Match {
	return models.Match{
		ID:         id,
		HomeTeamID: homeTeam,
		AwayTeamID: awayTeam,
		Status:     models.MatchFinished,
		KickoffAt:  kickoff,
		HomeGoals:  &homeGoals,
		AwayGoals:  &awayGoals,
	}
}

func TestComputeTeamStatsEmpty(t *testing.T) {
	stats, err := ComputeTeamStats(1, nil, SkipMissingResults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := models.TeamStats{
		CurrentStreak: models.Streak{Type: models.StreakWin, Count: 0},
	}
	if !reflect.DeepEqual(stats, want) {
		t.Errorf("expected zero stats %+v, got %+v", want, stats)
	}
}

func TestComputeTeamStatsAggregation(t *testing.T) {
	base := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	matches := []models.Match{
		// Home win 3-1
		finishedMatch(1, 10, 20, 3, 1, base),
		// Away draw 2-2
		finishedMatch(2, 20, 10, 2, 2, base.AddDate(0, 0, 7)),
		// Away loss 4-0
		finishedMatch(3, 30, 10, 4, 0, base.AddDate(0, 0, 14)),
		// Home win 2-0
		finishedMatch(4, 10, 30, 2, 0, base.AddDate(0, 0, 21)),
	}

	stats, err := ComputeTeamStats(10, matches, SkipMissingResults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.MatchesPlayed != 4 {
		t.Errorf("expected 4 matches played, got %d", stats.MatchesPlayed)
	}
	if stats.Wins != 2 || stats.Draws != 1 || stats.Losses != 1 {
		t.Errorf("expected W2 D1 L1, got W%d D%d L%d", stats.Wins, stats.Draws, stats.Losses)
	}
	if stats.GoalsFor != 7 || stats.GoalsAgainst != 5 {
		t.Errorf("expected goals 7:5, got %d:%d", stats.GoalsFor, stats.GoalsAgainst)
	}
	if stats.Points != 7 {
		t.Errorf("expected 7 points (2*3+1), got %d", stats.Points)
	}
}

func TestComputeTeamStatsIgnoresUnfinishedMatches(t *testing.T) {
	base := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	one, zero := 1, 0

	matches := []models.Match{
		finishedMatch(1, 10, 20, 1, 0, base),
		{ID: 2, HomeTeamID: 10, AwayTeamID: 20, Status: models.MatchScheduled, KickoffAt: base.AddDate(0, 0, 7)},
		{ID: 3, HomeTeamID: 10, AwayTeamID: 20, Status: models.MatchLive, KickoffAt: base.AddDate(0, 0, 14), HomeGoals: &one, AwayGoals: &zero},
		{ID: 4, HomeTeamID: 10, AwayTeamID: 20, Status: models.MatchCancelled, KickoffAt: base.AddDate(0, 0, 21)},
	}

	stats, err := ComputeTeamStats(10, matches, SkipMissingResults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.MatchesPlayed != 1 {
		t.Errorf("expected only the finished match to count, got %d", stats.MatchesPlayed)
	}
	if stats.GoalsFor != 1 || stats.GoalsAgainst != 0 {
		t.Errorf("expected goals 1:0, got %d:%d", stats.GoalsFor, stats.GoalsAgainst)
	}
}

func TestComputeTeamStatsMissingResultPolicies(t *testing.T) {
	base := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	matches := []models.Match{
		finishedMatch(1, 10, 20, 2, 1, base),
		// Finished but no result recorded
		{ID: 2, HomeTeamID: 10, AwayTeamID: 30, Status: models.MatchFinished, KickoffAt: base.AddDate(0, 0, 7)},
	}

	t.Run("skip", func(t *testing.T) {
		stats, err := ComputeTeamStats(10, matches, SkipMissingResults)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.MatchesPlayed != 1 {
			t.Errorf("expected resultless match to be skipped, got %d matches played", stats.MatchesPlayed)
		}
	})

	t.Run("reject", func(t *testing.T) {
		if _, err := ComputeTeamStats(10, matches, RejectMissingResults); err == nil {
			t.Error("expected an error for a finished match without a result")
		}
	})
}

func TestComputeTeamStatsIsDeterministic(t *testing.T) {
	base := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	matches := []models.Match{
		finishedMatch(1, 10, 20, 3, 1, base),
		finishedMatch(2, 20, 10, 0, 0, base.AddDate(0, 0, 7)),
		finishedMatch(3, 10, 30, 1, 2, base.AddDate(0, 0, 14)),
	}

	first, err := ComputeTeamStats(10, matches, SkipMissingResults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeTeamStats(10, matches, SkipMissingResults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("recomputation over the same matches diverged: %+v vs %+v", first, second)
	}
}

func TestComputeTeamStatsInvariants(t *testing.T) {
	base := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	matches := []models.Match{
		finishedMatch(1, 10, 20, 2, 0, base),
		finishedMatch(2, 20, 10, 3, 3, base.AddDate(0, 0, 7)),
		finishedMatch(3, 10, 30, 0, 1, base.AddDate(0, 0, 14)),
		finishedMatch(4, 30, 10, 1, 4, base.AddDate(0, 0, 21)),
		finishedMatch(5, 10, 20, 1, 1, base.AddDate(0, 0, 28)),
	}

	stats, err := ComputeTeamStats(10, matches, SkipMissingResults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.MatchesPlayed != stats.Wins+stats.Draws+stats.Losses {
		t.Errorf("matches played %d != W%d + D%d + L%d",
			stats.MatchesPlayed, stats.Wins, stats.Draws, stats.Losses)
	}
	if stats.Points != stats.Wins*3+stats.Draws {
		t.Errorf("points %d != 3*W%d + D%d", stats.Points, stats.Wins, stats.Draws)
	}
}

func TestComputeTeamStatsStreak(t *testing.T) {
	base := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		matches []models.Match
		want    models.Streak
	}{
		{
			name: "two wins then older loss",
			matches: []models.Match{
				finishedMatch(1, 10, 20, 0, 2, base),                  // loss
				finishedMatch(2, 10, 20, 2, 1, base.AddDate(0, 0, 7)), // win
				finishedMatch(3, 20, 10, 0, 1, base.AddDate(0, 0, 14)), // win (away)
			},
			want: models.Streak{Type: models.StreakWin, Count: 2},
		},
		{
			name: "latest match breaks the streak",
			matches: []models.Match{
				finishedMatch(1, 10, 20, 2, 0, base),
				finishedMatch(2, 10, 20, 3, 0, base.AddDate(0, 0, 7)),
				finishedMatch(3, 10, 20, 1, 1, base.AddDate(0, 0, 14)), // draw
			},
			want: models.Streak{Type: models.StreakDraw, Count: 1},
		},
		{
			name: "unordered input still ranks by kickoff",
			matches: []models.Match{
				finishedMatch(1, 10, 20, 0, 1, base.AddDate(0, 0, 14)), // newest, loss
				finishedMatch(2, 10, 20, 2, 0, base),                   // oldest, win
				finishedMatch(3, 10, 20, 0, 3, base.AddDate(0, 0, 7)),  // middle, loss
			},
			want: models.Streak{Type: models.StreakLoss, Count: 2},
		},
		{
			name: "all draws",
			matches: []models.Match{
				finishedMatch(1, 10, 20, 1, 1, base),
				finishedMatch(2, 20, 10, 2, 2, base.AddDate(0, 0, 7)),
			},
			want: models.Streak{Type: models.StreakDraw, Count: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := ComputeTeamStats(10, tt.matches, SkipMissingResults)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stats.CurrentStreak != tt.want {
				t.Errorf("expected streak %+v, got %+v", tt.want, stats.CurrentStreak)
			}
		})
	}
}

func TestComputeTeamStatsDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	matches := []models.Match{
		finishedMatch(1, 10, 20, 0, 1, base.AddDate(0, 0, 7)),
		finishedMatch(2, 10, 20, 2, 0, base),
	}
	originalOrder := []uint{matches[0].ID, matches[1].ID}

	if _, err := ComputeTeamStats(10, matches, SkipMissingResults); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if matches[0].ID != originalOrder[0] || matches[1].ID != originalOrder[1] {
		t.Error("input slice was reordered by the aggregation")
	}
}
