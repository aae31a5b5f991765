package services

import (
	"testing"
	"time"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/testutil"
	"clubmanager-api/packages/core/utils"

	"gorm.io/gorm"
)

func seedFinishedMatch(t *testing.T, db *gorm.DB, clubID, home, away uint, homeGoals, awayGoals int, kickoff time.Time) {
	t.Helper()
	match := &models.Match{
		ClubID:     clubID,
		HomeTeamID: home,
		AwayTeamID: away,
		Status:     models.MatchFinished,
		KickoffAt:  kickoff,
		HomeGoals:  &homeGoals,
		AwayGoals:  &awayGoals,
	}
	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to seed match: %v", err)
	}
}

func TestRecalculatePersistsAggregate(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club := testutil.CreateClub(t, db, "Recalc FC")
	team := testutil.CreateTeam(t, db, club.ID, "First Team")
	rival := testutil.CreateTeam(t, db, club.ID, "Reserves")

	base := time.Date(2026, 4, 1, 15, 0, 0, 0, time.UTC)
	seedFinishedMatch(t, db, club.ID, team.ID, rival.ID, 2, 0, base)                  // home win
	seedFinishedMatch(t, db, club.ID, rival.ID, team.ID, 1, 1, base.AddDate(0, 0, 7)) // away draw
	seedFinishedMatch(t, db, club.ID, rival.ID, team.ID, 3, 0, base.AddDate(0, 0, 14)) // away loss

	service := NewTeamStatsService(db, utils.SkipMissingResults)
	stats, err := service.Recalculate(team.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.MatchesPlayed != 3 || stats.Wins != 1 || stats.Draws != 1 || stats.Losses != 1 {
		t.Errorf("expected MP3 W1 D1 L1, got MP%d W%d D%d L%d",
			stats.MatchesPlayed, stats.Wins, stats.Draws, stats.Losses)
	}
	if stats.Points != 4 {
		t.Errorf("expected 4 points, got %d", stats.Points)
	}
	if stats.CurrentStreak.Type != models.StreakLoss || stats.CurrentStreak.Count != 1 {
		t.Errorf("expected loss streak of 1, got %+v", stats.CurrentStreak)
	}

	// The aggregate must be stored on the team row
	var stored models.Team
	if err := db.First(&stored, team.ID).Error; err != nil {
		t.Fatalf("failed to reload team: %v", err)
	}
	if stored.Points != 4 || stored.Wins != 1 || stored.GoalsFor != 3 || stored.GoalsAgainst != 4 {
		t.Errorf("stored aggregate does not match: %+v", stored.Stats())
	}
	if stored.StatsUpdatedAt == nil {
		t.Error("expected stats_updated_at to be stamped")
	}
}

func TestRecalculateUnknownTeam(t *testing.T) {
	db := testutil.OpenTestDB(t)

	service := NewTeamStatsService(db, utils.SkipMissingResults)
	_, err := service.Recalculate(999)
	if err == nil {
		t.Fatal("expected an error for an unknown team")
	}
	if apperrors.Code(err) != apperrors.CodeNotFound {
		t.Errorf("expected not-found, got %s", apperrors.Code(err))
	}
}

func TestRecalculateIsIdempotent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club := testutil.CreateClub(t, db, "Idempotent FC")
	team := testutil.CreateTeam(t, db, club.ID, "First Team")
	rival := testutil.CreateTeam(t, db, club.ID, "Reserves")

	base := time.Date(2026, 4, 1, 15, 0, 0, 0, time.UTC)
	seedFinishedMatch(t, db, club.ID, team.ID, rival.ID, 4, 2, base)

	service := NewTeamStatsService(db, utils.SkipMissingResults)
	first, err := service.Recalculate(team.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.Recalculate(team.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *first != *second {
		t.Errorf("repeated recalculation diverged: %+v vs %+v", first, second)
	}
}

func TestRecalculateRejectPolicySurfacesInternal(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club := testutil.CreateClub(t, db, "Strict FC")
	team := testutil.CreateTeam(t, db, club.ID, "First Team")
	rival := testutil.CreateTeam(t, db, club.ID, "Reserves")

	// Finished match with no result recorded
	match := &models.Match{
		ClubID:     club.ID,
		HomeTeamID: team.ID,
		AwayTeamID: rival.ID,
		Status:     models.MatchFinished,
		KickoffAt:  time.Date(2026, 4, 1, 15, 0, 0, 0, time.UTC),
	}
	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to seed match: %v", err)
	}

	service := NewTeamStatsService(db, utils.RejectMissingResults)
	_, err := service.Recalculate(team.ID)
	if err == nil {
		t.Fatal("expected an error under the reject policy")
	}
	if apperrors.Code(err) != apperrors.CodeInternal {
		t.Errorf("expected internal, got %s", apperrors.Code(err))
	}

	// The stored aggregate must remain untouched on failure
	var stored models.Team
	if err := db.First(&stored, team.ID).Error; err != nil {
		t.Fatalf("failed to reload team: %v", err)
	}
	if stored.StatsUpdatedAt != nil {
		t.Error("failed recalculation must not write the aggregate")
	}
}

func TestRefreshRecentlyFinished(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club := testutil.CreateClub(t, db, "Sweep FC")
	team := testutil.CreateTeam(t, db, club.ID, "First Team")
	rival := testutil.CreateTeam(t, db, club.ID, "Reserves")

	base := time.Now().Add(-30 * time.Minute)
	seedFinishedMatch(t, db, club.ID, team.ID, rival.ID, 1, 0, base)

	service := NewTeamStatsService(db, utils.SkipMissingResults)
	refreshed, err := service.RefreshRecentlyFinished(time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed != 2 {
		t.Errorf("expected both teams of the match refreshed, got %d", refreshed)
	}

	pending, err := service.PendingRefreshCount(time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending != 1 {
		t.Errorf("expected 1 recently finished match, got %d", pending)
	}
}
