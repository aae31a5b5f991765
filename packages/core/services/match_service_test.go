package services

import (
	"testing"
	"time"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/testutil"

	"gorm.io/gorm"
)

func matchFixture(t *testing.T, db *gorm.DB) (*models.Club, *models.Team, *models.Team) {
	t.Helper()
	club := testutil.CreateClub(t, db, "Match FC")
	home := testutil.CreateTeam(t, db, club.ID, "First Team")
	away := testutil.CreateTeam(t, db, club.ID, "Reserves")
	return club, home, away
}

func TestCreateMatch(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club, home, away := matchFixture(t, db)
	service := NewMatchService(db)

	match, err := service.CreateMatch(club.ID, models.CreateMatchRequest{
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		KickoffAt:  time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC),
		Venue:      "Main Pitch",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if match.Status != models.MatchScheduled {
		t.Errorf("expected scheduled status, got %s", match.Status)
	}
	if match.HasResult() {
		t.Error("a new match must not carry a result")
	}
}

func TestCreateMatchValidation(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club, home, away := matchFixture(t, db)
	otherClub := testutil.CreateClub(t, db, "Other FC")
	foreign := testutil.CreateTeam(t, db, otherClub.ID, "Foreign Team")
	service := NewMatchService(db)

	kickoff := time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      models.CreateMatchRequest
		wantCode string
	}{
		{
			name:     "same team on both sides",
			req:      models.CreateMatchRequest{HomeTeamID: home.ID, AwayTeamID: home.ID, KickoffAt: kickoff},
			wantCode: apperrors.CodeInvalidArgument,
		},
		{
			name:     "unknown home team",
			req:      models.CreateMatchRequest{HomeTeamID: 999, AwayTeamID: away.ID, KickoffAt: kickoff},
			wantCode: apperrors.CodeNotFound,
		},
		{
			name:     "team from another club",
			req:      models.CreateMatchRequest{HomeTeamID: home.ID, AwayTeamID: foreign.ID, KickoffAt: kickoff},
			wantCode: apperrors.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateMatch(club.ID, tt.req)
			if err == nil {
				t.Fatal("expected an error")
			}
			if apperrors.Code(err) != tt.wantCode {
				t.Errorf("expected %s, got %s", tt.wantCode, apperrors.Code(err))
			}
		})
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club, home, away := matchFixture(t, db)
	service := NewMatchService(db)

	newMatch := func(t *testing.T) *models.Match {
		match, err := service.CreateMatch(club.ID, models.CreateMatchRequest{
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			KickoffAt:  time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("failed to create match: %v", err)
		}
		return match
	}

	t.Run("full lifecycle", func(t *testing.T) {
		match := newMatch(t)
		for _, status := range []string{models.MatchLive, models.MatchHalftime, models.MatchLive, models.MatchFinished} {
			updated, err := service.UpdateStatus(match.ID, status)
			if err != nil {
				t.Fatalf("transition to %s failed: %v", status, err)
			}
			if updated.Status != status {
				t.Errorf("expected %s, got %s", status, updated.Status)
			}
		}
	})

	t.Run("scheduled cannot finish directly", func(t *testing.T) {
		match := newMatch(t)
		_, err := service.UpdateStatus(match.ID, models.MatchFinished)
		if err == nil {
			t.Fatal("expected the transition to be rejected")
		}
		if apperrors.Code(err) != apperrors.CodeInvalidArgument {
			t.Errorf("expected invalid-argument, got %s", apperrors.Code(err))
		}
	})

	t.Run("finished is terminal", func(t *testing.T) {
		match := newMatch(t)
		for _, status := range []string{models.MatchLive, models.MatchFinished} {
			if _, err := service.UpdateStatus(match.ID, status); err != nil {
				t.Fatalf("transition to %s failed: %v", status, err)
			}
		}
		if _, err := service.UpdateStatus(match.ID, models.MatchLive); err == nil {
			t.Error("expected a finished match to stay finished")
		}
	})
}

func TestRecordResult(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club, home, away := matchFixture(t, db)
	service := NewMatchService(db)

	match, err := service.CreateMatch(club.ID, models.CreateMatchRequest{
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		KickoffAt:  time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to create match: %v", err)
	}

	homeGoals, awayGoals := 2, 1

	// Scheduled matches have no result to record yet
	_, err = service.RecordResult(match.ID, models.RecordResultRequest{
		HomeGoals: &homeGoals,
		AwayGoals: &awayGoals,
	})
	if err == nil {
		t.Fatal("expected recording on a scheduled match to fail")
	}
	if apperrors.Code(err) != apperrors.CodeInvalidArgument {
		t.Errorf("expected invalid-argument, got %s", apperrors.Code(err))
	}

	if _, err := service.UpdateStatus(match.ID, models.MatchLive); err != nil {
		t.Fatalf("transition to live failed: %v", err)
	}

	updated, err := service.RecordResult(match.ID, models.RecordResultRequest{
		HomeGoals: &homeGoals,
		AwayGoals: &awayGoals,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Status != models.MatchFinished {
		t.Errorf("recording a result must finish the match, got %s", updated.Status)
	}
	if !updated.HasResult() || *updated.HomeGoals != 2 || *updated.AwayGoals != 1 {
		t.Errorf("stored result does not match: %+v", updated)
	}
}

func TestGetMatchesByTeamCoversBothSides(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club, home, away := matchFixture(t, db)
	service := NewMatchService(db)

	kickoff := time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC)
	if _, err := service.CreateMatch(club.ID, models.CreateMatchRequest{
		HomeTeamID: home.ID, AwayTeamID: away.ID, KickoffAt: kickoff,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.CreateMatch(club.ID, models.CreateMatchRequest{
		HomeTeamID: away.ID, AwayTeamID: home.ID, KickoffAt: kickoff.AddDate(0, 0, 7),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page, err := service.GetMatchesByTeam(home.ID, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("expected both home and away matches, got %d", page.Total)
	}
}
