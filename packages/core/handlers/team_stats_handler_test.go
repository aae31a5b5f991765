package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/services"
	"clubmanager-api/packages/core/testutil"
	"clubmanager-api/packages/core/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// statsRouter wires the stats routes behind a stub identity middleware.
func statsRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	teamService := services.NewTeamService(db)
	membershipService := services.NewMembershipService(db)
	teamStatsService := services.NewTeamStatsService(db, utils.SkipMissingResults)
	handler := NewTeamStatsHandler(teamStatsService, teamService, membershipService)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/teams/:id/stats", handler.GetTeamStats)
	r.POST("/teams/:id/stats/recalculate", handler.RecalculateTeamStats)
	return r
}

func seedStatsFixture(t *testing.T, db *gorm.DB) (*models.Club, *models.Team) {
	t.Helper()

	club := testutil.CreateClub(t, db, "Handler FC")
	team := testutil.CreateTeam(t, db, club.ID, "First Team")
	rival := testutil.CreateTeam(t, db, club.ID, "Reserves")

	membership := &models.Membership{ClubID: club.ID, UserID: 1, Role: models.ClubRoleMember}
	if err := db.Create(membership).Error; err != nil {
		t.Fatalf("failed to seed membership: %v", err)
	}

	homeGoals, awayGoals := 2, 1
	match := &models.Match{
		ClubID:     club.ID,
		HomeTeamID: team.ID,
		AwayTeamID: rival.ID,
		Status:     models.MatchFinished,
		KickoffAt:  time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC),
		HomeGoals:  &homeGoals,
		AwayGoals:  &awayGoals,
	}
	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to seed match: %v", err)
	}

	return club, team
}

func TestRecalculateTeamStatsEndpoint(t *testing.T) {
	db := testutil.OpenTestDB(t)
	_, team := seedStatsFixture(t, db)
	router := statsRouter(db, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teams/1/stats/recalculate", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.TeamStatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success to be true")
	}
	if resp.Stats.Wins != 1 || resp.Stats.Points != 3 {
		t.Errorf("unexpected aggregate: %+v", resp.Stats)
	}

	// The stored aggregate must now serve reads
	var stored models.Team
	if err := db.First(&stored, team.ID).Error; err != nil {
		t.Fatalf("failed to reload team: %v", err)
	}
	if stored.Points != 3 {
		t.Errorf("expected 3 points stored, got %d", stored.Points)
	}
}

func TestRecalculateTeamStatsEndpointErrors(t *testing.T) {
	db := testutil.OpenTestDB(t)
	seedStatsFixture(t, db)

	tests := []struct {
		name     string
		userID   uint
		path     string
		wantCode int
	}{
		{"invalid id", 1, "/teams/abc/stats/recalculate", http.StatusBadRequest},
		{"unknown team", 1, "/teams/999/stats/recalculate", http.StatusNotFound},
		{"non-member", 99, "/teams/1/stats/recalculate", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := statsRouter(db, tt.userID)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetTeamStatsEndpoint(t *testing.T) {
	db := testutil.OpenTestDB(t)
	seedStatsFixture(t, db)
	router := statsRouter(db, 1)

	// Recalculate first so the stored aggregate is non-zero
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/teams/1/stats/recalculate", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("recalculation failed: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/1/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stats models.TeamStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stats.MatchesPlayed != 1 || stats.GoalsFor != 2 {
		t.Errorf("unexpected aggregate: %+v", stats)
	}
}
