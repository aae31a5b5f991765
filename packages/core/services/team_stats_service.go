package services

import (
	"errors"
	"log"
	"time"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/utils"

	"gorm.io/gorm"
)

type TeamStatsService struct {
	db     *gorm.DB
	policy utils.ResultPolicy
}

func NewTeamStatsService(db *gorm.DB, policy utils.ResultPolicy) *TeamStatsService {
	return &TeamStatsService{
		db:     db,
		policy: policy,
	}
}

// Recalculate recomputes a team's aggregate from its full finished-match
// history and overwrites the stored value. The two reads and the write are not
// wrapped in a transaction; concurrent runs for the same team race and the last
// write wins.
func (s *TeamStatsService) Recalculate(teamID uint) (*models.TeamStats, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team not found")
		}
		return nil, apperrors.Internal("failed to load team", err)
	}

	matches, err := s.loadFinishedMatches(teamID)
	if err != nil {
		return nil, apperrors.Internal("failed to load matches", err)
	}

	stats, err := utils.ComputeTeamStats(teamID, matches, s.policy)
	if err != nil {
		return nil, apperrors.Internal("inconsistent match data", err)
	}

	if err := s.persist(&team, stats); err != nil {
		return nil, apperrors.Internal("failed to store team stats", err)
	}

	return &stats, nil
}

// loadFinishedMatches issues the two equality reads: finished matches with the
// team at home, then away.
func (s *TeamStatsService) loadFinishedMatches(teamID uint) ([]models.Match, error) {
	var home []models.Match
	if err := s.db.
		Where("home_team_id = ? AND status = ?", teamID, models.MatchFinished).
		Find(&home).Error; err != nil {
		return nil, err
	}

	var away []models.Match
	if err := s.db.
		Where("away_team_id = ? AND status = ?", teamID, models.MatchFinished).
		Find(&away).Error; err != nil {
		return nil, err
	}

	return append(home, away...), nil
}

// persist overwrites the team's stats columns and stamps the refresh time. The
// reducer never touches the clock; only this write does.
func (s *TeamStatsService) persist(team *models.Team, stats models.TeamStats) error {
	now := time.Now()
	return s.db.Model(team).Updates(map[string]interface{}{
		"matches_played":   stats.MatchesPlayed,
		"wins":             stats.Wins,
		"draws":            stats.Draws,
		"losses":           stats.Losses,
		"goals_for":        stats.GoalsFor,
		"goals_against":    stats.GoalsAgainst,
		"points":           stats.Points,
		"streak_type":      stats.CurrentStreak.Type,
		"streak_count":     stats.CurrentStreak.Count,
		"stats_updated_at": now,
	}).Error
}

// RefreshRecentlyFinished recomputes stats for every team involved in a match
// that reached the finished status within the given window. Failures on one
// team do not stop the sweep.
func (s *TeamStatsService) RefreshRecentlyFinished(window time.Duration) (int, error) {
	cutoff := time.Now().Add(-window)

	var matches []models.Match
	if err := s.db.
		Where("status = ? AND updated_at >= ?", models.MatchFinished, cutoff).
		Find(&matches).Error; err != nil {
		return 0, err
	}

	teamIDs := make(map[uint]struct{})
	for _, match := range matches {
		teamIDs[match.HomeTeamID] = struct{}{}
		teamIDs[match.AwayTeamID] = struct{}{}
	}

	refreshed := 0
	for teamID := range teamIDs {
		if _, err := s.Recalculate(teamID); err != nil {
			log.Printf("Error refreshing stats for team %d: %v", teamID, err)
			continue
		}
		refreshed++
	}

	return refreshed, nil
}

// PendingRefreshCount returns how many finished matches changed in the window,
// as a cheap signal for the scheduler.
func (s *TeamStatsService) PendingRefreshCount(window time.Duration) (int64, error) {
	cutoff := time.Now().Add(-window)

	var count int64
	err := s.db.Model(&models.Match{}).
		Where("status = ? AND updated_at >= ?", models.MatchFinished, cutoff).
		Count(&count).Error
	return count, err
}
