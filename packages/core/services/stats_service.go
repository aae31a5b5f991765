package services

import (
	"time"

	"clubmanager-api/packages/core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// GetClubStats returns the dashboard counters for one club.
func (s *StatsService) GetClubStats(clubID uint) (*models.ClubStats, error) {
	var totalTeams int64
	var totalPlayers int64
	var totalMatches int64
	var matchesLast7Days int64
	var matchesPrevious7Days int64

	if err := s.db.Model(&models.Team{}).Where("club_id = ?", clubID).Count(&totalTeams).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Player{}).Where("club_id = ?", clubID).Count(&totalPlayers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).Where("club_id = ?", clubID).Count(&totalMatches).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	last7DaysStart := now.AddDate(0, 0, -7)
	previous7DaysStart := now.AddDate(0, 0, -14)

	if err := s.db.Model(&models.Match{}).
		Where("club_id = ? AND kickoff_at >= ?", clubID, last7DaysStart).
		Count(&matchesLast7Days).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).
		Where("club_id = ? AND kickoff_at >= ? AND kickoff_at < ?", clubID, previous7DaysStart, last7DaysStart).
		Count(&matchesPrevious7Days).Error; err != nil {
		return nil, err
	}

	return &models.ClubStats{
		TotalTeams:           totalTeams,
		TotalPlayers:         totalPlayers,
		TotalMatches:         totalMatches,
		MatchesLast7Days:     matchesLast7Days,
		MatchesPrevious7Days: matchesPrevious7Days,
	}, nil
}
