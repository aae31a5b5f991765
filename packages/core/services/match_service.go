package services

import (
	"errors"
	"fmt"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"

	"gorm.io/gorm"
)

// validTransitions maps each match status to the statuses it may move to.
// finished and cancelled are terminal.
var validTransitions = map[string][]string{
	models.MatchScheduled: {models.MatchLive, models.MatchPostponed, models.MatchCancelled},
	models.MatchLive:      {models.MatchHalftime, models.MatchFinished, models.MatchCancelled},
	models.MatchHalftime:  {models.MatchLive, models.MatchFinished},
	models.MatchPostponed: {models.MatchScheduled, models.MatchCancelled},
}

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

func (s *MatchService) CreateMatch(clubID uint, req models.CreateMatchRequest) (*models.Match, error) {
	if req.HomeTeamID == req.AwayTeamID {
		return nil, apperrors.InvalidArgument("home and away team must be different")
	}

	var homeTeam, awayTeam models.Team
	if err := s.db.First(&homeTeam, req.HomeTeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("home team not found")
		}
		return nil, err
	}
	if err := s.db.First(&awayTeam, req.AwayTeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("away team not found")
		}
		return nil, err
	}

	if homeTeam.ClubID != clubID || awayTeam.ClubID != clubID {
		return nil, apperrors.InvalidArgument("both teams must belong to the club")
	}

	match := &models.Match{
		ClubID:     clubID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Status:     models.MatchScheduled,
		KickoffAt:  req.KickoffAt,
		Venue:      req.Venue,
	}

	if err := s.db.Create(match).Error; err != nil {
		return nil, err
	}

	return match, nil
}

func (s *MatchService) GetMatchByID(id uint) (*models.Match, error) {
	var match models.Match

	result := s.db.Preload("HomeTeam").Preload("AwayTeam").First(&match, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("match not found")
		}
		return nil, result.Error
	}

	return &match, nil
}

// UpdateStatus moves a match along its lifecycle. Finishing a match does not
// implicitly recompute team statistics; the aggregation stays an explicit
// trigger.
func (s *MatchService) UpdateStatus(id uint, status string) (*models.Match, error) {
	match, err := s.GetMatchByID(id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(match.Status, status) {
		return nil, apperrors.InvalidArgument(
			fmt.Sprintf("cannot move match from %s to %s", match.Status, status))
	}

	if err := s.db.Model(match).Update("status", status).Error; err != nil {
		return nil, err
	}
	match.Status = status

	return match, nil
}

// RecordResult stores the final score of a match that is live, at halftime or
// already finished. Goal counts were validated non-negative at the binding
// layer.
func (s *MatchService) RecordResult(id uint, req models.RecordResultRequest) (*models.Match, error) {
	match, err := s.GetMatchByID(id)
	if err != nil {
		return nil, err
	}

	switch match.Status {
	case models.MatchLive, models.MatchHalftime, models.MatchFinished:
	default:
		return nil, apperrors.InvalidArgument("result can only be recorded for a live, halftime or finished match")
	}

	updates := map[string]interface{}{
		"home_goals": *req.HomeGoals,
		"away_goals": *req.AwayGoals,
		"status":     models.MatchFinished,
	}
	if req.HomePenalties != nil {
		updates["home_penalties"] = *req.HomePenalties
	}
	if req.AwayPenalties != nil {
		updates["away_penalties"] = *req.AwayPenalties
	}

	if err := s.db.Model(match).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetMatchByID(id)
}

func (s *MatchService) DeleteMatch(id uint) error {
	result := s.db.Delete(&models.Match{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("match not found")
	}

	return nil
}

func (s *MatchService) GetMatchesByClub(clubID uint, status string, page int, pageSize int) (*models.PaginatedMatchResponse, error) {
	baseQuery := s.db.Model(&models.Match{}).Where("club_id = ?", clubID)
	if status != "" {
		baseQuery = baseQuery.Where("status = ?", status)
	}
	return s.paginateMatches(baseQuery, page, pageSize)
}

// GetMatchesByTeam lists matches where the team played on either side.
func (s *MatchService) GetMatchesByTeam(teamID uint, page int, pageSize int) (*models.PaginatedMatchResponse, error) {
	baseQuery := s.db.Model(&models.Match{}).
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID)
	return s.paginateMatches(baseQuery, page, pageSize)
}

func (s *MatchService) paginateMatches(baseQuery *gorm.DB, page int, pageSize int) (*models.PaginatedMatchResponse, error) {
	var matches []models.Match
	var total int64

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := baseQuery.
		Preload("HomeTeam").Preload("AwayTeam").
		Order("kickoff_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&matches).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedMatchResponse{
		Data:       matches,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
