package services

import (
	"errors"
	"fmt"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/utils"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db: db,
	}
}

func (s *TeamService) CreateTeam(clubID uint, req models.CreateTeamRequest) (*models.Team, error) {
	var club models.Club
	if err := s.db.First(&club, clubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("club not found")
		}
		return nil, err
	}

	var existing models.Team
	err := s.db.Where("club_id = ? AND name = ?", clubID, req.Name).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("team already exists in this club")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	team := &models.Team{
		ClubID:     clubID,
		Name:       req.Name,
		Slug:       s.generateUniqueSlug(req.Name),
		AgeGroup:   req.AgeGroup,
		StreakType: models.StreakWin,
	}

	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

func (s *TeamService) GetTeamByID(id uint) (*models.Team, error) {
	var team models.Team

	result := s.db.First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team not found")
		}
		return nil, result.Error
	}

	return &team, nil
}

func (s *TeamService) GetTeamBySlug(slug string) (*models.Team, error) {
	var team models.Team

	result := s.db.Where("slug = ?", slug).First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team not found")
		}
		return nil, result.Error
	}

	return &team, nil
}

func (s *TeamService) UpdateTeam(id uint, req models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.GetTeamByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.AgeGroup != nil {
		updates["age_group"] = *req.AgeGroup
	}

	if len(updates) > 0 {
		if err := s.db.Model(team).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetTeamByID(id)
}

func (s *TeamService) DeleteTeam(id uint) error {
	result := s.db.Delete(&models.Team{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("team not found")
	}

	return nil
}

func (s *TeamService) GetTeamsByClub(clubID uint, page int, pageSize int) (*models.PaginatedTeamsResponse, error) {
	var teams []models.Team
	var total int64

	baseQuery := s.db.Model(&models.Team{}).Where("club_id = ?", clubID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&teams).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedTeamsResponse{
		Data:       teams,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *TeamService) generateUniqueSlug(name string) string {
	baseSlug := utils.Slugify(name)
	slug := baseSlug
	counter := 1

	for {
		var existing models.Team
		result := s.db.Where("slug = ?", slug).First(&existing)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			break
		}

		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
		counter++
	}

	return slug
}
