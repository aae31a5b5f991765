package services

import (
	"errors"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) CreatePlayer(clubID uint, teamID *uint, req models.CreatePlayerRequest) (*models.Player, error) {
	if teamID != nil {
		var team models.Team
		if err := s.db.First(&team, *teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("team not found")
			}
			return nil, err
		}
		if team.ClubID != clubID {
			return nil, apperrors.InvalidArgument("team belongs to a different club")
		}
	}

	player := &models.Player{
		ClubID:      clubID,
		TeamID:      teamID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Position:    req.Position,
		ShirtNumber: req.ShirtNumber,
		BirthDate:   req.BirthDate,
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("player not found")
		}
		return nil, result.Error
	}

	return &player, nil
}

func (s *PlayerService) UpdatePlayer(id uint, req models.UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.GetPlayerByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.ShirtNumber != nil {
		updates["shirt_number"] = *req.ShirtNumber
	}
	if req.TeamID != nil {
		var team models.Team
		if err := s.db.First(&team, *req.TeamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("team not found")
			}
			return nil, err
		}
		if team.ClubID != player.ClubID {
			return nil, apperrors.InvalidArgument("team belongs to a different club")
		}
		updates["team_id"] = *req.TeamID
	}

	if len(updates) > 0 {
		if err := s.db.Model(player).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetPlayerByID(id)
}

func (s *PlayerService) DeletePlayer(id uint) error {
	result := s.db.Delete(&models.Player{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("player not found")
	}

	return nil
}

func (s *PlayerService) GetPlayersByTeam(teamID uint, page int, pageSize int) (*models.PaginatedPlayersResponse, error) {
	return s.paginatePlayers(s.db.Model(&models.Player{}).Where("team_id = ?", teamID), page, pageSize)
}

func (s *PlayerService) GetPlayersByClub(clubID uint, page int, pageSize int) (*models.PaginatedPlayersResponse, error) {
	return s.paginatePlayers(s.db.Model(&models.Player{}).Where("club_id = ?", clubID), page, pageSize)
}

func (s *PlayerService) paginatePlayers(baseQuery *gorm.DB, page int, pageSize int) (*models.PaginatedPlayersResponse, error) {
	var players []models.Player
	var total int64

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := baseQuery.
		Order("last_name ASC, first_name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&players).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedPlayersResponse{
		Data:       players,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
