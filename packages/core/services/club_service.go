package services

import (
	"errors"
	"fmt"
	"strings"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClubService struct {
	db *gorm.DB
}

func NewClubService(db *gorm.DB) *ClubService {
	return &ClubService{
		db: db,
	}
}

// CreateClub creates the club and the owner membership in a single transaction,
// so a club can never exist without its owning member.
func (s *ClubService) CreateClub(ownerID uint, req models.CreateClubRequest) (*models.Club, error) {
	slug := s.generateUniqueSlug(req.Name)

	club := &models.Club{
		Name:       req.Name,
		Slug:       slug,
		City:       req.City,
		InviteCode: newInviteCode(),
		OwnerID:    ownerID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(club).Error; err != nil {
			return err
		}

		membership := &models.Membership{
			ClubID: club.ID,
			UserID: ownerID,
			Role:   models.ClubRoleOwner,
		}
		return tx.Create(membership).Error
	})
	if err != nil {
		return nil, err
	}

	return club, nil
}

// JoinClub adds the user as a member of the club identified by the invite code.
func (s *ClubService) JoinClub(userID uint, inviteCode string) (*models.Club, error) {
	var club models.Club
	result := s.db.Where("invite_code = ?", inviteCode).First(&club)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("invalid invite code")
		}
		return nil, result.Error
	}

	var existing models.Membership
	err := s.db.Where("club_id = ? AND user_id = ?", club.ID, userID).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("already a member of this club")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	membership := &models.Membership{
		ClubID: club.ID,
		UserID: userID,
		Role:   models.ClubRoleMember,
	}
	if err := s.db.Create(membership).Error; err != nil {
		return nil, err
	}

	return &club, nil
}

func (s *ClubService) GetClubByID(id uint) (*models.Club, error) {
	var club models.Club

	result := s.db.First(&club, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("club not found")
		}
		return nil, result.Error
	}

	return &club, nil
}

func (s *ClubService) UpdateClub(id uint, req models.UpdateClubRequest) (*models.Club, error) {
	club, err := s.GetClubByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.City != nil {
		updates["city"] = *req.City
	}

	if len(updates) > 0 {
		if err := s.db.Model(club).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetClubByID(id)
}

func (s *ClubService) DeleteClub(id uint) error {
	result := s.db.Delete(&models.Club{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("club not found")
	}

	return nil
}

// GetClubsForUser lists the clubs the user is a member of, newest first.
func (s *ClubService) GetClubsForUser(userID uint, page int, pageSize int) (*models.PaginatedClubsResponse, error) {
	var clubs []models.Club
	var total int64

	baseQuery := s.db.Model(&models.Club{}).
		Joins("JOIN memberships ON memberships.club_id = clubs.id AND memberships.deleted_at IS NULL").
		Where("memberships.user_id = ?", userID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := baseQuery.
		Order("clubs.created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&clubs).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedClubsResponse{
		Data:       clubs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *ClubService) generateUniqueSlug(name string) string {
	baseSlug := utils.Slugify(name)
	slug := baseSlug
	counter := 1

	for {
		var existing models.Club
		result := s.db.Where("slug = ?", slug).First(&existing)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			break
		}

		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
		counter++
	}

	return slug
}

// newInviteCode returns a short shareable code derived from a UUID.
func newInviteCode() string {
	return strings.Split(uuid.NewString(), "-")[0]
}
