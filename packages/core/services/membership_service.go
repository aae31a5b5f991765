package services

import (
	"errors"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"

	"gorm.io/gorm"
)

type MembershipService struct {
	db *gorm.DB
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{
		db: db,
	}
}

// Authorize checks that the user belongs to the club with at least the given
// role. A missing membership is reported as permission-denied, not not-found,
// so club existence is not leaked to outsiders.
func (s *MembershipService) Authorize(userID, clubID uint, role string) (*models.Membership, error) {
	var membership models.Membership

	result := s.db.Where("club_id = ? AND user_id = ?", clubID, userID).First(&membership)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.PermissionDenied("not a member of this club")
		}
		return nil, result.Error
	}

	if !membership.HasRole(role) {
		return nil, apperrors.PermissionDenied("insufficient club role")
	}

	return &membership, nil
}

func (s *MembershipService) GetMembers(clubID uint, page int, pageSize int) (*models.PaginatedMembershipsResponse, error) {
	var memberships []models.Membership
	var total int64

	baseQuery := s.db.Model(&models.Membership{}).Where("club_id = ?", clubID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := baseQuery.
		Order("created_at ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&memberships).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedMembershipsResponse{
		Data:       memberships,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateMemberRole changes a member's role. Ownership is not transferable here;
// promoting to owner is rejected.
func (s *MembershipService) UpdateMemberRole(clubID, userID uint, role string) (*models.Membership, error) {
	if role != models.ClubRoleMember && role != models.ClubRoleAdmin {
		return nil, apperrors.InvalidArgument("role must be member or admin")
	}

	var membership models.Membership
	result := s.db.Where("club_id = ? AND user_id = ?", clubID, userID).First(&membership)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("membership not found")
		}
		return nil, result.Error
	}

	if membership.Role == models.ClubRoleOwner {
		return nil, apperrors.InvalidArgument("cannot change the owner's role")
	}

	if err := s.db.Model(&membership).Update("role", role).Error; err != nil {
		return nil, err
	}

	return &membership, nil
}

// RemoveMember removes a user from the club. The owner cannot be removed.
func (s *MembershipService) RemoveMember(clubID, userID uint) error {
	var membership models.Membership
	result := s.db.Where("club_id = ? AND user_id = ?", clubID, userID).First(&membership)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("membership not found")
		}
		return result.Error
	}

	if membership.Role == models.ClubRoleOwner {
		return apperrors.InvalidArgument("the club owner cannot be removed")
	}

	return s.db.Delete(&membership).Error
}
