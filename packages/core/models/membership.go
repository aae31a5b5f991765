package models

import (
	"time"

	"gorm.io/gorm"
)

// Club roles, ordered from least to most privileged.
const (
	ClubRoleMember = "member"
	ClubRoleAdmin  = "admin"
	ClubRoleOwner  = "owner"
)

type Membership struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClubID    uint           `gorm:"not null;uniqueIndex:idx_memberships_club_user;constraint:OnDelete:CASCADE" json:"club_id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_memberships_club_user" json:"user_id"`
	Role      string         `gorm:"size:20;default:member" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Club Club `gorm:"foreignKey:ClubID;references:ID" json:"club,omitempty"`
}

func (Membership) TableName() string {
	return "memberships"
}

// HasRole reports whether the membership grants at least the given role.
func (m *Membership) HasRole(role string) bool {
	return roleRank(m.Role) >= roleRank(role)
}

func roleRank(role string) int {
	switch role {
	case ClubRoleOwner:
		return 3
	case ClubRoleAdmin:
		return 2
	case ClubRoleMember:
		return 1
	default:
		return 0
	}
}

type PaginatedMembershipsResponse struct {
	Data       []Membership `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}
