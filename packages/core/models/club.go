package models

import (
	"time"

	"gorm.io/gorm"
)

type Club struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Slug       string         `gorm:"size:255;unique;not null" json:"slug"`
	City       string         `gorm:"size:100" json:"city"`
	InviteCode string         `gorm:"size:64;uniqueIndex;not null" json:"invite_code"`
	OwnerID    uint           `gorm:"not null" json:"owner_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Memberships []Membership `gorm:"foreignKey:ClubID" json:"memberships,omitempty"`
	Teams       []Team       `gorm:"foreignKey:ClubID" json:"teams,omitempty"`
}

func (Club) TableName() string {
	return "clubs"
}

type PaginatedClubsResponse struct {
	Data       []Club `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

type CreateClubRequest struct {
	Name string `json:"name" binding:"required"`
	City string `json:"city,omitempty"`
}

type UpdateClubRequest struct {
	Name *string `json:"name,omitempty"`
	City *string `json:"city,omitempty"`
}

type JoinClubRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}
