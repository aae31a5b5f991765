package models

import (
	"time"

	"gorm.io/gorm"
)

type Player struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClubID      uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"club_id"`
	TeamID      *uint          `gorm:"index" json:"team_id"`
	FirstName   string         `gorm:"size:255;not null" json:"first_name"`
	LastName    string         `gorm:"size:255;not null" json:"last_name"`
	Position    string         `gorm:"size:50" json:"position"`
	ShirtNumber *int           `json:"shirt_number"`
	BirthDate   *time.Time     `json:"birth_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Club Club  `gorm:"foreignKey:ClubID;references:ID" json:"club,omitempty"`
	Team *Team `gorm:"foreignKey:TeamID;references:ID" json:"team,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type PaginatedPlayersResponse struct {
	Data       []Player `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}

type CreatePlayerRequest struct {
	FirstName   string     `json:"first_name" binding:"required"`
	LastName    string     `json:"last_name" binding:"required"`
	Position    string     `json:"position,omitempty"`
	ShirtNumber *int       `json:"shirt_number,omitempty" binding:"omitempty,min=1,max=99"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
}

type UpdatePlayerRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Position    *string `json:"position,omitempty"`
	ShirtNumber *int    `json:"shirt_number,omitempty" binding:"omitempty,min=1,max=99"`
	TeamID      *uint   `json:"team_id,omitempty"`
}
