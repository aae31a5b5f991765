package models

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClubID    uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"club_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	AgeGroup  string         `gorm:"size:50" json:"age_group"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Denormalized aggregate, overwritten by stats recalculation
	MatchesPlayed  int        `gorm:"default:0" json:"matches_played"`
	Wins           int        `gorm:"default:0" json:"wins"`
	Draws          int        `gorm:"default:0" json:"draws"`
	Losses         int        `gorm:"default:0" json:"losses"`
	GoalsFor       int        `gorm:"default:0" json:"goals_for"`
	GoalsAgainst   int        `gorm:"default:0" json:"goals_against"`
	Points         int        `gorm:"default:0" json:"points"`
	StreakType     string     `gorm:"size:10;default:win" json:"streak_type"`
	StreakCount    int        `gorm:"default:0" json:"streak_count"`
	StatsUpdatedAt *time.Time `json:"stats_updated_at"`

	// Relationships
	Club    Club     `gorm:"foreignKey:ClubID;references:ID" json:"club,omitempty"`
	Players []Player `gorm:"foreignKey:TeamID" json:"players,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

// Stats returns the stored aggregate in its API shape.
func (t *Team) Stats() TeamStats {
	return TeamStats{
		MatchesPlayed: t.MatchesPlayed,
		Wins:          t.Wins,
		Draws:         t.Draws,
		Losses:        t.Losses,
		GoalsFor:      t.GoalsFor,
		GoalsAgainst:  t.GoalsAgainst,
		Points:        t.Points,
		CurrentStreak: Streak{
			Type:  t.StreakType,
			Count: t.StreakCount,
		},
	}
}

type PaginatedTeamsResponse struct {
	Data       []Team `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

type CreateTeamRequest struct {
	Name     string `json:"name" binding:"required"`
	AgeGroup string `json:"age_group,omitempty"`
}

type UpdateTeamRequest struct {
	Name     *string `json:"name,omitempty"`
	AgeGroup *string `json:"age_group,omitempty"`
}
