package models

import (
	"time"

	"gorm.io/gorm"
)

// Match statuses.
const (
	MatchScheduled = "scheduled"
	MatchLive      = "live"
	MatchHalftime  = "halftime"
	MatchFinished  = "finished"
	MatchPostponed = "postponed"
	MatchCancelled = "cancelled"
)

type Match struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClubID     uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"club_id"`
	HomeTeamID uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"home_team_id"`
	AwayTeamID uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"away_team_id"`
	Status     string         `gorm:"size:20;default:scheduled" json:"status"` // scheduled, live, halftime, finished, postponed, cancelled
	KickoffAt  time.Time      `gorm:"not null" json:"kickoff_at"`
	Venue      string         `gorm:"size:255" json:"venue"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Result, present only once recorded. A finished match may lack one.
	HomeGoals     *int `json:"home_goals"`
	AwayGoals     *int `json:"away_goals"`
	HomePenalties *int `json:"home_penalties,omitempty"`
	AwayPenalties *int `json:"away_penalties,omitempty"`

	// Relationships
	HomeTeam Team `gorm:"foreignKey:HomeTeamID;references:ID" json:"home_team,omitempty"`
	AwayTeam Team `gorm:"foreignKey:AwayTeamID;references:ID" json:"away_team,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// HasResult reports whether both goal counts have been recorded.
func (m *Match) HasResult() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}

type PaginatedMatchResponse struct {
	Data       []Match `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

type CreateMatchRequest struct {
	HomeTeamID uint      `json:"home_team_id" binding:"required"`
	AwayTeamID uint      `json:"away_team_id" binding:"required"`
	KickoffAt  time.Time `json:"kickoff_at" binding:"required"`
	Venue      string    `json:"venue,omitempty"`
}

type UpdateMatchStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled live halftime finished postponed cancelled"`
}

type RecordResultRequest struct {
	HomeGoals     *int `json:"home_goals" binding:"required,min=0"`
	AwayGoals     *int `json:"away_goals" binding:"required,min=0"`
	HomePenalties *int `json:"home_penalties,omitempty" binding:"omitempty,min=0"`
	AwayPenalties *int `json:"away_penalties,omitempty" binding:"omitempty,min=0"`
}
