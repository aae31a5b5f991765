package models

// Streak outcome types.
const (
	StreakWin  = "win"
	StreakDraw = "draw"
	StreakLoss = "loss"
)

// Streak is a run of consecutive identical outcomes ending at the most recent match.
type Streak struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// TeamStats is the aggregate computed from a team's finished matches. It is always
// derived in full from match history, never updated incrementally.
type TeamStats struct {
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsFor      int    `json:"goals_for"`
	GoalsAgainst  int    `json:"goals_against"`
	Points        int    `json:"points"`
	CurrentStreak Streak `json:"current_streak"`
}

type TeamStatsResponse struct {
	Success bool      `json:"success"`
	Stats   TeamStats `json:"stats"`
}
