package handlers

import (
	"net/http"

	authMiddleware "clubmanager-api/packages/auth/middleware"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type TeamStatsHandler struct {
	teamStatsService  *services.TeamStatsService
	teamService       *services.TeamService
	membershipService *services.MembershipService
}

func NewTeamStatsHandler(teamStatsService *services.TeamStatsService, teamService *services.TeamService, membershipService *services.MembershipService) *TeamStatsHandler {
	return &TeamStatsHandler{
		teamStatsService:  teamStatsService,
		teamService:       teamService,
		membershipService: membershipService,
	}
}

// RecalculateTeamStats recomputes a team's aggregate from its match history
// @Summary Recalculate team statistics
// @Description Recompute the team's aggregate from its finished matches and store it; requires club membership
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.TeamStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams/{id}/stats/recalculate [post]
func (h *TeamStatsHandler) RecalculateTeamStats(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeamByID(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.membershipService.Authorize(userID, team.ClubID, models.ClubRoleMember); err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.teamStatsService.Recalculate(team.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TeamStatsResponse{
		Success: true,
		Stats:   *stats,
	})
}

// GetTeamStats returns the stored aggregate
// @Summary Get team statistics
// @Description Get the stored team aggregate without recomputing it; requires club membership
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.TeamStats
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/stats [get]
func (h *TeamStatsHandler) GetTeamStats(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeamByID(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.membershipService.Authorize(userID, team.ClubID, models.ClubRoleMember); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team.Stats())
}
