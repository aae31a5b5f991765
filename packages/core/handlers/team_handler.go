package handlers

import (
	"net/http"

	authMiddleware "clubmanager-api/packages/auth/middleware"
	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService       *services.TeamService
	membershipService *services.MembershipService
}

func NewTeamHandler(teamService *services.TeamService, membershipService *services.MembershipService) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		membershipService: membershipService,
	}
}

// authorizeTeam loads the team and checks the caller's role in its club.
func (h *TeamHandler) authorizeTeam(c *gin.Context, role string) (*models.Team, bool) {
	userID, _ := authMiddleware.GetUserID(c)
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	team, err := h.teamService.GetTeamByID(teamID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	if _, err := h.membershipService.Authorize(userID, team.ClubID, role); err != nil {
		respondError(c, err)
		return nil, false
	}

	return team, true
}

// CreateTeam creates a team in a club
// @Summary Create a team
// @Description Create a team in the club; requires admin
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param team body models.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /clubs/{id}/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(userID, clubID, models.ClubRoleAdmin); err != nil {
		respondError(c, err)
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	team, err := h.teamService.CreateTeam(clubID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeamsByClub lists a club's teams
// @Summary List club teams
// @Description List the teams of a club; requires membership
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param id path int true "Club ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedTeamsResponse
// @Failure 403 {object} map[string]string
// @Router /clubs/{id}/teams [get]
func (h *TeamHandler) GetTeamsByClub(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(userID, clubID, models.ClubRoleMember); err != nil {
		respondError(c, err)
		return
	}

	page, pageSize := parsePagination(c)

	result, err := h.teamService.GetTeamsByClub(clubID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTeam returns one team
// @Summary Get team by ID
// @Description Get team information; requires club membership
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, ok := h.authorizeTeam(c, models.ClubRoleMember)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam updates a team
// @Summary Update team
// @Description Update team name/age group; requires admin
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body models.UpdateTeamRequest true "Team update data"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	team, ok := h.authorizeTeam(c, models.ClubRoleAdmin)
	if !ok {
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	updated, err := h.teamService.UpdateTeam(team.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTeam deletes a team
// @Summary Delete team
// @Description Delete a team; requires admin
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	team, ok := h.authorizeTeam(c, models.ClubRoleAdmin)
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(team.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}
