package handlers

import (
	"net/http"

	authMiddleware "clubmanager-api/packages/auth/middleware"
	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService     *services.PlayerService
	teamService       *services.TeamService
	membershipService *services.MembershipService
}

func NewPlayerHandler(playerService *services.PlayerService, teamService *services.TeamService, membershipService *services.MembershipService) *PlayerHandler {
	return &PlayerHandler{
		playerService:     playerService,
		teamService:       teamService,
		membershipService: membershipService,
	}
}

func (h *PlayerHandler) authorizePlayer(c *gin.Context, role string) (*models.Player, bool) {
	userID, _ := authMiddleware.GetUserID(c)
	playerID, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	player, err := h.playerService.GetPlayerByID(playerID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	if _, err := h.membershipService.Authorize(userID, player.ClubID, role); err != nil {
		respondError(c, err)
		return nil, false
	}

	return player, true
}

// CreatePlayer registers a player in a team
// @Summary Create a player
// @Description Register a player in the team's squad; requires admin
// @Tags players
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param player body models.CreatePlayerRequest true "Player data"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
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

	if _, err := h.membershipService.Authorize(userID, team.ClubID, models.ClubRoleAdmin); err != nil {
		respondError(c, err)
		return
	}

	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	player, err := h.playerService.CreatePlayer(team.ClubID, &team.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayersByTeam lists a team's squad
// @Summary List team players
// @Description List the players of a team; requires club membership
// @Tags players
// @Security BearerAuth
// @Produce json
// @Param id path int true "Team ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedPlayersResponse
// @Failure 403 {object} map[string]string
// @Router /teams/{id}/players [get]
func (h *PlayerHandler) GetPlayersByTeam(c *gin.Context) {
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

	page, pageSize := parsePagination(c)

	result, err := h.playerService.GetPlayersByTeam(team.ID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPlayer returns one player
// @Summary Get player by ID
// @Description Get player information; requires club membership
// @Tags players
// @Security BearerAuth
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player, ok := h.authorizePlayer(c, models.ClubRoleMember)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, player)
}

// UpdatePlayer updates a player
// @Summary Update player
// @Description Update player details; requires admin
// @Tags players
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param player body models.UpdatePlayerRequest true "Player update data"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	player, ok := h.authorizePlayer(c, models.ClubRoleAdmin)
	if !ok {
		return
	}

	var req models.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	updated, err := h.playerService.UpdatePlayer(player.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePlayer removes a player
// @Summary Delete player
// @Description Remove a player from the club; requires admin
// @Tags players
// @Security BearerAuth
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	player, ok := h.authorizePlayer(c, models.ClubRoleAdmin)
	if !ok {
		return
	}

	if err := h.playerService.DeletePlayer(player.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player deleted successfully"})
}
