package core

import (
	"log"

	authMiddleware "clubmanager-api/packages/auth/middleware"
	"clubmanager-api/packages/core/cron"
	"clubmanager-api/packages/core/handlers"
	"clubmanager-api/packages/core/services"
	"clubmanager-api/packages/core/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	ClubHandler       *handlers.ClubHandler
	ClubService       *services.ClubService
	MembershipHandler *handlers.MembershipHandler
	MembershipService *services.MembershipService
	TeamHandler       *handlers.TeamHandler
	TeamService       *services.TeamService
	PlayerHandler     *handlers.PlayerHandler
	PlayerService     *services.PlayerService
	MatchHandler      *handlers.MatchHandler
	MatchService      *services.MatchService
	TeamStatsHandler  *handlers.TeamStatsHandler
	TeamStatsService  *services.TeamStatsService
	StatsHandler      *handlers.StatsHandler
	StatsService      *services.StatsService
	InvitationService *services.InvitationService
	Scheduler         *cron.Scheduler
	db                *gorm.DB
}

func NewModule(db *gorm.DB, mailer services.Mailer, statsPolicy utils.ResultPolicy) *Module {
	clubService := services.NewClubService(db)
	membershipService := services.NewMembershipService(db)
	invitationService := services.NewInvitationService(clubService, mailer)
	clubHandler := handlers.NewClubHandler(clubService, membershipService, invitationService)

	membershipHandler := handlers.NewMembershipHandler(membershipService)

	teamService := services.NewTeamService(db)
	teamHandler := handlers.NewTeamHandler(teamService, membershipService)

	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService, teamService, membershipService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService, teamService, membershipService)

	teamStatsService := services.NewTeamStatsService(db, statsPolicy)
	teamStatsHandler := handlers.NewTeamStatsHandler(teamStatsService, teamService, membershipService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService, membershipService)

	scheduler := cron.NewScheduler(teamStatsService)

	return &Module{
		ClubHandler:       clubHandler,
		ClubService:       clubService,
		MembershipHandler: membershipHandler,
		MembershipService: membershipService,
		TeamHandler:       teamHandler,
		TeamService:       teamService,
		PlayerHandler:     playerHandler,
		PlayerService:     playerService,
		MatchHandler:      matchHandler,
		MatchService:      matchService,
		TeamStatsHandler:  teamStatsHandler,
		TeamStatsService:  teamStatsService,
		StatsHandler:      statsHandler,
		StatsService:      statsService,
		InvitationService: invitationService,
		Scheduler:         scheduler,
		db:                db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	clubs := r.Group("/clubs")
	clubs.Use(authMiddleware.JWTMiddleware())
	{
		clubs.POST("", m.ClubHandler.CreateClub)
		clubs.GET("", m.ClubHandler.GetMyClubs)
		clubs.POST("/join", m.ClubHandler.JoinClub)
		clubs.GET("/:id", m.ClubHandler.GetClub)
		clubs.PUT("/:id", m.ClubHandler.UpdateClub)
		clubs.DELETE("/:id", m.ClubHandler.DeleteClub)
		clubs.POST("/:id/invitations", m.ClubHandler.InviteMember)
		clubs.GET("/:id/members", m.MembershipHandler.GetMembers)
		clubs.PATCH("/:id/members/:userId", m.MembershipHandler.UpdateMemberRole)
		clubs.DELETE("/:id/members/:userId", m.MembershipHandler.RemoveMember)
		clubs.GET("/:id/teams", m.TeamHandler.GetTeamsByClub)
		clubs.POST("/:id/teams", m.TeamHandler.CreateTeam)
		clubs.GET("/:id/matches", m.MatchHandler.GetMatchesByClub)
		clubs.POST("/:id/matches", m.MatchHandler.CreateMatch)
		clubs.GET("/:id/stats", m.StatsHandler.GetClubStats)
	}

	teams := r.Group("/teams")
	teams.Use(authMiddleware.JWTMiddleware())
	{
		teams.GET("/:id", m.TeamHandler.GetTeam)
		teams.PUT("/:id", m.TeamHandler.UpdateTeam)
		teams.DELETE("/:id", m.TeamHandler.DeleteTeam)
		teams.GET("/:id/players", m.PlayerHandler.GetPlayersByTeam)
		teams.POST("/:id/players", m.PlayerHandler.CreatePlayer)
		teams.GET("/:id/matches", m.MatchHandler.GetMatchesByTeam)
		teams.GET("/:id/stats", m.TeamStatsHandler.GetTeamStats)
		teams.POST("/:id/stats/recalculate", m.TeamStatsHandler.RecalculateTeamStats)
	}

	players := r.Group("/players")
	players.Use(authMiddleware.JWTMiddleware())
	{
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.PUT("/:id", m.PlayerHandler.UpdatePlayer)
		players.DELETE("/:id", m.PlayerHandler.DeletePlayer)
	}

	matches := r.Group("/matches")
	matches.Use(authMiddleware.JWTMiddleware())
	{
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.PATCH("/:id/status", m.MatchHandler.UpdateMatchStatus)
		matches.PUT("/:id/result", m.MatchHandler.RecordResult)
		matches.DELETE("/:id", m.MatchHandler.DeleteMatch)
	}
}

// StartScheduler starts the cron scheduler for the periodic stats refresh
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunStatsRefreshNow manually triggers the stats refresh (useful for testing)
func (m *Module) RunStatsRefreshNow() {
	log.Println("Manually triggering stats refresh...")
	m.Scheduler.RunNow()
}
