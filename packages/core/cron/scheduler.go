package cron

import (
	"log"
	"time"

	"clubmanager-api/packages/core/services"

	"github.com/robfig/cron/v3"
)

// refreshWindow is deliberately wider than the sweep interval so consecutive
// runs overlap instead of leaving gaps.
const refreshWindow = 2 * time.Hour

type Scheduler struct {
	cron             *cron.Cron
	teamStatsService *services.TeamStatsService
}

func NewScheduler(teamStatsService *services.TeamStatsService) *Scheduler {
	// Create cron with seconds precision and logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:             c,
		teamStatsService: teamStatsService,
	}
}

// Start initializes and starts all scheduled jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Refresh team statistics at minute 0 of every hour
	_, err := s.cron.AddFunc("0 0 * * * *", s.runStatsRefresh)
	if err != nil {
		log.Printf("Error scheduling stats refresh job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

// runStatsRefresh recomputes aggregates for teams with recently finished matches
func (s *Scheduler) runStatsRefresh() {
	log.Println("Running team stats refresh job...")

	pending, err := s.teamStatsService.PendingRefreshCount(refreshWindow)
	if err != nil {
		log.Printf("Error checking pending stats refreshes: %v", err)
		return
	}

	if pending == 0 {
		log.Println("No recently finished matches, nothing to refresh")
		return
	}

	refreshed, err := s.teamStatsService.RefreshRecentlyFinished(refreshWindow)
	if err != nil {
		log.Printf("Error during stats refresh: %v", err)
		return
	}

	log.Printf("Stats refresh job completed, %d team(s) updated", refreshed)
}

// RunNow manually triggers the stats refresh job (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering stats refresh job...")
	s.runStatsRefresh()
}
