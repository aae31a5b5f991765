package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	authModels "clubmanager-api/packages/auth/models"
	authUtils "clubmanager-api/packages/auth/utils"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/services"
	"clubmanager-api/packages/core/utils"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData creates a demo club with users, teams, players, a season of
// matches and freshly computed team statistics.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	users, err := f.generateUsers()
	if err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	club, err := f.generateClub(users)
	if err != nil {
		return fmt.Errorf("failed to generate club: %w", err)
	}

	teams, err := f.generateTeams(club)
	if err != nil {
		return fmt.Errorf("failed to generate teams: %w", err)
	}

	players, err := f.generatePlayers(club, teams)
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	matches, err := f.generateMatches(club, teams)
	if err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	if err := f.recalculateAllStats(teams); err != nil {
		return fmt.Errorf("failed to recalculate team stats: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d users, 1 club, %d teams, %d players and %d matches",
		len(users), len(teams), len(players), len(matches))
	return nil
}

func (f *Fixtures) generateUsers() ([]authModels.User, error) {
	usernames := []string{"coach_martin", "sarah_kim", "james_okafor", "lucia_fernandez", "tom_vries"}

	hashedPassword, err := authUtils.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	users := make([]authModels.User, 0, len(usernames))
	for _, username := range usernames {
		user := authModels.User{
			Email:    fmt.Sprintf("%s@example.com", username),
			Username: username,
			Password: hashedPassword,
			Enabled:  true,
			Roles:    authModels.GetDefaultRoles(),
		}
		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (f *Fixtures) generateClub(users []authModels.User) (*models.Club, error) {
	clubService := services.NewClubService(f.db)

	club, err := clubService.CreateClub(users[0].ID, models.CreateClubRequest{
		Name: "Riverside FC",
		City: "Rotterdam",
	})
	if err != nil {
		return nil, err
	}

	// Everyone else joins through the invite code
	for _, user := range users[1:] {
		if _, err := clubService.JoinClub(user.ID, club.InviteCode); err != nil {
			return nil, err
		}
	}

	return club, nil
}

func (f *Fixtures) generateTeams(club *models.Club) ([]models.Team, error) {
	teamService := services.NewTeamService(f.db)
	requests := []models.CreateTeamRequest{
		{Name: "First Team", AgeGroup: "senior"},
		{Name: "Reserves", AgeGroup: "senior"},
		{Name: "Under 19", AgeGroup: "u19"},
		{Name: "Under 17", AgeGroup: "u17"},
	}

	teams := make([]models.Team, 0, len(requests))
	for _, req := range requests {
		team, err := teamService.CreateTeam(club.ID, req)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}

	return teams, nil
}

func (f *Fixtures) generatePlayers(club *models.Club, teams []models.Team) ([]models.Player, error) {
	firstNames := []string{"Liam", "Noah", "Mason", "Ethan", "Lucas", "Oliver", "Aiden", "Elijah", "Daniel", "Henry", "Jack"}
	lastNames := []string{"Silva", "Jansen", "Moreau", "Costa", "Bakker", "Rossi", "Novak", "Diallo", "Keller", "Berg", "Mendes"}
	positions := []string{"goalkeeper", "defender", "midfielder", "forward"}

	var players []models.Player
	for _, team := range teams {
		for i := 0; i < 11; i++ {
			teamID := team.ID
			shirt := i + 1
			player := models.Player{
				ClubID:      club.ID,
				TeamID:      &teamID,
				FirstName:   firstNames[i],
				LastName:    lastNames[(i+int(team.ID))%len(lastNames)],
				Position:    positions[min(i/3, 3)],
				ShirtNumber: &shirt,
			}
			if err := f.db.Create(&player).Error; err != nil {
				return nil, err
			}
			players = append(players, player)
		}
	}

	return players, nil
}

func (f *Fixtures) generateMatches(club *models.Club, teams []models.Team) ([]models.Match, error) {
	var matches []models.Match

	// A few rounds between every team pairing, spread over past weeks
	kickoff := time.Now().AddDate(0, -3, 0)
	for round := 0; round < 3; round++ {
		for i := range teams {
			for j := range teams {
				if i == j {
					continue
				}

				homeGoals := rand.Intn(5)
				awayGoals := rand.Intn(4)
				match := models.Match{
					ClubID:     club.ID,
					HomeTeamID: teams[i].ID,
					AwayTeamID: teams[j].ID,
					Status:     models.MatchFinished,
					KickoffAt:  kickoff,
					HomeGoals:  &homeGoals,
					AwayGoals:  &awayGoals,
				}
				if err := f.db.Create(&match).Error; err != nil {
					return nil, err
				}
				matches = append(matches, match)
				kickoff = kickoff.Add(36 * time.Hour)
			}
		}
	}

	// Some upcoming fixtures without results
	for i := 0; i+1 < len(teams); i += 2 {
		match := models.Match{
			ClubID:     club.ID,
			HomeTeamID: teams[i].ID,
			AwayTeamID: teams[i+1].ID,
			Status:     models.MatchScheduled,
			KickoffAt:  time.Now().AddDate(0, 0, 7+i),
		}
		if err := f.db.Create(&match).Error; err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, nil
}

func (f *Fixtures) recalculateAllStats(teams []models.Team) error {
	teamStatsService := services.NewTeamStatsService(f.db, utils.SkipMissingResults)
	for _, team := range teams {
		if _, err := teamStatsService.Recalculate(team.ID); err != nil {
			return err
		}
	}
	return nil
}
