package testutil

import (
	"fmt"
	"strings"
	"testing"

	"clubmanager-api/packages/core/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens an isolated in-memory database migrated with the core
// schema. Each test gets its own database, named after the test so shared-cache
// connections stay within it.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Club{},
		&models.Membership{},
		&models.Team{},
		&models.Player{},
		&models.Match{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// CreateClub inserts a club row directly, bypassing the service layer.
func CreateClub(t *testing.T, db *gorm.DB, name string) *models.Club {
	t.Helper()

	club := &models.Club{
		Name:       name,
		Slug:       strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		InviteCode: name + "-code",
		OwnerID:    1,
	}
	if err := db.Create(club).Error; err != nil {
		t.Fatalf("failed to create club: %v", err)
	}
	return club
}

// CreateTeam inserts a team row directly, bypassing the service layer.
func CreateTeam(t *testing.T, db *gorm.DB, clubID uint, name string) *models.Team {
	t.Helper()

	team := &models.Team{
		ClubID: clubID,
		Name:   name,
		Slug:   strings.ToLower(strings.ReplaceAll(name, " ", "-")),
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	return team
}
