package config

import (
	"fmt"
	"log"
	"os"

	"clubmanager-api/packages/core/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDatabase opens the Postgres connection and returns the handle. The
// handle is passed explicitly into the modules; there is no package-level
// singleton.
func ConnectDatabase() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "clubmanager"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")
	return db, nil
}

// StatsResultPolicy reads how the aggregation should treat finished matches
// without a result. Default is to skip them.
func StatsResultPolicy() utils.ResultPolicy {
	if getEnv("STATS_RESULT_POLICY", "skip") == "reject" {
		return utils.RejectMissingResults
	}
	return utils.SkipMissingResults
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
