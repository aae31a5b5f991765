package main

import (
	"log"

	"clubmanager-api/config"
	"clubmanager-api/fixtures"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatal("Database connection failed:", err)
	}

	f := fixtures.NewFixtures(db)
	if err := f.GenerateTestData(); err != nil {
		log.Fatal("Fixtures generation failed:", err)
	}
}
