package main

import (
	"log"

	"oracle-manager-api/config"
	"oracle-manager-api/fixtures"
	"oracle-manager-api/models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	if err := db.AutoMigrate(&models.Player{}, &models.Game{}, &models.GameEvent{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := fixtures.NewFixtures(db).GenerateTestData(); err != nil {
		log.Fatal("Fixtures generation failed:", err)
	}
}
