package main

import (
	"hrms-backend/config"
	"hrms-backend/internal/database"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using system environment variables")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)
}
