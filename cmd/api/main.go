package main

import (
	"hrms-backend/config"
	"hrms-backend/internal/mailer"
	"hrms-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using system environment variables")
	}

	config.ConnectDB()
	log.Info("database connected")

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())
	app.Use(logger.New())

	notifier := mailer.New()

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupDepartmentRoutes(app, config.DB)
	routes.SetupEmployeeRoutes(app, config.DB)
	routes.SetupLeaveRoutes(app, config.DB, notifier)
	routes.SetupPayrollRoutes(app, config.DB)
	routes.SetupRecruitmentRoutes(app, config.DB)
	routes.SetupShiftRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupTrainingRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)

	addr := ":" + config.GetEnv("PORT", "3000")
	log.WithField("addr", addr).Info("server listening")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
