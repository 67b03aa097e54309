package routes

import (
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	hdl := handler.NewReportHandler(attendanceRepo)

	api := app.Group("/api/reports", middleware.Auth, middleware.Role("Admin"))
	api.Get("/attendance", hdl.AttendanceReport)
}
