package routes

import (
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAttendanceRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	hdl := handler.NewAttendanceHandler(repo, shiftRepo)

	api := app.Group("/api/attendances", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
