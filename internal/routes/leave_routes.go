package routes

import (
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB, notifier handler.LeaveNotifier) {
	repo := repository.NewLeaveRepository(db)
	hdl := handler.NewLeaveHandler(repo, notifier)

	api := app.Group("/api/leaves", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Patch("/:id/status", hdl.UpdateStatus)
	api.Delete("/:id", hdl.Delete)
}
