package routes

import (
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDepartmentRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDepartmentRepository(db)
	hdl := handler.NewDepartmentHandler(repo)

	api := app.Group("/api/departments", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
