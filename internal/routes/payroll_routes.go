package routes

import (
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPayrollRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewPayrollRepository(db)
	hdl := handler.NewPayrollHandler(repo)

	api := app.Group("/api/payrolls", middleware.Auth, middleware.Role("Admin"))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
