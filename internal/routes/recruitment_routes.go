package routes

import (
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRecruitmentRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewRecruitmentRepository(db)
	hdl := handler.NewRecruitmentHandler(repo)

	api := app.Group("/api/recruitments", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
