package routes

import (
	"hrms-backend/internal/handler"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := handler.NewAuthHandler(uc)

	api := app.Group("/api/auth")
	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
}
