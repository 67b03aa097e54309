package handler

import (
	"time"

	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	now := time.Now()
	stats, err := h.repo.GetDashboardStats(now.Format("2006-01-02"), now.Format("2006-01"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(fiber.Map{"message": "Stats fetched", "data": stats})
}
