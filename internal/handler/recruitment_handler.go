package handler

import (
	"strconv"
	"strings"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RecruitmentHandler struct {
	repo repository.RecruitmentRepository
}

func NewRecruitmentHandler(repo repository.RecruitmentRepository) *RecruitmentHandler {
	return &RecruitmentHandler{repo: repo}
}

// dropBlankLines removes empty entries left behind by optional form rows.
func dropBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func (h *RecruitmentHandler) GetAll(c *fiber.Ctx) error {
	recs, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch recruitments"})
	}
	return c.JSON(fiber.Map{"data": recs})
}

func (h *RecruitmentHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	rec, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recruitment not found"})
	}
	return c.JSON(fiber.Map{"data": rec})
}

func (h *RecruitmentHandler) Create(c *fiber.Ctx) error {
	var rec model.Recruitment
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec.Requirements = dropBlankLines(rec.Requirements)
	rec.Responsibilities = dropBlankLines(rec.Responsibilities)
	rec.Tags = dropBlankLines(rec.Tags)
	if rec.Status == "" {
		rec.Status = "Draft"
	}

	if err := h.repo.Create(&rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create recruitment"})
	}
	return c.JSON(fiber.Map{"message": "Recruitment created", "data": rec})
}

func (h *RecruitmentHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Recruitment
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recruitment not found"})
	}

	rec.Position = req.Position
	rec.Department = req.Department
	rec.JobType = req.JobType
	rec.ExperienceLevel = req.ExperienceLevel
	rec.SalaryMin = req.SalaryMin
	rec.SalaryMax = req.SalaryMax
	rec.Requirements = dropBlankLines(req.Requirements)
	rec.Responsibilities = dropBlankLines(req.Responsibilities)
	rec.Status = req.Status
	rec.ApplicationDeadline = req.ApplicationDeadline
	rec.NumberOfOpenings = req.NumberOfOpenings
	rec.HiringManagerID = req.HiringManagerID
	rec.Tags = dropBlankLines(req.Tags)
	rec.IsRemote = req.IsRemote
	rec.HiringManager = nil

	if err := h.repo.Update(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update recruitment"})
	}
	return c.JSON(fiber.Map{"message": "Recruitment updated", "data": rec})
}

func (h *RecruitmentHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recruitment not found"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete recruitment"})
	}
	return c.JSON(fiber.Map{"message": "Recruitment deleted"})
}
