package handler

import (
	"strconv"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type TrainingHandler struct {
	repo repository.TrainingRepository
}

func NewTrainingHandler(repo repository.TrainingRepository) *TrainingHandler {
	return &TrainingHandler{repo: repo}
}

type TrainingRequest struct {
	Title            string `json:"title" validate:"required"`
	Trainer          string `json:"trainer"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	CompletionStatus string `json:"completionStatus" validate:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	ParticipantIDs   []uint `json:"participantIds"`
}

func (h *TrainingHandler) GetAll(c *fiber.Ctx) error {
	trainings, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trainings"})
	}
	return c.JSON(fiber.Map{"data": trainings})
}

func (h *TrainingHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	training, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
	}
	return c.JSON(fiber.Map{"data": training})
}

func (h *TrainingHandler) Create(c *fiber.Ctx) error {
	var req TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	training := model.Training{
		Title:            req.Title,
		Trainer:          req.Trainer,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		CompletionStatus: req.CompletionStatus,
	}
	if training.CompletionStatus == "" {
		training.CompletionStatus = "Not Started"
	}

	if err := h.repo.Create(&training); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create training"})
	}
	if len(req.ParticipantIDs) > 0 {
		if err := h.repo.ReplaceParticipants(&training, employeeRefs(req.ParticipantIDs)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign participants"})
		}
	}

	created, err := h.repo.GetByID(training.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch created training"})
	}
	return c.JSON(fiber.Map{"message": "Training created", "data": created})
}

func (h *TrainingHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	training, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
	}

	training.Title = req.Title
	training.Trainer = req.Trainer
	training.StartDate = req.StartDate
	training.EndDate = req.EndDate
	training.CompletionStatus = req.CompletionStatus

	if err := h.repo.Update(training); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update training"})
	}
	if err := h.repo.ReplaceParticipants(training, employeeRefs(req.ParticipantIDs)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign participants"})
	}

	updated, err := h.repo.GetByID(training.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch updated training"})
	}
	return c.JSON(fiber.Map{"message": "Training updated", "data": updated})
}

func (h *TrainingHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete training"})
	}
	return c.JSON(fiber.Map{"message": "Training deleted"})
}
