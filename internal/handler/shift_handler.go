package handler

import (
	"strconv"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ShiftHandler struct {
	repo repository.ShiftRepository
}

func NewShiftHandler(repo repository.ShiftRepository) *ShiftHandler {
	return &ShiftHandler{repo: repo}
}

type ShiftRequest struct {
	Name                string `json:"name" validate:"required"`
	StartTime           string `json:"startTime" validate:"required"`
	EndTime             string `json:"endTime" validate:"required"`
	AssignedEmployeeIDs []uint `json:"assignedEmployeeIds"`
}

func employeeRefs(ids []uint) []model.Employee {
	refs := make([]model.Employee, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, model.Employee{Model: gorm.Model{ID: id}})
	}
	return refs
}

func (h *ShiftHandler) GetAll(c *fiber.Ctx) error {
	shifts, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch shifts"})
	}
	return c.JSON(fiber.Map{"data": shifts})
}

func (h *ShiftHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	shift, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}
	return c.JSON(fiber.Map{"data": shift})
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var req ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	shift := model.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.repo.Create(&shift); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create shift"})
	}

	if len(req.AssignedEmployeeIDs) > 0 {
		if err := h.repo.ReplaceAssignments(&shift, employeeRefs(req.AssignedEmployeeIDs)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign employees"})
		}
	}

	created, err := h.repo.GetByID(shift.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch created shift"})
	}
	return c.JSON(fiber.Map{"message": "Shift created", "data": created})
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	shift, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	shift.Name = req.Name
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime

	if err := h.repo.Update(shift); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update shift"})
	}
	if err := h.repo.ReplaceAssignments(shift, employeeRefs(req.AssignedEmployeeIDs)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign employees"})
	}

	updated, err := h.repo.GetByID(shift.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch updated shift"})
	}
	return c.JSON(fiber.Map{"message": "Shift updated", "data": updated})
}

func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete shift"})
	}
	return c.JSON(fiber.Map{"message": "Shift deleted"})
}
