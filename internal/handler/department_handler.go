package handler

import (
	"strconv"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DepartmentHandler struct {
	repo repository.DepartmentRepository
}

func NewDepartmentHandler(repo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

func (h *DepartmentHandler) GetAll(c *fiber.Ctx) error {
	depts, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch departments"})
	}
	return c.JSON(fiber.Map{"data": depts})
}

func (h *DepartmentHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	dept, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}
	return c.JSON(fiber.Map{"data": dept})
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var dept model.Department
	if err := c.BodyParser(&dept); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(dept); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if dept.Status == "" {
		dept.Status = "Active"
	}

	if err := h.repo.Create(&dept); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create department"})
	}
	return c.JSON(fiber.Map{"message": "Department created", "data": dept})
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Department
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dept, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	dept.Name = req.Name
	dept.Status = req.Status
	dept.Manager = req.Manager
	dept.ContactEmail = req.ContactEmail
	dept.ContactPhone = req.ContactPhone

	if err := h.repo.Update(dept); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update department"})
	}
	return c.JSON(fiber.Map{"message": "Department updated", "data": dept})
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete department"})
	}
	return c.JSON(fiber.Map{"message": "Department deleted"})
}
