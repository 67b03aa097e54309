package handler

import (
	"strconv"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	emps, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employees"})
	}
	return c.JSON(fiber.Map{"data": emps})
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	emp, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.JSON(fiber.Map{"data": emp})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var emp model.Employee
	if err := c.BodyParser(&emp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(emp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Badge code is assigned here, never by the client
	emp.Code = uuid.NewString()
	if emp.Status == "" {
		emp.Status = "Active"
	}

	if err := h.repo.Create(&emp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create employee"})
	}
	return c.JSON(fiber.Map{"message": "Employee created", "data": emp})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Employee
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	emp, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	emp.Fullname = req.Fullname
	emp.Email = req.Email
	emp.DepartmentID = req.DepartmentID
	emp.Position = req.Position
	emp.Salary = req.Salary
	emp.ContractType = req.ContractType
	emp.ShiftType = req.ShiftType
	emp.Status = req.Status
	emp.Department = nil // refetched via Preload, never persisted denormalized

	if err := h.repo.Update(emp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update employee"})
	}
	return c.JSON(fiber.Map{"message": "Employee updated", "data": emp})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete employee"})
	}
	return c.JSON(fiber.Map{"message": "Employee deleted"})
}
