package handler

import (
	"strconv"

	"hrms-backend/internal/derive"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type PayrollHandler struct {
	repo repository.PayrollRepository
}

func NewPayrollHandler(repo repository.PayrollRepository) *PayrollHandler {
	return &PayrollHandler{repo: repo}
}

func (h *PayrollHandler) GetAll(c *fiber.Ctx) error {
	payrolls, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payrolls"})
	}
	return c.JSON(fiber.Map{"data": payrolls})
}

func (h *PayrollHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payroll, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll not found"})
	}
	return c.JSON(fiber.Map{"data": payroll})
}

func (h *PayrollHandler) Create(c *fiber.Ctx) error {
	var payroll model.Payroll
	if err := c.BodyParser(&payroll); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payroll); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Net pay is authoritative here, whatever the client previewed
	payroll.NetPay = derive.NetPay(payroll.BasicSalary, payroll.OvertimeHours, payroll.OvertimeRate, payroll.Deduction)
	if payroll.PaidStatus == "" {
		payroll.PaidStatus = "Pending"
	}

	if err := h.repo.Create(&payroll); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payroll"})
	}
	return c.JSON(fiber.Map{"message": "Payroll created", "data": payroll})
}

func (h *PayrollHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Payroll
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payroll, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll not found"})
	}

	payroll.EmployeeID = req.EmployeeID
	payroll.Month = req.Month
	payroll.BasicSalary = req.BasicSalary
	payroll.OvertimeHours = req.OvertimeHours
	payroll.OvertimeRate = req.OvertimeRate
	payroll.Deduction = req.Deduction
	payroll.NetPay = derive.NetPay(req.BasicSalary, req.OvertimeHours, req.OvertimeRate, req.Deduction)
	payroll.PaidStatus = req.PaidStatus
	payroll.PaymentMethod = req.PaymentMethod
	payroll.Employee = nil

	if err := h.repo.Update(payroll); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payroll"})
	}
	return c.JSON(fiber.Map{"message": "Payroll updated", "data": payroll})
}

func (h *PayrollHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll not found"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payroll"})
	}
	return c.JSON(fiber.Map{"message": "Payroll deleted"})
}
