package handler

import (
	"strconv"

	"hrms-backend/internal/derive"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// LeaveNotifier is implemented by the mailer; nil disables notifications.
type LeaveNotifier interface {
	SendLeaveDecision(to, fullname, leaveType, startDate, endDate, status string)
}

type LeaveHandler struct {
	repo     repository.LeaveRepository
	notifier LeaveNotifier
}

func NewLeaveHandler(repo repository.LeaveRepository, notifier LeaveNotifier) *LeaveHandler {
	return &LeaveHandler{repo: repo, notifier: notifier}
}

func (h *LeaveHandler) GetAll(c *fiber.Ctx) error {
	leaves, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leaves"})
	}
	return c.JSON(fiber.Map{"data": leaves})
}

func (h *LeaveHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	leave, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave not found"})
	}
	return c.JSON(fiber.Map{"data": leave})
}

func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	var leave model.Leave
	if err := c.BodyParser(&leave); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(leave); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if leave.Duration == 0 {
		leave.Duration = derive.LeaveDuration(leave.StartDate, leave.EndDate)
	}
	if leave.Status == "" {
		leave.Status = "Pending"
	}

	if err := h.repo.Create(&leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create leave"})
	}
	return c.JSON(fiber.Map{"message": "Leave created", "data": leave})
}

func (h *LeaveHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Leave
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	leave, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave not found"})
	}

	leave.EmployeeID = req.EmployeeID
	leave.Type = req.Type
	leave.StartDate = req.StartDate
	leave.EndDate = req.EndDate
	leave.Duration = req.Duration
	if leave.Duration == 0 {
		leave.Duration = derive.LeaveDuration(leave.StartDate, leave.EndDate)
	}
	leave.Status = req.Status
	leave.ApprovedBy = req.ApprovedBy
	leave.Employee = nil

	if err := h.repo.Update(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update leave"})
	}
	return c.JSON(fiber.Map{"message": "Leave updated", "data": leave})
}

type LeaveStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

// UpdateStatus handles PATCH /api/leaves/:id/status. The approver is
// taken from the JWT claims, and the employee is notified by mail when
// a decision is made.
func (h *LeaveHandler) UpdateStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req LeaveStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	leave, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave not found"})
	}

	leave.Status = req.Status
	if approver, ok := c.Locals("email").(string); ok {
		leave.ApprovedBy = approver
	}

	if err := h.repo.Update(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update leave status"})
	}

	if h.notifier != nil && leave.Employee != nil && req.Status != "Pending" {
		// Notify in the background so the response stays fast
		go h.notifier.SendLeaveDecision(
			leave.Employee.Email, leave.Employee.Fullname,
			leave.Type, leave.StartDate, leave.EndDate, leave.Status,
		)
	}

	return c.JSON(fiber.Map{"message": "Leave status updated", "data": leave})
}

func (h *LeaveHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave not found"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete leave"})
	}
	return c.JSON(fiber.Map{"message": "Leave deleted"})
}
