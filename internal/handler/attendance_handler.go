package handler

import (
	"strconv"

	"hrms-backend/internal/derive"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	repo      repository.AttendanceRepository
	shiftRepo repository.ShiftRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository, shiftRepo repository.ShiftRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, shiftRepo: shiftRepo}
}

// fillDerived computes worked hours and status when the client did not
// supply them. The shift start time is only needed for Late detection.
func (h *AttendanceHandler) fillDerived(att *model.Attendance) {
	att.WorkedHours = derive.WorkedHours(att.CheckIn, att.CheckOut)

	shiftStart := ""
	if att.ShiftID != nil {
		if shift, err := h.shiftRepo.GetByID(*att.ShiftID); err == nil {
			shiftStart = shift.StartTime
		}
	}
	att.Status = derive.AttendanceStatus(att.Status, att.CheckIn, shiftStart)
}

func (h *AttendanceHandler) GetAll(c *fiber.Ctx) error {
	atts, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}
	return c.JSON(fiber.Map{"data": atts})
}

func (h *AttendanceHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	att, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	return c.JSON(fiber.Map{"data": att})
}

func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var att model.Attendance
	if err := c.BodyParser(&att); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(att); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.fillDerived(&att)

	if err := h.repo.Create(&att); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create attendance record"})
	}
	return c.JSON(fiber.Map{"message": "Attendance recorded", "data": att})
}

func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Attendance
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	att, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}

	att.EmployeeID = req.EmployeeID
	att.ShiftID = req.ShiftID
	att.Date = req.Date
	att.CheckIn = req.CheckIn
	att.CheckOut = req.CheckOut
	att.Status = req.Status
	att.Employee = nil
	att.Shift = nil
	h.fillDerived(att)

	if err := h.repo.Update(att); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update attendance record"})
	}
	return c.JSON(fiber.Map{"message": "Attendance updated", "data": att})
}

func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete attendance record"})
	}
	return c.JSON(fiber.Map{"message": "Attendance deleted"})
}
