package handler

import (
	"fmt"

	"hrms-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct {
	attendanceRepo repository.AttendanceRepository
}

func NewReportHandler(attendanceRepo repository.AttendanceRepository) *ReportHandler {
	return &ReportHandler{attendanceRepo: attendanceRepo}
}

// AttendanceReport writes a monthly attendance recap as an xlsx file.
// GET /api/reports/attendance?month=2006-01
func (h *ReportHandler) AttendanceReport(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month query parameter is required (format 2006-01)"})
	}

	atts, err := h.attendanceRepo.GetByMonth(month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Date", "Employee", "Shift", "Check In", "Check Out", "Worked Hours", "Status"})

	totalHours := 0.0
	for i, att := range atts {
		employee := ""
		if att.Employee != nil {
			employee = att.Employee.Fullname
		}
		shift := ""
		if att.Shift != nil {
			shift = att.Shift.Name
		}
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{
			att.Date, employee, shift, att.CheckIn, att.CheckOut, att.WorkedHours, att.Status,
		})
		totalHours += att.WorkedHours
	}

	totalCell := fmt.Sprintf("A%d", len(atts)+3)
	f.SetSheetRow(sheet, totalCell, &[]interface{}{"Total", "", "", "", "", totalHours, ""})

	filename := fmt.Sprintf("attendance-%s.xlsx", month)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return f.Write(c)
}
