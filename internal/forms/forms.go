// Package forms turns string edit buffers into submission payloads: it
// enforces required-field presence, coerces strings to their domain
// types, drops blank repeated-field lines and fills in derived values
// the user left empty. One Shape/Seed pair per entity.
package forms

import (
	"fmt"
	"strconv"
	"strings"

	"hrms-backend/internal/derive"
	"hrms-backend/internal/model"
)

func requireFields(buffer map[string]string, fields ...string) error {
	for _, field := range fields {
		if strings.TrimSpace(buffer[field]) == "" {
			return fmt.Errorf("%s is required", field)
		}
	}
	return nil
}

func parseFloat(buffer map[string]string, field string) (float64, error) {
	raw := strings.TrimSpace(buffer[field])
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	return value, nil
}

func parseInt(buffer map[string]string, field string) (int, error) {
	raw := strings.TrimSpace(buffer[field])
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", field)
	}
	return value, nil
}

func parseUintRef(buffer map[string]string, field string) (*uint, error) {
	raw := strings.TrimSpace(buffer[field])
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%s must be an identifier", field)
	}
	id := uint(value)
	return &id, nil
}

func parseUint(buffer map[string]string, field string) (uint, error) {
	ref, err := parseUintRef(buffer, field)
	if err != nil || ref == nil {
		return 0, err
	}
	return *ref, nil
}

// splitLines breaks a multiline buffer field into entries, dropping the
// blank rows optional form lines leave behind.
func splitLines(raw string) []string {
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

func splitIDs(raw string) ([]uint, error) {
	out := []uint{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid identifier %q", part)
		}
		out = append(out, uint(value))
	}
	return out, nil
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

// ── Department ──

func ShapeDepartment(buffer map[string]string) (any, error) {
	if err := requireFields(buffer, "name"); err != nil {
		return nil, err
	}
	return model.Department{
		Name:         strings.TrimSpace(buffer["name"]),
		Status:       buffer["status"],
		Manager:      buffer["manager"],
		ContactEmail: buffer["contactEmail"],
		ContactPhone: buffer["contactPhone"],
	}, nil
}

func SeedDepartment(d model.Department) map[string]string {
	return map[string]string{
		"name":         d.Name,
		"status":       d.Status,
		"manager":      d.Manager,
		"contactEmail": d.ContactEmail,
		"contactPhone": d.ContactPhone,
	}
}

// ── Employee ──

func ShapeEmployee(buffer map[string]string) (any, error) {
	if err := requireFields(buffer, "fullname", "email"); err != nil {
		return nil, err
	}
	salary, err := parseFloat(buffer, "salary")
	if err != nil {
		return nil, err
	}
	departmentID, err := parseUintRef(buffer, "departmentId")
	if err != nil {
		return nil, err
	}
	return model.Employee{
		Fullname:     strings.TrimSpace(buffer["fullname"]),
		Email:        strings.TrimSpace(buffer["email"]),
		DepartmentID: departmentID,
		Position:     buffer["position"],
		Salary:       salary,
		ContractType: buffer["contractType"],
		ShiftType:    buffer["shiftType"],
		Status:       buffer["status"],
	}, nil
}

// SeedEmployee reduces the embedded department to its identifier, with
// a fallback to the bare reference when the expansion is absent.
func SeedEmployee(e model.Employee) map[string]string {
	departmentID := ""
	if e.Department != nil {
		departmentID = strconv.FormatUint(uint64(e.Department.ID), 10)
	} else if e.DepartmentID != nil {
		departmentID = strconv.FormatUint(uint64(*e.DepartmentID), 10)
	}
	return map[string]string{
		"fullname":     e.Fullname,
		"email":        e.Email,
		"departmentId": departmentID,
		"position":     e.Position,
		"salary":       strconv.FormatFloat(e.Salary, 'f', -1, 64),
		"contractType": e.ContractType,
		"shiftType":    e.ShiftType,
		"status":       e.Status,
	}
}

// ── Leave ──

func ShapeLeave(buffer map[string]string) (any, error) {
	if err := requireFields(buffer, "employeeId", "type", "startDate", "endDate"); err != nil {
		return nil, err
	}
	employeeID, err := parseUint(buffer, "employeeId")
	if err != nil {
		return nil, err
	}
	duration, err := parseInt(buffer, "duration")
	if err != nil {
		return nil, err
	}
	if duration == 0 {
		duration = derive.LeaveDuration(buffer["startDate"], buffer["endDate"])
	}
	return model.Leave{
		EmployeeID: employeeID,
		Type:       buffer["type"],
		StartDate:  buffer["startDate"],
		EndDate:    buffer["endDate"],
		Duration:   duration,
		Status:     buffer["status"],
		ApprovedBy: buffer["approvedBy"],
	}, nil
}

func SeedLeave(l model.Leave) map[string]string {
	employeeID := strconv.FormatUint(uint64(l.EmployeeID), 10)
	if l.Employee != nil {
		employeeID = strconv.FormatUint(uint64(l.Employee.ID), 10)
	}
	return map[string]string{
		"employeeId": employeeID,
		"type":       l.Type,
		"startDate":  l.StartDate,
		"endDate":    l.EndDate,
		"duration":   strconv.Itoa(l.Duration),
		"status":     l.Status,
		"approvedBy": l.ApprovedBy,
	}
}

// ── Payroll ──

func ShapePayroll(buffer map[string]string) (any, error) {
	if err := requireFields(buffer, "employeeId", "month"); err != nil {
		return nil, err
	}
	employeeID, err := parseUint(buffer, "employeeId")
	if err != nil {
		return nil, err
	}
	basicSalary, err := parseFloat(buffer, "basicSalary")
	if err != nil {
		return nil, err
	}
	overtimeHours, err := parseFloat(buffer, "overtimeHours")
	if err != nil {
		return nil, err
	}
	overtimeRate, err := parseFloat(buffer, "overtimeRate")
	if err != nil {
		return nil, err
	}
	deduction, err := parseFloat(buffer, "deduction")
	if err != nil {
		return nil, err
	}
	return model.Payroll{
		EmployeeID:    employeeID,
		Month:         buffer["month"],
		BasicSalary:   basicSalary,
		OvertimeHours: overtimeHours,
		OvertimeRate:  overtimeRate,
		Deduction:     deduction,
		// NetPay preview only; the server recomputes the canonical value
		NetPay:        derive.NetPay(basicSalary, overtimeHours, overtimeRate, deduction),
		PaidStatus:    buffer["paidStatus"],
		PaymentMethod: buffer["paymentMethod"],
	}, nil
}

func SeedPayroll(p model.Payroll) map[string]string {
	employeeID := strconv.FormatUint(uint64(p.EmployeeID), 10)
	if p.Employee != nil {
		employeeID = strconv.FormatUint(uint64(p.Employee.ID), 10)
	}
	return map[string]string{
		"employeeId":    employeeID,
		"month":         p.Month,
		"basicSalary":   strconv.FormatFloat(p.BasicSalary, 'f', -1, 64),
		"overtimeHours": strconv.FormatFloat(p.OvertimeHours, 'f', -1, 64),
		"overtimeRate":  strconv.FormatFloat(p.OvertimeRate, 'f', -1, 64),
		"deduction":     strconv.FormatFloat(p.Deduction, 'f', -1, 64),
		"paidStatus":    p.PaidStatus,
		"paymentMethod": p.PaymentMethod,
	}
}

// ── Recruitment ──

func ShapeRecruitment(buffer map[string]string) (any, error) {
	if err := requireFields(buffer, "position"); err != nil {
		return nil, err
	}
	salaryMin, err := parseFloat(buffer, "salaryMin")
	if err != nil {
		return nil, err
	}
	salaryMax, err := parseFloat(buffer, "salaryMax")
	if err != nil {
		return nil, err
	}
	openings, err := parseInt(buffer, "numberOfOpenings")
	if err != nil {
		return nil, err
	}
	hiringManagerID, err := parseUintRef(buffer, "hiringManagerId")
	if err != nil {
		return nil, err
	}
	return model.Recruitment{
		Position:            strings.TrimSpace(buffer["position"]),
		Department:          buffer["department"],
		JobType:             buffer["jobType"],
		ExperienceLevel:     buffer["experienceLevel"],
		SalaryMin:           salaryMin,
		SalaryMax:           salaryMax,
		Requirements:        splitLines(buffer["requirements"]),
		Responsibilities:    splitLines(buffer["responsibilities"]),
		Status:              buffer["status"],
		ApplicationDeadline: buffer["applicationDeadline"],
		NumberOfOpenings:    openings,
		HiringManagerID:     hiringManagerID,
		Tags:                splitLines(buffer["tags"]),
		IsRemote:            buffer["isRemote"] == "true",
	}, nil
}

func SeedRecruitment(r model.Recruitment) map[string]string {
	hiringManagerID := ""
	if r.HiringManager != nil {
		hiringManagerID = strconv.FormatUint(uint64(r.HiringManager.ID), 10)
	} else if r.HiringManagerID != nil {
		hiringManagerID = strconv.FormatUint(uint64(*r.HiringManagerID), 10)
	}
	return map[string]string{
		"position":            r.Position,
		"department":          r.Department,
		"jobType":             r.JobType,
		"experienceLevel":     r.ExperienceLevel,
		"salaryMin":           strconv.FormatFloat(r.SalaryMin, 'f', -1, 64),
		"salaryMax":           strconv.FormatFloat(r.SalaryMax, 'f', -1, 64),
		"requirements":        strings.Join(r.Requirements, "\n"),
		"responsibilities":    strings.Join(r.Responsibilities, "\n"),
		"status":              r.Status,
		"applicationDeadline": r.ApplicationDeadline,
		"numberOfOpenings":    strconv.Itoa(r.NumberOfOpenings),
		"hiringManagerId":     hiringManagerID,
		"tags":                strings.Join(r.Tags, "\n"),
		"isRemote":            strconv.FormatBool(r.IsRemote),
	}
}

// ── Shift ──

// ShiftPayload mirrors the handler's request shape: assignments travel
// as identifiers, not embedded employees.
type ShiftPayload struct {
	Name                string `json:"name"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	AssignedEmployeeIDs []uint `json:"assignedEmployeeIds"`
}

func ShapeShift(buffer map[string]string) (any, error) {
	if err := requireFields(buffer, "name", "startTime", "endTime"); err != nil {
		return nil, err
	}
	ids, err := splitIDs(buffer["assignedEmployeeIds"])
	if err != nil {
		return nil, err
	}
	return ShiftPayload{
		Name:                strings.TrimSpace(buffer["name"]),
		StartTime:           buffer["startTime"],
		EndTime:             buffer["endTime"],
		AssignedEmployeeIDs: ids,
	}, nil
}

func SeedShift(s model.Shift) map[string]string {
	ids := make([]uint, len(s.AssignedEmployees))
	for i, emp := range s.AssignedEmployees {
		ids[i] = emp.ID
	}
	return map[string]string{
		"name":                s.Name,
		"startTime":           s.StartTime,
		"endTime":             s.EndTime,
		"assignedEmployeeIds": joinIDs(ids),
	}
}

// ── Attendance ──

func ShapeAttendance(buffer map[string]string) (any, error) {
	if err := requireFields(buffer, "employeeId", "date"); err != nil {
		return nil, err
	}
	employeeID, err := parseUint(buffer, "employeeId")
	if err != nil {
		return nil, err
	}
	shiftID, err := parseUintRef(buffer, "shiftId")
	if err != nil {
		return nil, err
	}
	return model.Attendance{
		EmployeeID: employeeID,
		ShiftID:    shiftID,
		Date:       buffer["date"],
		CheckIn:    buffer["checkIn"],
		CheckOut:   buffer["checkOut"],
		// Preview only; the server recomputes from checkIn/checkOut
		WorkedHours: derive.WorkedHours(buffer["checkIn"], buffer["checkOut"]),
		Status:      buffer["status"],
	}, nil
}

func SeedAttendance(a model.Attendance) map[string]string {
	employeeID := strconv.FormatUint(uint64(a.EmployeeID), 10)
	if a.Employee != nil {
		employeeID = strconv.FormatUint(uint64(a.Employee.ID), 10)
	}
	shiftID := ""
	if a.Shift != nil {
		shiftID = strconv.FormatUint(uint64(a.Shift.ID), 10)
	} else if a.ShiftID != nil {
		shiftID = strconv.FormatUint(uint64(*a.ShiftID), 10)
	}
	return map[string]string{
		"employeeId": employeeID,
		"shiftId":    shiftID,
		"date":       a.Date,
		"checkIn":    a.CheckIn,
		"checkOut":   a.CheckOut,
		"status":     a.Status,
	}
}

// ── Training ──

type TrainingPayload struct {
	Title            string `json:"title"`
	Trainer          string `json:"trainer"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	CompletionStatus string `json:"completionStatus"`
	ParticipantIDs   []uint `json:"participantIds"`
}

func ShapeTraining(buffer map[string]string) (any, error) {
	if err := requireFields(buffer, "title"); err != nil {
		return nil, err
	}
	ids, err := splitIDs(buffer["participantIds"])
	if err != nil {
		return nil, err
	}
	return TrainingPayload{
		Title:            strings.TrimSpace(buffer["title"]),
		Trainer:          buffer["trainer"],
		StartDate:        buffer["startDate"],
		EndDate:          buffer["endDate"],
		CompletionStatus: buffer["completionStatus"],
		ParticipantIDs:   ids,
	}, nil
}

func SeedTraining(t model.Training) map[string]string {
	ids := make([]uint, len(t.Participants))
	for i, emp := range t.Participants {
		ids[i] = emp.ID
	}
	return map[string]string{
		"title":            t.Title,
		"trainer":          t.Trainer,
		"startDate":        t.StartDate,
		"endDate":          t.EndDate,
		"completionStatus": t.CompletionStatus,
		"participantIds":   joinIDs(ids),
	}
}
