package repository

import (
	"testing"

	"hrms-backend/internal/model"
)

type stubEmployeeRepo struct {
	activeCount int64
	gotStatus   string
}

func (s *stubEmployeeRepo) GetAll() ([]model.Employee, error) { return nil, nil }
func (s *stubEmployeeRepo) GetByID(id uint) (*model.Employee, error) { return nil, nil }
func (s *stubEmployeeRepo) Create(emp *model.Employee) error { return nil }
func (s *stubEmployeeRepo) Update(emp *model.Employee) error { return nil }
func (s *stubEmployeeRepo) Delete(id uint) error { return nil }
func (s *stubEmployeeRepo) CountByStatus(status string) (int64, error) {
	s.gotStatus = status
	return s.activeCount, nil
}

type stubDepartmentRepo struct {
	activeCount int64
}

func (s *stubDepartmentRepo) GetAll() ([]model.Department, error) { return nil, nil }
func (s *stubDepartmentRepo) GetByID(id uint) (*model.Department, error) { return nil, nil }
func (s *stubDepartmentRepo) Create(dept *model.Department) error { return nil }
func (s *stubDepartmentRepo) Update(dept *model.Department) error { return nil }
func (s *stubDepartmentRepo) Delete(id uint) error { return nil }
func (s *stubDepartmentRepo) CountByStatus(status string) (int64, error) {
	return s.activeCount, nil
}

type stubLeaveRepo struct {
	byStatus map[string]int64
}

func (s *stubLeaveRepo) GetAll() ([]model.Leave, error) { return nil, nil }
func (s *stubLeaveRepo) GetByID(id uint) (*model.Leave, error) { return nil, nil }
func (s *stubLeaveRepo) Create(leave *model.Leave) error { return nil }
func (s *stubLeaveRepo) Update(leave *model.Leave) error { return nil }
func (s *stubLeaveRepo) Delete(id uint) error { return nil }
func (s *stubLeaveRepo) CountByStatus(status string) (int64, error) {
	return s.byStatus[status], nil
}

type stubAttendanceRepo struct {
	byStatus map[string]int64
	gotDate  string
}

func (s *stubAttendanceRepo) GetAll() ([]model.Attendance, error) { return nil, nil }
func (s *stubAttendanceRepo) GetByID(id uint) (*model.Attendance, error) { return nil, nil }
func (s *stubAttendanceRepo) Create(att *model.Attendance) error { return nil }
func (s *stubAttendanceRepo) Update(att *model.Attendance) error { return nil }
func (s *stubAttendanceRepo) Delete(id uint) error { return nil }
func (s *stubAttendanceRepo) GetByMonth(month string) ([]model.Attendance, error) { return nil, nil }
func (s *stubAttendanceRepo) CountByStatusOnDate(status, date string) (int64, error) {
	s.gotDate = date
	return s.byStatus[status], nil
}

type stubPayrollRepo struct {
	total    float64
	gotMonth string
}

func (s *stubPayrollRepo) GetAll() ([]model.Payroll, error) { return nil, nil }
func (s *stubPayrollRepo) GetByID(id uint) (*model.Payroll, error) { return nil, nil }
func (s *stubPayrollRepo) Create(payroll *model.Payroll) error { return nil }
func (s *stubPayrollRepo) Update(payroll *model.Payroll) error { return nil }
func (s *stubPayrollRepo) Delete(id uint) error { return nil }
func (s *stubPayrollRepo) TotalNetPayForMonth(month string) (float64, error) {
	s.gotMonth = month
	return s.total, nil
}

type stubRecruitmentRepo struct {
	open int64
}

func (s *stubRecruitmentRepo) GetAll() ([]model.Recruitment, error) { return nil, nil }
func (s *stubRecruitmentRepo) GetByID(id uint) (*model.Recruitment, error) { return nil, nil }
func (s *stubRecruitmentRepo) Create(rec *model.Recruitment) error { return nil }
func (s *stubRecruitmentRepo) Update(rec *model.Recruitment) error { return nil }
func (s *stubRecruitmentRepo) Delete(id uint) error { return nil }
func (s *stubRecruitmentRepo) OpenPositions() (int64, error) { return s.open, nil }

func TestDashboardStats_AggregatesEntityRepositories(t *testing.T) {
	employees := &stubEmployeeRepo{activeCount: 12}
	departments := &stubDepartmentRepo{activeCount: 3}
	leaves := &stubLeaveRepo{byStatus: map[string]int64{"Pending": 2, "Approved": 5, "Rejected": 1}}
	attendances := &stubAttendanceRepo{byStatus: map[string]int64{"Present": 9, "Late": 2, "Absent": 1}}
	payrolls := &stubPayrollRepo{total: 48200.50}
	recruitments := &stubRecruitmentRepo{open: 4}

	repo := NewDashboardRepositoryFrom(employees, departments, leaves, attendances, payrolls, recruitments)
	stats, err := repo.GetDashboardStats("2024-03-15", "2024-03")
	if err != nil {
		t.Fatalf("GetDashboardStats failed: %v", err)
	}

	if employees.gotStatus != "Active" {
		t.Errorf("headcount should count Active employees, counted %q", employees.gotStatus)
	}
	if stats["totalEmployees"].(int64) != 12 {
		t.Errorf("expected 12 employees, got %v", stats["totalEmployees"])
	}
	if stats["totalDepartments"].(int64) != 3 {
		t.Errorf("expected 3 departments, got %v", stats["totalDepartments"])
	}

	leaveMap := stats["leaves"].(map[string]int64)
	if leaveMap["Pending"] != 2 || leaveMap["Approved"] != 5 || leaveMap["Rejected"] != 1 {
		t.Errorf("leave pipeline mismatch: %v", leaveMap)
	}

	attMap := stats["attendanceToday"].(map[string]int64)
	if attMap["Present"] != 9 || attMap["Late"] != 2 || attMap["Absent"] != 1 || attMap["Half-day"] != 0 {
		t.Errorf("attendance counts mismatch: %v", attMap)
	}
	if attendances.gotDate != "2024-03-15" {
		t.Errorf("attendance counts should use the requested date, used %q", attendances.gotDate)
	}

	if stats["netPayThisMonth"].(float64) != 48200.50 {
		t.Errorf("expected month net pay 48200.50, got %v", stats["netPayThisMonth"])
	}
	if payrolls.gotMonth != "2024-03" {
		t.Errorf("payroll total should use the requested month, used %q", payrolls.gotMonth)
	}
	if stats["openPositions"].(int64) != 4 {
		t.Errorf("expected 4 open positions, got %v", stats["openPositions"])
	}
}
