package repository

import (
	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetDashboardStats(date, month string) (map[string]interface{}, error)
}

// dashboardRepository aggregates the per-entity repositories; it owns
// no queries of its own.
type dashboardRepository struct {
	employees    EmployeeRepository
	departments  DepartmentRepository
	leaves       LeaveRepository
	attendances  AttendanceRepository
	payrolls     PayrollRepository
	recruitments RecruitmentRepository
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return NewDashboardRepositoryFrom(
		NewEmployeeRepository(db),
		NewDepartmentRepository(db),
		NewLeaveRepository(db),
		NewAttendanceRepository(db),
		NewPayrollRepository(db),
		NewRecruitmentRepository(db),
	)
}

// NewDashboardRepositoryFrom assembles the dashboard from already
// constructed entity repositories.
func NewDashboardRepositoryFrom(
	employees EmployeeRepository,
	departments DepartmentRepository,
	leaves LeaveRepository,
	attendances AttendanceRepository,
	payrolls PayrollRepository,
	recruitments RecruitmentRepository,
) DashboardRepository {
	return &dashboardRepository{
		employees:    employees,
		departments:  departments,
		leaves:       leaves,
		attendances:  attendances,
		payrolls:     payrolls,
		recruitments: recruitments,
	}
}

func (r *dashboardRepository) GetDashboardStats(date, month string) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	totalEmployees, err := r.employees.CountByStatus("Active")
	if err != nil {
		return nil, err
	}
	stats["totalEmployees"] = totalEmployees

	totalDepartments, err := r.departments.CountByStatus("Active")
	if err != nil {
		return nil, err
	}
	stats["totalDepartments"] = totalDepartments

	leaveMap := make(map[string]int64)
	for _, status := range []string{"Pending", "Approved", "Rejected"} {
		count, err := r.leaves.CountByStatus(status)
		if err != nil {
			return nil, err
		}
		leaveMap[status] = count
	}
	stats["leaves"] = leaveMap

	attMap := make(map[string]int64)
	for _, status := range []string{"Present", "Absent", "Late", "Half-day"} {
		count, err := r.attendances.CountByStatusOnDate(status, date)
		if err != nil {
			return nil, err
		}
		attMap[status] = count
	}
	stats["attendanceToday"] = attMap

	netPayThisMonth, err := r.payrolls.TotalNetPayForMonth(month)
	if err != nil {
		return nil, err
	}
	stats["netPayThisMonth"] = netPayThisMonth

	openPositions, err := r.recruitments.OpenPositions()
	if err != nil {
		return nil, err
	}
	stats["openPositions"] = openPositions

	return stats, nil
}
