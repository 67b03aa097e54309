package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	GetAll() ([]model.Attendance, error)
	GetByID(id uint) (*model.Attendance, error)
	Create(att *model.Attendance) error
	Update(att *model.Attendance) error
	Delete(id uint) error
	GetByMonth(month string) ([]model.Attendance, error)
	CountByStatusOnDate(status, date string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) GetAll() ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.db.Preload("Employee").Preload("Shift").Find(&atts).Error
	return atts, err
}

func (r *attendanceRepository) GetByID(id uint) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.Preload("Employee").Preload("Shift").First(&att, id).Error
	return &att, err
}

func (r *attendanceRepository) Create(att *model.Attendance) error {
	return r.db.Create(att).Error
}

func (r *attendanceRepository) Update(att *model.Attendance) error {
	return r.db.Save(att).Error
}

func (r *attendanceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Attendance{}, id).Error
}

// GetByMonth returns the records whose date falls inside month ("2006-01"),
// ordered for the report sheet.
func (r *attendanceRepository) GetByMonth(month string) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.db.Preload("Employee").Preload("Shift").
		Where("date LIKE ?", month+"%").
		Order("date, employee_id").
		Find(&atts).Error
	return atts, err
}

func (r *attendanceRepository) CountByStatusOnDate(status, date string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attendance{}).
		Where("status = ? AND date = ?", status, date).
		Count(&count).Error
	return count, err
}
