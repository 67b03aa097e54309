package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type PayrollRepository interface {
	GetAll() ([]model.Payroll, error)
	GetByID(id uint) (*model.Payroll, error)
	Create(payroll *model.Payroll) error
	Update(payroll *model.Payroll) error
	Delete(id uint) error
	TotalNetPayForMonth(month string) (float64, error)
}

type payrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db}
}

func (r *payrollRepository) GetAll() ([]model.Payroll, error) {
	var payrolls []model.Payroll
	err := r.db.Preload("Employee").Find(&payrolls).Error
	return payrolls, err
}

func (r *payrollRepository) GetByID(id uint) (*model.Payroll, error) {
	var payroll model.Payroll
	err := r.db.Preload("Employee").First(&payroll, id).Error
	return &payroll, err
}

func (r *payrollRepository) Create(payroll *model.Payroll) error {
	return r.db.Create(payroll).Error
}

func (r *payrollRepository) Update(payroll *model.Payroll) error {
	return r.db.Save(payroll).Error
}

func (r *payrollRepository) Delete(id uint) error {
	return r.db.Delete(&model.Payroll{}, id).Error
}

func (r *payrollRepository) TotalNetPayForMonth(month string) (float64, error) {
	var total float64
	err := r.db.Model(&model.Payroll{}).Where("month = ?", month).
		Select("COALESCE(SUM(net_pay), 0)").Scan(&total).Error
	return total, err
}
