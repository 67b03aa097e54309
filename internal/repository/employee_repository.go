package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	GetAll() ([]model.Employee, error)
	GetByID(id uint) (*model.Employee, error)
	Create(emp *model.Employee) error
	Update(emp *model.Employee) error
	Delete(id uint) error
	CountByStatus(status string) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var emps []model.Employee
	err := r.db.Preload("Department").Find(&emps).Error
	return emps, err
}

func (r *employeeRepository) GetByID(id uint) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.Preload("Department").First(&emp, id).Error
	return &emp, err
}

func (r *employeeRepository) Create(emp *model.Employee) error {
	return r.db.Create(emp).Error
}

func (r *employeeRepository) Update(emp *model.Employee) error {
	return r.db.Save(emp).Error
}

func (r *employeeRepository) Delete(id uint) error {
	return r.db.Delete(&model.Employee{}, id).Error
}

func (r *employeeRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
