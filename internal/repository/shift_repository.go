package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	GetAll() ([]model.Shift, error)
	GetByID(id uint) (*model.Shift, error)
	Create(shift *model.Shift) error
	Update(shift *model.Shift) error
	Delete(id uint) error
	ReplaceAssignments(shift *model.Shift, employees []model.Employee) error
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func (r *shiftRepository) GetAll() ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Preload("AssignedEmployees").Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByID(id uint) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.Preload("AssignedEmployees").First(&shift, id).Error
	return &shift, err
}

func (r *shiftRepository) Create(shift *model.Shift) error {
	return r.db.Create(shift).Error
}

func (r *shiftRepository) Update(shift *model.Shift) error {
	return r.db.Omit("AssignedEmployees").Save(shift).Error
}

func (r *shiftRepository) Delete(id uint) error {
	return r.db.Delete(&model.Shift{}, id).Error
}

func (r *shiftRepository) ReplaceAssignments(shift *model.Shift, employees []model.Employee) error {
	return r.db.Model(shift).Association("AssignedEmployees").Replace(employees)
}
