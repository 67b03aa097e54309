package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	GetAll() ([]model.Leave, error)
	GetByID(id uint) (*model.Leave, error)
	Create(leave *model.Leave) error
	Update(leave *model.Leave) error
	Delete(id uint) error
	CountByStatus(status string) (int64, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) GetAll() ([]model.Leave, error) {
	var leaves []model.Leave
	err := r.db.Preload("Employee").Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) GetByID(id uint) (*model.Leave, error) {
	var leave model.Leave
	err := r.db.Preload("Employee").First(&leave, id).Error
	return &leave, err
}

func (r *leaveRepository) Create(leave *model.Leave) error {
	return r.db.Create(leave).Error
}

func (r *leaveRepository) Update(leave *model.Leave) error {
	return r.db.Save(leave).Error
}

func (r *leaveRepository) Delete(id uint) error {
	return r.db.Delete(&model.Leave{}, id).Error
}

func (r *leaveRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Leave{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
