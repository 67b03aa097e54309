package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type RecruitmentRepository interface {
	GetAll() ([]model.Recruitment, error)
	GetByID(id uint) (*model.Recruitment, error)
	Create(rec *model.Recruitment) error
	Update(rec *model.Recruitment) error
	Delete(id uint) error
	OpenPositions() (int64, error)
}

type recruitmentRepository struct {
	db *gorm.DB
}

func NewRecruitmentRepository(db *gorm.DB) RecruitmentRepository {
	return &recruitmentRepository{db}
}

func (r *recruitmentRepository) GetAll() ([]model.Recruitment, error) {
	var recs []model.Recruitment
	err := r.db.Preload("HiringManager").Find(&recs).Error
	return recs, err
}

func (r *recruitmentRepository) GetByID(id uint) (*model.Recruitment, error) {
	var rec model.Recruitment
	err := r.db.Preload("HiringManager").First(&rec, id).Error
	return &rec, err
}

func (r *recruitmentRepository) Create(rec *model.Recruitment) error {
	return r.db.Create(rec).Error
}

func (r *recruitmentRepository) Update(rec *model.Recruitment) error {
	return r.db.Save(rec).Error
}

func (r *recruitmentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Recruitment{}, id).Error
}

// OpenPositions sums the openings across published postings.
func (r *recruitmentRepository) OpenPositions() (int64, error) {
	var total int64
	err := r.db.Model(&model.Recruitment{}).Where("status = ?", "Published").
		Select("COALESCE(SUM(number_of_openings), 0)").Scan(&total).Error
	return total, err
}
