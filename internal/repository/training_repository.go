package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type TrainingRepository interface {
	GetAll() ([]model.Training, error)
	GetByID(id uint) (*model.Training, error)
	Create(training *model.Training) error
	Update(training *model.Training) error
	Delete(id uint) error
	ReplaceParticipants(training *model.Training, employees []model.Employee) error
}

type trainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &trainingRepository{db}
}

func (r *trainingRepository) GetAll() ([]model.Training, error) {
	var trainings []model.Training
	err := r.db.Preload("Participants").Find(&trainings).Error
	return trainings, err
}

func (r *trainingRepository) GetByID(id uint) (*model.Training, error) {
	var training model.Training
	err := r.db.Preload("Participants").First(&training, id).Error
	return &training, err
}

func (r *trainingRepository) Create(training *model.Training) error {
	return r.db.Create(training).Error
}

func (r *trainingRepository) Update(training *model.Training) error {
	return r.db.Omit("Participants").Save(training).Error
}

func (r *trainingRepository) Delete(id uint) error {
	return r.db.Delete(&model.Training{}, id).Error
}

func (r *trainingRepository) ReplaceParticipants(training *model.Training, employees []model.Employee) error {
	return r.db.Model(training).Association("Participants").Replace(employees)
}
