package model

import "gorm.io/gorm"

type Training struct {
	gorm.Model
	Title            string `json:"title" gorm:"not null" validate:"required"`
	Trainer          string `json:"trainer"`
	StartDate        string `json:"startDate"` // 2006-01-02
	EndDate          string `json:"endDate"`
	CompletionStatus string `json:"completionStatus" gorm:"default:Not Started" validate:"omitempty,oneof='Not Started' 'In Progress' Completed"`

	Participants []Employee `json:"participants" gorm:"many2many:training_participants"`
}

func (t Training) RecordID() uint { return t.ID }
