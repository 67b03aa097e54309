package model

import "gorm.io/gorm"

type Shift struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null" validate:"required"`
	StartTime string `json:"startTime" validate:"required"` // 15:04
	EndTime   string `json:"endTime" validate:"required"`

	AssignedEmployees []Employee `json:"assignedEmployees" gorm:"many2many:shift_employees"`
}

func (s Shift) RecordID() uint { return s.ID }
