package model

import "gorm.io/gorm"

type Department struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null" validate:"required"`
	Status       string `json:"status" gorm:"default:Active"` // Active/Inactive
	Manager      string `json:"manager"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`

	Employees []Employee `json:"employees,omitempty"`
}

func (d Department) RecordID() uint { return d.ID }
