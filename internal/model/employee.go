package model

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	Code         string  `json:"code" gorm:"unique"` // opaque badge code, assigned on create
	Fullname     string  `json:"fullname" gorm:"not null" validate:"required"`
	Email        string  `json:"email" gorm:"unique;not null" validate:"required,email"`
	DepartmentID *uint   `json:"departmentId"`
	Position     string  `json:"position"`
	Salary       float64 `json:"salary" validate:"gte=0"`
	ContractType string  `json:"contractType"` // Full-time/Part-time/Contract
	ShiftType    string  `json:"shiftType"`
	Status       string  `json:"status" gorm:"default:Active"` // Active/Inactive

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

func (e Employee) RecordID() uint { return e.ID }
