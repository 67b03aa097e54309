package model

import "gorm.io/gorm"

type Leave struct {
	gorm.Model
	EmployeeID uint   `json:"employeeId" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=Sick Vacation Unpaid Other"`
	StartDate  string `json:"startDate" validate:"required"` // 2006-01-02
	EndDate    string `json:"endDate" validate:"required"`
	Duration   int    `json:"duration"` // inclusive day count, derived when absent
	Status     string `json:"status" gorm:"default:Pending"` // Pending/Approved/Rejected
	ApprovedBy string `json:"approvedBy"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

func (l Leave) RecordID() uint { return l.ID }
