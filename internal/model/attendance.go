package model

import "gorm.io/gorm"

type Attendance struct {
	gorm.Model
	EmployeeID  uint    `json:"employeeId" validate:"required"`
	ShiftID     *uint   `json:"shiftId"`
	Date        string  `json:"date" validate:"required"` // 2006-01-02
	CheckIn     string  `json:"checkIn"`                  // 15:04
	CheckOut    string  `json:"checkOut"`
	WorkedHours float64 `json:"workedHours"` // derived from checkIn/checkOut
	Status      string  `json:"status" validate:"omitempty,oneof=Present Absent Late Half-day"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Shift    *Shift    `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
}

func (a Attendance) RecordID() uint { return a.ID }
