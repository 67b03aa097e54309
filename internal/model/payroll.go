package model

import "gorm.io/gorm"

type Payroll struct {
	gorm.Model
	EmployeeID    uint    `json:"employeeId" validate:"required"`
	Month         string  `json:"month" validate:"required"` // 2006-01
	BasicSalary   float64 `json:"basicSalary" validate:"gte=0"`
	OvertimeHours float64 `json:"overtimeHours" validate:"gte=0"`
	OvertimeRate  float64 `json:"overtimeRate" validate:"gte=0"`
	Deduction     float64 `json:"deduction" validate:"gte=0"`
	NetPay        float64 `json:"netPay"` // server-computed: basic + overtime - deduction
	PaidStatus    string  `json:"paidStatus" gorm:"default:Pending" validate:"omitempty,oneof=Paid Pending Unpaid"`
	PaymentMethod string  `json:"paymentMethod"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

func (p Payroll) RecordID() uint { return p.ID }
