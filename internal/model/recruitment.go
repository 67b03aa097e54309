package model

import "gorm.io/gorm"

type Recruitment struct {
	gorm.Model
	Position            string   `json:"position" gorm:"not null" validate:"required"`
	Department          string   `json:"department"`
	JobType             string   `json:"jobType"` // Full-time/Part-time/Contract/Internship
	ExperienceLevel     string   `json:"experienceLevel"`
	SalaryMin           float64  `json:"salaryMin" validate:"gte=0"`
	SalaryMax           float64  `json:"salaryMax" validate:"gte=0"`
	Requirements        []string `json:"requirements" gorm:"serializer:json"`
	Responsibilities    []string `json:"responsibilities" gorm:"serializer:json"`
	Status              string   `json:"status" gorm:"default:Draft" validate:"omitempty,oneof=Draft Published OnHold Closed"`
	ApplicationDeadline string   `json:"applicationDeadline"` // 2006-01-02
	NumberOfOpenings    int      `json:"numberOfOpenings" validate:"gte=0"`
	HiringManagerID     *uint    `json:"hiringManagerId"`
	Tags                []string `json:"tags" gorm:"serializer:json"`
	IsRemote            bool     `json:"isRemote"`

	HiringManager *Employee `json:"hiringManager,omitempty" gorm:"foreignKey:HiringManagerID"`
}

func (r Recruitment) RecordID() uint { return r.ID }
