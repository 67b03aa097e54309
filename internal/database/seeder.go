package database

import (
	"hrms-backend/internal/model"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Admin account
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Name:     "Administrator",
		Email:    "admin@example.com",
		Password: string(hashedPassword),
		Role:     "Admin",
	}
	result := db.FirstOrCreate(&admin, model.User{Email: admin.Email})
	if result.Error == nil {
		// Keep the password in sync with "admin123" even if the user exists
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Info("admin account seeded")
	}

	// 2. Departments
	depts := []model.Department{
		{Name: "Engineering", Status: "Active", Manager: "Dana Lee", ContactEmail: "engineering@example.com"},
		{Name: "Human Resources", Status: "Active", Manager: "Sam Ortiz", ContactEmail: "hr@example.com"},
		{Name: "Finance", Status: "Active", Manager: "Alex Kim", ContactEmail: "finance@example.com"},
	}
	for i := range depts {
		db.FirstOrCreate(&depts[i], model.Department{Name: depts[i].Name})
	}

	// 3. Default shifts
	shifts := []model.Shift{
		{Name: "Morning", StartTime: "09:00", EndTime: "17:00"},
		{Name: "Night", StartTime: "22:00", EndTime: "06:00"},
	}
	for i := range shifts {
		db.FirstOrCreate(&shifts[i], model.Shift{Name: shifts[i].Name})
	}

	// 4. A couple of employees so list pages are not empty
	employees := []model.Employee{
		{Fullname: "Jordan Rivera", Email: "jordan.rivera@example.com", DepartmentID: &depts[0].ID,
			Position: "Software Engineer", Salary: 5000, ContractType: "Full-time", ShiftType: "Morning", Status: "Active"},
		{Fullname: "Priya Nair", Email: "priya.nair@example.com", DepartmentID: &depts[1].ID,
			Position: "HR Specialist", Salary: 4200, ContractType: "Full-time", ShiftType: "Morning", Status: "Active"},
	}
	for i := range employees {
		employees[i].Code = uuid.NewString()
		db.FirstOrCreate(&employees[i], model.Employee{Email: employees[i].Email})
	}

	log.Info("seeding finished")
}
