package config

import (
	"fmt"
	"hrms-backend/internal/model"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "hrms_db"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// Auto Migration: creates tables from the structs in internal/model
	db.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.Employee{},
		&model.Leave{},
		&model.Payroll{},
		&model.Recruitment{},
		&model.Shift{},
		&model.Attendance{},
		&model.Training{},
	)

	DB = db
}
