package config

import (
	"fmt"
	"log"
	"os"

	"studio/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func buildDSN() string {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslMode := os.Getenv("DB_SSLMODE")

	if port == "" {
		port = "5432"
	}
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Ho_Chi_Minh",
		host, user, password, name, port, sslMode)
}

func ConnectDB() {
	var err error

	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	log.Println("Successfully connected to db")
}

// MigrateDB tạo schema cho toàn bộ bảng của studio
func MigrateDB() {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Package{},
		&models.Partner{},
		&models.Project{},
		&models.Salary{},
		&models.MonthlySalary{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}
