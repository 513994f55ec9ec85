package services

import (
	"testing"
	"time"

	"studio/constants"
	"studio/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB mở sqlite in-memory và migrate toàn bộ schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("mở sqlite in-memory: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Package{},
		&models.Partner{},
		&models.Project{},
		&models.Salary{},
		&models.MonthlySalary{},
	); err != nil {
		t.Fatalf("migrate schema test: %v", err)
	}

	return db
}

func createTestEmployee(t *testing.T, db *gorm.DB, name string, active bool) *models.Employee {
	t.Helper()

	employee := models.Employee{
		Name:       name,
		Role:       "Photo/Retouch",
		IsActive:   active,
		BaseSalary: 10000000,
	}
	employee.SetDefaultRates()

	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("tạo nhân viên test: %v", err)
	}
	return &employee
}

func createTestPackage(t *testing.T, db *gorm.DB, name string, price float64) *models.Package {
	t.Helper()

	id, err := NextPackageID(db)
	if err != nil {
		t.Fatalf("sinh mã gói test: %v", err)
	}

	pkg := models.Package{
		PackageID: id,
		Name:      name,
		Category:  "wedding",
		Price:     price,
		IsActive:  true,
	}
	if err := db.Create(&pkg).Error; err != nil {
		t.Fatalf("tạo gói test: %v", err)
	}
	return &pkg
}

// createTestProject chèn thẳng một dự án, bỏ qua service
func createTestProject(t *testing.T, db *gorm.DB, code string, shootDate time.Time, status string, finalPrice float64) *models.Project {
	t.Helper()

	project := models.Project{
		ProjectCode:       code,
		CustomerName:      "Khách " + code,
		CustomerPhone:     "0900000000",
		PackageName:       "Gói test",
		PackagePrice:      finalPrice,
		PackageFinalPrice: finalPrice,
		ShootDate:         shootDate,
		Status:            status,
		Payment: models.Payment{
			Status:         constants.PaymentStatusUnpaid,
			PaymentHistory: []models.PaymentHistoryItem{},
		},
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("tạo dự án test: %v", err)
	}
	return &project
}
