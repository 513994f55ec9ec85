package services

import (
	"fmt"
	"time"

	"studio/models"

	"gorm.io/gorm"
)

// Sinh mã tuần tự từ số dòng hiện có. Đếm rồi ghi không có khóa,
// tạo đồng thời có thể trùng mã (unique index sẽ chặn dòng sau).

// NextPackageID sinh mã gói dạng PKG00001
func NextPackageID(db *gorm.DB) (string, error) {
	var count int64
	if err := db.Model(&models.Package{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("PKG%05d", count+1), nil
}

// NextPartnerID sinh mã đối tác dạng PTN00001
func NextPartnerID(db *gorm.DB) (string, error) {
	var count int64
	if err := db.Model(&models.Partner{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("PTN%05d", count+1), nil
}

// NextProjectCode sinh mã dự án dạng PRJ + YYMM + 4 chữ số
func NextProjectCode(db *gorm.DB, now time.Time) (string, error) {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("PRJ%s%04d", now.Format("0601"), count+1), nil
}
