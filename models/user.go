package models

import "time"

// Role người dùng hệ thống
const (
	UserRoleStaff   = 0
	UserRoleAdmin   = 1
	UserRoleManager = 2
)

// User tài khoản đăng nhập hệ thống quản lý
type User struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name"`
	Email      string     `json:"email" gorm:"unique;not null"`
	Password   string     `json:"-" gorm:"not null"`
	Role       int        `json:"role" gorm:"default:0"`
	IsActive   bool       `json:"is_active" gorm:"default:true"`
	EmployeeID *uint      `json:"employee_id,omitempty"`
	Employee   *Employee  `json:"-" gorm:"foreignKey:EmployeeID"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
