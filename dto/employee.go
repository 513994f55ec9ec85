package dto

import "studio/models"

// EmployeeCreateRequest dữ liệu tạo nhân viên
type EmployeeCreateRequest struct {
	Name             string                   `json:"name" binding:"required"`
	Role             string                   `json:"role" binding:"required"`
	Skills           []string                 `json:"skills"`
	Phone            string                   `json:"phone"`
	Email            string                   `json:"email"`
	Address          string                   `json:"address"`
	BankAccount      *models.BankAccount      `json:"bank_account"`
	EmergencyContact *models.EmergencyContact `json:"emergency_contact"`
	BaseSalary       float64                  `json:"base_salary"`
	DefaultRates     *models.DefaultRates     `json:"default_rates"`
	Notes            string                   `json:"notes"`
}

// EmployeeUpdateRequest patch cập nhật nhân viên, chỉ áp dụng field không nil
type EmployeeUpdateRequest struct {
	Name             *string                  `json:"name"`
	Role             *string                  `json:"role"`
	Skills           []string                 `json:"skills"`
	Phone            *string                  `json:"phone"`
	Email            *string                  `json:"email"`
	Address          *string                  `json:"address"`
	BankAccount      *models.BankAccount      `json:"bank_account"`
	EmergencyContact *models.EmergencyContact `json:"emergency_contact"`
	IsActive         *bool                    `json:"is_active"`
	BaseSalary       *float64                 `json:"base_salary"`
	DefaultRates     *models.DefaultRates     `json:"default_rates"`
	Notes            *string                  `json:"notes"`
}

// EmployeeFilter filter danh sách nhân viên
type EmployeeFilter struct {
	Role     string `form:"role"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
