package dto

import "studio/models"

// SalaryCreateRequest dữ liệu tạo dòng lương dự án
type SalaryCreateRequest struct {
	Employee uint    `json:"employee" binding:"required"`
	Project  uint    `json:"project" binding:"required"`
	Month    string  `json:"month" binding:"required"` // YYYY-MM
	Amount   float64 `json:"amount"`
	Bonus    float64 `json:"bonus"`
	WorkType string  `json:"work_type" binding:"required"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
}

// SalaryUpdateRequest patch cập nhật dòng lương
type SalaryUpdateRequest struct {
	Amount   *float64 `json:"amount"`
	Bonus    *float64 `json:"bonus"`
	WorkType *string  `json:"work_type"`
	Quantity *int     `json:"quantity"`
	IsPaid   *bool    `json:"is_paid"`
	PaidDate *string  `json:"paid_date"`
	Notes    *string  `json:"notes"`
}

// SalaryFilter filter danh sách dòng lương
type SalaryFilter struct {
	Employee uint   `form:"employee"`
	Project  uint   `form:"project"`
	Month    string `form:"month"`
	IsPaid   *bool  `form:"is_paid"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// CalculateMonthlySalaryRequest yêu cầu tính lương tháng
type CalculateMonthlySalaryRequest struct {
	Employee uint   `json:"employee" binding:"required"`
	Month    string `json:"month" binding:"required"`
}

// MarkAsPaidRequest đánh dấu đã thanh toán lương tháng
type MarkAsPaidRequest struct {
	PaidDate      string `json:"paid_date" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// EmployeeSalaryLine một dòng trong báo cáo lương tháng
type EmployeeSalaryLine struct {
	EmployeeID   uint                   `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	Role         string                 `json:"role"`
	TotalSalary  float64                `json:"total_salary"`
	IsPaid       bool                   `json:"is_paid"`
	Breakdown    models.SalaryBreakdown `json:"breakdown"`
}

// SalaryReport báo cáo lương tháng
type SalaryReport struct {
	Month            string               `json:"month"`
	TotalEmployees   int                  `json:"total_employees"`
	TotalSalary      float64              `json:"total_salary"`
	TotalPaid        float64              `json:"total_paid"`
	TotalUnpaid      float64              `json:"total_unpaid"`
	EmployeeSalaries []EmployeeSalaryLine `json:"employee_salaries"`
}
