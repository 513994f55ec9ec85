package models

import "time"

// Salary lương theo từng công việc trong dự án
type Salary struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	EmployeeID uint       `json:"employee" gorm:"not null;index:idx_salaries_employee_month"`
	Employee   Employee   `json:"-" gorm:"foreignKey:EmployeeID"`
	ProjectID  uint       `json:"project" gorm:"not null;index"`
	Project    Project    `json:"-" gorm:"foreignKey:ProjectID"`
	Month      string     `json:"month" gorm:"size:7;index:idx_salaries_employee_month"` // YYYY-MM
	Amount     float64    `json:"amount" gorm:"not null"`
	Bonus      float64    `json:"bonus" gorm:"default:0"`
	WorkType   string     `json:"work_type" gorm:"size:50"`
	Quantity   int        `json:"quantity" gorm:"default:1"` // Số ảnh retouch, số ngày công...
	IsPaid     bool       `json:"is_paid" gorm:"default:false;index"`
	PaidDate   *time.Time `json:"paid_date"`
	Notes      string     `json:"notes"`
	CreatedBy  *uint      `json:"created_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Salary) TableName() string {
	return "salaries"
}

// TotalCompensation tổng thu nhập = lương + thưởng
func (s *Salary) TotalCompensation() float64 {
	return s.Amount + s.Bonus
}

// ProjectSalaryDetail một dòng lương dự án trong breakdown
type ProjectSalaryDetail struct {
	Project  uint    `json:"project"`
	WorkType string  `json:"work_type"`
	Amount   float64 `json:"amount"`
	Bonus    float64 `json:"bonus"`
	Quantity int     `json:"quantity"`
}

// SalaryBreakdown chi tiết lương tháng
type SalaryBreakdown struct {
	BaseSalary     float64               `json:"base_salary"`
	ProjectsDetail []ProjectSalaryDetail `json:"projects_detail"`
	TotalAmount    float64               `json:"total_amount"`
	TotalBonus     float64               `json:"total_bonus"`
	Deductions     float64               `json:"deductions"`
	NetSalary      float64               `json:"net_salary"`
}

// MonthlySalary tổng hợp lương tháng, duy nhất theo (nhân viên, tháng)
type MonthlySalary struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	EmployeeID    uint            `json:"employee" gorm:"not null;uniqueIndex:idx_monthly_salaries_employee_month"`
	Employee      Employee        `json:"-" gorm:"foreignKey:EmployeeID"`
	Month         string          `json:"month" gorm:"size:7;uniqueIndex:idx_monthly_salaries_employee_month;index"`
	TotalSalary   float64         `json:"total_salary" gorm:"not null"`
	Breakdown     SalaryBreakdown `json:"breakdown" gorm:"type:jsonb;serializer:json"`
	Status        string          `json:"status" gorm:"default:'pending';index"` // pending, paid, cancelled
	PaidDate      *time.Time      `json:"paid_date"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50"`
	Notes         string          `json:"notes"`
	CreatedBy     *uint           `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (MonthlySalary) TableName() string {
	return "monthly_salaries"
}

// IsPaid trạng thái đã thanh toán
func (m *MonthlySalary) IsPaid() bool {
	return m.Status == "paid"
}
