package models

import (
	"time"

	"github.com/lib/pq"
)

// BankAccount thông tin ngân hàng của nhân viên/đối tác
type BankAccount struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

// EmergencyContact liên hệ khẩn cấp
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// DefaultRates đơn giá mặc định cho từng loại công việc
type DefaultRates struct {
	MainPhoto   float64 `json:"main_photo"`
	AssistPhoto float64 `json:"assist_photo"`
	Retouch     float64 `json:"retouch"`
	Makeup      float64 `json:"makeup"`
}

type Employee struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	Name             string           `json:"name" gorm:"not null"`
	Role             string           `json:"role" gorm:"not null;index"`
	Skills           pq.StringArray   `json:"skills" gorm:"type:text[]"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	Address          string           `json:"address"`
	BankAccount      BankAccount      `json:"bank_account" gorm:"type:jsonb;serializer:json"`
	EmergencyContact EmergencyContact `json:"emergency_contact" gorm:"type:jsonb;serializer:json"`
	StartDate        time.Time        `json:"start_date" gorm:"autoCreateTime"`
	IsActive         bool             `json:"is_active" gorm:"default:true;index"`
	BaseSalary       float64          `json:"base_salary" gorm:"default:0"`
	DefaultRates     DefaultRates     `json:"default_rates" gorm:"type:jsonb;serializer:json"`
	Notes            string           `json:"notes"`
	CreatedBy        *uint            `json:"created_by,omitempty"`
	CreatedAt        time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}

// SetDefaultRates gán đơn giá mặc định theo vai trò nếu chưa có
func (e *Employee) SetDefaultRates() {
	if e.DefaultRates == (DefaultRates{}) {
		e.DefaultRates = DefaultRates{
			MainPhoto:   500000,
			AssistPhoto: 300000,
			Retouch:     50000,
			Makeup:      400000,
		}
	}
}
