package models

import "time"

// PartnerContactInfo thông tin liên hệ của đối tác
type PartnerContactInfo struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Website       string `json:"website"`
	ContactPerson string `json:"contact_person"`
}

// BusinessInfo thông tin doanh nghiệp
type BusinessInfo struct {
	TaxCode         string `json:"tax_code"`
	BusinessLicense string `json:"business_license"`
	EstablishedDate string `json:"established_date"`
}

// Agreement hợp đồng với đối tác
type Agreement struct {
	Title     string `json:"title"`
	FileURL   string `json:"file_url"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Terms     string `json:"terms"`
}

type Partner struct {
	ID            uint               `json:"id" gorm:"primaryKey"`
	PartnerID     string             `json:"partner_id" gorm:"uniqueIndex;size:20"`
	Name          string             `json:"name" gorm:"not null;index"`
	Type          string             `json:"type" gorm:"not null;index"`
	Cost          string             `json:"cost"` // Số tiền hoặc "Theo bill"
	ContactInfo   PartnerContactInfo `json:"contact_info" gorm:"type:jsonb;serializer:json"`
	BankAccount   BankAccount        `json:"bank_account" gorm:"type:jsonb;serializer:json"`
	BusinessInfo  BusinessInfo       `json:"business_info" gorm:"type:jsonb;serializer:json"`
	Rating        float64            `json:"rating" gorm:"default:0"` // Từ 0 đến 5
	ProjectsCount int                `json:"projects_count" gorm:"default:0"`
	TotalRevenue  float64            `json:"total_revenue" gorm:"default:0"`
	IsActive      bool               `json:"is_active" gorm:"default:true;index"`
	Notes         string             `json:"notes"`
	Agreements    []Agreement        `json:"agreements" gorm:"type:jsonb;serializer:json"`
	CreatedBy     *uint              `json:"created_by,omitempty"`
	CreatedAt     time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Partner) TableName() string {
	return "partners"
}
