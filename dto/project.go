package dto

import "studio/models"

// ProjectCreateRequest dữ liệu tạo dự án
type ProjectCreateRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	PackageType     uint    `json:"package_type" binding:"required"`
	PackageName     string  `json:"package_name"`
	PackagePrice    float64 `json:"package_price"`
	PackageDiscount float64 `json:"package_discount"`

	AdditionalPackages []models.AdditionalPackage `json:"additional_packages"`
	Team               *models.Team               `json:"team"`
	Partners           *models.ProjectPartners    `json:"partners"`
	Payment            *models.Payment            `json:"payment"`

	ShootDate string `json:"shoot_date" binding:"required"` // YYYY-MM-DD
	ShootTime string `json:"shoot_time"`
	Location  string `json:"location"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// ProjectUpdateRequest patch cập nhật dự án.
// Field nil giữ nguyên giá trị cũ, field nested thay thế nguyên khối.
type ProjectUpdateRequest struct {
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`

	PackageName     *string  `json:"package_name"`
	PackagePrice    *float64 `json:"package_price"`
	PackageDiscount *float64 `json:"package_discount"`

	ShootDate *string `json:"shoot_date"`
	ShootTime *string `json:"shoot_time"`
	Location  *string `json:"location"`
	Status    *string `json:"status"`

	AdditionalPackages []models.AdditionalPackage `json:"additional_packages"`
	Team               *models.Team               `json:"team"`
	Partners           *models.ProjectPartners    `json:"partners"`
	Payment            *models.Payment            `json:"payment"`
	Progress           *models.Progress           `json:"progress"`
	Milestones         []models.Milestone         `json:"milestones"`
	Files              []models.ProjectFile       `json:"files"`

	CompletedDate *string `json:"completed_date"`
	DeliveryDate  *string `json:"delivery_date"`
	Notes         *string `json:"notes"`
}

// ProjectFilter filter danh sách dự án
type ProjectFilter struct {
	Status        string `form:"status"`
	PaymentStatus string `form:"payment_status"`
	FromDate      string `form:"from_date"` // YYYY-MM-DD
	ToDate        string `form:"to_date"`
	CustomerName  string `form:"customer_name"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

// AddMilestoneRequest thêm cột mốc
type AddMilestoneRequest struct {
	Milestone models.Milestone `json:"milestone" binding:"required"`
}

// UpdateProgressRequest cập nhật tiến độ
type UpdateProgressRequest struct {
	Progress models.Progress `json:"progress"`
}

// AddPaymentRequest thêm thanh toán
type AddPaymentRequest struct {
	PaymentItem models.PaymentHistoryItem `json:"payment_item" binding:"required"`
}
