package dto

import "studio/models"

// PackageCreateRequest dữ liệu tạo gói chụp
type PackageCreateRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Category    string                 `json:"category" binding:"required"`
	Price       float64                `json:"price"`
	Details     *models.PackageDetails `json:"details"`
	Includes    []string               `json:"includes"`
	Description string                 `json:"description"`
	Notes       string                 `json:"notes"`
}

// PackageUpdateRequest patch cập nhật gói chụp
type PackageUpdateRequest struct {
	Name        *string                `json:"name"`
	Category    *string                `json:"category"`
	Price       *float64               `json:"price"`
	Details     *models.PackageDetails `json:"details"`
	Includes    []string               `json:"includes"`
	IsActive    *bool                  `json:"is_active"`
	Description *string                `json:"description"`
	Notes       *string                `json:"notes"`
}

// PackageFilter filter danh sách gói
type PackageFilter struct {
	Category string   `form:"category"`
	IsActive *bool    `form:"is_active"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	Search   string   `form:"search"`
	Page     int      `form:"page"`
	Limit    int      `form:"limit"`
}

// PackageSearchResult kết quả tìm kiếm gói theo câu truy vấn tự do
type PackageSearchResult struct {
	Query    string           `json:"query"`
	Category string           `json:"category,omitempty"`
	Items    []models.Package `json:"items"`
	Total    int              `json:"total"`
}
