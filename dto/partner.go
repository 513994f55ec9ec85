package dto

import "studio/models"

// PartnerCreateRequest dữ liệu tạo đối tác
type PartnerCreateRequest struct {
	Name         string                     `json:"name" binding:"required"`
	Type         string                     `json:"type" binding:"required"`
	Cost         string                     `json:"cost"`
	ContactInfo  *models.PartnerContactInfo `json:"contact_info"`
	BankAccount  *models.BankAccount        `json:"bank_account"`
	BusinessInfo *models.BusinessInfo       `json:"business_info"`
	Agreements   []models.Agreement         `json:"agreements"`
	Notes        string                     `json:"notes"`
}

// PartnerUpdateRequest patch cập nhật đối tác
type PartnerUpdateRequest struct {
	Name         *string                    `json:"name"`
	Type         *string                    `json:"type"`
	Cost         *string                    `json:"cost"`
	ContactInfo  *models.PartnerContactInfo `json:"contact_info"`
	BankAccount  *models.BankAccount        `json:"bank_account"`
	BusinessInfo *models.BusinessInfo       `json:"business_info"`
	Agreements   []models.Agreement         `json:"agreements"`
	IsActive     *bool                      `json:"is_active"`
	Notes        *string                    `json:"notes"`
}

// PartnerFilter filter danh sách đối tác
type PartnerFilter struct {
	Type      string   `form:"type"`
	IsActive  *bool    `form:"is_active"`
	MinRating *float64 `form:"min_rating"`
	Search    string   `form:"search"`
	Page      int      `form:"page"`
	Limit     int      `form:"limit"`
}

// PartnerRatingRequest dữ liệu đánh giá đối tác
type PartnerRatingRequest struct {
	Rating float64 `json:"rating" binding:"required"`
}

// PartnerStatisticsRequest dữ liệu cập nhật thống kê sau dự án
type PartnerStatisticsRequest struct {
	ProjectCost float64 `json:"project_cost"`
}
