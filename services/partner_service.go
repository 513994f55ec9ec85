package services

import (
	"errors"
	"strings"

	"studio/dto"
	apperrors "studio/errors"
	"studio/models"
	"studio/validator"

	"gorm.io/gorm"
)

type PartnerService struct {
	db *gorm.DB
}

func NewPartnerService(db *gorm.DB) *PartnerService {
	return &PartnerService{db: db}
}

// Create tạo đối tác mới, mã PTN sinh tự động
func (s *PartnerService) Create(req *dto.PartnerCreateRequest, createdBy *uint) (*models.Partner, error) {
	if err := validator.ValidatePartner(req); err != nil {
		return nil, err
	}

	partnerID, err := NextPartnerID(s.db)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi sinh mã đối tác", err)
	}

	partner := models.Partner{
		PartnerID: partnerID,
		Name:      req.Name,
		Type:      req.Type,
		Cost:      req.Cost,
		IsActive:  true,
		Notes:     req.Notes,
		CreatedBy: createdBy,
	}

	if req.ContactInfo != nil {
		partner.ContactInfo = *req.ContactInfo
	}
	if req.BankAccount != nil {
		partner.BankAccount = *req.BankAccount
	}
	if req.BusinessInfo != nil {
		partner.BusinessInfo = *req.BusinessInfo
	}
	if req.Agreements != nil {
		partner.Agreements = req.Agreements
	}

	if err := s.db.Create(&partner).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo đối tác", err)
	}

	return &partner, nil
}

// Update cập nhật đối tác theo patch, nested object thay thế nguyên khối
func (s *PartnerService) Update(id uint, req *dto.PartnerUpdateRequest) (*models.Partner, error) {
	if err := validator.ValidatePartnerUpdate(req); err != nil {
		return nil, err
	}

	partner, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Type != nil {
		partner.Type = *req.Type
	}
	if req.Cost != nil {
		partner.Cost = *req.Cost
	}
	if req.IsActive != nil {
		partner.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		partner.Notes = *req.Notes
	}
	if req.ContactInfo != nil {
		partner.ContactInfo = *req.ContactInfo
	}
	if req.BankAccount != nil {
		partner.BankAccount = *req.BankAccount
	}
	if req.BusinessInfo != nil {
		partner.BusinessInfo = *req.BusinessInfo
	}
	if req.Agreements != nil {
		partner.Agreements = req.Agreements
	}

	if err := s.db.Save(partner).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật đối tác", err)
	}

	return partner, nil
}

// GetByID lấy đối tác theo ID
func (s *PartnerService) GetByID(id uint) (*models.Partner, error) {
	var partner models.Partner
	if err := s.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy đối tác", apperrors.ErrPartnerNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn đối tác", err)
	}
	return &partner, nil
}

// List lấy danh sách đối tác với filter
func (s *PartnerService) List(filter *dto.PartnerFilter) ([]models.Partner, int64, error) {
	query := s.db.Model(&models.Partner{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+strings.TrimSpace(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi đếm đối tác", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var partners []models.Partner
	if err := query.Order("created_at DESC").Offset(filter.Page * limit).Limit(limit).Find(&partners).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn danh sách đối tác", err)
	}

	return partners, total, nil
}

// Delete xóa mềm đối tác
func (s *PartnerService) Delete(id uint) error {
	partner, err := s.GetByID(id)
	if err != nil {
		return err
	}

	partner.IsActive = false
	if err := s.db.Save(partner).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi xóa đối tác", err)
	}

	return nil
}

// GetByType lấy đối tác đang hoạt động theo loại
func (s *PartnerService) GetByType(partnerType string) ([]models.Partner, error) {
	var partners []models.Partner
	if err := s.db.Where("type = ? AND is_active = ?", partnerType, true).Find(&partners).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn đối tác theo loại", err)
	}
	return partners, nil
}

// UpdateStatistics cập nhật thống kê sau khi đối tác tham gia dự án
func (s *PartnerService) UpdateStatistics(id uint, projectCost float64) (*models.Partner, error) {
	partner, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	partner.ProjectsCount++
	partner.TotalRevenue += projectCost

	if err := s.db.Save(partner).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật thống kê đối tác", err)
	}

	return partner, nil
}

// UpdateRating cập nhật đánh giá đối tác theo trung bình cộng dồn.
// Công thức lấy projects_count - 1 làm trọng số cũ, nên chỉ đúng khi
// mỗi dự án đánh giá một lần và gọi sau UpdateStatistics.
func (s *PartnerService) UpdateRating(id uint, newRating float64) (*models.Partner, error) {
	if err := validator.ValidateRating(newRating); err != nil {
		return nil, err
	}

	partner, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if partner.ProjectsCount > 0 {
		partner.Rating = (partner.Rating*float64(partner.ProjectsCount-1) + newRating) / float64(partner.ProjectsCount)
	} else {
		partner.Rating = newRating
	}

	if err := s.db.Save(partner).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật đánh giá đối tác", err)
	}

	return partner, nil
}
