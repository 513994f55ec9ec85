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

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

// Create tạo nhân viên mới
func (s *EmployeeService) Create(req *dto.EmployeeCreateRequest, createdBy *uint) (*models.Employee, error) {
	if err := validator.ValidateEmployee(req); err != nil {
		return nil, err
	}

	employee := models.Employee{
		Name:       req.Name,
		Role:       req.Role,
		Skills:     req.Skills,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		BaseSalary: req.BaseSalary,
		IsActive:   true,
		Notes:      req.Notes,
		CreatedBy:  createdBy,
	}

	if req.BankAccount != nil {
		employee.BankAccount = *req.BankAccount
	}

	if req.EmergencyContact != nil {
		employee.EmergencyContact = *req.EmergencyContact
	}

	if req.DefaultRates != nil {
		employee.DefaultRates = *req.DefaultRates
	} else {
		employee.SetDefaultRates()
	}

	if err := s.db.Create(&employee).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo nhân viên", err)
	}

	return &employee, nil
}

// Update cập nhật nhân viên, chỉ áp dụng các field có trong patch
func (s *EmployeeService) Update(id uint, req *dto.EmployeeUpdateRequest) (*models.Employee, error) {
	if err := validator.ValidateEmployeeUpdate(req); err != nil {
		return nil, err
	}

	employee, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Skills != nil {
		employee.Skills = req.Skills
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Address != nil {
		employee.Address = *req.Address
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if req.BaseSalary != nil {
		employee.BaseSalary = *req.BaseSalary
	}
	if req.Notes != nil {
		employee.Notes = *req.Notes
	}

	// Nested object thay thế nguyên khối
	if req.BankAccount != nil {
		employee.BankAccount = *req.BankAccount
	}
	if req.EmergencyContact != nil {
		employee.EmergencyContact = *req.EmergencyContact
	}
	if req.DefaultRates != nil {
		employee.DefaultRates = *req.DefaultRates
	}

	if err := s.db.Save(employee).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật nhân viên", err)
	}

	return employee, nil
}

// GetByID lấy nhân viên theo ID
func (s *EmployeeService) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy nhân viên", apperrors.ErrEmployeeNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}
	return &employee, nil
}

// List lấy danh sách nhân viên với filter, trả về (danh sách, tổng số)
func (s *EmployeeService) List(filter *dto.EmployeeFilter) ([]models.Employee, int64, error) {
	query := s.db.Model(&models.Employee{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if filter.Search != "" {
		search := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", search, search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi đếm nhân viên", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var employees []models.Employee
	if err := query.Order("created_at DESC").Offset(filter.Page * limit).Limit(limit).Find(&employees).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn danh sách nhân viên", err)
	}

	return employees, total, nil
}

// Delete xóa mềm nhân viên (set is_active = false)
func (s *EmployeeService) Delete(id uint) error {
	employee, err := s.GetByID(id)
	if err != nil {
		return err
	}

	employee.IsActive = false
	if err := s.db.Save(employee).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi xóa nhân viên", err)
	}

	return nil
}

// GetByRole lấy nhân viên đang hoạt động theo vai trò
func (s *EmployeeService) GetByRole(role string) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Where("role = ? AND is_active = ?", role, true).Find(&employees).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên theo vai trò", err)
	}
	return employees, nil
}

// GetActive lấy tất cả nhân viên đang hoạt động
func (s *EmployeeService) GetActive() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Where("is_active = ?", true).Find(&employees).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}
	return employees, nil
}
