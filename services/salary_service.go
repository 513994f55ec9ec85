package services

import (
	"errors"
	"time"

	"studio/constants"
	"studio/dto"
	apperrors "studio/errors"
	"studio/models"
	"studio/validator"

	"gorm.io/gorm"
)

type SalaryService struct {
	db *gorm.DB
}

func NewSalaryService(db *gorm.DB) *SalaryService {
	return &SalaryService{db: db}
}

// Create tạo dòng lương dự án cho nhân viên
func (s *SalaryService) Create(req *dto.SalaryCreateRequest, createdBy *uint) (*models.Salary, error) {
	if err := validator.ValidateSalary(req); err != nil {
		return nil, err
	}

	var employee models.Employee
	if err := s.db.First(&employee, req.Employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy nhân viên", apperrors.ErrEmployeeNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	var project models.Project
	if err := s.db.First(&project, req.Project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy dự án", apperrors.ErrProjectNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn dự án", err)
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	salary := models.Salary{
		EmployeeID: employee.ID,
		ProjectID:  project.ID,
		Month:      req.Month,
		Amount:     req.Amount,
		Bonus:      req.Bonus,
		WorkType:   req.WorkType,
		Quantity:   quantity,
		Notes:      req.Notes,
		CreatedBy:  createdBy,
	}

	if err := s.db.Create(&salary).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo dòng lương", err)
	}

	return &salary, nil
}

// Update cập nhật dòng lương
func (s *SalaryService) Update(id uint, req *dto.SalaryUpdateRequest) (*models.Salary, error) {
	salary, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "Số tiền lương không được âm", apperrors.ErrInvalidInput)
		}
		salary.Amount = *req.Amount
	}
	if req.Bonus != nil {
		salary.Bonus = *req.Bonus
	}
	if req.WorkType != nil {
		if !constants.InList(*req.WorkType, constants.WorkTypes) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidEnum, "Loại công việc không hợp lệ", apperrors.ErrInvalidInput)
		}
		salary.WorkType = *req.WorkType
	}
	if req.Quantity != nil {
		salary.Quantity = *req.Quantity
	}
	if req.IsPaid != nil {
		salary.IsPaid = *req.IsPaid
	}
	if req.PaidDate != nil {
		paidDate, err := time.Parse("2006-01-02", *req.PaidDate)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Ngày thanh toán không hợp lệ, định dạng: YYYY-MM-DD", err)
		}
		salary.PaidDate = &paidDate
	}
	if req.Notes != nil {
		salary.Notes = *req.Notes
	}

	if err := s.db.Save(salary).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật dòng lương", err)
	}

	return salary, nil
}

// GetByID lấy dòng lương theo ID
func (s *SalaryService) GetByID(id uint) (*models.Salary, error) {
	var salary models.Salary
	if err := s.db.First(&salary, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy dòng lương", apperrors.ErrSalaryNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn dòng lương", err)
	}
	return &salary, nil
}

// List lấy danh sách dòng lương với filter
func (s *SalaryService) List(filter *dto.SalaryFilter) ([]models.Salary, int64, error) {
	query := s.db.Model(&models.Salary{})

	if filter.Employee != 0 {
		query = query.Where("employee_id = ?", filter.Employee)
	}
	if filter.Project != 0 {
		query = query.Where("project_id = ?", filter.Project)
	}
	if filter.Month != "" {
		if err := validator.ValidateMonth(filter.Month); err != nil {
			return nil, 0, err
		}
		query = query.Where("month = ?", filter.Month)
	}
	if filter.IsPaid != nil {
		query = query.Where("is_paid = ?", *filter.IsPaid)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi đếm dòng lương", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var salaries []models.Salary
	if err := query.Order("created_at DESC").Offset(filter.Page * limit).Limit(limit).Find(&salaries).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn danh sách lương", err)
	}

	return salaries, total, nil
}

// Delete xóa dòng lương
func (s *SalaryService) Delete(id uint) error {
	salary, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(salary).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi xóa dòng lương", err)
	}

	return nil
}

// CalculateMonthlySalary tổng hợp lương tháng cho nhân viên từ lương cơ bản
// và các dòng lương dự án trong tháng. Gọi lại cho cùng (nhân viên, tháng)
// sẽ tính lại và ghi đè bản ghi cũ, không tạo bản ghi mới.
func (s *SalaryService) CalculateMonthlySalary(employeeID uint, month string, createdBy *uint) (*models.MonthlySalary, error) {
	if err := validator.ValidateMonth(month); err != nil {
		return nil, err
	}

	var employee models.Employee
	if err := s.db.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy nhân viên", apperrors.ErrEmployeeNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	var salaries []models.Salary
	if err := s.db.Where("employee_id = ? AND month = ?", employeeID, month).Find(&salaries).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn lương dự án", err)
	}

	breakdown := models.SalaryBreakdown{
		BaseSalary:     employee.BaseSalary,
		ProjectsDetail: []models.ProjectSalaryDetail{},
	}

	for _, line := range salaries {
		breakdown.ProjectsDetail = append(breakdown.ProjectsDetail, models.ProjectSalaryDetail{
			Project:  line.ProjectID,
			WorkType: line.WorkType,
			Amount:   line.Amount,
			Bonus:    line.Bonus,
			Quantity: line.Quantity,
		})
		breakdown.TotalAmount += line.Amount
		breakdown.TotalBonus += line.Bonus
	}

	breakdown.NetSalary = breakdown.BaseSalary + breakdown.TotalAmount + breakdown.TotalBonus - breakdown.Deductions

	var monthly models.MonthlySalary
	err := s.db.Where("employee_id = ? AND month = ?", employeeID, month).First(&monthly).Error
	switch {
	case err == nil:
		// Tính lại, giữ nguyên trạng thái thanh toán hiện có
		monthly.TotalSalary = breakdown.NetSalary
		monthly.Breakdown = breakdown
		if err := s.db.Save(&monthly).Error; err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật lương tháng", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		monthly = models.MonthlySalary{
			EmployeeID:  employeeID,
			Month:       month,
			TotalSalary: breakdown.NetSalary,
			Breakdown:   breakdown,
			Status:      constants.SalaryStatusPending,
			CreatedBy:   createdBy,
		}
		if err := s.db.Create(&monthly).Error; err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo lương tháng", err)
		}
	default:
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn lương tháng", err)
	}

	return &monthly, nil
}

// MarkAsPaid đánh dấu lương tháng đã thanh toán và đánh dấu luôn
// các dòng lương dự án trong tháng đó.
func (s *SalaryService) MarkAsPaid(id uint, req *dto.MarkAsPaidRequest) (*models.MonthlySalary, error) {
	var monthly models.MonthlySalary
	if err := s.db.First(&monthly, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy lương tháng", apperrors.ErrMonthlySalaryNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn lương tháng", err)
	}

	if monthly.Status == constants.SalaryStatusCancelled {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStateTransition,
			"Lương tháng đã bị hủy, không thể thanh toán", apperrors.ErrInvalidInput)
	}

	paidDate, err := time.Parse("2006-01-02", req.PaidDate)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Ngày thanh toán không hợp lệ, định dạng: YYYY-MM-DD", err)
	}

	monthly.Status = constants.SalaryStatusPaid
	monthly.PaidDate = &paidDate
	monthly.PaymentMethod = req.PaymentMethod

	if err := s.db.Save(&monthly).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật lương tháng", err)
	}

	if err := s.db.Model(&models.Salary{}).
		Where("employee_id = ? AND month = ?", monthly.EmployeeID, monthly.Month).
		Updates(map[string]interface{}{"is_paid": true, "paid_date": paidDate}).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật dòng lương", err)
	}

	return &monthly, nil
}

// GetMonthlySalary lấy lương tháng của một nhân viên
func (s *SalaryService) GetMonthlySalary(employeeID uint, month string) (*models.MonthlySalary, error) {
	var monthly models.MonthlySalary
	if err := s.db.Where("employee_id = ? AND month = ?", employeeID, month).First(&monthly).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy lương tháng", apperrors.ErrMonthlySalaryNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn lương tháng", err)
	}
	return &monthly, nil
}

// GenerateReport tổng hợp báo cáo lương tháng cho toàn bộ nhân viên
func (s *SalaryService) GenerateReport(month string) (*dto.SalaryReport, error) {
	if err := validator.ValidateMonth(month); err != nil {
		return nil, err
	}

	var monthlies []models.MonthlySalary
	if err := s.db.Where("month = ?", month).Order("employee_id ASC").Find(&monthlies).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn lương tháng", err)
	}

	report := dto.SalaryReport{
		Month:            month,
		EmployeeSalaries: []dto.EmployeeSalaryLine{},
	}

	for _, monthly := range monthlies {
		if monthly.Status == constants.SalaryStatusCancelled {
			continue
		}

		var employee models.Employee
		if err := s.db.First(&employee, monthly.EmployeeID).Error; err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
		}

		line := dto.EmployeeSalaryLine{
			EmployeeID:   monthly.EmployeeID,
			EmployeeName: employee.Name,
			Role:         employee.Role,
			TotalSalary:  monthly.TotalSalary,
			IsPaid:       monthly.IsPaid(),
			Breakdown:    monthly.Breakdown,
		}

		report.TotalEmployees++
		report.TotalSalary += monthly.TotalSalary
		if monthly.IsPaid() {
			report.TotalPaid += monthly.TotalSalary
		} else {
			report.TotalUnpaid += monthly.TotalSalary
		}

		report.EmployeeSalaries = append(report.EmployeeSalaries, line)
	}

	return &report, nil
}

// GetEmployeeHistory lịch sử lương tháng của một nhân viên
func (s *SalaryService) GetEmployeeHistory(employeeID uint) ([]models.MonthlySalary, error) {
	var monthlies []models.MonthlySalary
	if err := s.db.Where("employee_id = ?", employeeID).Order("month DESC").Find(&monthlies).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn lịch sử lương", err)
	}
	return monthlies, nil
}
