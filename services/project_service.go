package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"studio/constants"
	"studio/dto"
	apperrors "studio/errors"
	"studio/models"
	"studio/services/logger"
	"studio/validator"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

type ProjectService struct {
	db       *gorm.DB
	packages *PackageService
	log      logger.Logger
}

func NewProjectService(db *gorm.DB, packageService *PackageService) *ProjectService {
	return &ProjectService{
		db:       db,
		packages: packageService,
		log:      logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// removeDiacritics bỏ dấu tiếng Việt để so khớp tên không phân biệt dấu
func removeDiacritics(s string) string {
	t := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// computeFinalPrices tính lại giá cuối cùng của gói chính và các gói bổ sung
func computeFinalPrices(project *models.Project) {
	project.PackageFinalPrice = project.PackagePrice - project.PackageDiscount

	for i := range project.AdditionalPackages {
		pkg := &project.AdditionalPackages[i]
		pkg.PackageFinalPrice = pkg.PackagePrice - pkg.PackageDiscount
	}
}

// checkMainPhotographer kiểm tra thợ chụp chính tham chiếu nhân viên đang hoạt động
func (s *ProjectService) checkMainPhotographer(team *models.Team) error {
	var employee models.Employee
	if err := s.db.First(&employee, team.MainPhotographer.Employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy nhân viên thợ chụp chính", apperrors.ErrEmployeeNotFound)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	if !employee.IsActive {
		return apperrors.NewAppError(apperrors.ErrCodeInactiveEmployee,
			fmt.Sprintf("Nhân viên %s đã ngừng hoạt động, không thể làm thợ chụp chính", employee.Name),
			apperrors.ErrInactiveEmployee)
	}

	return nil
}

// Create tạo dự án mới. Giá cuối cùng luôn được tính lại từ giá và
// giảm giá, không tin giá trị client gửi lên.
func (s *ProjectService) Create(req *dto.ProjectCreateRequest, createdBy *uint) (*models.Project, error) {
	if err := validator.ValidateProject(req); err != nil {
		return nil, err
	}

	pkg, err := s.packages.GetByID(req.PackageType)
	if err != nil {
		return nil, err
	}

	if err := s.checkMainPhotographer(req.Team); err != nil {
		return nil, err
	}

	projectCode, err := NextProjectCode(s.db, time.Now())
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi sinh mã dự án", err)
	}

	shootDate, _ := time.Parse("2006-01-02", req.ShootDate)

	packageName := req.PackageName
	if packageName == "" {
		packageName = pkg.Name
	}

	status := req.Status
	if status == "" {
		status = constants.ProjectStatusPending
	}

	project := models.Project{
		ProjectCode:        projectCode,
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		CustomerEmail:      req.CustomerEmail,
		PackageTypeID:      &pkg.ID,
		PackageName:        packageName,
		PackagePrice:       req.PackagePrice,
		PackageDiscount:    req.PackageDiscount,
		AdditionalPackages: req.AdditionalPackages,
		ShootDate:          shootDate,
		ShootTime:          req.ShootTime,
		Location:           req.Location,
		Status:             status,
		Team:               *req.Team,
		Notes:              req.Notes,
		CreatedBy:          createdBy,
		LastModifiedBy:     createdBy,
	}

	computeFinalPrices(&project)

	// Mặc định tiến độ chưa làm gì
	project.Progress = models.Progress{}

	if req.Partners != nil {
		project.Partners = *req.Partners
	}

	if req.Payment != nil {
		project.Payment = *req.Payment
	} else {
		project.Payment = models.Payment{
			Status:         constants.PaymentStatusUnpaid,
			PaymentHistory: []models.PaymentHistoryItem{},
		}
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo dự án", err)
	}

	// Gói được chọn thêm một lần
	if _, err := s.packages.IncrementPopularity(pkg.ID); err != nil {
		return nil, err
	}

	s.log.Info("Tạo dự án %s cho khách %s", project.ProjectCode, project.CustomerName)

	return &project, nil
}

// Update cập nhật dự án theo patch: field nil giữ nguyên,
// nested object thay thế nguyên khối, không merge từng field con.
func (s *ProjectService) Update(id uint, req *dto.ProjectUpdateRequest, updatedBy *uint) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := validator.ValidateProjectUpdate(req, project); err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		project.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		project.CustomerPhone = *req.CustomerPhone
	}
	if req.CustomerEmail != nil {
		project.CustomerEmail = *req.CustomerEmail
	}
	if req.PackageName != nil {
		project.PackageName = *req.PackageName
	}
	if req.PackagePrice != nil {
		project.PackagePrice = *req.PackagePrice
	}
	if req.PackageDiscount != nil {
		project.PackageDiscount = *req.PackageDiscount
	}
	if req.ShootDate != nil {
		shootDate, err := time.Parse("2006-01-02", *req.ShootDate)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Ngày chụp không hợp lệ, định dạng: YYYY-MM-DD", err)
		}
		project.ShootDate = shootDate
	}
	if req.ShootTime != nil {
		project.ShootTime = *req.ShootTime
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Notes != nil {
		project.Notes = *req.Notes
	}
	if req.CompletedDate != nil {
		completedDate, err := time.Parse("2006-01-02", *req.CompletedDate)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Ngày hoàn thành không hợp lệ", err)
		}
		project.CompletedDate = &completedDate
	}
	if req.DeliveryDate != nil {
		deliveryDate, err := time.Parse("2006-01-02", *req.DeliveryDate)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Ngày giao hàng không hợp lệ", err)
		}
		project.DeliveryDate = &deliveryDate
	}

	// Nested thay thế nguyên khối khi có trong patch
	if req.AdditionalPackages != nil {
		project.AdditionalPackages = req.AdditionalPackages
	}
	if req.Team != nil {
		if req.Team.MainPhotographer != nil {
			if err := s.checkMainPhotographer(req.Team); err != nil {
				return nil, err
			}
		}
		project.Team = *req.Team
	}
	if req.Partners != nil {
		project.Partners = *req.Partners
	}
	if req.Payment != nil {
		project.Payment = *req.Payment
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}
	if req.Milestones != nil {
		project.Milestones = req.Milestones
	}
	if req.Files != nil {
		project.Files = req.Files
	}

	computeFinalPrices(project)

	project.LastModifiedBy = updatedBy
	project.UpdateHistory = append(project.UpdateHistory, models.UpdateHistoryItem{
		Date:   time.Now().Format("2006-01-02"),
		User:   updatedBy,
		Action: "update",
	})

	if err := s.db.Save(project).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật dự án", err)
	}

	return project, nil
}

// GetByID lấy dự án theo ID
func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy dự án", apperrors.ErrProjectNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn dự án", err)
	}
	return &project, nil
}

// List lấy danh sách dự án với filter. Tìm theo tên khách không
// phân biệt dấu nên lọc và phân trang trên bộ nhớ.
func (s *ProjectService) List(filter *dto.ProjectFilter) ([]models.Project, int64, error) {
	query := s.db.Model(&models.Project{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.PaymentStatus != "" {
		query = query.Where("payment->>'status' = ?", filter.PaymentStatus)
	}

	if filter.FromDate != "" {
		fromDate, err := time.Parse("2006-01-02", filter.FromDate)
		if err != nil {
			return nil, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "from_date không hợp lệ, định dạng: YYYY-MM-DD", err)
		}
		query = query.Where("shoot_date >= ?", fromDate)
	}

	if filter.ToDate != "" {
		toDate, err := time.Parse("2006-01-02", filter.ToDate)
		if err != nil {
			return nil, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "to_date không hợp lệ, định dạng: YYYY-MM-DD", err)
		}
		query = query.Where("shoot_date <= ?", toDate)
	}

	var projects []models.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn danh sách dự án", err)
	}

	if filter.CustomerName != "" {
		normalizedFilter := removeDiacritics(strings.ToLower(filter.CustomerName))
		var filtered []models.Project
		for _, project := range projects {
			name := removeDiacritics(strings.ToLower(project.CustomerName))
			if strings.Contains(name, normalizedFilter) || strings.Contains(project.CustomerPhone, filter.CustomerName) {
				filtered = append(filtered, project)
			}
		}
		projects = filtered
	}

	total := int64(len(projects))

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	start := filter.Page * limit
	end := start + limit
	if start >= len(projects) {
		projects = []models.Project{}
	} else if end > len(projects) {
		projects = projects[start:]
	} else {
		projects = projects[start:end]
	}

	return projects, total, nil
}

// Delete hủy dự án (xóa mềm, set status = cancelled).
// Dự án đã hoàn thành hoặc đã hủy thì không được hủy nữa.
func (s *ProjectService) Delete(id uint) error {
	project, err := s.GetByID(id)
	if err != nil {
		return err
	}

	switch project.Status {
	case constants.ProjectStatusCompleted:
		return apperrors.NewAppError(apperrors.ErrCodeInvalidStateTransition,
			"Dự án đã hoàn thành, không thể hủy", apperrors.ErrProjectCompleted)
	case constants.ProjectStatusCancelled:
		return apperrors.NewAppError(apperrors.ErrCodeInvalidStateTransition,
			"Dự án đã bị hủy trước đó", apperrors.ErrProjectCancelled)
	}

	project.Status = constants.ProjectStatusCancelled
	if err := s.db.Save(project).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi hủy dự án", err)
	}

	s.log.Info("Hủy dự án %s", project.ProjectCode)

	return nil
}

// AddMilestone thêm cột mốc vào dự án
func (s *ProjectService) AddMilestone(id uint, milestone models.Milestone) (*models.Project, error) {
	if err := validator.ValidateMilestone(&milestone); err != nil {
		return nil, err
	}

	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if milestone.Status == "" {
		milestone.Status = constants.ProjectStatusPending
	}

	project.Milestones = append(project.Milestones, milestone)

	if err := s.db.Save(project).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi thêm cột mốc", err)
	}

	return project, nil
}

// UpdateProgress cập nhật tiến độ và suy ra trạng thái dự án.
// Gọi lại với cùng payload cho cùng kết quả.
func (s *ProjectService) UpdateProgress(id uint, progress models.Progress) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	project.Progress = progress

	if progress.Delivered {
		project.Status = constants.ProjectStatusCompleted
	} else if progress.RetouchDone || progress.ShootingDone {
		project.Status = constants.ProjectStatusInProgress
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật tiến độ", err)
	}

	return project, nil
}

// AddPayment ghi nhận một lần thanh toán: cộng dồn số đã trả và
// tính lại trạng thái thanh toán theo giá cuối cùng.
func (s *ProjectService) AddPayment(id uint, item models.PaymentHistoryItem) (*models.Project, error) {
	if err := validator.ValidatePaymentItem(&item); err != nil {
		return nil, err
	}

	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if project.Payment.PaymentHistory == nil {
		project.Payment.PaymentHistory = []models.PaymentHistoryItem{}
	}

	project.Payment.PaymentHistory = append(project.Payment.PaymentHistory, item)
	project.Payment.Paid += item.Amount

	switch {
	case project.Payment.Paid >= project.PackageFinalPrice:
		project.Payment.Status = constants.PaymentStatusPaid
	case project.Payment.Paid > 0:
		project.Payment.Status = constants.PaymentStatusDeposit
	default:
		project.Payment.Status = constants.PaymentStatusUnpaid
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi thêm thanh toán", err)
	}

	return project, nil
}

// AddFile đính kèm file vào dự án
func (s *ProjectService) AddFile(id uint, file models.ProjectFile) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if file.UploadedAt == "" {
		file.UploadedAt = time.Now().Format(time.RFC3339)
	}

	project.Files = append(project.Files, file)

	if err := s.db.Save(project).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi đính kèm file", err)
	}

	return project, nil
}

// GetByStatus lấy danh sách dự án theo trạng thái
func (s *ProjectService) GetByStatus(status string) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("status = ?", status).Find(&projects).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn dự án theo trạng thái", err)
	}
	return projects, nil
}

// GetUpcoming lấy dự án chờ chụp trong số ngày tới
func (s *ProjectService) GetUpcoming(days int) ([]models.Project, error) {
	if days <= 0 {
		days = 7
	}

	now := time.Now()
	endDate := now.AddDate(0, 0, days)

	var projects []models.Project
	if err := s.db.Where("shoot_date >= ? AND shoot_date <= ? AND status = ?",
		now.Format("2006-01-02"), endDate.Format("2006-01-02"), constants.ProjectStatusPending).
		Order("shoot_date ASC").Find(&projects).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn dự án sắp tới", err)
	}

	return projects, nil
}
