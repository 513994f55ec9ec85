package validator

import (
	"fmt"
	"regexp"
	"time"

	"studio/constants"
	"studio/dto"
	"studio/errors"
	"studio/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10,11}$`)
	monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateMonth kiểm tra định dạng tháng YYYY-MM
func ValidateMonth(month string) error {
	if !monthRegex.MatchString(month) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Tháng không hợp lệ, định dạng: YYYY-MM", nil)
	}
	return nil
}

// ValidateEmployee validate dữ liệu tạo nhân viên
func ValidateEmployee(req *dto.EmployeeCreateRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên nhân viên không được để trống", nil)
	}

	if !constants.InList(req.Role, constants.EmployeeRoles) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Vai trò không hợp lệ: "+req.Role, nil)
	}

	for _, skill := range req.Skills {
		if !constants.InList(skill, constants.EmployeeSkills) {
			return errors.NewAppError(errors.ErrCodeInvalidEnum, "Kỹ năng không hợp lệ: "+skill, nil)
		}
	}

	if req.Email != "" && !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if req.Phone != "" && !isValidPhone(req.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if req.BaseSalary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Lương cơ bản không được âm", nil)
	}

	if req.DefaultRates != nil {
		if req.DefaultRates.MainPhoto < 0 || req.DefaultRates.AssistPhoto < 0 ||
			req.DefaultRates.Retouch < 0 || req.DefaultRates.Makeup < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Đơn giá mặc định không được âm", nil)
		}
	}

	return nil
}

// ValidateEmployeeUpdate validate patch cập nhật nhân viên
func ValidateEmployeeUpdate(req *dto.EmployeeUpdateRequest) error {
	if req.Role != nil && !constants.InList(*req.Role, constants.EmployeeRoles) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Vai trò không hợp lệ: "+*req.Role, nil)
	}

	for _, skill := range req.Skills {
		if !constants.InList(skill, constants.EmployeeSkills) {
			return errors.NewAppError(errors.ErrCodeInvalidEnum, "Kỹ năng không hợp lệ: "+skill, nil)
		}
	}

	if req.Email != nil && *req.Email != "" && !isValidEmail(*req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if req.BaseSalary != nil && *req.BaseSalary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Lương cơ bản không được âm", nil)
	}

	return nil
}

// ValidatePackage validate dữ liệu tạo gói chụp
func ValidatePackage(req *dto.PackageCreateRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên gói không được để trống", nil)
	}

	if !constants.InList(req.Category, constants.PackageCategories) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Danh mục gói không hợp lệ: "+req.Category, nil)
	}

	if req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá gói không được âm", nil)
	}

	return nil
}

// ValidatePackageUpdate validate patch cập nhật gói chụp
func ValidatePackageUpdate(req *dto.PackageUpdateRequest) error {
	if req.Category != nil && !constants.InList(*req.Category, constants.PackageCategories) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Danh mục gói không hợp lệ: "+*req.Category, nil)
	}

	if req.Price != nil && *req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá gói không được âm", nil)
	}

	return nil
}

// ValidatePartner validate dữ liệu tạo đối tác
func ValidatePartner(req *dto.PartnerCreateRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên đối tác không được để trống", nil)
	}

	if !constants.InList(req.Type, constants.PartnerTypes) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Loại đối tác không hợp lệ: "+req.Type, nil)
	}

	return nil
}

// ValidatePartnerUpdate validate patch cập nhật đối tác
func ValidatePartnerUpdate(req *dto.PartnerUpdateRequest) error {
	if req.Type != nil && !constants.InList(*req.Type, constants.PartnerTypes) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Loại đối tác không hợp lệ: "+*req.Type, nil)
	}

	return nil
}

// ValidateRating kiểm tra điểm đánh giá đối tác
func ValidateRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Điểm đánh giá phải từ 0 đến 5", nil)
	}
	return nil
}

// ValidateSalary validate dữ liệu tạo dòng lương
func ValidateSalary(req *dto.SalaryCreateRequest) error {
	if req.Employee == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID nhân viên không được để trống", nil)
	}

	if req.Project == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID dự án không được để trống", nil)
	}

	if err := ValidateMonth(req.Month); err != nil {
		return err
	}

	if !constants.InList(req.WorkType, constants.WorkTypes) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Loại công việc không hợp lệ: "+req.WorkType, nil)
	}

	if req.Amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}

	if req.Bonus < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Thưởng không được âm", nil)
	}

	if req.Quantity < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số lượng không được âm", nil)
	}

	return nil
}

// ValidateProject validate dữ liệu tạo dự án.
// Các invariant nghiệp vụ: giảm giá không vượt giá gói,
// team phải có thợ chụp chính.
func ValidateProject(req *dto.ProjectCreateRequest) error {
	if req.CustomerName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách hàng không được để trống", nil)
	}

	if req.CustomerPhone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
	}

	if req.CustomerEmail != "" && !isValidEmail(req.CustomerEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
	}

	if req.PackageType == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID gói chụp không được để trống", nil)
	}

	if req.PackagePrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá gói không được âm", nil)
	}

	if req.PackageDiscount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giảm giá không được âm", nil)
	}

	if req.PackageDiscount > req.PackagePrice {
		return errors.NewAppError(errors.ErrCodeInvalidDiscount, "Giảm giá không được vượt quá giá gói", errors.ErrInvalidDiscount)
	}

	if _, err := time.Parse("2006-01-02", req.ShootDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày chụp không hợp lệ, định dạng: YYYY-MM-DD", err)
	}

	if req.Status != "" && !constants.InList(req.Status, []string{
		constants.ProjectStatusPending,
		constants.ProjectStatusInProgress,
		constants.ProjectStatusCompleted,
		constants.ProjectStatusCancelled,
	}) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Trạng thái dự án không hợp lệ: "+req.Status, nil)
	}

	if req.Team == nil || req.Team.MainPhotographer == nil {
		return errors.NewAppError(errors.ErrCodeMissingPhotographer, "Dự án phải có thợ chụp chính", errors.ErrMissingPhotographer)
	}

	if req.Team.MainPhotographer.Employee == 0 {
		return errors.NewAppError(errors.ErrCodeMissingPhotographer, "Thợ chụp chính chưa gán nhân viên", errors.ErrMissingPhotographer)
	}

	for _, pkg := range req.AdditionalPackages {
		if pkg.PackagePrice < 0 || pkg.PackageDiscount < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá gói bổ sung không được âm", nil)
		}
		if pkg.PackageDiscount > pkg.PackagePrice {
			return errors.NewAppError(errors.ErrCodeInvalidDiscount,
				fmt.Sprintf("Giảm giá gói bổ sung %q không được vượt quá giá gói", pkg.PackageName), errors.ErrInvalidDiscount)
		}
	}

	return nil
}

// ValidateProjectUpdate validate patch cập nhật dự án
func ValidateProjectUpdate(req *dto.ProjectUpdateRequest, current *models.Project) error {
	price := current.PackagePrice
	if req.PackagePrice != nil {
		if *req.PackagePrice < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá gói không được âm", nil)
		}
		price = *req.PackagePrice
	}

	discount := current.PackageDiscount
	if req.PackageDiscount != nil {
		if *req.PackageDiscount < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giảm giá không được âm", nil)
		}
		discount = *req.PackageDiscount
	}

	if discount > price {
		return errors.NewAppError(errors.ErrCodeInvalidDiscount, "Giảm giá không được vượt quá giá gói", errors.ErrInvalidDiscount)
	}

	if req.Status != nil && !constants.InList(*req.Status, []string{
		constants.ProjectStatusPending,
		constants.ProjectStatusInProgress,
		constants.ProjectStatusCompleted,
		constants.ProjectStatusCancelled,
	}) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Trạng thái dự án không hợp lệ: "+*req.Status, nil)
	}

	if req.CustomerEmail != nil && *req.CustomerEmail != "" && !isValidEmail(*req.CustomerEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
	}

	return nil
}

// ValidateMilestone validate cột mốc dự án
func ValidateMilestone(m *models.Milestone) error {
	if m.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên cột mốc không được để trống", nil)
	}

	if !constants.InList(m.Stage, constants.MilestoneStages) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Giai đoạn cột mốc không hợp lệ: "+m.Stage, nil)
	}

	return nil
}

// ValidatePaymentItem validate một lần thanh toán
func ValidatePaymentItem(item *models.PaymentHistoryItem) error {
	if item.Amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền thanh toán không được âm", nil)
	}

	if item.Date == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày thanh toán không được để trống", nil)
	}

	if _, err := time.Parse("2006-01-02", item.Date); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày thanh toán không hợp lệ, định dạng: YYYY-MM-DD", err)
	}

	return nil
}
