package validator

import (
	"errors"
	"testing"

	"studio/dto"
	apperrors "studio/errors"
	"studio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMonth(t *testing.T) {
	assert.NoError(t, ValidateMonth("2026-05"))
	assert.NoError(t, ValidateMonth("2026-12"))

	for _, month := range []string{"2026-13", "2026-00", "202605", "2026-5", "05-2026", ""} {
		assert.Error(t, ValidateMonth(month), "month %q phải bị từ chối", month)
	}
}

func TestValidateEmployee(t *testing.T) {
	valid := &dto.EmployeeCreateRequest{
		Name:   "Trần Minh",
		Role:   "Photo/Retouch",
		Skills: []string{"Chụp chính"},
		Email:  "minh@studio.vn",
		Phone:  "0912345678",
	}
	assert.NoError(t, ValidateEmployee(valid))

	noName := *valid
	noName.Name = ""
	assert.Error(t, ValidateEmployee(&noName))

	badRole := *valid
	badRole.Role = "Bảo vệ"
	assert.Error(t, ValidateEmployee(&badRole))

	badSkill := *valid
	badSkill.Skills = []string{"Lái xe"}
	assert.Error(t, ValidateEmployee(&badSkill))

	badEmail := *valid
	badEmail.Email = "khong-phai-email"
	assert.Error(t, ValidateEmployee(&badEmail))

	badPhone := *valid
	badPhone.Phone = "12ab"
	assert.Error(t, ValidateEmployee(&badPhone))

	negativeSalary := *valid
	negativeSalary.BaseSalary = -1
	assert.Error(t, ValidateEmployee(&negativeSalary))
}

func TestValidatePackage(t *testing.T) {
	assert.NoError(t, ValidatePackage(&dto.PackageCreateRequest{Name: "Gói cưới", Category: "wedding", Price: 5000000}))
	assert.Error(t, ValidatePackage(&dto.PackageCreateRequest{Name: "", Category: "wedding"}))
	assert.Error(t, ValidatePackage(&dto.PackageCreateRequest{Name: "Gói lạ", Category: "food"}))
	assert.Error(t, ValidatePackage(&dto.PackageCreateRequest{Name: "Gói âm", Category: "wedding", Price: -1}))
}

func TestValidatePartner(t *testing.T) {
	assert.NoError(t, ValidatePartner(&dto.PartnerCreateRequest{Name: "Áo cưới Thanh Hằng", Type: "clothing"}))
	assert.Error(t, ValidatePartner(&dto.PartnerCreateRequest{Name: "", Type: "clothing"}))
	assert.Error(t, ValidatePartner(&dto.PartnerCreateRequest{Name: "Không rõ", Type: "catering"}))
}

func TestValidateRating(t *testing.T) {
	assert.NoError(t, ValidateRating(0))
	assert.NoError(t, ValidateRating(4.5))
	assert.NoError(t, ValidateRating(5))
	assert.Error(t, ValidateRating(-0.1))
	assert.Error(t, ValidateRating(5.1))
}

func TestValidateSalary(t *testing.T) {
	valid := &dto.SalaryCreateRequest{
		Employee: 1,
		Project:  1,
		Month:    "2026-05",
		Amount:   500000,
		WorkType: "mainPhotographer",
	}
	assert.NoError(t, ValidateSalary(valid))

	badWorkType := *valid
	badWorkType.WorkType = "driver"
	assert.Error(t, ValidateSalary(&badWorkType))

	badMonth := *valid
	badMonth.Month = "05-2026"
	assert.Error(t, ValidateSalary(&badMonth))

	negative := *valid
	negative.Amount = -1
	assert.Error(t, ValidateSalary(&negative))

	noEmployee := *valid
	noEmployee.Employee = 0
	assert.Error(t, ValidateSalary(&noEmployee))
}

func validProjectRequest() *dto.ProjectCreateRequest {
	return &dto.ProjectCreateRequest{
		CustomerName:  "Phạm Ngọc Ánh",
		CustomerPhone: "0912345678",
		PackageType:   1,
		PackagePrice:  5000000,
		ShootDate:     "2026-05-10",
		Team: &models.Team{
			MainPhotographer: &models.TeamMember{Employee: 1},
		},
	}
}

func TestValidateProjectDiscountRule(t *testing.T) {
	req := validProjectRequest()
	req.PackageDiscount = 5000000
	assert.NoError(t, ValidateProject(req))

	req.PackageDiscount = 5000001
	err := ValidateProject(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDiscount))
}

func TestValidateProjectAdditionalPackageDiscount(t *testing.T) {
	req := validProjectRequest()
	req.AdditionalPackages = []models.AdditionalPackage{
		{PackageName: "Album mini", PackagePrice: 1000000, PackageDiscount: 1000001},
	}
	err := ValidateProject(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDiscount))
}

func TestValidateProjectRequiresMainPhotographer(t *testing.T) {
	req := validProjectRequest()
	req.Team = nil
	err := ValidateProject(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingPhotographer))

	req = validProjectRequest()
	req.Team.MainPhotographer = nil
	assert.Error(t, ValidateProject(req))

	req = validProjectRequest()
	req.Team.MainPhotographer.Employee = 0
	assert.Error(t, ValidateProject(req))
}

func TestValidateProjectShootDateFormat(t *testing.T) {
	req := validProjectRequest()
	req.ShootDate = "10/05/2026"
	err := ValidateProject(req)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidFormat, appErr.Code)
}

func TestValidateProjectStatusEnum(t *testing.T) {
	req := validProjectRequest()
	req.Status = "archived"
	assert.Error(t, ValidateProject(req))

	req.Status = "in-progress"
	assert.NoError(t, ValidateProject(req))
}

func TestValidateProjectUpdateDiscountAgainstCurrentPrice(t *testing.T) {
	current := &models.Project{PackagePrice: 5000000, PackageDiscount: 0}

	// Patch chỉ đổi giảm giá thì so với giá hiện có
	discount := 6000000.0
	err := ValidateProjectUpdate(&dto.ProjectUpdateRequest{PackageDiscount: &discount}, current)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDiscount))

	// Đổi cả giá lẫn giảm giá thì so theo giá trị mới
	price := 7000000.0
	assert.NoError(t, ValidateProjectUpdate(&dto.ProjectUpdateRequest{PackagePrice: &price, PackageDiscount: &discount}, current))
}

func TestValidateMilestone(t *testing.T) {
	assert.NoError(t, ValidateMilestone(&models.Milestone{Name: "Chụp ngoại cảnh", Stage: "shooting"}))
	assert.Error(t, ValidateMilestone(&models.Milestone{Name: "", Stage: "shooting"}))
	assert.Error(t, ValidateMilestone(&models.Milestone{Name: "Giai đoạn lạ", Stage: "unknown"}))
}

func TestValidatePaymentItem(t *testing.T) {
	assert.NoError(t, ValidatePaymentItem(&models.PaymentHistoryItem{Amount: 1000000, Date: "2026-05-01"}))
	assert.Error(t, ValidatePaymentItem(&models.PaymentHistoryItem{Amount: -1, Date: "2026-05-01"}))
	assert.Error(t, ValidatePaymentItem(&models.PaymentHistoryItem{Amount: 1000000}))
	assert.Error(t, ValidatePaymentItem(&models.PaymentHistoryItem{Amount: 1000000, Date: "01/05/2026"}))
}
