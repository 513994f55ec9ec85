package services

import (
	"errors"
	"strings"
	"testing"

	"studio/constants"
	"studio/dto"
	apperrors "studio/errors"
	"studio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProjectService(t *testing.T) (*ProjectService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewProjectService(db, NewPackageService(db, nil)), db
}

func validCreateRequest(pkg *models.Package, photographer *models.Employee) *dto.ProjectCreateRequest {
	return &dto.ProjectCreateRequest{
		CustomerName:    "Nguyễn Ngọc Anh",
		CustomerPhone:   "0912345678",
		PackageType:     pkg.ID,
		PackagePrice:    pkg.Price,
		PackageDiscount: 0,
		ShootDate:       "2026-05-10",
		Team: &models.Team{
			MainPhotographer: &models.TeamMember{Employee: photographer.ID, Salary: 500000},
		},
	}
}

func TestProjectCreateComputesFinalPrice(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói cưới premium", 5000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	req := validCreateRequest(pkg, photographer)
	req.PackageDiscount = 500000
	req.AdditionalPackages = []models.AdditionalPackage{
		{PackageName: "Album mini", PackagePrice: 1000000, PackageDiscount: 100000},
	}

	project, err := service.Create(req, nil)
	require.NoError(t, err)

	assert.Equal(t, 4500000.0, project.PackageFinalPrice)
	assert.Equal(t, 900000.0, project.AdditionalPackages[0].PackageFinalPrice)
	assert.Equal(t, constants.ProjectStatusPending, project.Status)
	assert.Equal(t, constants.PaymentStatusUnpaid, project.Payment.Status)
	assert.True(t, strings.HasPrefix(project.ProjectCode, "PRJ"))

	// Gói được chọn làm tăng điểm phổ biến
	var stored models.Package
	require.NoError(t, db.First(&stored, pkg.ID).Error)
	assert.Equal(t, 1, stored.PopularityScore)
}

func TestProjectCreateDiscountExceedsPrice(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói couple", 3000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	req := validCreateRequest(pkg, photographer)
	req.PackageDiscount = pkg.Price + 1

	_, err := service.Create(req, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDiscount))

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProjectCreateRequiresMainPhotographer(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói couple", 3000000)

	req := &dto.ProjectCreateRequest{
		CustomerName:  "Khách lẻ",
		CustomerPhone: "0912345678",
		PackageType:   pkg.ID,
		PackagePrice:  pkg.Price,
		ShootDate:     "2026-05-10",
	}

	_, err := service.Create(req, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingPhotographer))
}

func TestProjectCreatePhotographerChecks(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói couple", 3000000)
	inactive := createTestEmployee(t, db, "Đã nghỉ việc", false)

	req := validCreateRequest(pkg, inactive)
	req.Team.MainPhotographer.Employee = 9999

	_, err := service.Create(req, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEmployeeNotFound))

	req.Team.MainPhotographer.Employee = inactive.ID
	_, err = service.Create(req, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInactiveEmployee))
}

func TestProjectAddPaymentFlow(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói cưới full", 5000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	project, err := service.Create(validCreateRequest(pkg, photographer), nil)
	require.NoError(t, err)
	require.Equal(t, 5000000.0, project.PackageFinalPrice)

	project, err = service.AddPayment(project.ID, models.PaymentHistoryItem{Amount: 3000000, Date: "2026-05-01"})
	require.NoError(t, err)
	assert.Equal(t, 3000000.0, project.Payment.Paid)
	assert.Equal(t, constants.PaymentStatusDeposit, project.Payment.Status)
	assert.Len(t, project.Payment.PaymentHistory, 1)

	project, err = service.AddPayment(project.ID, models.PaymentHistoryItem{Amount: 2000000, Date: "2026-05-20"})
	require.NoError(t, err)
	assert.Equal(t, 5000000.0, project.Payment.Paid)
	assert.Equal(t, constants.PaymentStatusPaid, project.Payment.Status)
	assert.Len(t, project.Payment.PaymentHistory, 2)
}

func TestProjectUpdateRecomputesFinalPrice(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói cưới full", 5000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	project, err := service.Create(validCreateRequest(pkg, photographer), nil)
	require.NoError(t, err)

	discount := 1000000.0
	updated, err := service.Update(project.ID, &dto.ProjectUpdateRequest{PackageDiscount: &discount}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4000000.0, updated.PackageFinalPrice)
	// Tên khách không nằm trong patch nên giữ nguyên
	assert.Equal(t, project.CustomerName, updated.CustomerName)
	require.NotEmpty(t, updated.UpdateHistory)
	assert.Equal(t, "update", updated.UpdateHistory[len(updated.UpdateHistory)-1].Action)

	tooBig := 99999999.0
	_, err = service.Update(project.ID, &dto.ProjectUpdateRequest{PackageDiscount: &tooBig}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDiscount))
}

func TestProjectUpdateProgressDerivesStatus(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói cưới full", 5000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	project, err := service.Create(validCreateRequest(pkg, photographer), nil)
	require.NoError(t, err)

	project, err = service.UpdateProgress(project.ID, models.Progress{ShootingDone: true})
	require.NoError(t, err)
	assert.Equal(t, constants.ProjectStatusInProgress, project.Status)

	// Gọi lại cùng payload không đổi kết quả
	project, err = service.UpdateProgress(project.ID, models.Progress{ShootingDone: true})
	require.NoError(t, err)
	assert.Equal(t, constants.ProjectStatusInProgress, project.Status)

	project, err = service.UpdateProgress(project.ID, models.Progress{ShootingDone: true, RetouchDone: true, Delivered: true})
	require.NoError(t, err)
	assert.Equal(t, constants.ProjectStatusCompleted, project.Status)
}

func TestProjectDeleteIsSoftCancel(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói cưới full", 5000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	project, err := service.Create(validCreateRequest(pkg, photographer), nil)
	require.NoError(t, err)

	require.NoError(t, service.Delete(project.ID))

	stored, err := service.GetByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ProjectStatusCancelled, stored.Status)

	// Hủy lần hai bị chặn
	err = service.Delete(project.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrProjectCancelled))
}

func TestProjectDeleteCompletedRejected(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói cưới full", 5000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	project, err := service.Create(validCreateRequest(pkg, photographer), nil)
	require.NoError(t, err)

	_, err = service.UpdateProgress(project.ID, models.Progress{Delivered: true})
	require.NoError(t, err)

	err = service.Delete(project.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrProjectCompleted))
}

func TestProjectAddMilestone(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói cưới full", 5000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	project, err := service.Create(validCreateRequest(pkg, photographer), nil)
	require.NoError(t, err)

	project, err = service.AddMilestone(project.ID, models.Milestone{Name: "Chụp ngoại cảnh", Stage: "shooting"})
	require.NoError(t, err)
	require.Len(t, project.Milestones, 1)
	assert.Equal(t, constants.ProjectStatusPending, project.Milestones[0].Status)

	_, err = service.AddMilestone(project.ID, models.Milestone{Name: "Sai giai đoạn", Stage: "unknown"})
	require.Error(t, err)
}

func TestProjectListFiltersCustomerNameIgnoringDiacritics(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói cưới full", 5000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	first := validCreateRequest(pkg, photographer)
	first.CustomerName = "Phạm Ngọc Ánh"
	_, err := service.Create(first, nil)
	require.NoError(t, err)

	second := validCreateRequest(pkg, photographer)
	second.CustomerName = "Lê Văn Bình"
	second.CustomerPhone = "0987654321"
	_, err = service.Create(second, nil)
	require.NoError(t, err)

	projects, total, err := service.List(&dto.ProjectFilter{CustomerName: "ngoc anh"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, "Phạm Ngọc Ánh", projects[0].CustomerName)

	// Tìm theo số điện thoại
	projects, _, err = service.List(&dto.ProjectFilter{CustomerName: "0987654321"})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Lê Văn Bình", projects[0].CustomerName)
}

func TestProjectListFiltersByStatus(t *testing.T) {
	service, db := newProjectService(t)
	pkg := createTestPackage(t, db, "Gói cưới full", 5000000)
	photographer := createTestEmployee(t, db, "Trần Minh", true)

	project, err := service.Create(validCreateRequest(pkg, photographer), nil)
	require.NoError(t, err)
	_, err = service.Create(validCreateRequest(pkg, photographer), nil)
	require.NoError(t, err)

	require.NoError(t, service.Delete(project.ID))

	projects, total, err := service.List(&dto.ProjectFilter{Status: constants.ProjectStatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.NotEqual(t, project.ID, projects[0].ID)
}
