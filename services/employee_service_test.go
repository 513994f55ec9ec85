package services

import (
	"testing"

	"studio/dto"
	apperrors "studio/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCreateDefaults(t *testing.T) {
	service := NewEmployeeService(newTestDB(t))

	employee, err := service.Create(&dto.EmployeeCreateRequest{
		Name:       "Trần Minh",
		Role:       "Photo/Retouch",
		Skills:     []string{"Chụp chính", "Retouch"},
		BaseSalary: 10000000,
	}, nil)
	require.NoError(t, err)

	assert.True(t, employee.IsActive)
	// Không truyền đơn giá thì lấy đơn giá mặc định theo công việc
	assert.Equal(t, 500000.0, employee.DefaultRates.MainPhoto)
	assert.Equal(t, 300000.0, employee.DefaultRates.AssistPhoto)
	assert.Equal(t, 50000.0, employee.DefaultRates.Retouch)
	assert.Equal(t, 400000.0, employee.DefaultRates.Makeup)
}

func TestEmployeeCreateRejectsInvalidRole(t *testing.T) {
	service := NewEmployeeService(newTestDB(t))

	_, err := service.Create(&dto.EmployeeCreateRequest{Name: "Ai đó", Role: "Bảo vệ"}, nil)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidRole, appErr.Code)
}

func TestEmployeeCreateRejectsInvalidSkill(t *testing.T) {
	service := NewEmployeeService(newTestDB(t))

	_, err := service.Create(&dto.EmployeeCreateRequest{
		Name:   "Ai đó",
		Role:   "Photo/Retouch",
		Skills: []string{"Lái xe"},
	}, nil)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidEnum, appErr.Code)
}

func TestEmployeeUpdatePatchSemantics(t *testing.T) {
	service := NewEmployeeService(newTestDB(t))

	employee, err := service.Create(&dto.EmployeeCreateRequest{
		Name:       "Trần Minh",
		Role:       "Photo/Retouch",
		Phone:      "0912345678",
		BaseSalary: 10000000,
	}, nil)
	require.NoError(t, err)

	newSalary := 12000000.0
	updated, err := service.Update(employee.ID, &dto.EmployeeUpdateRequest{BaseSalary: &newSalary})
	require.NoError(t, err)

	assert.Equal(t, newSalary, updated.BaseSalary)
	// Field không có trong patch giữ nguyên
	assert.Equal(t, employee.Name, updated.Name)
	assert.Equal(t, employee.Phone, updated.Phone)

	negative := -1.0
	_, err = service.Update(employee.ID, &dto.EmployeeUpdateRequest{BaseSalary: &negative})
	require.Error(t, err)
}

func TestEmployeeDeleteIsSoft(t *testing.T) {
	db := newTestDB(t)
	service := NewEmployeeService(db)
	employee := createTestEmployee(t, db, "Trần Minh", true)

	require.NoError(t, service.Delete(employee.ID))

	stored, err := service.GetByID(employee.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	active, err := service.GetActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestEmployeeGetByRole(t *testing.T) {
	db := newTestDB(t)
	service := NewEmployeeService(db)
	createTestEmployee(t, db, "Trần Minh", true)
	createTestEmployee(t, db, "Đã nghỉ", false)

	makeup, err := service.Create(&dto.EmployeeCreateRequest{Name: "Lê Hoa", Role: "Makeup Artist"}, nil)
	require.NoError(t, err)

	photographers, err := service.GetByRole("Photo/Retouch")
	require.NoError(t, err)
	require.Len(t, photographers, 1)
	assert.Equal(t, "Trần Minh", photographers[0].Name)

	artists, err := service.GetByRole("Makeup Artist")
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, makeup.ID, artists[0].ID)
}

func TestEmployeeListPagination(t *testing.T) {
	db := newTestDB(t)
	service := NewEmployeeService(db)
	for i := 0; i < 5; i++ {
		createTestEmployee(t, db, "Nhân viên", true)
	}

	employees, total, err := service.List(&dto.EmployeeFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, employees, 2)

	employees, total, err = service.List(&dto.EmployeeFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, employees, 1)
}

func TestEmployeeGetByIDNotFound(t *testing.T) {
	service := NewEmployeeService(newTestDB(t))

	_, err := service.GetByID(42)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}
