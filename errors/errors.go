package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone  ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidRole   ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidEnum   ErrorCode = "INVALID_ENUM"

	// Business errors
	ErrCodeNotFound               ErrorCode = "NOT_FOUND"
	ErrCodeInvalidDiscount        ErrorCode = "INVALID_DISCOUNT"
	ErrCodeMissingPhotographer    ErrorCode = "MISSING_PHOTOGRAPHER"
	ErrCodeInactiveEmployee       ErrorCode = "INACTIVE_EMPLOYEE"
	ErrCodeInvalidStateTransition ErrorCode = "INVALID_STATE_TRANSITION"
	ErrCodeInvalidOperation       ErrorCode = "INVALID_OPERATION"

	// System errors
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap cho phép errors.Is/errors.As đi xuống lỗi gốc
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInactiveEmployee = errors.New("employee is inactive")

	// Package errors
	ErrPackageNotFound = errors.New("package not found")

	// Partner errors
	ErrPartnerNotFound = errors.New("partner not found")

	// Project errors
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectCompleted    = errors.New("project already completed")
	ErrProjectCancelled    = errors.New("project already cancelled")
	ErrMissingPhotographer = errors.New("missing main photographer")
	ErrInvalidDiscount     = errors.New("discount exceeds price")

	// Salary errors
	ErrSalaryNotFound        = errors.New("salary not found")
	ErrMonthlySalaryNotFound = errors.New("monthly salary not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
