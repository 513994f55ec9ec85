package response

import (
	"net/http"

	"studio/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Chưa xác thực",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Không có quyền truy cập",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Không tìm thấy",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// httpStatusByCode map mã lỗi nghiệp vụ sang HTTP status
func httpStatusByCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeDBNotFound, errors.ErrCodeUserNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case errors.ErrCodeInvalidStateTransition, errors.ErrCodeDBDuplicate:
		return http.StatusConflict
	case errors.ErrCodeDBError, errors.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		// Validation, enum, discount, photographer... đều là lỗi phía caller
		return http.StatusBadRequest
	}
}

// AppError trả về response theo mã lỗi nghiệp vụ, mỗi loại lỗi
// map sang một HTTP status riêng
func AppError(c *gin.Context, appErr *errors.AppError) {
	c.JSON(httpStatusByCode(appErr.Code), Response{
		Code: 0,
		Mess: appErr.Message,
	})
}

// Error trả về response lỗi: AppError map theo mã, lỗi khác trả lỗi server
func Error(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		AppError(c, appErr)
		return
	}
	ServerError(c)
}
