package controllers

import (
	"strconv"
	"strings"

	"studio/dto"
	"studio/response"
	"studio/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmployeeController struct {
	service *services.EmployeeService
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{service: services.NewEmployeeService(db)}
}

// getActorID lấy ID người thao tác từ context do middleware gắn vào
func getActorID(c *gin.Context) *uint {
	if userID, exists := c.Get("userID"); exists {
		if id, ok := userID.(uint); ok {
			return &id
		}
	}

	// Fallback: đọc trực tiếp từ header khi route không qua middleware
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	id, err := services.GetIDFromToken(tokenString)
	if err != nil {
		return nil
	}
	return &id
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

func (ctrl *EmployeeController) Create(c *gin.Context) {
	var req dto.EmployeeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	employee, err := ctrl.service.Create(&req, getActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, employee)
}

func (ctrl *EmployeeController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.EmployeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	employee, err := ctrl.service.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, employee)
}

func (ctrl *EmployeeController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	employee, err := ctrl.service.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, employee)
}

func (ctrl *EmployeeController) List(c *gin.Context) {
	var filter dto.EmployeeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Tham số lọc không hợp lệ")
		return
	}

	employees, total, err := ctrl.service.List(&filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	response.SuccessWithPagination(c, employees, filter.Page, limit, int(total))
}

func (ctrl *EmployeeController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"id": id, "is_active": false})
}

func (ctrl *EmployeeController) GetByRole(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		response.BadRequest(c, "Thiếu tham số role")
		return
	}

	employees, err := ctrl.service.GetByRole(role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, employees)
}

func (ctrl *EmployeeController) GetActive(c *gin.Context) {
	employees, err := ctrl.service.GetActive()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, employees)
}
