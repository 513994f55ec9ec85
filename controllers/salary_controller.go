package controllers

import (
	"studio/dto"
	"studio/response"
	"studio/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SalaryController struct {
	service *services.SalaryService
}

func NewSalaryController(db *gorm.DB) *SalaryController {
	return &SalaryController{service: services.NewSalaryService(db)}
}

func (ctrl *SalaryController) Create(c *gin.Context) {
	var req dto.SalaryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	salary, err := ctrl.service.Create(&req, getActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, salary)
}

func (ctrl *SalaryController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.SalaryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	salary, err := ctrl.service.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, salary)
}

func (ctrl *SalaryController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	salary, err := ctrl.service.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, salary)
}

func (ctrl *SalaryController) List(c *gin.Context) {
	var filter dto.SalaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Tham số lọc không hợp lệ")
		return
	}

	salaries, total, err := ctrl.service.List(&filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	response.SuccessWithPagination(c, salaries, filter.Page, limit, int(total))
}

func (ctrl *SalaryController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// CalculateMonthly tính hoặc tính lại lương tháng cho một nhân viên
func (ctrl *SalaryController) CalculateMonthly(c *gin.Context) {
	var req dto.CalculateMonthlySalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	monthly, err := ctrl.service.CalculateMonthlySalary(req.Employee, req.Month, getActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, monthly)
}

func (ctrl *SalaryController) MarkAsPaid(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.MarkAsPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	monthly, err := ctrl.service.MarkAsPaid(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, monthly)
}

func (ctrl *SalaryController) MonthlyReport(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, "Thiếu tham số month")
		return
	}

	report, err := ctrl.service.GenerateReport(month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, report)
}

func (ctrl *SalaryController) EmployeeHistory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	history, err := ctrl.service.GetEmployeeHistory(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, history)
}
