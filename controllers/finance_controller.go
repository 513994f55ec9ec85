package controllers

import (
	"studio/response"
	"studio/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FinanceController struct {
	service *services.FinanceService
}

func NewFinanceController(db *gorm.DB) *FinanceController {
	return &FinanceController{service: services.NewFinanceService(db)}
}

func (ctrl *FinanceController) MonthlyOverview(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, "Thiếu tham số month")
		return
	}

	overview, err := ctrl.service.MonthlyOverview(month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, overview)
}

func (ctrl *FinanceController) CalculateProfit(c *gin.Context) {
	fromDate := c.Query("from_date")
	toDate := c.Query("to_date")
	if fromDate == "" || toDate == "" {
		response.BadRequest(c, "Thiếu tham số from_date hoặc to_date")
		return
	}

	report, err := ctrl.service.CalculateProfit(fromDate, toDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, report)
}

func (ctrl *FinanceController) ProjectDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	detail, err := ctrl.service.ProjectFinanceDetail(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, detail)
}

func (ctrl *FinanceController) CashFlow(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, "Thiếu tham số month")
		return
	}

	report, err := ctrl.service.CashFlow(month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, report)
}

func (ctrl *FinanceController) RevenueByPackage(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, "Thiếu tham số month")
		return
	}

	report, err := ctrl.service.RevenueByPackage(month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, report)
}

func (ctrl *FinanceController) Summary(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, "Thiếu tham số month")
		return
	}

	summary, err := ctrl.service.FinancialSummary(month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, summary)
}
