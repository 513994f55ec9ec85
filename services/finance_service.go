package services

import (
	"errors"
	"fmt"
	"time"

	"studio/constants"
	"studio/dto"
	apperrors "studio/errors"
	"studio/models"
	"studio/validator"

	"gorm.io/gorm"
)

// FinanceService chỉ đọc dữ liệu từ dự án, lương và đối tác để
// tổng hợp báo cáo, không ghi gì cả.
type FinanceService struct {
	db *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{db: db}
}

// monthRange trả về [đầu tháng, đầu tháng sau) cho filter shoot_date
func monthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Tháng không hợp lệ, định dạng: YYYY-MM", err)
	}
	return start, start.AddDate(0, 1, 0), nil
}

func (s *FinanceService) projectsInMonth(month string) ([]models.Project, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	if err := s.db.Where("shoot_date >= ? AND shoot_date < ?", start, end).Find(&projects).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn dự án trong tháng", err)
	}
	return projects, nil
}

// teamCost tổng lương + thưởng của toàn bộ team trong một dự án
func teamCost(team *models.Team) float64 {
	var cost float64
	if team.MainPhotographer != nil {
		cost += team.MainPhotographer.Salary + team.MainPhotographer.Bonus
	}
	for _, member := range team.AssistPhotographers {
		cost += member.Salary + member.Bonus
	}
	for _, member := range team.MakeupArtists {
		cost += member.Salary + member.Bonus
	}
	for _, member := range team.RetouchArtists {
		cost += member.Salary + member.Bonus
	}
	return cost
}

// MonthlyOverview tổng quan tài chính tháng. Chi phí lương lấy từ
// tổng hợp lương tháng, không lấy từ team của từng dự án.
func (s *FinanceService) MonthlyOverview(month string) (*dto.MonthlyOverview, error) {
	if err := validator.ValidateMonth(month); err != nil {
		return nil, err
	}

	projects, err := s.projectsInMonth(month)
	if err != nil {
		return nil, err
	}

	overview := dto.MonthlyOverview{Month: month}

	for _, project := range projects {
		revenue := project.PackageFinalPrice
		overview.TotalRevenue += revenue

		if project.Status == constants.ProjectStatusCompleted {
			overview.RevenueBreakdown.Completed += revenue
			overview.CompletedProjectCount++
		} else {
			overview.RevenueBreakdown.Pending += revenue
		}

		overview.CostBreakdown.Partners += project.Partners.TotalCost
	}
	overview.ProjectCount = len(projects)
	overview.RevenueBreakdown.Total = overview.TotalRevenue

	var salaryCosts float64
	if err := s.db.Model(&models.MonthlySalary{}).
		Where("month = ?", month).
		Select("COALESCE(SUM(total_salary), 0)").Scan(&salaryCosts).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn chi phí lương", err)
	}

	overview.CostBreakdown.Salaries = salaryCosts
	overview.CostBreakdown.Total = salaryCosts + overview.CostBreakdown.Partners
	overview.TotalCosts = overview.CostBreakdown.Total
	overview.TotalProfit = overview.TotalRevenue - overview.TotalCosts

	return &overview, nil
}

// CalculateProfit tính lợi nhuận trong khoảng thời gian. Chi phí
// lương ở đây cộng từ team của từng dự án, khác với MonthlyOverview.
func (s *FinanceService) CalculateProfit(fromDate, toDate string) (*dto.ProfitReport, error) {
	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "from_date không hợp lệ, định dạng: YYYY-MM-DD", err)
	}
	to, err := time.Parse("2006-01-02", toDate)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "to_date không hợp lệ, định dạng: YYYY-MM-DD", err)
	}

	var projects []models.Project
	if err := s.db.Where("shoot_date >= ? AND shoot_date <= ?", from, to).Find(&projects).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn dự án", err)
	}

	report := dto.ProfitReport{
		Period:   fmt.Sprintf("%s to %s", fromDate, toDate),
		Projects: []dto.ProjectProfitLine{},
	}

	for _, project := range projects {
		revenue := project.PackageFinalPrice
		costs := teamCost(&project.Team) + project.Partners.TotalCost
		profit := revenue - costs

		var margin float64
		if revenue > 0 {
			margin = profit / revenue * 100
		}

		report.TotalRevenue += revenue
		report.TotalCosts += costs
		report.Projects = append(report.Projects, dto.ProjectProfitLine{
			ProjectID:    project.ID,
			ProjectCode:  project.ProjectCode,
			CustomerName: project.CustomerName,
			Revenue:      revenue,
			Costs:        costs,
			Profit:       profit,
			ProfitMargin: margin,
		})
	}

	report.Profit = report.TotalRevenue - report.TotalCosts
	if report.TotalRevenue > 0 {
		report.ProfitMargin = report.Profit / report.TotalRevenue * 100
	}

	return &report, nil
}

// ProjectFinanceDetail chi tiết tài chính của một dự án
func (s *FinanceService) ProjectFinanceDetail(projectID uint) (*dto.ProjectFinanceDetail, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy dự án", apperrors.ErrProjectNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn dự án", err)
	}

	detail := dto.ProjectFinanceDetail{
		ProjectID:    project.ID,
		ProjectCode:  project.ProjectCode,
		CustomerName: project.CustomerName,
		Revenue:      project.PackageFinalPrice,
		Costs: dto.ProjectCostBreakdown{
			Salaries: teamCost(&project.Team),
			Partners: project.Partners.TotalCost,
		},
	}

	detail.TotalCost = detail.Costs.Salaries + detail.Costs.Partners + detail.Costs.Other
	detail.Profit = detail.Revenue - detail.TotalCost
	if detail.Revenue > 0 {
		detail.ProfitMargin = detail.Profit / detail.Revenue * 100
	}

	return &detail, nil
}

// CashFlow dòng tiền tháng: tiền vào là số khách đã trả, tiền ra là
// lương tháng đã thanh toán cộng chi phí đối tác. Chưa có số dư
// chuyển từ kỳ trước nên opening_balance luôn bằng 0.
func (s *FinanceService) CashFlow(month string) (*dto.CashFlowReport, error) {
	if err := validator.ValidateMonth(month); err != nil {
		return nil, err
	}

	projects, err := s.projectsInMonth(month)
	if err != nil {
		return nil, err
	}

	report := dto.CashFlowReport{Period: month}

	for _, project := range projects {
		report.TotalInflow += project.Payment.Paid
		report.OutflowDetails.Partners += project.Partners.TotalCost
	}
	report.InflowDetails.ProjectPayments = report.TotalInflow

	var salaryOutflow float64
	if err := s.db.Model(&models.MonthlySalary{}).
		Where("month = ? AND status = ?", month, constants.SalaryStatusPaid).
		Select("COALESCE(SUM(total_salary), 0)").Scan(&salaryOutflow).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn lương đã thanh toán", err)
	}

	report.OutflowDetails.Salaries = salaryOutflow
	report.TotalOutflow = salaryOutflow + report.OutflowDetails.Partners
	report.ClosingBalance = report.TotalInflow - report.TotalOutflow

	return &report, nil
}

// RevenueByPackage doanh thu theo gói chụp trong tháng
func (s *FinanceService) RevenueByPackage(month string) (*dto.PackageRevenueReport, error) {
	if err := validator.ValidateMonth(month); err != nil {
		return nil, err
	}

	projects, err := s.projectsInMonth(month)
	if err != nil {
		return nil, err
	}

	report := dto.PackageRevenueReport{
		Period:   month,
		Packages: []dto.PackageRevenueLine{},
	}

	index := map[string]int{}
	for _, project := range projects {
		revenue := project.PackageFinalPrice
		report.TotalRevenue += revenue

		i, ok := index[project.PackageName]
		if !ok {
			i = len(report.Packages)
			index[project.PackageName] = i
			report.Packages = append(report.Packages, dto.PackageRevenueLine{PackageName: project.PackageName})
		}
		report.Packages[i].ProjectCount++
		report.Packages[i].Revenue += revenue
	}

	return &report, nil
}

// FinancialSummary ghép tổng quan tháng với số tiền khách còn nợ
func (s *FinanceService) FinancialSummary(month string) (*dto.FinancialSummary, error) {
	overview, err := s.MonthlyOverview(month)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectsInMonth(month)
	if err != nil {
		return nil, err
	}

	var pendingPayments float64
	for _, project := range projects {
		pendingPayments += project.PackageFinalPrice - project.Payment.Paid
	}

	summary := dto.FinancialSummary{
		Period:            month,
		Revenue:           overview.TotalRevenue,
		Costs:             overview.TotalCosts,
		Profit:            overview.TotalProfit,
		ProjectCount:      overview.ProjectCount,
		CompletedProjects: overview.CompletedProjectCount,
		PendingPayments:   pendingPayments,
		TotalSalaries:     overview.CostBreakdown.Salaries,
		PartnerCosts:      overview.CostBreakdown.Partners,
	}

	if overview.TotalRevenue > 0 {
		summary.ProfitMargin = overview.TotalProfit / overview.TotalRevenue * 100
	}

	return &summary, nil
}
