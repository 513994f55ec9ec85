package services

import (
	"testing"
	"time"

	"studio/constants"
	"studio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFinanceMonth(t *testing.T, db *gorm.DB) {
	t.Helper()

	may := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)

	completed := createTestProject(t, db, "PRJ26050001", may, constants.ProjectStatusCompleted, 10000000)
	completed.Partners.TotalCost = 1000000
	completed.Payment.Paid = 10000000
	completed.Payment.Status = constants.PaymentStatusPaid
	require.NoError(t, db.Save(completed).Error)

	pending := createTestProject(t, db, "PRJ26050002", may.AddDate(0, 0, 8), constants.ProjectStatusPending, 6000000)
	pending.Partners.TotalCost = 500000
	pending.Payment.Paid = 2000000
	pending.Payment.Status = constants.PaymentStatusDeposit
	require.NoError(t, db.Save(pending).Error)

	// Dự án tháng sau không được tính vào tháng 5
	createTestProject(t, db, "PRJ26060001", time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), constants.ProjectStatusPending, 9000000)

	first := createTestEmployee(t, db, "Trần Minh", true)
	second := createTestEmployee(t, db, "Lê Hoa", true)
	require.NoError(t, db.Create(&models.MonthlySalary{EmployeeID: first.ID, Month: "2026-05", TotalSalary: 3000000, Status: constants.SalaryStatusPaid}).Error)
	require.NoError(t, db.Create(&models.MonthlySalary{EmployeeID: second.ID, Month: "2026-05", TotalSalary: 1000000, Status: constants.SalaryStatusPending}).Error)
}

func TestFinanceMonthlyOverview(t *testing.T) {
	db := newTestDB(t)
	seedFinanceMonth(t, db)
	service := NewFinanceService(db)

	overview, err := service.MonthlyOverview("2026-05")
	require.NoError(t, err)

	assert.Equal(t, 16000000.0, overview.TotalRevenue)
	assert.Equal(t, 10000000.0, overview.RevenueBreakdown.Completed)
	assert.Equal(t, 6000000.0, overview.RevenueBreakdown.Pending)
	assert.Equal(t, 2, overview.ProjectCount)
	assert.Equal(t, 1, overview.CompletedProjectCount)

	// Chi phí = toàn bộ lương tháng (4tr) + chi phí đối tác (1,5tr)
	assert.Equal(t, 4000000.0, overview.CostBreakdown.Salaries)
	assert.Equal(t, 1500000.0, overview.CostBreakdown.Partners)
	assert.Equal(t, 5500000.0, overview.TotalCosts)
	assert.Equal(t, 10500000.0, overview.TotalProfit)
}

func TestFinanceMonthlyOverviewRejectsBadMonth(t *testing.T) {
	service := NewFinanceService(newTestDB(t))

	_, err := service.MonthlyOverview("05-2026")
	require.Error(t, err)
}

func TestFinanceCalculateProfit(t *testing.T) {
	db := newTestDB(t)
	service := NewFinanceService(db)

	may := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	project := createTestProject(t, db, "PRJ26050001", may, constants.ProjectStatusCompleted, 10000000)
	project.Team = models.Team{
		MainPhotographer:    &models.TeamMember{Employee: 1, Salary: 500000, Bonus: 100000},
		AssistPhotographers: []models.TeamMember{{Employee: 2, Salary: 300000}},
	}
	project.Partners.TotalCost = 1000000
	require.NoError(t, db.Save(project).Error)

	report, err := service.CalculateProfit("2026-05-01", "2026-05-31")
	require.NoError(t, err)

	require.Len(t, report.Projects, 1)
	line := report.Projects[0]
	assert.Equal(t, 10000000.0, line.Revenue)
	assert.Equal(t, 1900000.0, line.Costs)
	assert.Equal(t, 8100000.0, line.Profit)
	assert.InDelta(t, 81.0, line.ProfitMargin, 1e-9)
	assert.Equal(t, "2026-05-01 to 2026-05-31", report.Period)
}

func TestFinanceProfitMarginZeroRevenue(t *testing.T) {
	db := newTestDB(t)
	service := NewFinanceService(db)

	may := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	project := createTestProject(t, db, "PRJ26050001", may, constants.ProjectStatusPending, 0)
	project.Partners.TotalCost = 500000
	require.NoError(t, db.Save(project).Error)

	report, err := service.CalculateProfit("2026-05-01", "2026-05-31")
	require.NoError(t, err)

	// Doanh thu 0 thì margin phải là 0, không chia cho 0
	require.Len(t, report.Projects, 1)
	assert.Zero(t, report.Projects[0].ProfitMargin)
	assert.Zero(t, report.ProfitMargin)
	assert.Equal(t, -500000.0, report.Profit)
}

func TestFinanceProjectDetail(t *testing.T) {
	db := newTestDB(t)
	service := NewFinanceService(db)

	may := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	project := createTestProject(t, db, "PRJ26050001", may, constants.ProjectStatusCompleted, 8000000)
	project.Team = models.Team{
		MainPhotographer: &models.TeamMember{Employee: 1, Salary: 500000},
		RetouchArtists:   []models.RetouchArtist{{Employee: 3, Salary: 1000000, Quantity: 20}},
	}
	project.Partners.TotalCost = 700000
	require.NoError(t, db.Save(project).Error)

	detail, err := service.ProjectFinanceDetail(project.ID)
	require.NoError(t, err)

	assert.Equal(t, 8000000.0, detail.Revenue)
	assert.Equal(t, 1500000.0, detail.Costs.Salaries)
	assert.Equal(t, 700000.0, detail.Costs.Partners)
	assert.Equal(t, 2200000.0, detail.TotalCost)
	assert.Equal(t, 5800000.0, detail.Profit)

	_, err = service.ProjectFinanceDetail(9999)
	require.Error(t, err)
}

func TestFinanceCashFlow(t *testing.T) {
	db := newTestDB(t)
	seedFinanceMonth(t, db)
	service := NewFinanceService(db)

	report, err := service.CashFlow("2026-05")
	require.NoError(t, err)

	// Tiền vào là số khách đã trả, không phải doanh thu ghi nhận
	assert.Equal(t, 12000000.0, report.TotalInflow)
	assert.Equal(t, 12000000.0, report.InflowDetails.ProjectPayments)

	// Tiền ra chỉ tính lương tháng đã thanh toán
	assert.Equal(t, 3000000.0, report.OutflowDetails.Salaries)
	assert.Equal(t, 1500000.0, report.OutflowDetails.Partners)
	assert.Equal(t, 4500000.0, report.TotalOutflow)

	assert.Zero(t, report.OpeningBalance)
	assert.Equal(t, 7500000.0, report.ClosingBalance)
}

func TestFinanceRevenueByPackage(t *testing.T) {
	db := newTestDB(t)
	service := NewFinanceService(db)

	may := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	first := createTestProject(t, db, "PRJ26050001", may, constants.ProjectStatusCompleted, 10000000)
	first.PackageName = "Gói cưới premium"
	require.NoError(t, db.Save(first).Error)

	second := createTestProject(t, db, "PRJ26050002", may, constants.ProjectStatusPending, 8000000)
	second.PackageName = "Gói cưới premium"
	require.NoError(t, db.Save(second).Error)

	third := createTestProject(t, db, "PRJ26050003", may, constants.ProjectStatusPending, 3000000)
	third.PackageName = "Gói chân dung"
	require.NoError(t, db.Save(third).Error)

	report, err := service.RevenueByPackage("2026-05")
	require.NoError(t, err)

	assert.Equal(t, 21000000.0, report.TotalRevenue)
	require.Len(t, report.Packages, 2)

	byName := map[string]int{}
	for i, line := range report.Packages {
		byName[line.PackageName] = i
	}
	premium := report.Packages[byName["Gói cưới premium"]]
	assert.Equal(t, 2, premium.ProjectCount)
	assert.Equal(t, 18000000.0, premium.Revenue)

	portrait := report.Packages[byName["Gói chân dung"]]
	assert.Equal(t, 1, portrait.ProjectCount)
	assert.Equal(t, 3000000.0, portrait.Revenue)
}

func TestFinanceFinancialSummary(t *testing.T) {
	db := newTestDB(t)
	seedFinanceMonth(t, db)
	service := NewFinanceService(db)

	summary, err := service.FinancialSummary("2026-05")
	require.NoError(t, err)

	assert.Equal(t, 16000000.0, summary.Revenue)
	assert.Equal(t, 5500000.0, summary.Costs)
	assert.Equal(t, 10500000.0, summary.Profit)
	// Khách còn nợ: 6tr - 2tr đã cọc
	assert.Equal(t, 4000000.0, summary.PendingPayments)
	assert.Equal(t, 2, summary.ProjectCount)
	assert.Equal(t, 1, summary.CompletedProjects)
	assert.InDelta(t, 65.625, summary.ProfitMargin, 1e-9)
}
