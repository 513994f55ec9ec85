package dto

// RevenueBreakdown doanh thu chia theo trạng thái dự án
type RevenueBreakdown struct {
	Completed float64 `json:"completed"`
	Pending   float64 `json:"pending"`
	Total     float64 `json:"total"`
}

// CostBreakdown chi phí chia theo nguồn
type CostBreakdown struct {
	Salaries float64 `json:"salaries"`
	Partners float64 `json:"partners"`
	Total    float64 `json:"total"`
}

// MonthlyOverview tổng quan tài chính tháng
type MonthlyOverview struct {
	Month                 string           `json:"month"`
	TotalRevenue          float64          `json:"total_revenue"`
	TotalCosts            float64          `json:"total_costs"`
	TotalProfit           float64          `json:"total_profit"`
	RevenueBreakdown      RevenueBreakdown `json:"revenue_breakdown"`
	CostBreakdown         CostBreakdown    `json:"cost_breakdown"`
	ProjectCount          int              `json:"project_count"`
	CompletedProjectCount int              `json:"completed_project_count"`
}

// ProjectProfitLine lợi nhuận từng dự án trong báo cáo
type ProjectProfitLine struct {
	ProjectID    uint    `json:"project_id"`
	ProjectCode  string  `json:"project_code"`
	CustomerName string  `json:"customer_name"`
	Revenue      float64 `json:"revenue"`
	Costs        float64 `json:"costs"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

// ProfitReport báo cáo lợi nhuận theo khoảng thời gian
type ProfitReport struct {
	Period       string              `json:"period"`
	TotalRevenue float64             `json:"total_revenue"`
	TotalCosts   float64             `json:"total_costs"`
	Profit       float64             `json:"profit"`
	ProfitMargin float64             `json:"profit_margin"`
	Projects     []ProjectProfitLine `json:"projects"`
}

// ProjectCostBreakdown chi phí của một dự án theo nguồn
type ProjectCostBreakdown struct {
	Salaries float64 `json:"salaries"`
	Partners float64 `json:"partners"`
	Other    float64 `json:"other"`
}

// ProjectFinanceDetail chi tiết tài chính một dự án
type ProjectFinanceDetail struct {
	ProjectID    uint                 `json:"project_id"`
	ProjectCode  string               `json:"project_code"`
	CustomerName string               `json:"customer_name"`
	Revenue      float64              `json:"revenue"`
	Costs        ProjectCostBreakdown `json:"costs"`
	TotalCost    float64              `json:"total_cost"`
	Profit       float64              `json:"profit"`
	ProfitMargin float64              `json:"profit_margin"`
}

// InflowDetails chi tiết dòng tiền vào
type InflowDetails struct {
	ProjectPayments float64 `json:"project_payments"`
}

// OutflowDetails chi tiết dòng tiền ra
type OutflowDetails struct {
	Salaries float64 `json:"salaries"`
	Partners float64 `json:"partners"`
}

// CashFlowReport dòng tiền tháng
type CashFlowReport struct {
	Period         string         `json:"period"`
	OpeningBalance float64        `json:"opening_balance"`
	TotalInflow    float64        `json:"total_inflow"`
	TotalOutflow   float64        `json:"total_outflow"`
	ClosingBalance float64        `json:"closing_balance"`
	InflowDetails  InflowDetails  `json:"inflow_details"`
	OutflowDetails OutflowDetails `json:"outflow_details"`
}

// PackageRevenueLine doanh thu theo một gói
type PackageRevenueLine struct {
	PackageName  string  `json:"package_name"`
	ProjectCount int     `json:"project_count"`
	Revenue      float64 `json:"revenue"`
}

// PackageRevenueReport doanh thu theo gói chụp trong tháng
type PackageRevenueReport struct {
	Period       string               `json:"period"`
	Packages     []PackageRevenueLine `json:"packages"`
	TotalRevenue float64              `json:"total_revenue"`
}

// FinancialSummary tổng hợp tài chính tháng
type FinancialSummary struct {
	Period            string  `json:"period"`
	Revenue           float64 `json:"revenue"`
	Costs             float64 `json:"costs"`
	Profit            float64 `json:"profit"`
	ProfitMargin      float64 `json:"profit_margin"`
	ProjectCount      int     `json:"project_count"`
	CompletedProjects int     `json:"completed_projects"`
	PendingPayments   float64 `json:"pending_payments"`
	TotalSalaries     float64 `json:"total_salaries"`
	PartnerCosts      float64 `json:"partner_costs"`
}
