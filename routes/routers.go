package routes

import (
	"studio/controllers"
	middlewares "studio/middleware"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) {

	authController := controllers.NewAuthController(db)
	employeeController := controllers.NewEmployeeController(db)
	packageController := controllers.NewPackageController(db, redisCli)
	partnerController := controllers.NewPartnerController(db)
	projectController := controllers.NewProjectController(db, redisCli, cld)
	salaryController := controllers.NewSalaryController(db)
	financeController := controllers.NewFinanceController(db)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", middlewares.AuthMiddleware(1), authController.Register)
	v1.POST("/auth/login", authController.Login)

	// Nhân viên: admin/manager quản lý, staff chỉ xem
	v1.GET("/employees", middlewares.AuthMiddleware(), employeeController.List)
	v1.POST("/employees", middlewares.AuthMiddleware(1, 2), employeeController.Create)
	v1.GET("/employees/:id", middlewares.AuthMiddleware(), employeeController.GetByID)
	v1.PUT("/employees/:id", middlewares.AuthMiddleware(1, 2), employeeController.Update)
	v1.DELETE("/employees/:id", middlewares.AuthMiddleware(1, 2), employeeController.Delete)
	v1.GET("/employeesByRole", middlewares.AuthMiddleware(), employeeController.GetByRole)
	v1.GET("/employeesActive", middlewares.AuthMiddleware(), employeeController.GetActive)

	// Gói chụp
	v1.GET("/packages", packageController.List)
	v1.POST("/packages", middlewares.AuthMiddleware(1, 2), packageController.Create)
	v1.GET("/packages/:id", packageController.GetByID)
	v1.PUT("/packages/:id", middlewares.AuthMiddleware(1, 2), packageController.Update)
	v1.DELETE("/packages/:id", middlewares.AuthMiddleware(1, 2), packageController.Delete)
	v1.GET("/packagesByCategory", packageController.GetByCategory)
	v1.GET("/packagesPopular", packageController.GetPopular)
	v1.GET("/packagesSearch", packageController.Search)

	// Đối tác
	v1.GET("/partners", middlewares.AuthMiddleware(), partnerController.List)
	v1.POST("/partners", middlewares.AuthMiddleware(1, 2), partnerController.Create)
	v1.GET("/partners/:id", middlewares.AuthMiddleware(), partnerController.GetByID)
	v1.PUT("/partners/:id", middlewares.AuthMiddleware(1, 2), partnerController.Update)
	v1.DELETE("/partners/:id", middlewares.AuthMiddleware(1, 2), partnerController.Delete)
	v1.GET("/partnersByType", middlewares.AuthMiddleware(), partnerController.GetByType)
	v1.PUT("/partners/:id/statistics", middlewares.AuthMiddleware(1, 2), partnerController.UpdateStatistics)
	v1.PUT("/partners/:id/rating", middlewares.AuthMiddleware(), partnerController.UpdateRating)

	// Dự án
	v1.GET("/projects", middlewares.AuthMiddleware(), projectController.List)
	v1.POST("/projects", middlewares.AuthMiddleware(), projectController.Create)
	v1.GET("/projects/:id", middlewares.AuthMiddleware(), projectController.GetByID)
	v1.PUT("/projects/:id", middlewares.AuthMiddleware(), projectController.Update)
	v1.DELETE("/projects/:id", middlewares.AuthMiddleware(1, 2), projectController.Delete)
	v1.POST("/projects/:id/milestones", middlewares.AuthMiddleware(), projectController.AddMilestone)
	v1.PUT("/projects/:id/progress", middlewares.AuthMiddleware(), projectController.UpdateProgress)
	v1.POST("/projects/:id/payments", middlewares.AuthMiddleware(), projectController.AddPayment)
	v1.POST("/projects/:id/files", middlewares.AuthMiddleware(), projectController.UploadFile)
	v1.GET("/projectsByStatus", middlewares.AuthMiddleware(), projectController.GetByStatus)
	v1.GET("/projectsUpcoming", middlewares.AuthMiddleware(), projectController.GetUpcoming)

	// Lương
	v1.GET("/salaries", middlewares.AuthMiddleware(1, 2), salaryController.List)
	v1.POST("/salaries", middlewares.AuthMiddleware(1, 2), salaryController.Create)
	v1.GET("/salaries/:id", middlewares.AuthMiddleware(1, 2), salaryController.GetByID)
	v1.PUT("/salaries/:id", middlewares.AuthMiddleware(1, 2), salaryController.Update)
	v1.DELETE("/salaries/:id", middlewares.AuthMiddleware(1, 2), salaryController.Delete)
	v1.POST("/salaryMonthly", middlewares.AuthMiddleware(1, 2), salaryController.CalculateMonthly)
	v1.PUT("/salaryMonthly/:id/paid", middlewares.AuthMiddleware(1, 2), salaryController.MarkAsPaid)
	v1.GET("/salaryReport", middlewares.AuthMiddleware(1, 2), salaryController.MonthlyReport)
	v1.GET("/salaryHistory/:id", middlewares.AuthMiddleware(1, 2), salaryController.EmployeeHistory)

	// Báo cáo tài chính
	v1.GET("/finance/overview", middlewares.AuthMiddleware(1, 2), financeController.MonthlyOverview)
	v1.GET("/finance/profit", middlewares.AuthMiddleware(1, 2), financeController.CalculateProfit)
	v1.GET("/finance/projects/:id", middlewares.AuthMiddleware(1, 2), financeController.ProjectDetail)
	v1.GET("/finance/cashflow", middlewares.AuthMiddleware(1, 2), financeController.CashFlow)
	v1.GET("/finance/revenueByPackage", middlewares.AuthMiddleware(1, 2), financeController.RevenueByPackage)
	v1.GET("/finance/summary", middlewares.AuthMiddleware(1, 2), financeController.Summary)
}
