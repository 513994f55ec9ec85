package constants

// Project status
const (
	ProjectStatusPending    = "pending"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

// Payment status
const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusDeposit = "deposit"
	PaymentStatusPaid    = "paid"
)

// Monthly salary status
const (
	SalaryStatusPending   = "pending"
	SalaryStatusPaid      = "paid"
	SalaryStatusCancelled = "cancelled"
)

// Vai trò nhân viên
var EmployeeRoles = []string{
	"Photo/Retouch",
	"Makeup Artist",
	"Sales",
	"Manager",
	"Content",
	"Designer",
}

// Kỹ năng nhân viên
var EmployeeSkills = []string{
	"Chụp chính",
	"Chụp phụ",
	"Retouch",
	"Makeup",
	"Làm tóc",
	"Styling",
	"Sales",
	"Tư vấn khách hàng",
	"Quản lý dự án",
}

// Danh mục gói chụp
var PackageCategories = []string{
	"portrait",
	"family",
	"couple",
	"wedding",
	"event",
	"commercial",
	"other",
}

// Loại đối tác
var PartnerTypes = []string{
	"clothing",
	"printing",
	"flower",
	"venue",
	"equipment",
	"other",
}

// Loại công việc tính lương
var WorkTypes = []string{
	"mainPhotographer",
	"assistPhotographer",
	"makeupArtist",
	"retouchArtist",
	"other",
}

// Giai đoạn milestone
var MilestoneStages = []string{
	"shooting",
	"makeup",
	"retouch",
	"delivery",
	"custom",
}

// Đơn giá mặc định theo công việc
const (
	DefaultRateMainPhoto   = 500000
	DefaultRateAssistPhoto = 300000
	DefaultRateRetouch     = 50000
	DefaultRateMakeup      = 400000
)

// InList kiểm tra giá trị có nằm trong danh sách cho phép không
func InList(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
