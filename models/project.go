package models

import "time"

// TeamMember thành viên team trong dự án
type TeamMember struct {
	Employee uint    `json:"employee"`
	Salary   float64 `json:"salary"`
	Bonus    float64 `json:"bonus"`
	Notes    string  `json:"notes,omitempty"`
}

// RetouchArtist có thêm số lượng ảnh retouch
type RetouchArtist struct {
	Employee uint    `json:"employee"`
	Salary   float64 `json:"salary"`
	Bonus    float64 `json:"bonus"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

// Team đội ngũ thực hiện dự án
type Team struct {
	MainPhotographer    *TeamMember     `json:"main_photographer"`
	AssistPhotographers []TeamMember    `json:"assist_photographers"`
	MakeupArtists       []TeamMember    `json:"makeup_artists"`
	RetouchArtists      []RetouchArtist `json:"retouch_artists"`
}

// PaymentHistoryItem một lần thanh toán
type PaymentHistoryItem struct {
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Method     string  `json:"method,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	ReceivedBy *uint   `json:"received_by,omitempty"`
}

// Payment thông tin thanh toán của dự án
type Payment struct {
	Status         string               `json:"status"`
	Deposit        float64              `json:"deposit"`
	Final          float64              `json:"final"`
	Paid           float64              `json:"paid"`
	PaymentHistory []PaymentHistoryItem `json:"payment_history"`
}

// Progress tiến độ dự án
type Progress struct {
	ShootingDone bool `json:"shooting_done"`
	RetouchDone  bool `json:"retouch_done"`
	Delivered    bool `json:"delivered"`
}

// Milestone cột mốc dự án
type Milestone struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Stage         string `json:"stage"`  // shooting, makeup, retouch, delivery, custom
	Status        string `json:"status"` // pending, in-progress, completed
	Team          *Team  `json:"team,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	DueDate       string `json:"due_date,omitempty"`
	CompletedDate string `json:"completed_date,omitempty"`
	CompletedBy   *uint  `json:"completed_by,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// PartnerItem đối tác trang phục kèm chi phí thực tế
type PartnerItem struct {
	Partner    uint    `json:"partner"`
	ActualCost float64 `json:"actual_cost"`
}

// PartnerService dịch vụ đối tác (in ấn, hoa)
type PartnerService struct {
	Included   bool    `json:"included"`
	ActualCost float64 `json:"actual_cost"`
}

// ProjectPartners đối tác sử dụng trong dự án
type ProjectPartners struct {
	Clothing  []PartnerItem   `json:"clothing"`
	Printing  *PartnerService `json:"printing"`
	Flower    *PartnerService `json:"flower"`
	TotalCost float64         `json:"total_cost"`
	Notes     []string        `json:"notes"`
}

// AdditionalPackage gói bổ sung trong dự án
type AdditionalPackage struct {
	PackageType       uint    `json:"package_type"`
	PackageName       string  `json:"package_name"`
	PackagePrice      float64 `json:"package_price"`
	PackageDiscount   float64 `json:"package_discount"`
	PackageFinalPrice float64 `json:"package_final_price"`
	Team              *Team   `json:"team,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// ProjectFile file đính kèm dự án
type ProjectFile struct {
	Type       string `json:"type"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploaded_at,omitempty"`
}

// UpdateHistoryItem một lần cập nhật dự án
type UpdateHistoryItem struct {
	Date    string `json:"date"`
	User    *uint  `json:"user,omitempty"`
	Action  string `json:"action"`
	Notes   string `json:"notes,omitempty"`
	Changes string `json:"changes,omitempty"`
}

type Project struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ProjectCode string `json:"project_code" gorm:"uniqueIndex;size:20"`

	// Thông tin khách hàng
	CustomerName  string `json:"customer_name" gorm:"not null;index"`
	CustomerPhone string `json:"customer_phone" gorm:"not null"`
	CustomerEmail string `json:"customer_email"`

	// Thông tin gói chụp, giá copy tại thời điểm tạo
	PackageTypeID     *uint    `json:"package_type"`
	PackageType       *Package `json:"-" gorm:"foreignKey:PackageTypeID"`
	PackageName       string   `json:"package_name" gorm:"not null"`
	PackagePrice      float64  `json:"package_price"`
	PackageDiscount   float64  `json:"package_discount" gorm:"default:0"`
	PackageFinalPrice float64  `json:"package_final_price"`

	AdditionalPackages []AdditionalPackage `json:"additional_packages" gorm:"type:jsonb;serializer:json"`
	Payment            Payment             `json:"payment" gorm:"type:jsonb;serializer:json"`

	// Thông tin chụp
	ShootDate time.Time `json:"shoot_date" gorm:"index"`
	ShootTime string    `json:"shoot_time"`
	Location  string    `json:"location"`

	Status   string   `json:"status" gorm:"default:'pending';index"`
	Progress Progress `json:"progress" gorm:"type:jsonb;serializer:json"`

	Milestones []Milestone     `json:"milestones" gorm:"type:jsonb;serializer:json"`
	Team       Team            `json:"team" gorm:"type:jsonb;serializer:json"`
	Partners   ProjectPartners `json:"partners" gorm:"type:jsonb;serializer:json"`

	CompletedDate *time.Time `json:"completed_date"`
	DeliveryDate  *time.Time `json:"delivery_date"`

	Files []ProjectFile `json:"files" gorm:"type:jsonb;serializer:json"`
	Notes string        `json:"notes"`

	UpdateHistory []UpdateHistoryItem `json:"update_history" gorm:"type:jsonb;serializer:json"`

	CreatedBy      *uint     `json:"created_by,omitempty"`
	LastModifiedBy *uint     `json:"last_modified_by,omitempty"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
