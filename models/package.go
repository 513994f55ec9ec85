package models

import (
	"time"

	"github.com/lib/pq"
)

// PackageDetails chi tiết gói chụp
type PackageDetails struct {
	Photo         int      `json:"photo"`
	Makeup        int      `json:"makeup"`
	Assistant     int      `json:"assistant"`
	Retouch       int      `json:"retouch"`
	Time          string   `json:"time"`
	Location      string   `json:"location"`
	RetouchPhotos int      `json:"retouch_photos"`
	ExtraServices []string `json:"extra_services"`
}

type Package struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	PackageID       string         `json:"package_id" gorm:"uniqueIndex;size:20"`
	Name            string         `json:"name" gorm:"not null"`
	Category        string         `json:"category" gorm:"not null;index"`
	Price           float64        `json:"price" gorm:"not null"`
	Details         PackageDetails `json:"details" gorm:"type:jsonb;serializer:json"`
	Includes        pq.StringArray `json:"includes" gorm:"type:text[]"`
	IsActive        bool           `json:"is_active" gorm:"default:true;index"`
	PopularityScore int            `json:"popularity_score" gorm:"default:0"`
	Description     string         `json:"description"`
	Notes           string         `json:"notes"`
	CreatedBy       *uint          `json:"created_by,omitempty"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Package) TableName() string {
	return "packages"
}
