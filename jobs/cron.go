package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// PopularCacheRefresher định nghĩa interface cho việc làm mới cache gói phổ biến
type PopularCacheRefresher interface {
	RefreshPopularCache() error
}

var popularCacheRefresher PopularCacheRefresher

// SetPopularCacheRefresher thiết lập implementation cho PopularCacheRefresher
func SetPopularCacheRefresher(refresher PopularCacheRefresher) {
	popularCacheRefresher = refresher
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang làm mới cache gói phổ biến lúc: %v", now)
		if popularCacheRefresher == nil {
			log.Printf("Lỗi: PopularCacheRefresher chưa được thiết lập")
			return
		}
		if err := popularCacheRefresher.RefreshPopularCache(); err != nil {
			log.Printf("Lỗi khi làm mới cache gói phổ biến: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
