package helper

import (
	"log"
	"time"

	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/model"

	"github.com/robfig/cron/v3"
)

var routeScheduler *cron.Cron

func StartRouteExpiryScheduler() {
	routeScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi giờ là đủ, end_date chỉ có độ phân giải ngày
	_, err := routeScheduler.AddFunc("@hourly", expireRoutes)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	routeScheduler.Start()
	log.Println("Route expiry scheduler started (hourly)")
}

func expireRoutes() {
	now := time.Now()
	result := database.DB.Model(&model.Route{}).
		Where("status = ? AND end_date < ?", constants.ROUTE_STATUS_ACTIVE, now).
		Update("status", constants.ROUTE_STATUS_EXPIRED)

	if result.Error != nil {
		log.Printf("Lỗi cập nhật tuyến bay: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d routes as EXPIRED", result.RowsAffected)
	}
}

// Dừng scheduler khi tắt server
func StopRouteExpiryScheduler() {
	if routeScheduler != nil {
		routeScheduler.Stop()
		log.Println("Route expiry scheduler stopped")
	}
}
