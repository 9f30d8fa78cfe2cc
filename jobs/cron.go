package jobs

import (
	"context"
	"log"
	"time"

	"hotelops/constants"
	"hotelops/dto"

	"github.com/robfig/cron/v3"
)

const auditTimeout = 5 * time.Minute

// NightAuditor định nghĩa interface cho việc chốt sổ cuối ngày
type NightAuditor interface {
	Run(ctx context.Context, day time.Time) (*dto.NightAuditResult, error)
}

// AuditPreviousDay chạy audit cho ngày hôm trước theo giờ của now
func AuditPreviousDay(ctx context.Context, auditor NightAuditor, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, auditTimeout)
	defer cancel()

	day := now.AddDate(0, 0, -1)
	log.Printf("Đang chạy night audit cho ngày %s", day.Format("2006-01-02"))
	if _, err := auditor.Run(ctx, day); err != nil {
		log.Printf("Lỗi khi chạy night audit: %v", err)
		return err
	}
	return nil
}

// InitCronJobs khởi tạo các cron jobs. schedule rỗng thì chạy lúc 0h mỗi ngày.
func InitCronJobs(c *cron.Cron, auditor NightAuditor, schedule string) error {
	if schedule == "" {
		schedule = constants.DefaultNightAuditCron
	}

	loc := c.Location()
	_, err := c.AddFunc(schedule, func() {
		_ = AuditPreviousDay(context.Background(), auditor, time.Now().In(loc))
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
