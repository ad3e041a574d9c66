// Package worker - MeetingStatusWorker chuyển trạng thái meeting đã qua giờ kết thúc.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	meetingsvc "grip_backend/internal/api/meeting/service"
	"grip_backend/internal/logger"
)

// MeetingStatusWorker worker đánh dấu completed cho các buổi họp đã kết thúc.
// Giữ trạng thái meeting ổn định để join điểm danh ↔ meeting của aggregator
// phản ánh đúng các buổi đã diễn ra.
type MeetingStatusWorker struct {
	meetingService *meetingsvc.MeetingService
	interval       time.Duration // Khoảng thời gian giữa các lần quét (vd: 1h)
}

// NewMeetingStatusWorker tạo worker mới.
func NewMeetingStatusWorker(interval time.Duration) (*MeetingStatusWorker, error) {
	meetingService, err := meetingsvc.NewMeetingService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = time.Hour
	}
	return &MeetingStatusWorker{
		meetingService: meetingService,
		interval:       interval,
	}, nil
}

// Start chạy worker trong vòng lặp.
func (w *MeetingStatusWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("📅 [MEETING_STATUS] Starting Meeting Status Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📅 [MEETING_STATUS] Meeting Status Worker stopped")
			return
		case <-ticker.C:
			w.runSweep(ctx, log)
		}
	}
}

// runSweep chạy một đợt cập nhật trạng thái.
func (w *MeetingStatusWorker) runSweep(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("📅 [MEETING_STATUS] Panic khi quét, sẽ tiếp tục lần chạy tiếp theo")
		}
	}()

	updated, err := w.meetingService.MarkExpiredCompleted(ctx)
	if err != nil {
		log.WithError(err).Error("📅 [MEETING_STATUS] Lỗi cập nhật trạng thái meeting")
		return
	}
	if updated > 0 {
		log.WithFields(map[string]interface{}{
			"updated": updated,
		}).Info("📅 [MEETING_STATUS] Đã chuyển meeting sang completed")
	}
}
