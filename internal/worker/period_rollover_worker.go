// Package worker - PeriodRolloverWorker quét và đóng/mở period hết hạn theo chu kỳ.
// Quét hàng ngày toàn bộ thành viên đang hoạt động; period chưa hết hạn là no-op.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	periodsvc "grip_backend/internal/api/period/service"
	"grip_backend/internal/logger"
)

// PeriodRolloverWorker worker rollover period định kỳ.
//
// Mỗi lần chạy: lấy danh sách thành viên isActive && !isDeleted, đánh giá
// chuyển trạng thái Open -> Closed cho từng người. Lỗi của 1 thành viên được
// cô lập bên trong RolloverSweep — một người lỗi không chặn người còn lại.
type PeriodRolloverWorker struct {
	periodService *periodsvc.PeriodService
	interval      time.Duration // Khoảng thời gian giữa các lần quét (vd: 24h)
}

// NewPeriodRolloverWorker tạo worker mới.
func NewPeriodRolloverWorker(interval time.Duration) (*PeriodRolloverWorker, error) {
	periodService, err := periodsvc.NewPeriodService()
	if err != nil {
		return nil, err
	}
	if interval < time.Hour {
		interval = 24 * time.Hour
	}
	return &PeriodRolloverWorker{
		periodService: periodService,
		interval:      interval,
	}, nil
}

// Start chạy worker trong vòng lặp.
func (w *PeriodRolloverWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🔄 [PERIOD_ROLLOVER] Starting Period Rollover Worker...")

	// Quét ngay 1 lần sau 1 phút khởi động để bắt kịp các period quá hạn lúc server tắt.
	if !waitOrDone(ctx, time.Minute) {
		log.Info("🔄 [PERIOD_ROLLOVER] Period Rollover Worker stopped")
		return
	}
	w.runSweep(ctx, log)

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [PERIOD_ROLLOVER] Period Rollover Worker stopped")
			return
		case <-ticker.C:
			w.runSweep(ctx, log)
		}
	}
}

// waitOrDone chờ hết khoảng d hoặc tới khi ctx bị hủy, tùy cái nào đến trước.
// Trả về false nếu ctx bị hủy (caller dừng ngay, không chờ hết d).
func waitOrDone(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// runSweep chạy một đợt quét rollover.
func (w *PeriodRolloverWorker) runSweep(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("🔄 [PERIOD_ROLLOVER] Panic khi quét, sẽ tiếp tục lần chạy tiếp theo")
		}
	}()

	rolled, errs := w.periodService.RolloverSweep(ctx)

	for _, err := range errs {
		log.WithError(err).Warn("🔄 [PERIOD_ROLLOVER] Rollover thất bại cho 1 thành viên, bỏ qua")
	}

	if rolled > 0 || len(errs) > 0 {
		log.WithFields(map[string]interface{}{
			"rolled": rolled,
			"errors": len(errs),
		}).Info("🔄 [PERIOD_ROLLOVER] Đã hoàn tất đợt quét rollover")
	}
}
