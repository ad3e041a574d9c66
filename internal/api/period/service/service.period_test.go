package periodsvc

import (
	"testing"
	"time"

	periodmodels "grip_backend/internal/api/period/models"
)

func TestMetricsToCarryForward_CopyNguyenTrang(t *testing.T) {
	metrics := periodmodels.PeriodMetrics{
		OneToOne:       12,
		Referrals:      7,
		Visitors:       3,
		Trainings:      5,
		Business:       450000,
		Testimonials:   2,
		AttendanceDays: 20,
		OnTimeDays:     18,
	}

	cf := metricsToCarryForward(metrics)

	if cf.OneToOne != 12 || cf.Referrals != 7 || cf.Visitors != 3 || cf.Trainings != 5 {
		t.Errorf("carryForward phải copy nguyên trạng metrics, nhận được %+v", cf)
	}
	if cf.Business != 450000 || cf.Testimonials != 2 {
		t.Errorf("business/testimonials phải copy nguyên trạng, nhận được %+v", cf)
	}
	if cf.AttendanceDays != 20 || cf.OnTimeDays != 18 {
		t.Errorf("attendanceDays/onTimeDays phải copy nguyên trạng, nhận được %+v", cf)
	}
}

func TestCarryForwardToCategoryValues_MapAttendanceDays(t *testing.T) {
	cf := metricsToCarryForward(periodmodels.PeriodMetrics{AttendanceDays: 9, OnTimeDays: 4})

	values := carryForwardToCategoryValues(cf)

	if values[periodmodels.CategoryAttendance] != 9 {
		t.Errorf("hạng mục attendance phải lấy từ attendanceDays (9), nhận được %v", values[periodmodels.CategoryAttendance])
	}
	for _, category := range periodmodels.ScoreCategories {
		if _, ok := values[category]; !ok {
			t.Errorf("thiếu hạng mục %s trong map số dư chuyển kỳ", category)
		}
	}
}

func TestNextPeriodRange_CongThucNgayThang(t *testing.T) {
	// Kỳ cũ kết thúc 30/06/2025 -> kỳ mới 01/07/2025 đến 31/12/2025.
	oldEnd := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	startMs, endMs := NextPeriodRange(oldEnd.UnixMilli())

	start := time.UnixMilli(startMs).UTC()
	end := time.UnixMilli(endMs).UTC()

	if start.Year() != 2025 || start.Month() != time.July || start.Day() != 1 {
		t.Errorf("start kỳ mới phải là 01/07/2025, nhận được %v", start)
	}
	if end.Year() != 2025 || end.Month() != time.December || end.Day() != 31 {
		t.Errorf("end kỳ mới phải là 31/12/2025, nhận được %v", end)
	}
}

func TestNextPeriodRange_QuaRanhGioiNam(t *testing.T) {
	// Kỳ cũ kết thúc 31/12/2025 -> kỳ mới 01/01/2026 đến 30/06/2026.
	oldEnd := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	startMs, endMs := NextPeriodRange(oldEnd.UnixMilli())

	start := time.UnixMilli(startMs).UTC()
	end := time.UnixMilli(endMs).UTC()

	if start.Year() != 2026 || start.Month() != time.January || start.Day() != 1 {
		t.Errorf("start kỳ mới phải là 01/01/2026, nhận được %v", start)
	}
	if end.Year() != 2026 || end.Month() != time.June || end.Day() != 30 {
		t.Errorf("end kỳ mới phải là 30/06/2026, nhận được %v", end)
	}
}

func TestNextPeriodRange_KyMoiLienKeKyCu(t *testing.T) {
	oldEnd := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	startMs, _ := NextPeriodRange(oldEnd.UnixMilli())

	gap := time.UnixMilli(startMs).Sub(oldEnd)
	if gap != 24*time.Hour {
		t.Errorf("start kỳ mới phải đúng sau end kỳ cũ 1 ngày, khoảng cách %v", gap)
	}
}

func TestNextPeriodRange_ChuoiKyKhongTrung(t *testing.T) {
	// Roll liên tiếp nhiều kỳ: các khoảng không được chồng lấn.
	endMs := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC).UnixMilli()

	for i := 0; i < 4; i++ {
		startMs, nextEndMs := NextPeriodRange(endMs)
		if startMs <= endMs {
			t.Fatalf("lần roll %d: start kỳ mới %d phải sau end kỳ cũ %d", i, startMs, endMs)
		}
		if nextEndMs <= startMs {
			t.Fatalf("lần roll %d: end %d phải sau start %d", i, nextEndMs, startMs)
		}
		endMs = nextEndMs
	}
}
