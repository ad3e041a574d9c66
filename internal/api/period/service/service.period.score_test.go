package periodsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	periodmodels "grip_backend/internal/api/period/models"
)

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse ngày %s lỗi: %v", s, err)
	}
	return d
}

func TestScoreMonth_DatNguongDuocTronDiem(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())

	scores := engine.ScoreMonth(MonthlyCounts{
		OneToOne:       8,
		Referrals:      6,
		Visitors:       1,
		Trainings:      1,
		Business:       300000,
		Testimonials:   1,
		AttendanceDays: 1,
	})

	assert.Equal(t, 10.0, scores[periodmodels.CategoryOneToOne], "oneToOne đạt ngưỡng phải trọn 10 điểm")
	assert.Equal(t, 15.0, scores[periodmodels.CategoryReferrals], "referrals đạt ngưỡng phải trọn 15 điểm")
	assert.Equal(t, 20.0, scores[periodmodels.CategoryVisitors], "visitors đạt ngưỡng phải trọn 20 điểm")
	assert.Equal(t, 15.0, scores[periodmodels.CategoryTrainings], "trainings đạt ngưỡng phải trọn 15 điểm")
	assert.Equal(t, 20.0, scores[periodmodels.CategoryBusiness], "business đạt ngưỡng phải trọn 20 điểm")
	assert.Equal(t, 10.0, scores[periodmodels.CategoryTestimonials], "testimonials đạt ngưỡng phải trọn 10 điểm")
	assert.Equal(t, 10.0, scores[periodmodels.CategoryAttendance], "attendance đạt ngưỡng phải trọn 10 điểm")
}

func TestScoreMonth_DuoiNguongTinhTiLe(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())

	scores := engine.ScoreMonth(MonthlyCounts{
		OneToOne: 4,        // 4/8 * 10 = 5.00
		Business: 150000,   // 150000/300000 * 20 = 10.00
	})

	assert.Equal(t, 5.0, scores[periodmodels.CategoryOneToOne], "4/8 oneToOne phải ra 5.00 điểm")
	assert.Equal(t, 10.0, scores[periodmodels.CategoryBusiness], "150000/300000 business phải ra 10.00 điểm")
	assert.Equal(t, 0.0, scores[periodmodels.CategoryReferrals], "referrals không hoạt động phải ra 0 điểm")
}

func TestScoreMonth_LamTron2ChuSo(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())

	// 1/8 * 10 = 1.25; 5/6 * 15 = 12.5
	scores := engine.ScoreMonth(MonthlyCounts{OneToOne: 1, Referrals: 5})

	assert.Equal(t, 1.25, scores[periodmodels.CategoryOneToOne])
	assert.Equal(t, 12.5, scores[periodmodels.CategoryReferrals])
}

func TestScoreMonth_KhongHoatDongTatCaBangKhong(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())

	scores := engine.ScoreMonth(MonthlyCounts{})

	for _, category := range periodmodels.ScoreCategories {
		assert.Zero(t, scores[category], "hạng mục %s không hoạt động phải 0 điểm", category)
	}
}

func TestScoreMonth_BusinessOverrideOnDinh(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())
	counts := MonthlyCounts{Business: 450000}

	first := engine.ScoreMonth(counts)
	second := engine.ScoreMonth(counts)

	assert.Equal(t, 20.0, first[periodmodels.CategoryBusiness], "business vượt ngưỡng vẫn chặn trần 20 điểm")
	assert.Equal(t, first[periodmodels.CategoryBusiness], second[periodmodels.CategoryBusiness], "chấm lại cùng input phải ra cùng kết quả")
}

func TestScoreMonth_DuoiNguongNhoHonTranKhiMinimumLonHon1(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())

	scores := engine.ScoreMonth(MonthlyCounts{OneToOne: 7, Referrals: 5})

	assert.Less(t, scores[periodmodels.CategoryOneToOne], 10.0, "minimum-1 oneToOne phải dưới điểm trần")
	assert.Less(t, scores[periodmodels.CategoryReferrals], 15.0, "minimum-1 referrals phải dưới điểm trần")
}

func TestScoreMonth_DongBien(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())

	prev := -1.0
	for count := int64(0); count <= 10; count++ {
		scores := engine.ScoreMonth(MonthlyCounts{OneToOne: count})
		curr := scores[periodmodels.CategoryOneToOne]
		assert.GreaterOrEqual(t, curr, prev, "điểm oneToOne không được giảm khi count tăng (count=%d)", count)
		prev = curr
	}
}

func TestScoreWindows_TongKhongChanTran(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())
	today := mustParseDate(t, "2025-06-10")
	windows := ComputeMonthlyWindows(today)

	countsByKey := make(map[string]MonthlyCounts, len(windows))
	for _, w := range windows {
		countsByKey[w.Key] = MonthlyCounts{OneToOne: 8}
	}

	monthly, final := engine.ScoreWindows(countsByKey, windows)

	assert.Len(t, monthly, 7)
	assert.Equal(t, 70.0, final[periodmodels.CategoryOneToOne], "7 tháng đạt trần phải cộng dồn 7×10 = 70 điểm")
}

func TestScoreWindows_ThangThieuDuLieuTinhBangKhong(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())
	windows := ComputeMonthlyWindows(mustParseDate(t, "2025-06-10"))

	countsByKey := map[string]MonthlyCounts{
		windows[0].Key: {Referrals: 6},
	}

	monthly, final := engine.ScoreWindows(countsByKey, windows)

	assert.Equal(t, 15.0, final[periodmodels.CategoryReferrals])
	assert.Zero(t, monthly[windows[1].Key][periodmodels.CategoryReferrals], "tháng không có dữ liệu phải 0 điểm")
}

func TestNewScoringEngine_CopyConfigKhongBiSuaNgoai(t *testing.T) {
	cfg := DefaultScoreConfig()
	engine := NewScoringEngine(cfg)

	// Sửa map gốc sau khi khởi tạo: engine không được đổi theo.
	cfg[periodmodels.CategoryOneToOne] = CategoryConfig{Minimum: 1, MaxPoints: 100}

	scores := engine.ScoreMonth(MonthlyCounts{OneToOne: 8})
	assert.Equal(t, 10.0, scores[periodmodels.CategoryOneToOne], "engine phải giữ cấu hình copy lúc khởi tạo")

	got := engine.Config()
	got[periodmodels.CategoryReferrals] = CategoryConfig{Minimum: 1, MaxPoints: 1}
	scores2 := engine.ScoreMonth(MonthlyCounts{Referrals: 6})
	assert.Equal(t, 15.0, scores2[periodmodels.CategoryReferrals], "sửa bản copy từ Config() không được ảnh hưởng engine")
}

func TestRawTotals_CongDonGiaTriTho(t *testing.T) {
	countsByKey := map[string]MonthlyCounts{
		"2025-01": {OneToOne: 3, Business: 100000, AttendanceDays: 4},
		"2025-02": {OneToOne: 5, Business: 250000, AttendanceDays: 3},
	}

	totals := RawTotals(countsByKey)

	assert.Equal(t, 8.0, totals[periodmodels.CategoryOneToOne])
	assert.Equal(t, 350000.0, totals[periodmodels.CategoryBusiness])
	assert.Equal(t, 7.0, totals[periodmodels.CategoryAttendance], "attendance phải lấy từ attendanceDays")
}

func TestComputeCarryForwardUsed_ChanTheoThieuHutVaSoDu(t *testing.T) {
	engine := NewScoringEngine(DefaultScoreConfig())

	carryForward := periodmodels.CategoryValues{
		periodmodels.CategoryOneToOne:  10,
		periodmodels.CategoryReferrals: 2,
		periodmodels.CategoryVisitors:  5,
	}
	rawTotals := periodmodels.CategoryValues{
		periodmodels.CategoryOneToOne:  50, // thiếu 8*7-50 = 6, dư 10 -> tiêu 6
		periodmodels.CategoryReferrals: 30, // thiếu 6*7-30 = 12, dư 2 -> tiêu 2
		periodmodels.CategoryVisitors:  20, // vượt ngưỡng 1*7 -> tiêu 0
	}

	used := engine.ComputeCarryForwardUsed(carryForward, rawTotals)

	assert.Equal(t, 6.0, used[periodmodels.CategoryOneToOne], "tiêu phải chặn theo phần thiếu hụt")
	assert.Equal(t, 2.0, used[periodmodels.CategoryReferrals], "tiêu phải chặn theo số dư chuyển kỳ")
	assert.Zero(t, used[periodmodels.CategoryVisitors], "đã đủ ngưỡng thì không tiêu số dư")
}
