// Package periodsvc - Scoring engine.
// Chấm điểm tỉ lệ tuyến tính có trần theo từng hạng mục, cấu hình bất biến
// được inject lúc khởi tạo (test inject ngưỡng khác được).
package periodsvc

import (
	"math"

	periodmodels "grip_backend/internal/api/period/models"
)

// CategoryConfig là ngưỡng tối thiểu/tháng và điểm tối đa/tháng của 1 hạng mục.
type CategoryConfig struct {
	Minimum   float64
	MaxPoints float64
}

// ScoreConfig là cấu hình chấm điểm theo hạng mục.
type ScoreConfig map[string]CategoryConfig

// DefaultScoreConfig trả về bảng ngưỡng chuẩn của tổ chức.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		periodmodels.CategoryOneToOne:     {Minimum: 8, MaxPoints: 10},
		periodmodels.CategoryReferrals:    {Minimum: 6, MaxPoints: 15},
		periodmodels.CategoryVisitors:     {Minimum: 1, MaxPoints: 20},
		periodmodels.CategoryTrainings:    {Minimum: 1, MaxPoints: 15},
		periodmodels.CategoryBusiness:     {Minimum: 300000, MaxPoints: 20},
		periodmodels.CategoryTestimonials: {Minimum: 1, MaxPoints: 10},
		periodmodels.CategoryAttendance:   {Minimum: 1, MaxPoints: 10},
	}
}

// ScoringEngine chấm điểm theo cấu hình cố định.
// Config được copy lúc khởi tạo nên caller sửa map gốc không ảnh hưởng engine.
type ScoringEngine struct {
	config ScoreConfig
}

// NewScoringEngine tạo ScoringEngine với cấu hình được inject.
func NewScoringEngine(cfg ScoreConfig) *ScoringEngine {
	copied := make(ScoreConfig, len(cfg))
	for k, v := range cfg {
		copied[k] = v
	}
	return &ScoringEngine{config: copied}
}

// Config trả về bản copy của cấu hình hiện tại.
func (e *ScoringEngine) Config() ScoreConfig {
	copied := make(ScoreConfig, len(e.config))
	for k, v := range e.config {
		copied[k] = v
	}
	return copied
}

// round2 làm tròn 2 chữ số thập phân.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// scoreValue áp công thức tỉ lệ có trần:
// đạt ngưỡng thì trọn maxPoints, dưới ngưỡng thì (count/minimum)*maxPoints làm tròn 2 số.
func scoreValue(count float64, cfg CategoryConfig) float64 {
	if cfg.Minimum <= 0 {
		return cfg.MaxPoints
	}
	if count >= cfg.Minimum {
		return cfg.MaxPoints
	}
	return round2((count / cfg.Minimum) * cfg.MaxPoints)
}

// rawValue trả giá trị thô của 1 hạng mục từ MonthlyCounts.
// attendance lấy từ attendanceDays (mapping tường minh giữa metric thô và hạng mục điểm).
func rawValue(counts MonthlyCounts, category string) float64 {
	switch category {
	case periodmodels.CategoryOneToOne:
		return float64(counts.OneToOne)
	case periodmodels.CategoryReferrals:
		return float64(counts.Referrals)
	case periodmodels.CategoryVisitors:
		return float64(counts.Visitors)
	case periodmodels.CategoryTrainings:
		return float64(counts.Trainings)
	case periodmodels.CategoryBusiness:
		return counts.Business
	case periodmodels.CategoryTestimonials:
		return float64(counts.Testimonials)
	case periodmodels.CategoryAttendance:
		return float64(counts.AttendanceDays)
	}
	return 0
}

// ScoreMonth chấm điểm 1 tháng kế toán cho tất cả hạng mục.
// Business được đánh giá lại ở lượt hai: đạt ngưỡng thì ép về maxPoints
// (ghi đè giá trị tỉ lệ), dưới ngưỡng thì giữ nguyên giá trị tỉ lệ.
// Giữ cấu trúc 2 lượt tách biệt, không gộp vào công thức chung.
func (e *ScoringEngine) ScoreMonth(counts MonthlyCounts) periodmodels.CategoryValues {
	scores := make(periodmodels.CategoryValues, len(periodmodels.ScoreCategories))
	for _, category := range periodmodels.ScoreCategories {
		cfg, ok := e.config[category]
		if !ok {
			scores[category] = 0
			continue
		}
		scores[category] = scoreValue(rawValue(counts, category), cfg)
	}

	// Lượt hai: override business theo ngưỡng.
	if cfg, ok := e.config[periodmodels.CategoryBusiness]; ok {
		if counts.Business >= cfg.Minimum {
			scores[periodmodels.CategoryBusiness] = cfg.MaxPoints
		}
	}

	return scores
}

// ScoreWindows chấm điểm tất cả cửa sổ, trả (điểm theo tháng, điểm tổng theo hạng mục).
// Tổng 7 tháng KHÔNG bị chặn trần: max 7 tháng liên tiếp cho 7× điểm trần tháng.
func (e *ScoringEngine) ScoreWindows(countsByKey map[string]MonthlyCounts, windows []MonthlyWindow) (map[string]periodmodels.CategoryValues, periodmodels.CategoryValues) {
	monthly := make(map[string]periodmodels.CategoryValues, len(windows))
	final := make(periodmodels.CategoryValues, len(periodmodels.ScoreCategories))
	for _, category := range periodmodels.ScoreCategories {
		final[category] = 0
	}

	for _, w := range windows {
		scores := e.ScoreMonth(countsByKey[w.Key])
		monthly[w.Key] = scores
		for category, score := range scores {
			final[category] = round2(final[category] + score)
		}
	}

	return monthly, final
}

// RawTotals cộng giá trị thô theo hạng mục trên toàn bộ cửa sổ (không trần).
func RawTotals(countsByKey map[string]MonthlyCounts) periodmodels.CategoryValues {
	totals := make(periodmodels.CategoryValues, len(periodmodels.ScoreCategories))
	for _, category := range periodmodels.ScoreCategories {
		totals[category] = 0
	}
	for _, counts := range countsByKey {
		for _, category := range periodmodels.ScoreCategories {
			totals[category] += rawValue(counts, category)
		}
	}
	return totals
}

// ComputeCarryForwardUsed tính phần số dư chuyển kỳ được tiêu trong kỳ:
// theo từng hạng mục, tiêu = min(carryForward, max(0, minimum×7 − tổng thô)).
// Chỉ là sổ sách theo dõi, không cộng ngược vào điểm.
func (e *ScoringEngine) ComputeCarryForwardUsed(carryForward, rawTotals periodmodels.CategoryValues) periodmodels.CategoryValues {
	used := make(periodmodels.CategoryValues, len(periodmodels.ScoreCategories))
	for _, category := range periodmodels.ScoreCategories {
		cfg, ok := e.config[category]
		if !ok {
			used[category] = 0
			continue
		}
		gap := cfg.Minimum*7 - rawTotals[category]
		if gap < 0 {
			gap = 0
		}
		cf := carryForward[category]
		if cf < gap {
			used[category] = cf
		} else {
			used[category] = gap
		}
	}
	return used
}
