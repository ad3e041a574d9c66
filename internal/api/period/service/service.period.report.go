// Package periodsvc - Report run.
// Chạy pipeline chấm điểm cho 1 batch thành viên: phân trang mảng memberIds
// phía server (slice, không query DB), xử lý song song bằng worker pool giới hạn,
// gom kết quả VÀ lỗi theo từng member (partial success, không abort cả batch).
package periodsvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	membersvc "grip_backend/internal/api/member/service"
	perioddto "grip_backend/internal/api/period/dto"
	periodmodels "grip_backend/internal/api/period/models"
	"grip_backend/internal/common"
	"grip_backend/internal/global"
	"grip_backend/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportService điều phối aggregate + score + persist cho từng thành viên.
type ReportService struct {
	periodService *PeriodService
	memberService *membersvc.MemberService
	reader        *ActivityReader
	engine        *ScoringEngine
	workerCount   int
	defaultLimit  int
}

// NewReportService tạo ReportService với cấu hình chấm điểm chuẩn.
func NewReportService() (*ReportService, error) {
	return NewReportServiceWithConfig(DefaultScoreConfig())
}

// NewReportServiceWithConfig tạo ReportService với ScoreConfig được inject.
func NewReportServiceWithConfig(cfg ScoreConfig) (*ReportService, error) {
	periodService, err := NewPeriodService()
	if err != nil {
		return nil, fmt.Errorf("tạo PeriodService: %w", err)
	}
	memberService, err := membersvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("tạo MemberService: %w", err)
	}
	reader, err := NewActivityReader()
	if err != nil {
		return nil, fmt.Errorf("tạo ActivityReader: %w", err)
	}

	workerCount := global.ServerConfig.ReportWorkerPoolSize
	if workerCount < 1 {
		workerCount = 1
	}
	defaultLimit := global.ServerConfig.ReportDefaultPageSize
	if defaultLimit < 1 {
		defaultLimit = 10
	}

	return &ReportService{
		periodService: periodService,
		memberService: memberService,
		reader:        reader,
		engine:        NewScoringEngine(cfg),
		workerCount:   workerCount,
		defaultLimit:  defaultLimit,
	}, nil
}

// SliceIDPage cắt trang từ mảng memberIds. Page tính từ 1; trang vượt quá
// cuối mảng trả về slice rỗng. Hàm thuần để test độc lập phần phân trang.
func SliceIDPage(ids []string, page, limit int) []string {
	if limit < 1 || page < 1 {
		return nil
	}
	start := (page - 1) * limit
	if start >= len(ids) {
		return []string{}
	}
	end := start + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[start:end]
}

// RunMemberReport chạy trọn pipeline cho 1 thành viên:
// load member -> lấy/tạo period mở -> tính 7 cửa sổ -> aggregate -> score ->
// tính carryForwardUsed -> persist -> dựng kết quả.
func (s *ReportService) RunMemberReport(ctx context.Context, memberIDHex string) (*perioddto.MemberReportResult, error) {
	memberID, err := primitive.ObjectIDFromHex(memberIDHex)
	if err != nil {
		return nil, fmt.Errorf("memberId không hợp lệ: %w", common.ErrInvalidFormat)
	}

	member, err := s.memberService.FindOneById(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("member %s: %w", memberIDHex, common.ErrMemberNotFound)
	}

	period, err := s.periodService.GetOrCreateOpenPeriod(ctx, &member)
	if err != nil {
		return nil, err
	}

	windows := ComputeMonthlyWindows(time.Now())
	countsByKey, err := s.reader.AggregateWindows(ctx, member.ID, windows)
	if err != nil {
		return nil, err
	}

	monthly, final := s.engine.ScoreWindows(countsByKey, windows)
	totals := RawTotals(countsByKey)
	carryForwardUsed := s.engine.ComputeCarryForwardUsed(period.CarryForward, totals)

	metrics := sumMetrics(countsByKey)
	if err := s.periodService.PersistRunResult(ctx, &period, metrics, totals, carryForwardUsed); err != nil {
		return nil, err
	}

	cfRemaining := make(periodmodels.CategoryValues, len(periodmodels.ScoreCategories))
	for _, category := range periodmodels.ScoreCategories {
		remaining := period.CarryForward[category] - carryForwardUsed[category]
		if remaining < 0 {
			remaining = 0
		}
		cfRemaining[category] = remaining
	}

	return &perioddto.MemberReportResult{
		MemberID:     member.ID.Hex(),
		MemberName:   member.Name,
		Period:       period,
		Totals:       totals,
		Score:        final,
		MonthlyScore: monthly,
		CfRemaining:  cfRemaining,
	}, nil
}

// sumMetrics cộng số liệu thô của tất cả cửa sổ thành metrics tích lũy của period.
func sumMetrics(countsByKey map[string]MonthlyCounts) periodmodels.PeriodMetrics {
	var m periodmodels.PeriodMetrics
	for _, counts := range countsByKey {
		m.OneToOne += counts.OneToOne
		m.Referrals += counts.Referrals
		m.Visitors += counts.Visitors
		m.Trainings += counts.Trainings
		m.Business += counts.Business
		m.Testimonials += counts.Testimonials
		m.AttendanceDays += counts.AttendanceDays
		m.OnTimeDays += counts.OnTimeDays
	}
	return m
}

// RunReport chạy report cho 1 trang memberIds bằng worker pool giới hạn.
// Mỗi member độc lập: lỗi được gom vào Errors thay vì hủy cả batch.
func (s *ReportService) RunReport(ctx context.Context, input *perioddto.ReportRunInput) (*perioddto.ReportRunOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = s.defaultLimit
	}

	pageIDs := SliceIDPage(input.MemberIDs, page, limit)
	total := len(input.MemberIDs)
	totalPages := (total + limit - 1) / limit

	type slot struct {
		result *perioddto.MemberReportResult
		err    error
		id     string
	}
	slots := make([]slot, len(pageIDs))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workerCount := s.workerCount
	if workerCount > len(pageIDs) && len(pageIDs) > 0 {
		workerCount = len(pageIDs)
	}

	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				result, err := s.RunMemberReport(ctx, pageIDs[idx])
				slots[idx] = slot{result: result, err: err, id: pageIDs[idx]}
			}
		}()
	}

	for idx := range pageIDs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	output := &perioddto.ReportRunOutput{
		Success:    true,
		Data:       make([]perioddto.MemberReportResult, 0, len(pageIDs)),
		Errors:     []perioddto.MemberReportError{},
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}

	// Giữ thứ tự theo mảng memberIds gửi lên.
	for _, st := range slots {
		if st.err != nil {
			logger.GetAppLogger().Warnf("⚠️ [PERIOD_REPORT] Lỗi chấm điểm member %s: %v", st.id, st.err)
			output.Errors = append(output.Errors, perioddto.MemberReportError{
				MemberID: st.id,
				Message:  st.err.Error(),
			})
			continue
		}
		output.Data = append(output.Data, *st.result)
	}

	return output, nil
}
