// Package periodsvc - Period record manager + rollover.
// Quản lý vòng đời Period: mở kỳ đầu neo theo ngày gia nhập, ghi kết quả chạy
// report, và đóng/mở kỳ khi hết hạn (rollover).
package periodsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basesvc "grip_backend/internal/api/base/service"
	membermodels "grip_backend/internal/api/member/models"
	membersvc "grip_backend/internal/api/member/service"
	periodmodels "grip_backend/internal/api/period/models"
	"grip_backend/internal/common"
	"grip_backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PeriodService quản lý document Period (periods).
type PeriodService struct {
	*basesvc.BaseServiceMongoImpl[periodmodels.Period]
	memberService *membersvc.MemberService
}

// NewPeriodService tạo PeriodService mới.
func NewPeriodService() (*PeriodService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Periods)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Periods, common.ErrNotFound)
	}
	memberService, err := membersvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("tạo MemberService: %w", err)
	}
	return &PeriodService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[periodmodels.Period](coll),
		memberService:        memberService,
	}, nil
}

// zeroCategoryValues trả map hạng mục -> 0 cho đủ các hạng mục chấm điểm.
func zeroCategoryValues() periodmodels.CategoryValues {
	values := make(periodmodels.CategoryValues, len(periodmodels.ScoreCategories))
	for _, category := range periodmodels.ScoreCategories {
		values[category] = 0
	}
	return values
}

// carryForwardToCategoryValues đổi số dư chuyển kỳ của member sang map theo hạng mục điểm.
// attendanceDays thô được gán vào hạng mục attendance.
func carryForwardToCategoryValues(cf membermodels.MemberCarryForward) periodmodels.CategoryValues {
	return periodmodels.CategoryValues{
		periodmodels.CategoryOneToOne:     cf.OneToOne,
		periodmodels.CategoryReferrals:    cf.Referrals,
		periodmodels.CategoryVisitors:     cf.Visitors,
		periodmodels.CategoryTrainings:    cf.Trainings,
		periodmodels.CategoryBusiness:     cf.Business,
		periodmodels.CategoryTestimonials: cf.Testimonials,
		periodmodels.CategoryAttendance:   cf.AttendanceDays,
	}
}

// metricsToCarryForward copy nguyên trạng metrics của period vào số dư chuyển kỳ của member.
func metricsToCarryForward(m periodmodels.PeriodMetrics) membermodels.MemberCarryForward {
	return membermodels.MemberCarryForward{
		OneToOne:       float64(m.OneToOne),
		Referrals:      float64(m.Referrals),
		Visitors:       float64(m.Visitors),
		Trainings:      float64(m.Trainings),
		Business:       m.Business,
		Testimonials:   float64(m.Testimonials),
		AttendanceDays: float64(m.AttendanceDays),
		OnTimeDays:     float64(m.OnTimeDays),
	}
}

// newPeriodDoc dựng Period mới cho member với startDate cho trước, span 6 tháng.
func newPeriodDoc(member *membermodels.Member, startMs, endMs int64) periodmodels.Period {
	return periodmodels.Period{
		MemberID:         member.ID,
		StartDate:        startMs,
		EndDate:          endMs,
		IsClosed:         false,
		Metrics:          periodmodels.PeriodMetrics{},
		CarryForward:     carryForwardToCategoryValues(member.CarryForward),
		Totals:           zeroCategoryValues(),
		CarryForwardUsed: zeroCategoryValues(),
	}
}

// FindOpenPeriod trả về period đang mở của member, common.ErrNotFound nếu không có.
func (s *PeriodService) FindOpenPeriod(ctx context.Context, member *membermodels.Member) (periodmodels.Period, error) {
	return s.FindOne(ctx, bson.M{"memberId": member.ID, "isClosed": false}, nil)
}

// GetOrCreateOpenPeriod trả về period đang mở của member, tạo mới nếu chưa có.
// Kỳ đầu tiên neo startDate = member.createdAt, endDate = startDate + 6 tháng.
// Tạo xong thì gán member.activePeriodId trỏ tới period mới.
func (s *PeriodService) GetOrCreateOpenPeriod(ctx context.Context, member *membermodels.Member) (periodmodels.Period, error) {
	period, err := s.FindOpenPeriod(ctx, member)
	if err == nil {
		return period, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return period, err
	}

	start := time.UnixMilli(member.CreatedAt)
	end := start.AddDate(0, 6, 0)

	created, err := s.InsertOne(ctx, newPeriodDoc(member, start.UnixMilli(), end.UnixMilli()))
	if err != nil {
		return created, fmt.Errorf("tạo period đầu tiên cho member %s: %w", member.ID.Hex(), err)
	}

	if err := s.memberService.SetActivePeriod(ctx, member.ID, created.ID); err != nil {
		return created, fmt.Errorf("gán activePeriodId cho member %s: %w", member.ID.Hex(), err)
	}
	member.ActivePeriodID = &created.ID

	return created, nil
}

// PersistRunResult ghi đè kết quả của 1 lần chạy report vào period đang mở:
// metrics 7 tháng mới nhất, tổng thô và phần số dư đã tiêu.
func (s *PeriodService) PersistRunResult(ctx context.Context, period *periodmodels.Period, metrics periodmodels.PeriodMetrics, totals, carryForwardUsed periodmodels.CategoryValues) error {
	update := bson.M{"$set": bson.M{
		"metrics":          metrics,
		"totals":           totals,
		"carryForwardUsed": carryForwardUsed,
		"updatedAt":        time.Now().UnixMilli(),
	}}
	if _, err := s.UpdateOne(ctx, bson.M{"_id": period.ID}, update, nil); err != nil {
		return fmt.Errorf("ghi kết quả report vào period %s: %w", period.ID.Hex(), err)
	}
	period.Metrics = metrics
	period.Totals = totals
	period.CarryForwardUsed = carryForwardUsed
	return nil
}

// NextPeriodRange tính khoảng thời gian của kỳ kế tiếp từ endDate kỳ cũ:
// start = endDate cũ + 1 ngày, end = start + 6 tháng − 1 ngày.
// Hàm thuần để test độc lập phần số học ngày tháng.
func NextPeriodRange(oldEndMs int64) (startMs, endMs int64) {
	start := time.UnixMilli(oldEndMs).AddDate(0, 0, 1)
	end := start.AddDate(0, 6, 0).AddDate(0, 0, -1)
	return start.UnixMilli(), end.UnixMilli()
}

// shouldRollover kiểm tra kỳ đã qua mốc kết thúc chưa. Đúng mốc endDate vẫn
// thuộc kỳ cũ (khoảng ms inclusive), chỉ roll khi now vượt qua endDate.
func shouldRollover(nowMs, endMs int64) bool {
	return nowMs > endMs
}

// closeOpenPeriod đóng period đang mở bằng findAndModify có guard isClosed:false,
// trả về document SAU khi đóng. Guard và refetch nằm trong cùng 1 lệnh atomic:
// không refetch lại bằng bộ lọc đã tự vô hiệu sau update (isClosed vừa thành true).
// Trả về common.ErrNotFound nếu period đã bị đóng từ trước.
func (s *PeriodService) closeOpenPeriod(ctx context.Context, periodID primitive.ObjectID) (periodmodels.Period, error) {
	return s.FindOneAndUpdate(ctx,
		bson.M{"_id": periodID, "isClosed": false},
		bson.M{"$set": bson.M{"isClosed": true}},
		nil,
	)
}

// RolloverMember đánh giá chuyển trạng thái Open -> Closed cho period của 1 member.
// Kỳ chưa hết hạn là no-op (idempotent). Khi hết hạn:
//  1. copy nguyên trạng metrics vào member.carryForward,
//  2. đóng period cũ (isClosed = true, trạng thái cuối),
//  3. mở period mới với start = endDate cũ + 1 ngày, span 6 tháng − 1 ngày,
//  4. gán member.activePeriodId sang period mới.
//
// Trả về true nếu có rollover thực sự xảy ra.
func (s *PeriodService) RolloverMember(ctx context.Context, member *membermodels.Member) (bool, error) {
	period, err := s.FindOpenPeriod(ctx, member)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Chưa từng có period (chưa chạy report lần nào), không có gì để roll.
			return false, nil
		}
		return false, err
	}

	if !shouldRollover(time.Now().UnixMilli(), period.EndDate) {
		return false, nil
	}

	// Snapshot metrics kỳ cũ vào số dư chuyển kỳ của member.
	if err := s.memberService.SetCarryForward(ctx, member.ID, metricsToCarryForward(period.Metrics)); err != nil {
		return false, fmt.Errorf("ghi carryForward cho member %s: %w", member.ID.Hex(), err)
	}
	member.CarryForward = metricsToCarryForward(period.Metrics)

	if _, err := s.closeOpenPeriod(ctx, period.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Sweep khác đã đóng kỳ này trước, không mở trùng kỳ mới.
			return false, nil
		}
		return false, fmt.Errorf("đóng period %s: %w", period.ID.Hex(), err)
	}

	startMs, endMs := NextPeriodRange(period.EndDate)
	created, err := s.InsertOne(ctx, newPeriodDoc(member, startMs, endMs))
	if err != nil {
		return false, fmt.Errorf("mở period mới cho member %s: %w", member.ID.Hex(), err)
	}

	if err := s.memberService.SetActivePeriod(ctx, member.ID, created.ID); err != nil {
		return false, fmt.Errorf("gán activePeriodId cho member %s: %w", member.ID.Hex(), err)
	}
	member.ActivePeriodID = &created.ID

	return true, nil
}

// RolloverSweep quét toàn bộ thành viên đang hoạt động và đánh giá rollover từng người.
// Lỗi của 1 member được cô lập: ghi nhận rồi đi tiếp, không chặn các member còn lại.
// Trả về (số member đã rollover, danh sách lỗi theo member).
func (s *PeriodService) RolloverSweep(ctx context.Context) (int, []error) {
	members, err := s.memberService.FindActiveMembers(ctx)
	if err != nil {
		return 0, []error{fmt.Errorf("lấy danh sách thành viên hoạt động: %w", err)}
	}

	rolled := 0
	var errs []error
	for i := range members {
		ok, err := s.RolloverMember(ctx, &members[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("rollover member %s: %w", members[i].ID.Hex(), err))
			continue
		}
		if ok {
			rolled++
		}
	}
	return rolled, errs
}
