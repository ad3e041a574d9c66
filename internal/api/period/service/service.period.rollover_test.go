// Test vòng đời rollover: quyết định thời điểm roll và chuỗi đóng/mở kỳ
// chạy trên mock MongoDB (mtest), không cần server thật.
package periodsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	basesvc "grip_backend/internal/api/base/service"
	membermodels "grip_backend/internal/api/member/models"
	membersvc "grip_backend/internal/api/member/service"
	periodmodels "grip_backend/internal/api/period/models"
	"grip_backend/internal/common"
)

func TestShouldRollover_MocKetThuc(t *testing.T) {
	end := time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC).UnixMilli()

	if shouldRollover(end-1, end) {
		t.Error("trước mốc kết thúc không được rollover")
	}
	if shouldRollover(end, end) {
		t.Error("đúng mốc kết thúc vẫn thuộc kỳ cũ, không được rollover")
	}
	if !shouldRollover(end+1, end) {
		t.Error("qua mốc kết thúc 1ms phải rollover")
	}
}

// newMockPeriodService dựng PeriodService trên collection mock, bỏ qua registry.
func newMockPeriodService(mt *mtest.T) *PeriodService {
	return &PeriodService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[periodmodels.Period](mt.Coll),
		memberService: &membersvc.MemberService{
			BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[membermodels.Member](mt.Coll),
		},
	}
}

func TestRolloverMember_MockMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("kỳ chưa hết hạn là no-op", func(mt *mtest.T) {
		svc := newMockPeriodService(mt)
		memberID := primitive.NewObjectID()
		periodID := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "grip_backend.periods", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: periodID},
			{Key: "memberId", Value: memberID},
			{Key: "isClosed", Value: false},
			{Key: "endDate", Value: time.Now().AddDate(0, 1, 0).UnixMilli()},
		}))

		member := membermodels.Member{ID: memberID}
		rolled, err := svc.RolloverMember(context.Background(), &member)
		if err != nil {
			mt.Fatalf("kỳ chưa hết hạn không được trả lỗi: %v", err)
		}
		if rolled {
			mt.Fatal("kỳ chưa hết hạn không được rollover")
		}
	})

	mt.Run("đóng kỳ đang mở trả về document đã đóng", func(mt *mtest.T) {
		svc := newMockPeriodService(mt)
		periodID := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: periodID},
			{Key: "isClosed", Value: true},
		}}))

		closed, err := svc.closeOpenPeriod(context.Background(), periodID)
		if err != nil {
			mt.Fatalf("đóng kỳ đang mở phải thành công, nhận lỗi: %v", err)
		}
		if !closed.IsClosed {
			mt.Fatal("document trả về sau khi đóng phải có isClosed = true")
		}
	})

	mt.Run("kỳ đã bị đóng từ trước trả về ErrNotFound", func(mt *mtest.T) {
		svc := newMockPeriodService(mt)

		// findAndModify không match (guard isClosed:false) -> value null.
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := svc.closeOpenPeriod(context.Background(), primitive.NewObjectID())
		if !errors.Is(err, common.ErrNotFound) {
			mt.Fatalf("kỳ đã đóng phải trả common.ErrNotFound, nhận được %v", err)
		}
	})

	mt.Run("kỳ hết hạn được roll trọn chuỗi đóng-mở-gán", func(mt *mtest.T) {
		svc := newMockPeriodService(mt)
		memberID := primitive.NewObjectID()
		oldPeriodID := primitive.NewObjectID()
		newPeriodID := primitive.NewObjectID()
		oldEnd := time.Now().AddDate(0, 0, -10).UnixMilli()
		newStart, newEnd := NextPeriodRange(oldEnd)

		memberDoc := bson.D{
			{Key: "_id", Value: memberID},
			{Key: "name", Value: "Nguyễn Văn A"},
		}

		mt.AddMockResponses(
			// 1. FindOpenPeriod: kỳ mở đã quá hạn, có metrics để chuyển kỳ
			mtest.CreateCursorResponse(0, "grip_backend.periods", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: oldPeriodID},
				{Key: "memberId", Value: memberID},
				{Key: "isClosed", Value: false},
				{Key: "endDate", Value: oldEnd},
				{Key: "metrics", Value: bson.D{
					{Key: "oneToOne", Value: 5},
					{Key: "attendanceDays", Value: 12},
				}},
			}),
			// 2. SetCarryForward: update member
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			// 3. refetch member sau update
			mtest.CreateCursorResponse(0, "grip_backend.members", mtest.FirstBatch, memberDoc),
			// 4. closeOpenPeriod: findAndModify trả kỳ đã đóng
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: oldPeriodID},
				{Key: "isClosed", Value: true},
			}}),
			// 5. InsertOne kỳ mới
			mtest.CreateSuccessResponse(),
			// 6. refetch kỳ mới vừa tạo
			mtest.CreateCursorResponse(0, "grip_backend.periods", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: newPeriodID},
				{Key: "memberId", Value: memberID},
				{Key: "isClosed", Value: false},
				{Key: "startDate", Value: newStart},
				{Key: "endDate", Value: newEnd},
			}),
			// 7. SetActivePeriod: update member
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			// 8. refetch member sau update
			mtest.CreateCursorResponse(0, "grip_backend.members", mtest.FirstBatch, memberDoc),
		)

		member := membermodels.Member{ID: memberID}
		rolled, err := svc.RolloverMember(context.Background(), &member)
		if err != nil {
			mt.Fatalf("rollover kỳ hết hạn phải hoàn tất không lỗi, nhận được: %v", err)
		}
		if !rolled {
			mt.Fatal("kỳ hết hạn phải được rollover")
		}
		if member.CarryForward.OneToOne != 5 || member.CarryForward.AttendanceDays != 12 {
			mt.Fatalf("carryForward phải copy nguyên trạng metrics kỳ cũ, nhận được %+v", member.CarryForward)
		}
		if member.ActivePeriodID == nil || *member.ActivePeriodID != newPeriodID {
			mt.Fatalf("activePeriodId phải trỏ sang kỳ mới %s, nhận được %v", newPeriodID.Hex(), member.ActivePeriodID)
		}
	})
}
