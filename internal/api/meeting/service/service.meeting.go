// Package meetingsvc - Service cho domain Meeting (buổi họp, điểm danh).
package meetingsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "grip_backend/internal/api/base/service"
	meetingmodels "grip_backend/internal/api/meeting/models"
	"grip_backend/internal/common"
	"grip_backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// MeetingService xử lý CRUD buổi họp.
type MeetingService struct {
	*basesvc.BaseServiceMongoImpl[meetingmodels.Meeting]
}

// NewMeetingService tạo MeetingService mới.
func NewMeetingService() (*MeetingService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Meetings)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Meetings, common.ErrNotFound)
	}
	return &MeetingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[meetingmodels.Meeting](coll),
	}, nil
}

// MarkExpiredCompleted chuyển các buổi họp đã qua giờ kết thúc sang trạng thái completed.
// Worker gọi định kỳ; trả về số document đã cập nhật.
func (s *MeetingService) MarkExpiredCompleted(ctx context.Context) (int64, error) {
	now := time.Now().UnixMilli()
	filter := bson.M{
		"status":    meetingmodels.MeetingStatusScheduled,
		"isDeleted": false,
		"endDate":   bson.M{"$gt": 0, "$lt": now},
	}
	update := bson.M{"$set": bson.M{
		"status":    meetingmodels.MeetingStatusCompleted,
		"updatedAt": now,
	}}
	return s.UpdateMany(ctx, filter, update, nil)
}
