// Package periodsvc - Activity reader + monthly aggregator.
// Đọc thuần (read-only) trên 5 loại slip/hoạt động và join điểm danh ↔ meeting.
// Mỗi sub-query của 1 cửa sổ độc lập nhau; 1 sub-query lỗi thì cả cửa sổ lỗi
// (không có partial result trong aggregation).
package periodsvc

import (
	"context"
	"fmt"

	"grip_backend/internal/common"
	"grip_backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MonthlyCounts là số liệu thô của 1 thành viên trong 1 tháng kế toán.
type MonthlyCounts struct {
	OneToOne       int64
	Referrals      int64
	Visitors       int64
	Trainings      int64
	AttendanceDays int64
	OnTimeDays     int64
	Business       float64
	Testimonials   int64
}

// ActivityReader gom các truy vấn đếm/sum hoạt động theo thành viên + khoảng thời gian.
type ActivityReader struct {
	oneToOneCol    *mongo.Collection
	referralCol    *mongo.Collection
	visitorCol     *mongo.Collection
	testimonialCol *mongo.Collection
	thankYouCol    *mongo.Collection
	attendanceCol  *mongo.Collection
}

// NewActivityReader tạo ActivityReader mới từ registry collections.
func NewActivityReader() (*ActivityReader, error) {
	r := &ActivityReader{}
	for _, item := range []struct {
		name string
		dst  **mongo.Collection
	}{
		{global.ColNames.OneToOnes, &r.oneToOneCol},
		{global.ColNames.Referrals, &r.referralCol},
		{global.ColNames.Visitors, &r.visitorCol},
		{global.ColNames.Testimonials, &r.testimonialCol},
		{global.ColNames.ThankYous, &r.thankYouCol},
		{global.ColNames.Attendances, &r.attendanceCol},
	} {
		coll, exist := global.RegistryCollections.Get(item.name)
		if !exist {
			return nil, fmt.Errorf("không tìm thấy collection %s: %w", item.name, common.ErrNotFound)
		}
		*item.dst = coll
	}
	return r, nil
}

// countByField đếm document theo field tham chiếu thành viên + createdAt trong cửa sổ.
func (r *ActivityReader) countByField(ctx context.Context, col *mongo.Collection, field string, memberID primitive.ObjectID, w MonthlyWindow) (int64, error) {
	filter := bson.M{
		field:       memberID,
		"isDeleted": false,
		"createdAt": bson.M{"$gte": w.StartMs(), "$lte": w.EndMs()},
	}
	count, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// CountOneToOne đếm slip gặp 1-1 do thành viên khởi tạo trong cửa sổ.
func (r *ActivityReader) CountOneToOne(ctx context.Context, memberID primitive.ObjectID, w MonthlyWindow) (int64, error) {
	return r.countByField(ctx, r.oneToOneCol, "initiatorId", memberID, w)
}

// CountReferrals đếm slip giới thiệu do thành viên khởi tạo trong cửa sổ.
func (r *ActivityReader) CountReferrals(ctx context.Context, memberID primitive.ObjectID, w MonthlyWindow) (int64, error) {
	return r.countByField(ctx, r.referralCol, "initiatorId", memberID, w)
}

// CountVisitors đếm khách mời do thành viên dẫn tới trong cửa sổ.
func (r *ActivityReader) CountVisitors(ctx context.Context, memberID primitive.ObjectID, w MonthlyWindow) (int64, error) {
	return r.countByField(ctx, r.visitorCol, "invitedById", memberID, w)
}

// CountTestimonials đếm slip cảm nhận do thành viên viết trong cửa sổ.
func (r *ActivityReader) CountTestimonials(ctx context.Context, memberID primitive.ObjectID, w MonthlyWindow) (int64, error) {
	return r.countByField(ctx, r.testimonialCol, "initiatorId", memberID, w)
}

// SumBusiness tính tổng doanh thu slip cảm ơn do thành viên gửi trong cửa sổ (0 nếu không có).
func (r *ActivityReader) SumBusiness(ctx context.Context, memberID primitive.ObjectID, w MonthlyWindow) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"senderId":  memberID,
			"isDeleted": false,
			"createdAt": bson.M{"$gte": w.StartMs(), "$lte": w.EndMs()},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.thankYouCol.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// countAttendanceByPurpose đếm điểm danh "present" của thành viên, join sang meeting
// có purpose khớp (không phân biệt hoa thường) và startDate nằm trong cửa sổ.
// onTimeOnly=true thì chỉ đếm buổi có mặt đúng giờ.
func (r *ActivityReader) countAttendanceByPurpose(ctx context.Context, memberID primitive.ObjectID, purpose string, w MonthlyWindow, onTimeOnly bool) (int64, error) {
	match := bson.M{
		"memberId":  memberID,
		"status":    "present",
		"isDeleted": false,
	}
	if onTimeOnly {
		match["onTime"] = true
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.ColNames.Meetings,
			"localField":   "meetingId",
			"foreignField": "_id",
			"as":           "meeting",
		}}},
		{{Key: "$unwind", Value: "$meeting"}},
		{{Key: "$match", Value: bson.M{
			"meeting.purpose":   bson.M{"$regex": "^" + purpose + "$", "$options": "i"},
			"meeting.isDeleted": false,
			"meeting.startDate": bson.M{"$gte": w.StartMs(), "$lte": w.EndMs()},
		}}},
		{{Key: "$count", Value: "total"}},
	}

	cursor, err := r.attendanceCol.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// CountTrainings đếm buổi training thành viên có mặt trong cửa sổ.
func (r *ActivityReader) CountTrainings(ctx context.Context, memberID primitive.ObjectID, w MonthlyWindow) (int64, error) {
	return r.countAttendanceByPurpose(ctx, memberID, "training", w, false)
}

// CountAttendanceDays đếm buổi họp thường thành viên có mặt trong cửa sổ.
func (r *ActivityReader) CountAttendanceDays(ctx context.Context, memberID primitive.ObjectID, w MonthlyWindow) (int64, error) {
	return r.countAttendanceByPurpose(ctx, memberID, "meeting", w, false)
}

// CountOnTimeDays đếm buổi họp thường thành viên có mặt đúng giờ trong cửa sổ.
func (r *ActivityReader) CountOnTimeDays(ctx context.Context, memberID primitive.ObjectID, w MonthlyWindow) (int64, error) {
	return r.countAttendanceByPurpose(ctx, memberID, "meeting", w, true)
}

// AggregateWindow gom số liệu thô của 1 cửa sổ. Lỗi ở bất kỳ sub-query nào
// làm hỏng cả cửa sổ — propagate nguyên trạng, không che lỗi.
func (r *ActivityReader) AggregateWindow(ctx context.Context, memberID primitive.ObjectID, w MonthlyWindow) (MonthlyCounts, error) {
	var counts MonthlyCounts
	var err error

	if counts.OneToOne, err = r.CountOneToOne(ctx, memberID, w); err != nil {
		return counts, fmt.Errorf("đếm oneToOne cửa sổ %s: %w", w.Key, err)
	}
	if counts.Referrals, err = r.CountReferrals(ctx, memberID, w); err != nil {
		return counts, fmt.Errorf("đếm referrals cửa sổ %s: %w", w.Key, err)
	}
	if counts.Visitors, err = r.CountVisitors(ctx, memberID, w); err != nil {
		return counts, fmt.Errorf("đếm visitors cửa sổ %s: %w", w.Key, err)
	}
	if counts.Trainings, err = r.CountTrainings(ctx, memberID, w); err != nil {
		return counts, fmt.Errorf("đếm trainings cửa sổ %s: %w", w.Key, err)
	}
	if counts.AttendanceDays, err = r.CountAttendanceDays(ctx, memberID, w); err != nil {
		return counts, fmt.Errorf("đếm attendanceDays cửa sổ %s: %w", w.Key, err)
	}
	if counts.OnTimeDays, err = r.CountOnTimeDays(ctx, memberID, w); err != nil {
		return counts, fmt.Errorf("đếm onTimeDays cửa sổ %s: %w", w.Key, err)
	}
	if counts.Business, err = r.SumBusiness(ctx, memberID, w); err != nil {
		return counts, fmt.Errorf("sum business cửa sổ %s: %w", w.Key, err)
	}
	if counts.Testimonials, err = r.CountTestimonials(ctx, memberID, w); err != nil {
		return counts, fmt.Errorf("đếm testimonials cửa sổ %s: %w", w.Key, err)
	}

	return counts, nil
}

// AggregateWindows gom số liệu thô của tất cả cửa sổ, trả map key -> counts.
func (r *ActivityReader) AggregateWindows(ctx context.Context, memberID primitive.ObjectID, windows []MonthlyWindow) (map[string]MonthlyCounts, error) {
	result := make(map[string]MonthlyCounts, len(windows))
	for _, w := range windows {
		counts, err := r.AggregateWindow(ctx, memberID, w)
		if err != nil {
			return nil, err
		}
		result[w.Key] = counts
	}
	return result, nil
}
