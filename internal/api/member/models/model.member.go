// Package models - Member thuộc domain Member (members).
// Thành viên là chủ thể trung tâm của hệ thống chấm điểm: mọi slip, điểm danh
// và period đều neo theo memberId.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberCarryForward lưu số dư hoạt động chuyển kỳ theo từng hạng mục.
// Được ghi nguyên trạng từ metrics của period vừa đóng khi rollover.
type MemberCarryForward struct {
	OneToOne       float64 `json:"oneToOne" bson:"oneToOne"`
	Referrals      float64 `json:"referrals" bson:"referrals"`
	Visitors       float64 `json:"visitors" bson:"visitors"`
	Trainings      float64 `json:"trainings" bson:"trainings"`
	Business       float64 `json:"business" bson:"business"`
	Testimonials   float64 `json:"testimonials" bson:"testimonials"`
	AttendanceDays float64 `json:"attendanceDays" bson:"attendanceDays"`
	OnTimeDays     float64 `json:"onTimeDays" bson:"onTimeDays"`
}

// Member lưu thành viên chapter (members).
type Member struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ChapterID primitive.ObjectID `json:"chapterId" bson:"chapterId" index:"single:1"` // Chapter đang sinh hoạt

	// Identity
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`

	// Scoring state — do subsystem period quản lý, không sửa qua CRUD thường.
	ActivePeriodID *primitive.ObjectID `json:"activePeriodId,omitempty" bson:"activePeriodId,omitempty" index:"single:1"` // Period đang mở của thành viên
	CarryForward   MemberCarryForward  `json:"carryForward" bson:"carryForward"`                                          // Số dư chuyển từ kỳ trước

	// Flags
	IsActive  bool `json:"isActive" bson:"isActive" index:"single:1"`   // Thành viên đang hoạt động (worker rollover chỉ quét isActive)
	IsDeleted bool `json:"isDeleted" bson:"isDeleted" index:"single:1"` // Soft delete

	// Metadata — createdAt là mốc neo startDate của period đầu tiên.
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt" index:"single:1"` // Unix ms
}
