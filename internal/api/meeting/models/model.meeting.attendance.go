// Package models - Attendance thuộc domain Meeting (meeting_attendances).
// Bản ghi điểm danh của 1 thành viên tại 1 buổi họp; nguồn của attendanceDays và trainings.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái điểm danh.
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
)

// Attendance lưu điểm danh (meeting_attendances).
type Attendance struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	MeetingID primitive.ObjectID `json:"meetingId" bson:"meetingId" index:"single:1,compound:attendance_meeting_member_unique"`
	MemberID  primitive.ObjectID `json:"memberId" bson:"memberId" index:"single:1,compound:attendance_meeting_member_unique"`

	Status string `json:"status" bson:"status" index:"single:1"` // present | absent | late
	OnTime bool   `json:"onTime" bson:"onTime"`                  // Có mặt đúng giờ (nguồn của onTimeDays)

	// Flags
	IsDeleted bool `json:"isDeleted" bson:"isDeleted"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                  // Unix ms
}
