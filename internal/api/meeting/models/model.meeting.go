// Package models - Meeting thuộc domain Meeting (meetings).
// Một buổi sinh hoạt của chapter: họp định kỳ (purpose=Meeting) hoặc đào tạo (purpose=Training).
// Purpose được aggregator join với điểm danh để tách attendanceDays / trainings.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các giá trị purpose của meeting. So khớp không phân biệt hoa thường.
const (
	MeetingPurposeMeeting  = "Meeting"
	MeetingPurposeTraining = "Training"
)

// Các trạng thái của meeting.
const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusCompleted = "completed"
	MeetingStatusCancelled = "cancelled"
)

// Meeting lưu buổi họp/đào tạo (meetings).
type Meeting struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ChapterID primitive.ObjectID `json:"chapterId" bson:"chapterId" index:"single:1"`

	Title    string `json:"title" bson:"title"`
	Purpose  string `json:"purpose" bson:"purpose" index:"single:1"` // Meeting | Training
	Location string `json:"location,omitempty" bson:"location,omitempty"`

	StartDate int64  `json:"startDate" bson:"startDate" index:"single:1"` // Unix ms — mốc gom theo tháng kế toán
	EndDate   int64  `json:"endDate,omitempty" bson:"endDate,omitempty"`  // Unix ms
	Status    string `json:"status" bson:"status" index:"single:1"`       // scheduled | completed | cancelled (worker tự chuyển completed)

	// Flags
	IsDeleted bool `json:"isDeleted" bson:"isDeleted"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                  // Unix ms
}
