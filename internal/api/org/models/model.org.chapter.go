// Package models - Chapter thuộc domain Org (org_chapters).
// Chapter là đơn vị sinh hoạt trực thuộc zone, nơi thành viên tham gia họp và trao đổi cơ hội.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chapter lưu thông tin chapter (org_chapters).
type Chapter struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ZoneID primitive.ObjectID `json:"zoneId" bson:"zoneId" index:"single:1,compound:org_chapter_zone_name_unique"` // Zone cha

	Name       string `json:"name" bson:"name" index:"compound:org_chapter_zone_name_unique"` // Tên chapter, duy nhất trong 1 zone
	MeetingDay string `json:"meetingDay,omitempty" bson:"meetingDay,omitempty"`               // Thứ họp định kỳ (Monday..Sunday)
	Location   string `json:"location,omitempty" bson:"location,omitempty"`

	// Flags
	IsActive  bool `json:"isActive" bson:"isActive"`
	IsDeleted bool `json:"isDeleted" bson:"isDeleted" index:"single:1"` // Soft delete

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt" index:"single:1"` // Unix ms
}
