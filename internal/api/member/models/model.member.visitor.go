// Package models - Visitor thuộc domain Member (member_visitors).
// Khách mời do thành viên dẫn tới buổi họp; được đếm theo invitedById khi chấm điểm.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visitor lưu khách mời (member_visitors).
type Visitor struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ChapterID   primitive.ObjectID `json:"chapterId" bson:"chapterId" index:"single:1"`
	InvitedByID primitive.ObjectID `json:"invitedById" bson:"invitedById" index:"single:1,compound:visitor_inviter_date"` // Thành viên mời

	Name      string `json:"name" bson:"name"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company   string `json:"company,omitempty" bson:"company,omitempty"`
	VisitDate int64  `json:"visitDate" bson:"visitDate" index:"compound:visitor_inviter_date"` // Unix ms — ngày tham dự, dùng để gom theo tháng kế toán

	// Flags
	IsDeleted bool `json:"isDeleted" bson:"isDeleted"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                  // Unix ms
}
