// Package models - Các slip hoạt động thuộc domain Slip.
// Slip là bản ghi tự khai của thành viên về một hoạt động kết nối
// (gặp 1-1, giới thiệu, cảm nhận, cảm ơn doanh thu). Aggregator đếm slip
// theo initiator/sender và createdAt nằm trong tháng kế toán.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OneToOneSlip lưu buổi gặp 1-1 giữa hai thành viên (slip_one_to_ones).
type OneToOneSlip struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	InitiatorID  primitive.ObjectID `json:"initiatorId" bson:"initiatorId" index:"single:1,compound:onetoone_initiator_created"` // Người khai slip
	WithMemberID primitive.ObjectID `json:"withMemberId" bson:"withMemberId" index:"single:1"`                                   // Người gặp cùng

	MetAt    int64  `json:"metAt,omitempty" bson:"metAt,omitempty"` // Unix ms — thời điểm gặp
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`

	// Flags
	IsDeleted bool `json:"isDeleted" bson:"isDeleted"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1,compound:onetoone_initiator_created"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                                                      // Unix ms
}
