// Package models - TestimonialSlip (slip_testimonials).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestimonialSlip lưu slip cảm nhận/chứng thực giữa hai thành viên (slip_testimonials).
type TestimonialSlip struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	InitiatorID primitive.ObjectID `json:"initiatorId" bson:"initiatorId" index:"single:1,compound:testimonial_initiator_created"` // Người viết cảm nhận
	ToMemberID  primitive.ObjectID `json:"toMemberId" bson:"toMemberId" index:"single:1"`                                          // Người được cảm nhận

	Content string `json:"content" bson:"content"`

	// Flags
	IsDeleted bool `json:"isDeleted" bson:"isDeleted"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1,compound:testimonial_initiator_created"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                                                         // Unix ms
}
