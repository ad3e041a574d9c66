// Package models - ThankYouSlip (slip_thank_yous).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ThankYouSlip lưu slip cảm ơn doanh thu (slip_thank_yous).
// Amount là doanh thu chốt được nhờ giới thiệu; aggregator sum theo sender
// thành hạng mục business.
type ThankYouSlip struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SenderID   primitive.ObjectID `json:"senderId" bson:"senderId" index:"single:1,compound:thankyou_sender_created"` // Người gửi lời cảm ơn
	ToMemberID primitive.ObjectID `json:"toMemberId" bson:"toMemberId" index:"single:1"`                              // Người được cảm ơn

	Amount  float64 `json:"amount" bson:"amount"` // Doanh thu (VND)
	Comment string  `json:"comment,omitempty" bson:"comment,omitempty"`

	// Flags
	IsDeleted bool `json:"isDeleted" bson:"isDeleted"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1,compound:thankyou_sender_created"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                                                   // Unix ms
}
