// Package models - ReferralSlip (slip_referrals).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của referral.
const (
	ReferralStatusGiven     = "given"
	ReferralStatusContacted = "contacted"
	ReferralStatusClosed    = "closed"
)

// ReferralSlip lưu slip giới thiệu cơ hội kinh doanh (slip_referrals).
type ReferralSlip struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	InitiatorID primitive.ObjectID `json:"initiatorId" bson:"initiatorId" index:"single:1,compound:referral_initiator_created"` // Người giới thiệu
	ToMemberID  primitive.ObjectID `json:"toMemberId" bson:"toMemberId" index:"single:1"`                                       // Người nhận giới thiệu

	ReferralName  string `json:"referralName" bson:"referralName"` // Tên khách được giới thiệu
	ReferralPhone string `json:"referralPhone,omitempty" bson:"referralPhone,omitempty"`
	Status        string `json:"status" bson:"status"` // given | contacted | closed
	Hot           bool   `json:"hot" bson:"hot"`       // Referral nóng (ưu tiên liên hệ)
	Comment       string `json:"comment,omitempty" bson:"comment,omitempty"`

	// Flags
	IsDeleted bool `json:"isDeleted" bson:"isDeleted"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1,compound:referral_initiator_created"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                                                      // Unix ms
}
