// Package dto - DTO cho domain Slip (4 loại slip hoạt động).
package dto

// OneToOneSlipCreateInput dữ liệu khai slip gặp 1-1.
type OneToOneSlipCreateInput struct {
	InitiatorID  string `json:"initiatorId" validate:"required,objectid" transform:"str_objectid"`
	WithMemberID string `json:"withMemberId" validate:"required,objectid" transform:"str_objectid"`
	MetAt        int64  `json:"metAt,omitempty"` // Unix ms
	Location     string `json:"location,omitempty" validate:"omitempty,no_xss"`
	Notes        string `json:"notes,omitempty" validate:"omitempty,no_xss"`
}

// OneToOneSlipUpdateInput dữ liệu cập nhật slip gặp 1-1.
type OneToOneSlipUpdateInput struct {
	MetAt    int64  `json:"metAt,omitempty"` // Unix ms
	Location string `json:"location,omitempty" validate:"omitempty,no_xss"`
	Notes    string `json:"notes,omitempty" validate:"omitempty,no_xss"`
}

// ReferralSlipCreateInput dữ liệu khai slip giới thiệu.
type ReferralSlipCreateInput struct {
	InitiatorID   string `json:"initiatorId" validate:"required,objectid" transform:"str_objectid"`
	ToMemberID    string `json:"toMemberId" validate:"required,objectid" transform:"str_objectid"`
	ReferralName  string `json:"referralName" validate:"required,no_xss"`
	ReferralPhone string `json:"referralPhone,omitempty" validate:"omitempty,no_xss"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=given contacted closed"`
	Hot           bool   `json:"hot,omitempty"`
	Comment       string `json:"comment,omitempty" validate:"omitempty,no_xss"`
}

// ReferralSlipUpdateInput dữ liệu cập nhật slip giới thiệu.
type ReferralSlipUpdateInput struct {
	ReferralName  string `json:"referralName,omitempty" validate:"omitempty,no_xss"`
	ReferralPhone string `json:"referralPhone,omitempty" validate:"omitempty,no_xss"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=given contacted closed"`
	Hot           bool   `json:"hot,omitempty"`
	Comment       string `json:"comment,omitempty" validate:"omitempty,no_xss"`
}

// TestimonialSlipCreateInput dữ liệu khai slip cảm nhận.
type TestimonialSlipCreateInput struct {
	InitiatorID string `json:"initiatorId" validate:"required,objectid" transform:"str_objectid"`
	ToMemberID  string `json:"toMemberId" validate:"required,objectid" transform:"str_objectid"`
	Content     string `json:"content" validate:"required,no_xss"`
}

// TestimonialSlipUpdateInput dữ liệu cập nhật slip cảm nhận.
type TestimonialSlipUpdateInput struct {
	Content string `json:"content,omitempty" validate:"omitempty,no_xss"`
}

// ThankYouSlipCreateInput dữ liệu khai slip cảm ơn doanh thu.
type ThankYouSlipCreateInput struct {
	SenderID   string  `json:"senderId" validate:"required,objectid" transform:"str_objectid"`
	ToMemberID string  `json:"toMemberId" validate:"required,objectid" transform:"str_objectid"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Comment    string  `json:"comment,omitempty" validate:"omitempty,no_xss"`
}

// ThankYouSlipUpdateInput dữ liệu cập nhật slip cảm ơn.
type ThankYouSlipUpdateInput struct {
	Amount  float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Comment string  `json:"comment,omitempty" validate:"omitempty,no_xss"`
}
