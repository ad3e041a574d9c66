// Package sliphdl - Handler cho domain Slip.
package sliphdl

import (
	"fmt"

	basehdl "grip_backend/internal/api/base/handler"
	slipdto "grip_backend/internal/api/slip/dto"
	slipmodels "grip_backend/internal/api/slip/models"
	slipsvc "grip_backend/internal/api/slip/service"
)

// OneToOneSlipHandler xử lý các route slip gặp 1-1
type OneToOneSlipHandler struct {
	*basehdl.BaseHandler[slipmodels.OneToOneSlip, slipdto.OneToOneSlipCreateInput, slipdto.OneToOneSlipUpdateInput]
	Service *slipsvc.OneToOneSlipService
}

// NewOneToOneSlipHandler tạo instance mới của OneToOneSlipHandler
func NewOneToOneSlipHandler() (*OneToOneSlipHandler, error) {
	svc, err := slipsvc.NewOneToOneSlipService()
	if err != nil {
		return nil, fmt.Errorf("tạo OneToOneSlipService: %w", err)
	}
	return &OneToOneSlipHandler{
		BaseHandler: basehdl.NewBaseHandler[slipmodels.OneToOneSlip, slipdto.OneToOneSlipCreateInput, slipdto.OneToOneSlipUpdateInput](svc),
		Service:     svc,
	}, nil
}

// ReferralSlipHandler xử lý các route slip giới thiệu
type ReferralSlipHandler struct {
	*basehdl.BaseHandler[slipmodels.ReferralSlip, slipdto.ReferralSlipCreateInput, slipdto.ReferralSlipUpdateInput]
	Service *slipsvc.ReferralSlipService
}

// NewReferralSlipHandler tạo instance mới của ReferralSlipHandler
func NewReferralSlipHandler() (*ReferralSlipHandler, error) {
	svc, err := slipsvc.NewReferralSlipService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReferralSlipService: %w", err)
	}
	return &ReferralSlipHandler{
		BaseHandler: basehdl.NewBaseHandler[slipmodels.ReferralSlip, slipdto.ReferralSlipCreateInput, slipdto.ReferralSlipUpdateInput](svc),
		Service:     svc,
	}, nil
}

// TestimonialSlipHandler xử lý các route slip cảm nhận
type TestimonialSlipHandler struct {
	*basehdl.BaseHandler[slipmodels.TestimonialSlip, slipdto.TestimonialSlipCreateInput, slipdto.TestimonialSlipUpdateInput]
	Service *slipsvc.TestimonialSlipService
}

// NewTestimonialSlipHandler tạo instance mới của TestimonialSlipHandler
func NewTestimonialSlipHandler() (*TestimonialSlipHandler, error) {
	svc, err := slipsvc.NewTestimonialSlipService()
	if err != nil {
		return nil, fmt.Errorf("tạo TestimonialSlipService: %w", err)
	}
	return &TestimonialSlipHandler{
		BaseHandler: basehdl.NewBaseHandler[slipmodels.TestimonialSlip, slipdto.TestimonialSlipCreateInput, slipdto.TestimonialSlipUpdateInput](svc),
		Service:     svc,
	}, nil
}

// ThankYouSlipHandler xử lý các route slip cảm ơn doanh thu
type ThankYouSlipHandler struct {
	*basehdl.BaseHandler[slipmodels.ThankYouSlip, slipdto.ThankYouSlipCreateInput, slipdto.ThankYouSlipUpdateInput]
	Service *slipsvc.ThankYouSlipService
}

// NewThankYouSlipHandler tạo instance mới của ThankYouSlipHandler
func NewThankYouSlipHandler() (*ThankYouSlipHandler, error) {
	svc, err := slipsvc.NewThankYouSlipService()
	if err != nil {
		return nil, fmt.Errorf("tạo ThankYouSlipService: %w", err)
	}
	return &ThankYouSlipHandler{
		BaseHandler: basehdl.NewBaseHandler[slipmodels.ThankYouSlip, slipdto.ThankYouSlipCreateInput, slipdto.ThankYouSlipUpdateInput](svc),
		Service:     svc,
	}, nil
}
