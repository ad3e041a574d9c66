// Package slipsvc - Service cho domain Slip (4 loại slip hoạt động).
// Mỗi loại slip có 1 service CRUD mỏng trên base service; nghiệp vụ đếm/sum
// theo tháng kế toán nằm bên subsystem period.
package slipsvc

import (
	"fmt"

	basesvc "grip_backend/internal/api/base/service"
	slipmodels "grip_backend/internal/api/slip/models"
	"grip_backend/internal/common"
	"grip_backend/internal/global"
)

// OneToOneSlipService xử lý CRUD slip gặp 1-1.
type OneToOneSlipService struct {
	*basesvc.BaseServiceMongoImpl[slipmodels.OneToOneSlip]
}

// NewOneToOneSlipService tạo OneToOneSlipService mới.
func NewOneToOneSlipService() (*OneToOneSlipService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.OneToOnes)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.OneToOnes, common.ErrNotFound)
	}
	return &OneToOneSlipService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[slipmodels.OneToOneSlip](coll),
	}, nil
}

// ReferralSlipService xử lý CRUD slip giới thiệu.
type ReferralSlipService struct {
	*basesvc.BaseServiceMongoImpl[slipmodels.ReferralSlip]
}

// NewReferralSlipService tạo ReferralSlipService mới.
func NewReferralSlipService() (*ReferralSlipService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Referrals)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Referrals, common.ErrNotFound)
	}
	return &ReferralSlipService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[slipmodels.ReferralSlip](coll),
	}, nil
}

// TestimonialSlipService xử lý CRUD slip cảm nhận.
type TestimonialSlipService struct {
	*basesvc.BaseServiceMongoImpl[slipmodels.TestimonialSlip]
}

// NewTestimonialSlipService tạo TestimonialSlipService mới.
func NewTestimonialSlipService() (*TestimonialSlipService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Testimonials)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Testimonials, common.ErrNotFound)
	}
	return &TestimonialSlipService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[slipmodels.TestimonialSlip](coll),
	}, nil
}

// ThankYouSlipService xử lý CRUD slip cảm ơn doanh thu.
type ThankYouSlipService struct {
	*basesvc.BaseServiceMongoImpl[slipmodels.ThankYouSlip]
}

// NewThankYouSlipService tạo ThankYouSlipService mới.
func NewThankYouSlipService() (*ThankYouSlipService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.ThankYous)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.ThankYous, common.ErrNotFound)
	}
	return &ThankYouSlipService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[slipmodels.ThankYouSlip](coll),
	}, nil
}
