// Package router đăng ký các route thuộc domain Slip: 4 loại slip hoạt động.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "grip_backend/internal/api/router"
	sliphdl "grip_backend/internal/api/slip/handler"
)

// Register đăng ký tất cả route Slip lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	oneToOneHandler, err := sliphdl.NewOneToOneSlipHandler()
	if err != nil {
		return fmt.Errorf("tạo OneToOneSlipHandler: %w", err)
	}
	referralHandler, err := sliphdl.NewReferralSlipHandler()
	if err != nil {
		return fmt.Errorf("tạo ReferralSlipHandler: %w", err)
	}
	testimonialHandler, err := sliphdl.NewTestimonialSlipHandler()
	if err != nil {
		return fmt.Errorf("tạo TestimonialSlipHandler: %w", err)
	}
	thankYouHandler, err := sliphdl.NewThankYouSlipHandler()
	if err != nil {
		return fmt.Errorf("tạo ThankYouSlipHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/one-to-ones", oneToOneHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/referrals", referralHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/testimonials", testimonialHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/thank-yous", thankYouHandler, apirouter.ReadWriteConfig)

	return nil
}
