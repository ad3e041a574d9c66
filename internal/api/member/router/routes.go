// Package router đăng ký các route thuộc domain Member: members, visitors.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	memberhdl "grip_backend/internal/api/member/handler"
	apirouter "grip_backend/internal/api/router"
)

// Register đăng ký tất cả route Member lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	memberHandler, err := memberhdl.NewMemberHandler()
	if err != nil {
		return fmt.Errorf("tạo MemberHandler: %w", err)
	}
	visitorHandler, err := memberhdl.NewVisitorHandler()
	if err != nil {
		return fmt.Errorf("tạo VisitorHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/members", memberHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/visitors", visitorHandler, apirouter.ReadWriteConfig)

	return nil
}
