// Package router đăng ký các route thuộc domain Meeting: meetings, attendances.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	meetinghdl "grip_backend/internal/api/meeting/handler"
	apirouter "grip_backend/internal/api/router"
)

// Register đăng ký tất cả route Meeting lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	meetingHandler, err := meetinghdl.NewMeetingHandler()
	if err != nil {
		return fmt.Errorf("tạo MeetingHandler: %w", err)
	}
	attendanceHandler, err := meetinghdl.NewAttendanceHandler()
	if err != nil {
		return fmt.Errorf("tạo AttendanceHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/meetings", meetingHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/attendances", attendanceHandler, apirouter.ReadWriteConfig)

	return nil
}
