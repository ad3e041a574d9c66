// Package router đăng ký các route thuộc subsystem Period: đọc periods,
// và route admin chạy report chấm điểm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"grip_backend/internal/api/middleware"
	periodhdl "grip_backend/internal/api/period/handler"
	apirouter "grip_backend/internal/api/router"
)

// Register đăng ký route Period lên v1 và route report lên /api/admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	periodHandler, err := periodhdl.NewPeriodHandler()
	if err != nil {
		return fmt.Errorf("tạo PeriodHandler: %w", err)
	}
	reportHandler, err := periodhdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("tạo ReportHandler: %w", err)
	}

	// Periods chỉ đọc qua HTTP; ghi là việc của scoring pipeline + rollover worker.
	r.RegisterCRUDRoutes(v1, "/periods", periodHandler, apirouter.ReadOnlyConfig)

	// POST /api/admin/period-report/run — chỉ admin được chạy report.
	adminAuth := middleware.AuthMiddleware("admin")
	admin := r.App().Group("/api/admin")
	apirouter.RegisterRouteWithMiddleware(admin, "/period-report", "POST", "/run", []fiber.Handler{adminAuth}, reportHandler.HandleRunReport)

	return nil
}
