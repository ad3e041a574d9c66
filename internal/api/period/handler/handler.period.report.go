// Package periodhdl - Handler report chấm điểm theo kỳ.
package periodhdl

import (
	"fmt"

	basehdl "grip_backend/internal/api/base/handler"
	perioddto "grip_backend/internal/api/period/dto"
	periodsvc "grip_backend/internal/api/period/service"
	"grip_backend/internal/common"
	"grip_backend/internal/global"
	"grip_backend/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler xử lý route chạy report chấm điểm.
type ReportHandler struct {
	ReportService *periodsvc.ReportService
}

// NewReportHandler tạo instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := periodsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReportService: %w", err)
	}
	return &ReportHandler{ReportService: reportService}, nil
}

// HandleRunReport xử lý POST /admin/period-report/run.
// Body {memberIds, page?, limit?}; mỗi member trong trang được chấm điểm độc lập,
// lỗi từng member trả trong Errors thay vì hủy cả batch.
func (h *ReportHandler) HandleRunReport(c fiber.Ctx) error {
	var input perioddto.ReportRunInput
	if err := c.Bind().Body(&input); err != nil {
		basehdl.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Dữ liệu gửi lên không đúng định dạng JSON",
			common.StatusBadRequest,
			nil,
		))
		return nil
	}

	if err := global.Validate.Struct(&input); err != nil {
		basehdl.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			"memberIds không được để trống",
			common.StatusBadRequest,
			err.Error(),
		))
		return nil
	}

	output, err := h.ReportService.RunReport(c.Context(), &input)
	if err != nil {
		logger.WithRequest(c).Errorf("❌ [PERIOD_REPORT] Lỗi chạy report: %v", err)
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	logger.WithRequest(c).Infof("📊 [PERIOD_REPORT] Đã chấm điểm %d thành viên, %d lỗi (page %d/%d)",
		len(output.Data), len(output.Errors), output.Page, output.TotalPages)

	return basehdl.JSONResponse(c, common.StatusOK, output)
}
