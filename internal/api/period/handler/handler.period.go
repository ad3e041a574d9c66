// Package periodhdl - Handler cho subsystem Period.
// Period chỉ đọc qua HTTP (find/paginate/count); ghi dữ liệu là việc của
// scoring pipeline và rollover worker.
package periodhdl

import (
	"fmt"

	basehdl "grip_backend/internal/api/base/handler"
	perioddto "grip_backend/internal/api/period/dto"
	periodmodels "grip_backend/internal/api/period/models"
	periodsvc "grip_backend/internal/api/period/service"
)

// PeriodHandler xử lý các route đọc period
type PeriodHandler struct {
	*basehdl.BaseHandler[periodmodels.Period, perioddto.PeriodCreateInput, perioddto.PeriodUpdateInput]
	PeriodService *periodsvc.PeriodService
}

// NewPeriodHandler tạo instance mới của PeriodHandler
func NewPeriodHandler() (*PeriodHandler, error) {
	periodService, err := periodsvc.NewPeriodService()
	if err != nil {
		return nil, fmt.Errorf("tạo PeriodService: %w", err)
	}
	return &PeriodHandler{
		BaseHandler:   basehdl.NewBaseHandler[periodmodels.Period, perioddto.PeriodCreateInput, perioddto.PeriodUpdateInput](periodService),
		PeriodService: periodService,
	}, nil
}
