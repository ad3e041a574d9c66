// Package dto - DTO cho subsystem Period.
package dto

import (
	periodmodels "grip_backend/internal/api/period/models"
)

// PeriodCreateInput không dùng qua API — period chỉ được tạo bởi scoring pipeline
// và rollover worker. Giữ type rỗng cho base handler (các route ghi không đăng ký).
type PeriodCreateInput struct{}

// PeriodUpdateInput không dùng qua API, tương tự PeriodCreateInput.
type PeriodUpdateInput struct{}

// ReportRunInput body của POST /admin/period-report/run.
// Page/Limit phân trang chính mảng memberIds (slice phía server, không query DB).
type ReportRunInput struct {
	MemberIDs []string `json:"memberIds" validate:"required,min=1,dive,required"`
	Page      int      `json:"page,omitempty" validate:"omitempty,min=1"`
	Limit     int      `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// MemberReportResult kết quả chấm điểm 1 thành viên trong 1 lần chạy report.
type MemberReportResult struct {
	MemberID     string                                   `json:"memberId"`
	MemberName   string                                   `json:"memberName"`
	Period       periodmodels.Period                      `json:"period"`
	Totals       periodmodels.CategoryValues              `json:"totals"`       // Tổng thô 7 tháng theo hạng mục
	Score        periodmodels.CategoryValues              `json:"score"`        // Điểm tổng theo hạng mục (không trần)
	MonthlyScore map[string]periodmodels.CategoryValues   `json:"monthlyScore"` // Điểm từng tháng kế toán (key YYYY-MM)
	CfRemaining  periodmodels.CategoryValues              `json:"cfRemaining"`  // Số dư chuyển kỳ còn lại sau khi tiêu
}

// MemberReportError lỗi của 1 thành viên trong batch (partial success).
type MemberReportError struct {
	MemberID string `json:"memberId"`
	Message  string `json:"message"`
}

// ReportRunOutput response của report run: kết quả + lỗi theo từng thành viên.
type ReportRunOutput struct {
	Success    bool                `json:"success"`
	Data       []MemberReportResult `json:"data"`
	Errors     []MemberReportError  `json:"errors"`
	Total      int                 `json:"total"`      // Tổng số memberIds gửi lên
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
}
