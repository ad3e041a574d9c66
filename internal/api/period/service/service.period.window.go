// Package periodsvc - Subsystem chấm điểm theo kỳ 6 tháng.
// File này tính các "tháng kế toán": cửa sổ từ ngày 16 tháng N đến hết ngày 15
// tháng N+1. Mốc 16→15 là quy tắc nghiệp vụ cố định, không cấu hình được.
package periodsvc

import (
	"time"
)

// MonthlyWindow là một tháng kế toán, giá trị tạm thời không lưu DB.
// Key lấy theo tháng/năm của mốc kết thúc, định dạng "YYYY-MM".
type MonthlyWindow struct {
	Start time.Time // 00:00:00.000 ngày 16
	End   time.Time // 23:59:59.999 ngày 15 tháng kế tiếp (inclusive, để query range theo ms)
	Key   string
}

// StartMs trả về mốc đầu cửa sổ theo Unix ms.
func (w MonthlyWindow) StartMs() int64 { return w.Start.UnixMilli() }

// EndMs trả về mốc cuối cửa sổ theo Unix ms.
func (w MonthlyWindow) EndMs() int64 { return w.End.UnixMilli() }

// ComputeMonthlyWindows tính 7 tháng kế toán liên tiếp, cũ nhất trước,
// phủ tháng kế toán hiện tại và 6 tháng liền trước.
// Dùng time.Date để cộng trừ tháng an toàn qua ranh giới năm (Tháng 12 -> Tháng 1).
func ComputeMonthlyWindows(today time.Time) []MonthlyWindow {
	loc := today.Location()
	windows := make([]MonthlyWindow, 0, 7)

	for i := 6; i >= 0; i-- {
		monthDate := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, loc)

		start := time.Date(monthDate.Year(), monthDate.Month(), 16, 0, 0, 0, 0, loc)
		// Mốc cuối = ngay trước 00:00 ngày 16 tháng kế tiếp, tức trọn ngày 15.
		end := time.Date(monthDate.Year(), monthDate.Month()+1, 16, 0, 0, 0, 0, loc).Add(-time.Millisecond)

		windows = append(windows, MonthlyWindow{
			Start: start,
			End:   end,
			Key:   end.Format("2006-01"),
		})
	}

	return windows
}
