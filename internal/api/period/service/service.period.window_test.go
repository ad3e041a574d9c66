// Package periodsvc - Test tính toán tháng kế toán (cửa sổ 16 -> 15).
package periodsvc

import (
	"testing"
	"time"
)

func TestComputeMonthlyWindows_TraVe7CuaSo(t *testing.T) {
	today := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	windows := ComputeMonthlyWindows(today)

	if len(windows) != 7 {
		t.Fatalf("phải có đúng 7 cửa sổ, nhận được %d", len(windows))
	}
}

func TestComputeMonthlyWindows_BatDauNgay16KetThucNgay15(t *testing.T) {
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	windows := ComputeMonthlyWindows(today)

	for i, w := range windows {
		if w.Start.Day() != 16 {
			t.Errorf("cửa sổ %d: start phải là ngày 16, nhận được ngày %d", i, w.Start.Day())
		}
		if w.End.Day() != 15 {
			t.Errorf("cửa sổ %d: end phải là ngày 15, nhận được ngày %d", i, w.End.Day())
		}
		if !w.Start.Before(w.End) {
			t.Errorf("cửa sổ %d: start %v phải trước end %v", i, w.Start, w.End)
		}
	}
}

func TestComputeMonthlyWindows_LienTucKhongChongLan(t *testing.T) {
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	windows := ComputeMonthlyWindows(today)

	for i := 1; i < len(windows); i++ {
		prev := windows[i-1]
		curr := windows[i]

		if !curr.Start.After(prev.End) {
			t.Errorf("cửa sổ %d chồng lấn cửa sổ trước: start %v <= end trước %v", i, curr.Start, prev.End)
		}
		// Liền kề: start cửa sổ sau = end cửa sổ trước + 1ms
		gap := curr.Start.Sub(prev.End)
		if gap != time.Millisecond {
			t.Errorf("cửa sổ %d không liền kề cửa sổ trước: khoảng hở %v", i, gap)
		}
	}
}

func TestComputeMonthlyWindows_ThuTuTangDan(t *testing.T) {
	today := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	windows := ComputeMonthlyWindows(today)

	for i := 1; i < len(windows); i++ {
		if !windows[i-1].Start.Before(windows[i].Start) {
			t.Errorf("cửa sổ phải theo thứ tự tăng dần, vị trí %d sai", i)
		}
	}
}

func TestComputeMonthlyWindows_QuaRanhGioiNam(t *testing.T) {
	// Tháng 2/2025 - 6 = tháng 8/2024: các cửa sổ đầu phải rơi đúng sang năm trước.
	today := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)
	windows := ComputeMonthlyWindows(today)

	first := windows[0]
	if first.Start.Year() != 2024 || first.Start.Month() != time.August {
		t.Errorf("cửa sổ đầu phải bắt đầu 16/08/2024, nhận được %v", first.Start)
	}
	if first.Key != "2024-09" {
		t.Errorf("key cửa sổ đầu phải là 2024-09, nhận được %s", first.Key)
	}

	// Cửa sổ Tháng 12 -> Tháng 1 phải sang năm mới đúng.
	for i, w := range windows {
		if w.Start.Month() == time.December {
			if w.End.Month() != time.January || w.End.Year() != w.Start.Year()+1 {
				t.Errorf("cửa sổ %d: 16/12 phải kết thúc 15/01 năm sau, nhận được %v", i, w.End)
			}
		}
	}
}

func TestComputeMonthlyWindows_KeyTheoThangKetThuc(t *testing.T) {
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	windows := ComputeMonthlyWindows(today)

	for i, w := range windows {
		expected := w.End.Format("2006-01")
		if w.Key != expected {
			t.Errorf("cửa sổ %d: key %s không khớp tháng kết thúc %s", i, w.Key, expected)
		}
	}

	// Cửa sổ cuối (i=0) là tháng kế toán hiện tại: 16/06 -> 15/07, key 2025-07.
	last := windows[len(windows)-1]
	if last.Key != "2025-07" {
		t.Errorf("key cửa sổ cuối phải là 2025-07, nhận được %s", last.Key)
	}
	if last.Start.Month() != time.June || last.Start.Day() != 16 {
		t.Errorf("cửa sổ cuối phải bắt đầu 16/06, nhận được %v", last.Start)
	}
}

func TestComputeMonthlyWindows_EndMsTruocStartMsCuaSoSau(t *testing.T) {
	// Query range theo ms: [StartMs, EndMs] của 2 cửa sổ liên tiếp không giao nhau.
	today := time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)
	windows := ComputeMonthlyWindows(today)

	for i := 1; i < len(windows); i++ {
		if windows[i-1].EndMs() >= windows[i].StartMs() {
			t.Errorf("EndMs cửa sổ %d (%d) phải nhỏ hơn StartMs cửa sổ %d (%d)",
				i-1, windows[i-1].EndMs(), i, windows[i].StartMs())
		}
	}
}
