package periodsvc

import (
	"testing"
)

func TestSliceIDPage_TrangBinhThuong(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}

	got := SliceIDPage(ids, 1, 2)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("trang 1 limit 2 phải trả [a b], nhận được %v", got)
	}

	got = SliceIDPage(ids, 2, 2)
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Fatalf("trang 2 limit 2 phải trả [c d], nhận được %v", got)
	}
}

func TestSliceIDPage_TrangCuoiThieu(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}

	got := SliceIDPage(ids, 3, 2)
	if len(got) != 1 || got[0] != "e" {
		t.Fatalf("trang cuối phải trả [e], nhận được %v", got)
	}
}

func TestSliceIDPage_TrangVuotQuaRong(t *testing.T) {
	ids := []string{"a", "b", "c"}

	got := SliceIDPage(ids, 5, 2)
	if got == nil {
		t.Fatal("trang vượt quá phải trả slice rỗng, không phải nil")
	}
	if len(got) != 0 {
		t.Fatalf("trang vượt quá phải rỗng, nhận được %v", got)
	}
}

func TestSliceIDPage_ThamSoKhongHopLe(t *testing.T) {
	ids := []string{"a", "b"}

	if got := SliceIDPage(ids, 0, 2); got != nil {
		t.Errorf("page 0 phải trả nil, nhận được %v", got)
	}
	if got := SliceIDPage(ids, 1, 0); got != nil {
		t.Errorf("limit 0 phải trả nil, nhận được %v", got)
	}
	if got := SliceIDPage(ids, -1, -1); got != nil {
		t.Errorf("tham số âm phải trả nil, nhận được %v", got)
	}
}

func TestSliceIDPage_LimitLonHonTong(t *testing.T) {
	ids := []string{"a", "b", "c"}

	got := SliceIDPage(ids, 1, 10)
	if len(got) != 3 {
		t.Fatalf("limit lớn hơn tổng phải trả đủ %d phần tử, nhận được %d", len(ids), len(got))
	}
}
