package worker

import (
	"context"
	"testing"
	"time"
)

func TestWaitOrDone_CtxHuyDungNgay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	begin := time.Now()
	ok := waitOrDone(ctx, time.Minute)
	elapsed := time.Since(begin)

	if ok {
		t.Error("ctx đã hủy phải trả về false")
	}
	if elapsed > time.Second {
		t.Errorf("ctx đã hủy phải dừng ngay, không chờ hết khoảng delay (mất %v)", elapsed)
	}
}

func TestWaitOrDone_HetKhoangCho(t *testing.T) {
	ok := waitOrDone(context.Background(), 10*time.Millisecond)
	if !ok {
		t.Error("hết khoảng chờ mà ctx còn sống phải trả về true")
	}
}
