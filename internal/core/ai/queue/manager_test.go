package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunPreservesIndexAndIsolatesFailures(t *testing.T) {
	m := NewManager(3)
	out := make([]int, 5)
	boom := errors.New("boom")

	errs := m.Run(context.Background(), len(out), func(ctx context.Context, i int) error {
		// 反向延遲讓完成順序與輸入相反
		time.Sleep(time.Duration(5-i) * 2 * time.Millisecond)
		if i == 2 {
			return boom
		}
		out[i] = i * 10
		return nil
	})

	for i, err := range errs {
		if i == 2 {
			if !errors.Is(err, boom) {
				t.Fatalf("errs[2] = %v, want boom", err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("errs[%d] = %v, want nil", i, err)
		}
		if out[i] != i*10 {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], i*10)
		}
	}

	st := m.GetStatus()
	if st.ProcessedCount != 5 || st.FailedCount != 1 || st.Running != 0 {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestRunRespectsWorkerLimit(t *testing.T) {
	m := NewManager(2)
	var current, peak int32

	m.Run(context.Background(), 8, func(ctx context.Context, i int) error {
		n := atomic.AddInt32(&current, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&current, -1)
		return nil
	})

	if peak > 2 {
		t.Fatalf("peak concurrency = %d, want <= 2", peak)
	}
}

func TestRunRecoversPanic(t *testing.T) {
	m := NewManager(2)
	errs := m.Run(context.Background(), 2, func(ctx context.Context, i int) error {
		if i == 0 {
			panic("bad task")
		}
		return nil
	})
	if errs[0] == nil {
		t.Fatalf("errs[0] = nil, want panic error")
	}
	if errs[1] != nil {
		t.Fatalf("errs[1] = %v, want nil", errs[1])
	}
}

func TestRunCancelledContext(t *testing.T) {
	m := NewManager(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	errs := m.Run(ctx, 3, func(ctx context.Context, i int) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	for i, err := range errs {
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("errs[%d] = %v, want context.Canceled", i, err)
		}
	}
	if calls != 0 {
		t.Fatalf("task called %d times, want 0", calls)
	}
}

func TestRunEmpty(t *testing.T) {
	if errs := NewManager(1).Run(context.Background(), 0, nil); len(errs) != 0 {
		t.Fatalf("len(errs) = %d, want 0", len(errs))
	}
}
