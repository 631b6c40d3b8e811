package metric

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestNewTimer(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name     string
		config   TimerConfig
		wantErr  error
		wantUnit string
	}{
		{
			name:     "valid",
			config:   TimerConfig{Key: "latency", Service: "svc"},
			wantUnit: "ns",
		},
		{
			name:     "custom attributes keep unit",
			config:   TimerConfig{Key: "latency", Service: "svc", Attributes: map[string]string{"pod": "gew1"}},
			wantUnit: "ns",
		},
		{
			name:     "unit override",
			config:   TimerConfig{Key: "latency", Service: "svc", Attributes: map[string]string{"unit": "ms"}},
			wantUnit: "ms",
		},
		{
			name:    "empty key",
			config:  TimerConfig{Service: "svc"},
			wantErr: ErrKeyEmpty,
		},
		{
			name:    "empty service",
			config:  TimerConfig{Key: "latency"},
			wantErr: ErrServiceEmpty,
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tm, err := NewTimer(tc.config)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("unexpected error: want %v got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}

			if tm.Completed() {
				t.Fatal("new timer must not be completed")
			}
			if got := tm.Attributes()["unit"]; got != tc.wantUnit {
				t.Fatalf("unit mismatch: want %q, got %q", tc.wantUnit, got)
			}
		})
	}
}

func TestTimerMeasuresElapsed(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	tm, err := NewTimer(TimerConfig{Key: "latency", Service: "svc", Clock: clk})
	if err != nil {
		t.Fatalf("NewTimer returned error: %v", err)
	}

	tm.Start()
	clk.Add(time.Second)
	tm.Stop()

	if !tm.Completed() {
		t.Fatal("stopped timer must be completed")
	}
	if tm.Value() != float64(time.Second) {
		t.Fatalf("value mismatch: want %v, got %v", float64(time.Second), tm.Value())
	}
}

func TestTimerRestartRecomputes(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	tm, err := NewTimer(TimerConfig{Key: "latency", Service: "svc", Clock: clk})
	if err != nil {
		t.Fatalf("NewTimer returned error: %v", err)
	}

	tm.Start()
	clk.Add(2 * time.Second)
	tm.Stop()

	tm.Start()
	if tm.Completed() {
		t.Fatal("restarted timer must not report a completed measurement")
	}
	clk.Add(time.Second)
	tm.Stop()

	// Recomputed from scratch, not accumulated across scopes.
	if tm.Value() != float64(time.Second) {
		t.Fatalf("value mismatch: want %v, got %v", float64(time.Second), tm.Value())
	}
}

func TestTimerTime(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	tm, err := NewTimer(TimerConfig{Key: "latency", Service: "svc", Clock: clk})
	if err != nil {
		t.Fatalf("NewTimer returned error: %v", err)
	}

	wantErr := errors.New("operation failed")
	gotErr := tm.Time(func() error {
		clk.Add(time.Second)
		return wantErr
	})

	if !errors.Is(gotErr, wantErr) {
		t.Fatalf("error not propagated: want %v, got %v", wantErr, gotErr)
	}
	if !tm.Completed() {
		t.Fatal("timer must complete even when the operation fails")
	}
	if tm.Value() != float64(time.Second) {
		t.Fatalf("value mismatch: want %v, got %v", float64(time.Second), tm.Value())
	}
}

func TestTimerTimeCompletesOnPanic(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	tm, err := NewTimer(TimerConfig{Key: "latency", Service: "svc", Clock: clk})
	if err != nil {
		t.Fatalf("NewTimer returned error: %v", err)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = tm.Time(func() error {
			clk.Add(time.Second)
			panic("boom")
		})
	}()

	if !tm.Completed() {
		t.Fatal("timer must complete when the operation panics")
	}
	if tm.Value() != float64(time.Second) {
		t.Fatalf("value mismatch: want %v, got %v", float64(time.Second), tm.Value())
	}
}

func TestTimerTimestamp(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	clk.Set(time.Unix(1000, 0))

	tm, err := NewTimer(TimerConfig{Key: "latency", Service: "svc", Clock: clk})
	if err != nil {
		t.Fatalf("NewTimer returned error: %v", err)
	}

	tm.Start()
	clk.Add(250 * time.Millisecond)
	tm.Stop()

	// Completed timers are stamped with their completion time, even if the
	// clock keeps moving before the flush.
	clk.Add(time.Hour)
	if got := tm.Timestamp(); got != 1000.25 {
		t.Fatalf("timestamp mismatch: want 1000.25, got %v", got)
	}
}
