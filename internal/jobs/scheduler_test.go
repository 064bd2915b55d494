package jobs

import (
	"context"
	"testing"
	"time"
)

func TestNextHour(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid hour",
			in:   time.Date(2024, 1, 1, 10, 30, 12, 0, time.UTC),
			want: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly on the hour moves to the next one",
			in:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			name: "day rollover",
			in:   time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC),
			want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextHour(tt.in); !got.Equal(tt.want) {
				t.Errorf("nextHour(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRunOnceTriggersBothEngines(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	rs := &fakeReservationStore{}
	cs := &fakeContractStore{}
	notifier := NewNotifier(&fakeConfig{}, &fakeSink{}, fakeClock{t: now})
	checkout := NewCheckoutEngine(rs, cs, &fakeCustomers{}, notifier)
	completion := NewCompletionEngine(cs, &fakeServices{}, &fakeCustomers{}, notifier)
	s := NewScheduler(checkout, completion, fakeClock{t: now})

	s.RunOnce(context.Background())

	if rs.findCalls != 1 {
		t.Errorf("reservation query ran %d times, want 1", rs.findCalls)
	}
	if cs.findCalls != 1 {
		t.Errorf("contract query ran %d times, want 1", cs.findCalls)
	}
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	now := time.Now().UTC()
	notifier := NewNotifier(&fakeConfig{}, &fakeSink{}, fakeClock{t: now})
	checkout := NewCheckoutEngine(&fakeReservationStore{}, &fakeContractStore{}, &fakeCustomers{}, notifier)
	completion := NewCompletionEngine(&fakeContractStore{}, &fakeServices{}, &fakeCustomers{}, notifier)
	s := NewScheduler(checkout, completion, SystemClock())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
