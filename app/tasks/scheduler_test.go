package tasks

import (
	"sync/atomic"
	"testing"
	"time"
)

type fakeSweeper struct {
	sweeps  int32
	removed int
}

func (f *fakeSweeper) Sweep() int {
	atomic.AddInt32(&f.sweeps, 1)
	return f.removed
}

func (f *fakeSweeper) Len() int {
	return 0
}

func TestScheduler_SweepsPeriodically(t *testing.T) {
	sweeper := &fakeSweeper{removed: 2}
	scheduler := NewScheduler(sweeper, 10*time.Millisecond)

	scheduler.Start()
	time.Sleep(35 * time.Millisecond)
	scheduler.Stop()

	if got := atomic.LoadInt32(&sweeper.sweeps); got < 2 {
		t.Errorf("Expected at least 2 sweeps, got %d", got)
	}
}

func TestScheduler_StopHaltsSweeping(t *testing.T) {
	sweeper := &fakeSweeper{}
	scheduler := NewScheduler(sweeper, 5*time.Millisecond)

	scheduler.Start()
	time.Sleep(12 * time.Millisecond)
	scheduler.Stop()

	after := atomic.LoadInt32(&sweeper.sweeps)
	time.Sleep(20 * time.Millisecond)

	if got := atomic.LoadInt32(&sweeper.sweeps); got != after {
		t.Errorf("Expected no sweeps after Stop, got %d more", got-after)
	}
}

func TestScheduler_StopWithoutTicks(t *testing.T) {
	scheduler := NewScheduler(&fakeSweeper{}, time.Hour)

	scheduler.Start()
	scheduler.Stop()
}
