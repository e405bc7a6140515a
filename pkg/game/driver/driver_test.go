package driver

import (
	"sync"
	"testing"

	"tuberoad/pkg/engine/input"
)

func TestTick_Autoscroll(t *testing.T) {
	d := New(1000, 16)
	if s := d.Snapshot(); !s.NeedsRedraw || s.Offset != 1000 {
		t.Fatalf("initial snapshot = %+v, want offset 1000 needing redraw", s)
	}

	d.Tick()
	d.Tick()
	s := d.Snapshot()
	if s.Offset != 968 {
		t.Errorf("offset after two ticks = %v, want 968", s.Offset)
	}
	if !s.NeedsRedraw {
		t.Error("offset changed but NeedsRedraw is false")
	}
	if d.Snapshot().NeedsRedraw {
		t.Error("Snapshot did not clear NeedsRedraw")
	}
}

func TestTick_PausedHoldsOffset(t *testing.T) {
	d := New(0, 16)
	d.Snapshot()
	d.Apply(input.Intent{Action: input.ActionTogglePause})
	if s := d.Snapshot(); !s.Paused || !s.NeedsRedraw {
		t.Fatalf("after pause: %+v", s)
	}

	d.Tick()
	if s := d.Snapshot(); s.Offset != 0 || s.NeedsRedraw {
		t.Errorf("paused tick moved the road: %+v", s)
	}
}

func TestTick_VehicleBob(t *testing.T) {
	d := New(0, 0)
	for i := 0; i < 100; i++ {
		d.Tick()
		dy := d.Snapshot().VehicleDY
		if dy < -VehicleJitter || dy >= VehicleJitter {
			t.Fatalf("tick %d: VehicleDY = %v, outside [-%v, %v)", i, dy, VehicleJitter, VehicleJitter)
		}
	}

	bobs := []float64{1, 1, -1.5}
	d.Shake = func() float64 {
		dy := bobs[0]
		bobs = bobs[1:]
		return dy
	}
	d.Snapshot()

	tests := []struct {
		wantDY     float64
		wantRedraw bool
	}{
		{1, true},
		{1, false},
		{-1.5, true},
	}
	for i, tt := range tests {
		d.Tick()
		s := d.Snapshot()
		if s.VehicleDY != tt.wantDY || s.NeedsRedraw != tt.wantRedraw {
			t.Errorf("tick %d: dy=%v redraw=%v, want dy=%v redraw=%v", i, s.VehicleDY, s.NeedsRedraw, tt.wantDY, tt.wantRedraw)
		}
	}

	// paused: the vehicle holds still
	d.Apply(input.Intent{Action: input.ActionTogglePause})
	d.Snapshot()
	d.Tick()
	if s := d.Snapshot(); s.VehicleDY != -1.5 || s.NeedsRedraw {
		t.Errorf("paused tick: %+v", s)
	}
}

func TestDrag(t *testing.T) {
	d := New(0, 0)
	d.Drag(10)
	d.Drag(-3)
	if got := d.Snapshot().Offset; got != 0 {
		t.Errorf("drag applied before tick: offset %v", got)
	}
	d.Tick()
	if got := d.Snapshot().Offset; got != -7 {
		t.Errorf("offset after drag = %v, want -7", got)
	}

	// drag still applies while paused
	d.Apply(input.Intent{Action: input.ActionTogglePause})
	d.Drag(1)
	d.Tick()
	if got := d.Snapshot().Offset; got != -8 {
		t.Errorf("offset after paused drag = %v, want -8", got)
	}
}

func TestApply_SpeedAndReverse(t *testing.T) {
	var notified []float64
	d := New(0, 2)
	d.OnSpeedChange = func(s float64) { notified = append(notified, s) }

	d.Apply(input.Intent{Action: input.ActionScrollFaster})
	d.Apply(input.Intent{Action: input.ActionScrollSlower})
	d.Apply(input.Intent{Action: input.ActionScrollSlower})
	if s := d.Snapshot(); s.Speed != 0 {
		t.Errorf("speed = %v, want 0 (clamped)", s.Speed)
	}
	if want := []float64{6, 2, 0}; len(notified) != len(want) || notified[0] != want[0] || notified[2] != want[2] {
		t.Errorf("OnSpeedChange calls = %v, want %v", notified, want)
	}

	d.Apply(input.Intent{Action: input.ActionScrollFaster})
	d.Apply(input.Intent{Action: input.ActionReverse})
	d.Tick()
	if got := d.Snapshot().Offset; got != SpeedStep {
		t.Errorf("reversed offset = %v, want %v", got, SpeedStep)
	}
}

func TestApply_Reset(t *testing.T) {
	d := New(500, 16)
	for i := 0; i < 10; i++ {
		d.Tick()
	}
	d.Drag(5)
	d.Apply(input.Intent{Action: input.ActionResetScroll})
	d.Tick()
	if got := d.Snapshot().Offset; got != 500-16 {
		t.Errorf("offset after reset and tick = %v, want %v", got, 500-16)
	}
}

func TestApply_IgnoresUnrelated(t *testing.T) {
	d := New(0, 1)
	if d.Apply(input.Intent{Action: input.ActionQuit}) {
		t.Error("Apply consumed ActionQuit")
	}
}

func TestConcurrentHandoff(t *testing.T) {
	d := New(0, 1)
	const ticks = 1000

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < ticks; i++ {
			d.Tick()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < ticks; i++ {
			d.Snapshot()
		}
	}()
	wg.Wait()

	if got := d.Snapshot().Offset; got != -ticks {
		t.Errorf("offset = %v, want %v", got, -ticks)
	}
}
