// Package driver owns the scroll offset between frames.
//
// It is the single writer of the offset: backends feed it ticks, drag
// deltas and input intents from their update loop, and read it back with
// Snapshot from their draw loop. The needs-redraw flag stands in for
// scene-graph dirty tracking: it is raised whenever the offset changes and
// cleared by Snapshot.
package driver

import (
	"math"
	"math/rand"
	"sync"

	"tuberoad/pkg/engine/input"
)

// SpeedStep is the change in autoscroll speed per faster/slower intent
const SpeedStep = 4.0

// Limits on the autoscroll speed in pixels per tick
const (
	MinSpeed = 0.0
	MaxSpeed = 128.0
)

// VehicleJitter bounds the vehicle's vertical bob in reference pixels
const VehicleJitter = 2.0

// Snapshot is a consistent copy of driver state for one frame
type Snapshot struct {
	Offset      float64
	Speed       float64
	Paused      bool
	Reversed    bool
	NeedsRedraw bool

	// VehicleDY is the vehicle's bob for this frame, in reference pixels.
	VehicleDY float64
}

// Driver advances the scroll offset once per tick
type Driver struct {
	mu sync.Mutex

	offset      float64
	startOffset float64
	speed       float64
	paused      bool
	reversed    bool
	pendingDrag float64
	needsRedraw bool
	vehicleDY   float64

	// Shake returns the next vehicle bob. Nil means uniform in
	// [-VehicleJitter, VehicleJitter).
	Shake func() float64

	// OnSpeedChange, when set, is called with the new speed after a faster/slower intent.
	OnSpeedChange func(speed float64)
}

// New returns a driver at startOffset scrolling at speed pixels per tick.
// The first snapshot always requests a redraw.
func New(startOffset, speed float64) *Driver {
	return &Driver{
		offset:      startOffset,
		startOffset: startOffset,
		speed:       clamp(speed),
		needsRedraw: true,
	}
}

// Tick applies pending drag and, unless paused, one step of autoscroll and
// a new vehicle bob. Autoscroll decrements the offset so the road moves
// down the screen.
func (d *Driver) Tick() {
	d.mu.Lock()
	defer d.mu.Unlock()

	delta := d.pendingDrag
	d.pendingDrag = 0
	if !d.paused {
		step := -d.speed
		if d.reversed {
			step = -step
		}
		delta += step
		d.shakeLocked()
	}
	d.moveLocked(delta)
}

// Drag queues a drag delta in screen pixels. Dragging down (positive dy)
// pulls the road down, the same direction as autoscroll.
func (d *Driver) Drag(dy float64) {
	if dy == 0 || math.IsNaN(dy) || math.IsInf(dy, 0) {
		return
	}
	d.mu.Lock()
	d.pendingDrag -= dy
	d.mu.Unlock()
}

// Apply handles a scroll-related intent. It reports whether the intent was consumed.
func (d *Driver) Apply(intent input.Intent) bool {
	d.mu.Lock()

	var speedChanged bool
	switch intent.Action {
	case input.ActionScrollFaster:
		d.speed = clamp(d.speed + SpeedStep)
		speedChanged = true
	case input.ActionScrollSlower:
		d.speed = clamp(d.speed - SpeedStep)
		speedChanged = true
	case input.ActionTogglePause:
		d.paused = !d.paused
		d.needsRedraw = true
	case input.ActionReverse:
		d.reversed = !d.reversed
	case input.ActionResetScroll:
		d.pendingDrag = 0
		d.moveLocked(d.startOffset - d.offset)
	default:
		d.mu.Unlock()
		return false
	}

	speed := d.speed
	notify := d.OnSpeedChange
	d.mu.Unlock()

	if speedChanged && notify != nil {
		notify(speed)
	}
	return true
}

// SetOffset jumps to an absolute offset
func (d *Driver) SetOffset(offset float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.moveLocked(offset - d.offset)
}

// Offset returns the current offset without touching the needs-redraw flag
func (d *Driver) Offset() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.offset
}

// Invalidate forces the next snapshot to request a redraw, e.g. after a resize
func (d *Driver) Invalidate() {
	d.mu.Lock()
	d.needsRedraw = true
	d.mu.Unlock()
}

// Snapshot returns the current state and clears the needs-redraw flag
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := Snapshot{
		Offset:      d.offset,
		Speed:       d.speed,
		Paused:      d.paused,
		Reversed:    d.reversed,
		NeedsRedraw: d.needsRedraw,
		VehicleDY:   d.vehicleDY,
	}
	d.needsRedraw = false
	return s
}

func (d *Driver) moveLocked(delta float64) {
	if delta == 0 {
		return
	}
	d.offset += delta
	d.needsRedraw = true
}

func (d *Driver) shakeLocked() {
	dy := rand.Float64()*2*VehicleJitter - VehicleJitter
	if d.Shake != nil {
		dy = d.Shake()
	}
	if dy != d.vehicleDY {
		d.vehicleDY = dy
		d.needsRedraw = true
	}
}

func clamp(speed float64) float64 {
	if !(speed >= MinSpeed) {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
