package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTouch
	DeviceTerminal
)

// Action represents a high‑level intent for the scroll driver.
type Action int

const (
	ActionNone Action = iota

	// Scrolling
	ActionScrollFaster
	ActionScrollSlower
	ActionTogglePause
	ActionResetScroll
	ActionReverse

	// Meta / UI
	ActionScreenshot
	ActionToggleHUD
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "space", "q").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed queries and the terminal byte reader already emit one
// event per press, so this is a distinct type rather than a filter.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"arrow_up":   ActionScrollFaster,
	"k":          ActionScrollFaster,
	"=":          ActionScrollFaster,
	"+":          ActionScrollFaster,
	"arrow_down": ActionScrollSlower,
	"j":          ActionScrollSlower,
	"-":          ActionScrollSlower,

	"space": ActionTogglePause,
	"p":     ActionTogglePause,

	"0":    ActionResetScroll,
	"home": ActionResetScroll,

	"r": ActionReverse,

	"f12": ActionScreenshot,
	"s":   ActionScreenshot,

	"h":   ActionToggleHUD,
	"tab": ActionToggleHUD,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// reserved codes cannot be rebound away from their action
var reserved = map[string]bool{
	"escape": true,
	"ctrl_c": true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve runs a raw event through every layer
func Resolve(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionScrollFaster:
		return "Scroll Faster"
	case ActionScrollSlower:
		return "Scroll Slower"
	case ActionTogglePause:
		return "Pause"
	case ActionResetScroll:
		return "Reset Scroll"
	case ActionReverse:
		return "Reverse"
	case ActionScreenshot:
		return "Screenshot"
	case ActionToggleHUD:
		return "Toggle HUD"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Reserved codes keep their binding.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
