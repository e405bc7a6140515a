package ebiten

import (
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "tuberoad/pkg/engine/input"
)

// repeatKeys auto-repeat while held; the rest fire once per press
var repeatKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyK:          "k",
	ebiten.KeyJ:          "j",
	ebiten.KeyEqual:      "=",
	ebiten.KeyMinus:      "-",
	ebiten.KeyKPAdd:      "+",
	ebiten.KeyKPSubtract: "-",
}

// pressKeys fire once per press. Letters and digits are all listed so
// rebound codes work.
var pressKeys = map[ebiten.Key]string{
	ebiten.KeySpace:  "space",
	ebiten.KeyHome:   "home",
	ebiten.KeyF12:    "f12",
	ebiten.KeyTab:    "tab",
	ebiten.KeyEscape: "escape",
}

func init() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if _, ok := repeatKeys[k]; ok {
			continue
		}
		name := k.String()
		switch {
		case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
			pressKeys[k] = strings.ToLower(name)
		case len(name) == len("Digit0") && strings.HasPrefix(name, "Digit"):
			pressKeys[k] = name[len("Digit"):]
		}
	}
}

// Update handles input and advances the scroll (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}

	size := e.viewportSize()
	for _, intent := range e.checkInput() {
		if e.scene.HandleIntent(intent, size.X, size.Y) {
			return ebiten.Termination
		}
	}

	if dy := e.checkDrag(); dy != 0 {
		e.scene.Drag(float64(dy), float64(size.X))
	}
	e.scene.Driver.Tick()
	return nil
}

// checkInput returns the intents for keys pressed this tick
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	emit := func(code string) {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		}))
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}

	for key, code := range repeatKeys {
		if e.shouldRepeatKey(key) {
			emit(code)
		}
	}
	for key, code := range pressKeys {
		if inpututil.IsKeyJustPressed(key) {
			emit(code)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		emit("ctrl_c")
	}
	return intents
}

// shouldRepeatKey reports whether key triggers this tick (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(key ebiten.Key) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	if !ebiten.IsKeyPressed(key) {
		delete(e.keyRepeatState, key)
		return false
	}
	state, exists := e.keyRepeatState[key]
	if !exists {
		e.keyRepeatState[key] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[key] = state
		return true
	}
	return false
}

// checkDrag returns the vertical drag distance since the last tick. The
// first touch wins over the mouse.
func (e *EbitenRenderer) checkDrag() int {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		_, y := ebiten.TouchPosition(ids[0])
		e.mouse.release()
		return e.touch.update(true, y)
	}
	e.touch.release()

	_, y := ebiten.CursorPosition()
	return e.mouse.update(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), y)
}

// dragTracker turns a pointer's absolute position into per-tick deltas
type dragTracker struct {
	active bool
	lastY  int
}

// update reports how far the pointer moved while held. A new press reports 0.
func (d *dragTracker) update(pressed bool, y int) int {
	if !pressed {
		d.release()
		return 0
	}
	if !d.active {
		d.active = true
		d.lastY = y
		return 0
	}
	dy := y - d.lastY
	d.lastY = y
	return dy
}

func (d *dragTracker) release() {
	d.active = false
}
