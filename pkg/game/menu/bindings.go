// Package menu lists the key bindings and applies user overrides to them.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	engineinput "tuberoad/pkg/engine/input"
)

// actions in display order
var actions = []engineinput.Action{
	engineinput.ActionScrollFaster,
	engineinput.ActionScrollSlower,
	engineinput.ActionTogglePause,
	engineinput.ActionReverse,
	engineinput.ActionResetScroll,
	engineinput.ActionToggleHUD,
	engineinput.ActionScreenshot,
	engineinput.ActionQuit,
}

// ErrNonRebindable is returned when an override names a fixed action
var ErrNonRebindable = errors.New("action cannot be rebound")

// BindingMenuItem represents one line of the bindings list.
type BindingMenuItem struct {
	Action        engineinput.Action
	NonRebindable bool
}

// GetLabel returns the display label for this binding.
func (b *BindingMenuItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}

	if b.NonRebindable {
		return fmt.Sprintf("%s: %s (fixed)", name, codeText)
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// GetMenuItems returns one item per action
func GetMenuItems() []*BindingMenuItem {
	items := make([]*BindingMenuItem, len(actions))
	for i, action := range actions {
		items[i] = &BindingMenuItem{
			Action:        action,
			NonRebindable: isNonRebindable(action),
		}
	}
	return items
}

// PrintBindings writes the bindings list to w
func PrintBindings(w io.Writer) {
	fmt.Fprintln(w, color.Bold.Sprint("Key bindings"))
	for _, item := range GetMenuItems() {
		label := item.GetLabel()
		if item.NonRebindable {
			label = color.Gray.Sprint(label)
		}
		fmt.Fprintln(w, "  "+label)
	}
}

// ApplyOverrides rebinds actions, keyed by action name (case-insensitive),
// each to a single code. Every override that cannot be applied is reported;
// the others still take effect.
func ApplyOverrides(overrides map[string]string) error {
	var errs []error
	for name, code := range overrides {
		action, ok := actionByName(name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown action %q", name))
			continue
		}
		if isNonRebindable(action) {
			errs = append(errs, fmt.Errorf("%s: %w", engineinput.ActionName(action), ErrNonRebindable))
			continue
		}
		engineinput.SetSingleBinding(action, strings.ToLower(strings.TrimSpace(code)))
	}
	return errors.Join(errs...)
}

func actionByName(name string) (engineinput.Action, bool) {
	for _, a := range actions {
		if strings.EqualFold(engineinput.ActionName(a), strings.TrimSpace(name)) {
			return a, true
		}
	}
	return engineinput.ActionNone, false
}

// isNonRebindable checks if an action cannot be rebound.
func isNonRebindable(action engineinput.Action) bool {
	return action == engineinput.ActionQuit
}
