// Package locale provides translated UI strings. Translations are embedded
// .po files keyed by message id (e.g. "HUD_OFFSET").
package locale

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed po/*.po
var poFiles embed.FS

const domain = "default"

var (
	active   *gotext.Locale
	activeMu sync.RWMutex
)

// Available reports whether a translation for lang is embedded
func Available(lang string) bool {
	_, err := poFiles.ReadFile("po/" + lang + ".po")
	return err == nil
}

// Set activates the translation for lang
func Set(lang string) error {
	data, err := poFiles.ReadFile("po/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("no translation for %q", lang)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)

	activeMu.Lock()
	active = l
	activeMu.Unlock()
	return nil
}

// Get returns the translation of id, or id itself when no locale is active
// or the id is unknown.
func Get(id string) string {
	activeMu.RLock()
	l := active
	activeMu.RUnlock()

	if l == nil {
		return id
	}
	return l.Get(id, []any{}...)
}

// Getf formats vars into the translation of id
func Getf(id string, vars ...any) string {
	return fmt.Sprintf(Get(id), vars...)
}
