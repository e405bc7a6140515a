package input

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// KeyReader reads single key presses from a terminal in raw mode
type KeyReader struct {
	fd       int
	oldState *term.State
	events   chan RawInput
}

// NewKeyReader puts stdin into raw mode. Callers must Close it to restore the terminal.
func NewKeyReader() (*KeyReader, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &KeyReader{
		fd:       fd,
		oldState: oldState,
		events:   make(chan RawInput, 16),
	}, nil
}

// Events returns the channel key presses are delivered on
func (k *KeyReader) Events() <-chan RawInput {
	return k.events
}

// Run decodes key presses until ctx is cancelled or stdin fails.
// Presses arriving while the channel is full are dropped.
func (k *KeyReader) Run(ctx context.Context) {
	buf := make([]byte, 8)
	for ctx.Err() == nil {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		for _, code := range DecodeKeys(buf[:n]) {
			ev := RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}
			select {
			case k.events <- ev:
			default:
				// Channel full, drop input
			}
		}
	}
}

// Close restores the terminal state
func (k *KeyReader) Close() error {
	return term.Restore(k.fd, k.oldState)
}

// DecodeKeys converts a chunk of raw terminal bytes into key codes.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences.
func DecodeKeys(b []byte) []string {
	var codes []string
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == 0x1b && i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O'):
			switch b[i+2] {
			case 'A':
				codes = append(codes, "arrow_up")
			case 'B':
				codes = append(codes, "arrow_down")
			case 'C':
				codes = append(codes, "arrow_right")
			case 'D':
				codes = append(codes, "arrow_left")
			case 'H':
				codes = append(codes, "home")
			}
			// Unknown escape sequence - discard it
			i += 2
		case c == 0x1b:
			codes = append(codes, "escape")
		case c == 3:
			codes = append(codes, "ctrl_c")
		case c == ' ':
			codes = append(codes, "space")
		case c == '\t':
			codes = append(codes, "tab")
		case c == '\r' || c == '\n':
			codes = append(codes, "enter")
		case c > 32 && c < 127:
			codes = append(codes, string(c))
		}
	}
	return codes
}
