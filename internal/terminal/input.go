package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// KeyCode identifies a non-character key.
type KeyCode uint8

const (
	KeyRune KeyCode = iota // printable character in Key.Rune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyCtrlC
	KeyCtrlL
)

// Key is one decoded keypress.
type Key struct {
	Code KeyCode
	Rune rune
}

func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		if k.Rune == ' ' {
			return "space"
		}
		return string(k.Rune)
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyCtrlL:
		return "ctrl+l"
	}
	return fmt.Sprintf("key(%d)", k.Code)
}

// DecodeKeys splits a raw read into keys. Unknown escape sequences are
// dropped; a lone ESC is KeyEscape.
func DecodeKeys(data []byte) []Key {
	keys := make([]Key, 0, len(data))
	for len(data) > 0 {
		n, key, ok := decodeOne(data)
		if ok {
			keys = append(keys, key)
		}
		data = data[n:]
	}
	return keys
}

func decodeOne(data []byte) (int, Key, bool) {
	b := data[0]
	switch {
	case b == 0x1b:
		return decodeEscape(data)
	case b == 0x03:
		return 1, Key{Code: KeyCtrlC}, true
	case b == 0x0c:
		return 1, Key{Code: KeyCtrlL}, true
	case b == 0x0d || b == 0x0a:
		return 1, Key{Code: KeyEnter}, true
	case b == 0x09:
		return 1, Key{Code: KeyTab}, true
	case b == 0x7f || b == 0x08:
		return 1, Key{Code: KeyBackspace}, true
	case b < 0x20:
		return 1, Key{}, false
	case b < utf8.RuneSelf:
		return 1, Key{Code: KeyRune, Rune: rune(b)}, true
	}

	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError {
		return 1, Key{}, false
	}
	return size, Key{Code: KeyRune, Rune: r}, true
}

// decodeEscape handles CSI (ESC [) and SS3 (ESC O) cursor keys.
func decodeEscape(data []byte) (int, Key, bool) {
	if len(data) == 1 {
		return 1, Key{Code: KeyEscape}, true
	}
	if data[1] != '[' && data[1] != 'O' {
		return 1, Key{Code: KeyEscape}, true
	}

	// skip parameter bytes up to the final byte
	i := 2
	for i < len(data) && (data[i] >= '0' && data[i] <= '?') {
		i++
	}
	if i >= len(data) {
		return len(data), Key{}, false
	}

	n := i + 1
	switch data[i] {
	case 'A':
		return n, Key{Code: KeyUp}, true
	case 'B':
		return n, Key{Code: KeyDown}, true
	case 'C':
		return n, Key{Code: KeyRight}, true
	case 'D':
		return n, Key{Code: KeyLeft}, true
	}
	return n, Key{}, false
}

// ReadKeys reads r until it fails or ctx is done, sending decoded keys on
// out. It returns nil on EOF or cancellation.
func ReadKeys(ctx context.Context, r io.Reader, out chan<- Key) error {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			for _, k := range DecodeKeys(buf[:n]) {
				select {
				case out <- k:
				case <-ctx.Done():
					return nil
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
