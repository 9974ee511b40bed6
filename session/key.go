package session

// Key is a keypad key.
type Key string

const (
	Key0          Key = "0"
	Key1          Key = "1"
	Key2          Key = "2"
	Key3          Key = "3"
	Key4          Key = "4"
	Key5          Key = "5"
	Key6          Key = "6"
	Key7          Key = "7"
	Key8          Key = "8"
	Key9          Key = "9"
	KeyDoubleZero Key = "00"
	KeyBackspace  Key = "backspace"
)

// Keypad lists the keys in the order they appear on the pad.
var Keypad = []Key{Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0, KeyDoubleZero, KeyBackspace}

// ParseKey maps host input onto a keypad key. It accepts the digits, "00",
// "backspace" and the erase glyph "⌫".
func ParseKey(s string) (Key, bool) {
	switch s {
	case "backspace", "⌫":
		return KeyBackspace, true
	case "00":
		return KeyDoubleZero, true
	}

	k := Key(s)
	if k.IsDigit() {
		return k, true
	}
	return "", false
}

// IsDigit reports whether k is a single digit key.
func (k Key) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// Valid reports whether k is a recognised keypad key.
func (k Key) Valid() bool {
	return k.IsDigit() || k == KeyDoubleZero || k == KeyBackspace
}

// apply returns buffer after pressing k.
func (k Key) apply(buffer string) string {
	switch {
	case k == KeyBackspace:
		if buffer == "" {
			return buffer
		}
		return buffer[:len(buffer)-1]
	case k == KeyDoubleZero:
		return buffer + "00"
	default:
		return buffer + string(k)
	}
}
