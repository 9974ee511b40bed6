// Package session implements the keypad entry state machine of a cash count.
//
// A Session owns one ledger and tracks which field, if any, is receiving
// keypad input. Digits are accumulated as text in a buffer and the buffer's
// integer value is written to the ledger after every accepted keystroke, so
// totals always reflect what is on screen. There is no confirm step.
//
// The machine has three states:
//
//	Idle                 no field active, buffer empty
//	EditingDenomination  keys edit the count of one denomination
//	EditingFloat         keys edit the float baseline
//
// Every transition is total: unknown keys, keys pressed while idle and edits
// that would overflow the field are silently ignored. A Session is not safe
// for concurrent use; hosts serialise events themselves.
package session

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/ledger"
)

const (
	// MaxCountDigits caps the buffer of a denomination count (MaxCount).
	MaxCountDigits = 5
	// MaxFloatDigits caps the buffer of the float (MaxFloat).
	MaxFloatDigits = 6
)

// State is the entry state of a session.
type State int

const (
	Idle State = iota
	EditingDenomination
	EditingFloat
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case EditingDenomination:
		return "editing_denomination"
	case EditingFloat:
		return "editing_float"
	default:
		return "unknown"
	}
}

// MarshalText renders the state name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name produced by MarshalText.
func (s *State) UnmarshalText(text []byte) error {
	for _, st := range []State{Idle, EditingDenomination, EditingFloat} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown session state %q", text)
}

// Session is one counting session: a ledger plus the active entry.
type Session struct {
	registry *denomination.Registry
	ledger   *ledger.Ledger

	state  State
	target denomination.ID
	buffer string
}

// New creates a session over a fresh ledger with the given float. Floats
// above MaxFloat are rejected since the float editor could not show them.
func New(registry *denomination.Registry, float decimal.Decimal) (*Session, error) {
	if err := CheckFloat(float); err != nil {
		return nil, err
	}

	l, err := ledger.New(registry, float)
	if err != nil {
		return nil, err
	}
	return NewWithLedger(l), nil
}

// NewWithLedger creates an idle session over an existing ledger.
func NewWithLedger(l *ledger.Ledger) *Session {
	return &Session{
		registry: l.Registry(),
		ledger:   l,
	}
}

// Registry returns the denomination registry.
func (s *Session) Registry() *denomination.Registry {
	return s.registry
}

// Ledger returns the ledger the session writes to.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// State returns the current entry state.
func (s *Session) State() State {
	return s.state
}

// Target returns the denomination being edited.
func (s *Session) Target() (denomination.ID, bool) {
	if s.state != EditingDenomination {
		return "", false
	}
	return s.target, true
}

// Buffer returns the in-progress text of the active field.
func (s *Session) Buffer() string {
	return s.buffer
}

// Totals computes the current totals.
func (s *Session) Totals() ledger.Totals {
	return ledger.Compute(s.registry, s.ledger)
}

// SelectDenomination makes id the active field. Selecting the active
// denomination again deselects it. Any float edit is cancelled first.
// It returns false for ids outside the registry.
func (s *Session) SelectDenomination(id denomination.ID) bool {
	if !s.registry.Contains(id) {
		return false
	}

	if s.state == EditingDenomination && s.target == id {
		s.clear()
		return true
	}

	s.edit(id)
	return true
}

// ToggleFloatEdit opens or closes the float editor. Opening it cancels any
// denomination edit and seeds the buffer with the float's whole units.
func (s *Session) ToggleFloatEdit() {
	if s.state == EditingFloat {
		s.clear()
		return
	}

	s.state = EditingFloat
	s.target = ""
	s.buffer = strconv.FormatInt(s.ledger.Float().IntPart(), 10)
}

// PressKey applies a keypad key to the active field and writes the parsed
// buffer to the ledger. It reports whether the buffer changed.
func (s *Session) PressKey(k Key) bool {
	if s.state == Idle || !k.Valid() {
		return false
	}

	next := k.apply(s.buffer)
	if next == s.buffer || len(next) > s.maxLength() {
		return false
	}

	prev := s.buffer
	s.buffer = next
	if err := s.commit(); err != nil {
		s.buffer = prev
		return false
	}
	return true
}

// Advance moves to the next field. From the float editor or the last
// denomination it returns to Idle.
func (s *Session) Advance() {
	switch s.state {
	case EditingFloat:
		s.clear()
	case EditingDenomination:
		next, ok := s.registry.Next(s.target)
		if !ok {
			s.clear()
			return
		}
		s.edit(next.ID)
	}
}

// Reset clears every count and any denomination edit. The float and an open
// float editor are kept.
func (s *Session) Reset() {
	s.ledger.Reset()
	if s.state == EditingDenomination {
		s.clear()
	}
}

// NextLabel is the caption for the advance action: "DONE" when advancing
// closes the editor, "NEXT" when it moves on, empty while idle.
func (s *Session) NextLabel() string {
	switch s.state {
	case EditingFloat:
		return "DONE"
	case EditingDenomination:
		if s.registry.IsLast(s.target) {
			return "DONE"
		}
		return "NEXT"
	default:
		return ""
	}
}

func (s *Session) edit(id denomination.ID) {
	s.state = EditingDenomination
	s.target = id
	s.buffer = ""
	if count := s.ledger.Get(id); count > 0 {
		s.buffer = strconv.Itoa(count)
	}
}

func (s *Session) clear() {
	s.state = Idle
	s.target = ""
	s.buffer = ""
}

func (s *Session) maxLength() int {
	if s.state == EditingFloat {
		return MaxFloatDigits
	}
	return MaxCountDigits
}

func (s *Session) commit() error {
	value := parseBuffer(s.buffer)

	if s.state == EditingFloat {
		return s.ledger.SetFloat(decimal.NewFromInt(int64(value)))
	}
	return s.ledger.Set(s.target, value)
}

// parseBuffer reads the buffer as a non-negative integer. Empty reads as 0.
func parseBuffer(buffer string) int {
	if buffer == "" {
		return 0
	}
	n, err := strconv.Atoi(buffer)
	if err != nil {
		return 0
	}
	return n
}
