package session

import (
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/ledger"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(denomination.AUD, ledger.DefaultFloat)
	assert.NoError(t, err)
	return s
}

func press(s *Session, keys ...Key) {
	for _, k := range keys {
		s.PressKey(k)
	}
}

func TestNewSessionIsIdle(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, Idle, s.State())
	assert.Equal(t, "", s.Buffer())
	_, ok := s.Target()
	assert.False(t, ok)
	assert.Equal(t, "", s.NextLabel())
}

func TestNewRejectsNegativeFloat(t *testing.T) {
	_, err := New(denomination.AUD, decimal.NewFromInt(-5))
	assert.Error(t, err)
}

func TestDigitSequencesSetCount(t *testing.T) {
	digits := []Key{Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9}

	// Every sequence of up to five digits drawn from a rotating alphabet.
	for length := 0; length <= MaxCountDigits; length++ {
		for offset := range digits {
			var keys []Key
			var typed strings.Builder
			for i := 0; i < length; i++ {
				k := digits[(offset+i*3)%len(digits)]
				keys = append(keys, k)
				typed.WriteString(string(k))
			}

			s := newTestSession(t)
			assert.True(t, s.SelectDenomination("10"))
			press(s, keys...)

			want := 0
			if typed.Len() > 0 {
				n, err := strconv.Atoi(typed.String())
				assert.NoError(t, err)
				want = n
			}
			assert.Equal(t, want, s.Ledger().Get("10"), "keys %q", typed.String())
			assert.Equal(t, typed.String(), s.Buffer())
		}
	}
}

func TestPressKey(t *testing.T) {
	t.Run("IdleIsNoOp", func(t *testing.T) {
		s := newTestSession(t)
		assert.False(t, s.PressKey(Key7))
		assert.Equal(t, "", s.Buffer())
		assert.Equal(t, 0, s.Totals().TotalItems)
	})

	t.Run("InvalidKeyIsNoOp", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("20")
		press(s, Key4)

		assert.False(t, s.PressKey(Key("x")))
		assert.False(t, s.PressKey(Key("12")))
		assert.Equal(t, "4", s.Buffer())
		assert.Equal(t, 4, s.Ledger().Get("20"))
	})

	t.Run("BackspaceOnEmptyIsNoOp", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("20")

		assert.False(t, s.PressKey(KeyBackspace))
		assert.Equal(t, "", s.Buffer())
		assert.Equal(t, 0, s.Ledger().Get("20"))
	})

	t.Run("BackspaceToEmptyIsZero", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("20")
		press(s, Key4, Key2)
		assert.Equal(t, 42, s.Ledger().Get("20"))

		press(s, KeyBackspace)
		assert.Equal(t, 4, s.Ledger().Get("20"))

		press(s, KeyBackspace)
		assert.Equal(t, "", s.Buffer())
		assert.Equal(t, 0, s.Ledger().Get("20"))
	})

	t.Run("DoubleZero", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("5c")
		press(s, Key3, KeyDoubleZero)

		assert.Equal(t, "300", s.Buffer())
		assert.Equal(t, 300, s.Ledger().Get("5c"))
	})

	t.Run("LeadingZeros", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("5c")
		press(s, KeyDoubleZero, Key7)

		assert.Equal(t, "007", s.Buffer())
		assert.Equal(t, 7, s.Ledger().Get("5c"))
	})

	t.Run("OverflowRejected", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("1")
		press(s, Key9, Key9, Key9, Key9)

		assert.False(t, s.PressKey(KeyDoubleZero))
		assert.Equal(t, 9999, s.Ledger().Get("1"))

		assert.True(t, s.PressKey(Key9))
		assert.False(t, s.PressKey(Key1))
		assert.Equal(t, "99999", s.Buffer())
		assert.Equal(t, 99999, s.Ledger().Get("1"))

		assert.True(t, s.PressKey(KeyBackspace))
		assert.Equal(t, 9999, s.Ledger().Get("1"))
	})
}

func TestSelectDenomination(t *testing.T) {
	t.Run("SeedsFromExistingCount", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("50")
		press(s, Key1, Key2)
		s.SelectDenomination("20")
		assert.Equal(t, "", s.Buffer())

		s.SelectDenomination("50")
		assert.Equal(t, "12", s.Buffer())
		press(s, Key3)
		assert.Equal(t, 123, s.Ledger().Get("50"))
	})

	t.Run("ReselectDeselectsWithoutChangingCount", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("50")
		press(s, Key8)

		assert.True(t, s.SelectDenomination("50"))
		assert.Equal(t, Idle, s.State())
		assert.Equal(t, "", s.Buffer())
		assert.Equal(t, 8, s.Ledger().Get("50"))
	})

	t.Run("CancelsFloatEdit", func(t *testing.T) {
		s := newTestSession(t)
		s.ToggleFloatEdit()
		assert.Equal(t, EditingFloat, s.State())

		s.SelectDenomination("2")
		assert.Equal(t, EditingDenomination, s.State())
		id, ok := s.Target()
		assert.True(t, ok)
		assert.Equal(t, denomination.ID("2"), id)
		assert.Equal(t, "", s.Buffer())
	})

	t.Run("UnknownIsNoOp", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("50")
		press(s, Key1)

		assert.False(t, s.SelectDenomination("7"))
		assert.Equal(t, EditingDenomination, s.State())
		assert.Equal(t, "1", s.Buffer())
	})
}

func TestToggleFloatEdit(t *testing.T) {
	t.Run("SeedsIntegerBuffer", func(t *testing.T) {
		s := newTestSession(t)
		s.ToggleFloatEdit()

		assert.Equal(t, EditingFloat, s.State())
		assert.Equal(t, "300", s.Buffer())
		assert.Equal(t, "DONE", s.NextLabel())
	})

	t.Run("DropsCentsFromSeed", func(t *testing.T) {
		s, err := New(denomination.AUD, decimal.RequireFromString("250.75"))
		assert.NoError(t, err)
		s.ToggleFloatEdit()
		assert.Equal(t, "250", s.Buffer())
		assert.True(t, s.Ledger().Float().Equal(decimal.RequireFromString("250.75")))

		press(s, KeyBackspace)
		assert.True(t, s.Ledger().Float().Equal(decimal.NewFromInt(25)))
	})

	t.Run("EditsFloat", func(t *testing.T) {
		s := newTestSession(t)
		s.ToggleFloatEdit()
		press(s, KeyBackspace, KeyBackspace, KeyBackspace, Key5, KeyDoubleZero)

		assert.Equal(t, "500", s.Buffer())
		assert.True(t, s.Ledger().Float().Equal(decimal.NewFromInt(500)))
	})

	t.Run("SixDigitCap", func(t *testing.T) {
		s := newTestSession(t)
		s.ToggleFloatEdit()
		press(s, Key1, Key2, Key3)
		assert.Equal(t, "300123", s.Buffer())

		assert.False(t, s.PressKey(Key4))
		assert.True(t, s.Ledger().Float().Equal(decimal.NewFromInt(300123)))
	})

	t.Run("ToggleClosesAndClearsDenomination", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("10")
		press(s, Key6)

		s.ToggleFloatEdit()
		_, ok := s.Target()
		assert.False(t, ok)
		assert.Equal(t, 6, s.Ledger().Get("10"))

		s.ToggleFloatEdit()
		assert.Equal(t, Idle, s.State())
		assert.Equal(t, "", s.Buffer())
	})
}

func TestAdvance(t *testing.T) {
	t.Run("MovesToNextAndSeeds", func(t *testing.T) {
		s := newTestSession(t)
		assert.NoError(t, s.Ledger().Set("50", 4))
		s.SelectDenomination("100")
		assert.Equal(t, "NEXT", s.NextLabel())

		s.Advance()

		id, ok := s.Target()
		assert.True(t, ok)
		assert.Equal(t, denomination.ID("50"), id)
		assert.Equal(t, "4", s.Buffer())
	})

	t.Run("LastReturnsToIdle", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination("5c")
		assert.Equal(t, "DONE", s.NextLabel())
		press(s, Key2)

		s.Advance()
		assert.Equal(t, Idle, s.State())
		assert.Equal(t, "", s.Buffer())
		assert.Equal(t, 2, s.Ledger().Get("5c"))
	})

	t.Run("WalksEntireRegistry", func(t *testing.T) {
		s := newTestSession(t)
		s.SelectDenomination(denomination.AUD.First().ID)

		var visited []denomination.ID
		for s.State() == EditingDenomination {
			id, _ := s.Target()
			visited = append(visited, id)
			press(s, Key1)
			s.Advance()
		}

		assert.Equal(t, denomination.AUD.Len(), len(visited))
		assert.Equal(t, denomination.AUD.Len(), s.Totals().TotalItems)
	})

	t.Run("FloatIsDone", func(t *testing.T) {
		s := newTestSession(t)
		s.ToggleFloatEdit()
		s.Advance()
		assert.Equal(t, Idle, s.State())
	})

	t.Run("IdleIsNoOp", func(t *testing.T) {
		s := newTestSession(t)
		s.Advance()
		assert.Equal(t, Idle, s.State())
	})
}

func TestReset(t *testing.T) {
	t.Run("ClearsCountsAndKeepsFloat", func(t *testing.T) {
		s := newTestSession(t)
		s.ToggleFloatEdit()
		press(s, KeyBackspace)
		s.SelectDenomination("20")
		press(s, Key5)

		s.Reset()

		assert.Equal(t, Idle, s.State())
		assert.Equal(t, 0, s.Totals().TotalItems)
		assert.True(t, s.Ledger().Float().Equal(decimal.NewFromInt(30)))
	})

	t.Run("KeepsFloatEditorOpen", func(t *testing.T) {
		s := newTestSession(t)
		s.ToggleFloatEdit()

		s.Reset()
		assert.Equal(t, EditingFloat, s.State())
		assert.Equal(t, "300", s.Buffer())
	})
}

func TestScenarioShortOfFloat(t *testing.T) {
	s := newTestSession(t)
	s.SelectDenomination("100")
	press(s, Key2)
	s.SelectDenomination("50c")
	press(s, Key3)

	totals := s.Totals()
	assert.Equal(t, "201.50", totals.GrandTotal.StringFixed(2))
	assert.Equal(t, 5, totals.TotalItems)
	assert.Equal(t, "-98.50", totals.NetAmount.StringFixed(2))
	assert.True(t, totals.Short())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		input string
		want  Key
		ok    bool
	}{
		{"0", Key0, true},
		{"9", Key9, true},
		{"00", KeyDoubleZero, true},
		{"backspace", KeyBackspace, true},
		{"⌫", KeyBackspace, true},
		{"", "", false},
		{"000", "", false},
		{"a", "", false},
		{"-1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, ok := ParseKey(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, k)
		})
	}

	for _, k := range Keypad {
		assert.True(t, k.Valid(), "keypad key %q", k)
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(t)
	s.SelectDenomination("10c")
	press(s, Key4)

	snap := s.Snapshot()

	assert.Equal(t, EditingDenomination, snap.State)
	assert.Equal(t, denomination.ID("10c"), snap.Target)
	assert.Equal(t, "4", snap.Buffer)
	assert.Equal(t, "NEXT", snap.NextLabel)
	assert.Equal(t, denomination.AUD.Len(), len(snap.Rows))

	row := snap.Rows[denomination.AUD.IndexOf("10c")]
	assert.True(t, row.Active)
	assert.Equal(t, 4, row.Quantity)
	assert.Equal(t, "0.40", row.Total.StringFixed(2))
	assert.False(t, snap.Rows[0].Active)
	assert.Equal(t, "0.40", snap.Totals.GrandTotal.StringFixed(2))
}

func TestStateText(t *testing.T) {
	for _, st := range []State{Idle, EditingDenomination, EditingFloat} {
		t.Run(st.String(), func(t *testing.T) {
			text, err := st.MarshalText()
			assert.NoError(t, err)

			var got State
			assert.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, st, got)
		})
	}

	var st State
	assert.Error(t, st.UnmarshalText([]byte("counting")))
}
