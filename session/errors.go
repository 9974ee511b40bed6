package session

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/ledger"
)

const (
	// MaxCount is the largest count a denomination buffer can hold.
	MaxCount = 99999
	// MaxFloat is the largest whole float the float buffer can hold.
	MaxFloat = 999999
)

// CountOutOfRangeError is returned when a count does not fit the keypad
// buffer of a denomination.
type CountOutOfRangeError struct {
	Denomination denomination.ID
	Value        int
}

func (e *CountOutOfRangeError) Error() string {
	return fmt.Sprintf("invalid count %d for denomination %q: must not exceed %d", e.Value, e.Denomination, MaxCount)
}

func (e *CountOutOfRangeError) GetDenomination() denomination.ID {
	return e.Denomination
}

func (e *CountOutOfRangeError) GetValue() string {
	return fmt.Sprint(e.Value)
}

// FloatOutOfRangeError is returned when a float does not fit the keypad
// buffer of the float editor.
type FloatOutOfRangeError struct {
	Value decimal.Decimal
}

func (e *FloatOutOfRangeError) Error() string {
	return fmt.Sprintf("invalid float %s: must not exceed %d", e.Value, MaxFloat)
}

func (e *FloatOutOfRangeError) GetValue() string {
	return e.Value.String()
}

// CheckCount reports whether value can be entered for id on the keypad.
func CheckCount(id denomination.ID, value int) error {
	if value < 0 {
		return &ledger.InvalidCountError{Denomination: id, Value: value}
	}
	if value > MaxCount {
		return &CountOutOfRangeError{Denomination: id, Value: value}
	}
	return nil
}

// CheckFloat reports whether amount can be edited on the keypad. Only the
// whole units are bounded; cents are kept until the float is retyped.
func CheckFloat(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &ledger.InvalidFloatError{Value: amount}
	}
	if amount.IntPart() > MaxFloat {
		return &FloatOutOfRangeError{Value: amount}
	}
	return nil
}
