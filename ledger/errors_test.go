package ledger

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestInvalidDenominationError(t *testing.T) {
	err := &InvalidDenominationError{Denomination: "3"}

	assert.Equal(t, `unknown denomination "3"`, err.Error())
	assert.Equal(t, "3", string(err.GetDenomination()))
}

func TestInvalidCountError(t *testing.T) {
	err := &InvalidCountError{Denomination: "50c", Value: -2}

	assert.Equal(t, `invalid count -2 for denomination "50c": must not be negative`, err.Error())
	assert.Equal(t, "50c", string(err.GetDenomination()))
	assert.Equal(t, "-2", err.GetValue())
}

func TestInvalidFloatError(t *testing.T) {
	err := &InvalidFloatError{Value: decimal.RequireFromString("-12.5")}

	assert.Equal(t, "invalid float -12.5: must not be negative", err.Error())
	assert.Equal(t, "-12.5", err.GetValue())
}
