package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/denomination"
)

// Error types for ledger mutations

// InvalidDenominationError is returned when a count is set for an id the
// registry does not know. Given correct wiring this is unreachable.
type InvalidDenominationError struct {
	Denomination denomination.ID
}

func (e *InvalidDenominationError) Error() string {
	return fmt.Sprintf("unknown denomination %q", e.Denomination)
}

func (e *InvalidDenominationError) GetDenomination() denomination.ID {
	return e.Denomination
}

// InvalidCountError is returned when a negative count is set.
type InvalidCountError struct {
	Denomination denomination.ID
	Value        int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("invalid count %d for denomination %q: must not be negative", e.Value, e.Denomination)
}

func (e *InvalidCountError) GetDenomination() denomination.ID {
	return e.Denomination
}

func (e *InvalidCountError) GetValue() string {
	return fmt.Sprint(e.Value)
}

// InvalidFloatError is returned when the float baseline would become negative.
type InvalidFloatError struct {
	Value decimal.Decimal
}

func (e *InvalidFloatError) Error() string {
	return fmt.Sprintf("invalid float %s: must not be negative", e.Value)
}

func (e *InvalidFloatError) GetValue() string {
	return e.Value.String()
}
