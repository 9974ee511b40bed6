// Package ledger holds the quantities counted for each denomination of a
// registry, together with the float baseline the count is reconciled
// against.
//
// Every denomination in the registry always has an entry; counts start at
// zero and are never negative. The float is a non-negative decimal amount
// that survives Reset. Totals are derived on demand with Compute and are
// never stored:
//
//	l, err := ledger.New(denomination.AUD, decimal.NewFromInt(300))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = l.Set("100", 2)
//	totals := ledger.Compute(denomination.AUD, l)
//	fmt.Println(totals.NetAmount) // -100
//
// The ledger performs no locking; it is owned by a single counting session.
package ledger

import (
	"maps"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/denomination"
)

// DefaultFloat is the float baseline a new count starts from.
var DefaultFloat = decimal.NewFromInt(300)

// Ledger maps each denomination to the quantity counted so far.
type Ledger struct {
	registry *denomination.Registry
	counts   map[denomination.ID]int
	float    decimal.Decimal
}

// New creates a ledger with every count at zero and the given float.
func New(registry *denomination.Registry, float decimal.Decimal) (*Ledger, error) {
	if float.IsNegative() {
		return nil, &InvalidFloatError{Value: float}
	}

	l := &Ledger{
		registry: registry,
		counts:   make(map[denomination.ID]int, registry.Len()),
		float:    float,
	}
	l.Reset()

	return l, nil
}

// Registry returns the registry the ledger was created for.
func (l *Ledger) Registry() *denomination.Registry {
	return l.registry
}

// Get returns the count for id, or 0 if it was never set.
func (l *Ledger) Get(id denomination.ID) int {
	return l.counts[id]
}

// Set replaces the count for id.
// Range checks beyond non-negativity belong to the entry layer.
func (l *Ledger) Set(id denomination.ID, value int) error {
	if !l.registry.Contains(id) {
		return &InvalidDenominationError{Denomination: id}
	}
	if value < 0 {
		return &InvalidCountError{Denomination: id, Value: value}
	}

	l.counts[id] = value
	return nil
}

// Float returns the float baseline.
func (l *Ledger) Float() decimal.Decimal {
	return l.float
}

// SetFloat replaces the float baseline.
func (l *Ledger) SetFloat(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &InvalidFloatError{Value: amount}
	}

	l.float = amount
	return nil
}

// Reset zeroes every count. The float is left untouched.
func (l *Ledger) Reset() {
	for _, d := range l.registry.List() {
		l.counts[d.ID] = 0
	}
}

// Counts returns a copy of all counts.
func (l *Ledger) Counts() map[denomination.ID]int {
	return maps.Clone(l.counts)
}
