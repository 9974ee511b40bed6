package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/denomination"
)

// Totals are the figures derived from a ledger. They are recomputed on every
// call to Compute and are never a source of truth.
type Totals struct {
	GrandTotal decimal.Decimal
	TotalItems int
	Float      decimal.Decimal
	// NetAmount is GrandTotal minus Float and keeps its sign.
	NetAmount decimal.Decimal
}

// Compute sums the ledger against the registry using exact decimal arithmetic.
func Compute(registry *denomination.Registry, l *Ledger) Totals {
	grand := decimal.Zero
	items := 0

	for _, d := range registry.List() {
		count := l.Get(d.ID)
		if count == 0 {
			continue
		}
		grand = grand.Add(LineTotal(d, count))
		items += count
	}

	return Totals{
		GrandTotal: grand,
		TotalItems: items,
		Float:      l.Float(),
		NetAmount:  grand.Sub(l.Float()),
	}
}

// LineTotal returns count multiplied by the face value of d.
func LineTotal(d denomination.Descriptor, count int) decimal.Decimal {
	return d.Value.Mul(decimal.NewFromInt(int64(count)))
}

// Short reports whether the counted cash falls short of the float.
func (t Totals) Short() bool {
	return t.NetAmount.IsNegative()
}
