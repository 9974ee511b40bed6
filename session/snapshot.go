package session

import (
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/ledger"
)

// Row is one denomination line as a host renders it.
type Row struct {
	Denomination denomination.Descriptor
	Quantity     int
	Total        decimal.Decimal
	Active       bool
}

// Snapshot is a read-only copy of a session after a transition.
type Snapshot struct {
	State     State
	Target    denomination.ID
	Buffer    string
	NextLabel string
	Rows      []Row
	Totals    ledger.Totals
}

// Snapshot captures the session for rendering.
func (s *Session) Snapshot() Snapshot {
	descriptors := s.registry.List()
	rows := make([]Row, 0, len(descriptors))
	for _, d := range descriptors {
		n := s.ledger.Get(d.ID)
		rows = append(rows, Row{
			Denomination: d,
			Quantity:     n,
			Total:        ledger.LineTotal(d, n),
			Active:       s.state == EditingDenomination && s.target == d.ID,
		})
	}

	return Snapshot{
		State:     s.state,
		Target:    s.target,
		Buffer:    s.buffer,
		NextLabel: s.NextLabel(),
		Rows:      rows,
		Totals:    s.Totals(),
	}
}
