package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/currency"
	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/errors"
	"github.com/robinvdvleuten/cashcount/session"
)

// DenominationResponse describes one registry entry.
type DenominationResponse struct {
	ID    denomination.ID   `json:"id"`
	Label string            `json:"label"`
	Value decimal.Decimal   `json:"value"`
	Kind  denomination.Kind `json:"kind"`
}

// RowResponse is one denomination line of a session.
type RowResponse struct {
	DenominationResponse
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formattedTotal"`
	Active         bool            `json:"active"`
}

// TotalsResponse carries the derived totals, raw and formatted.
type TotalsResponse struct {
	GrandTotal decimal.Decimal `json:"grandTotal"`
	TotalItems int             `json:"totalItems"`
	Float      decimal.Decimal `json:"float"`
	NetAmount  decimal.Decimal `json:"netAmount"`
	Short      bool            `json:"short"`
	Formatted  FormattedTotals `json:"formatted"`
}

// FormattedTotals are the totals rendered with the server's currency formatter.
type FormattedTotals struct {
	GrandTotal string `json:"grandTotal"`
	Float      string `json:"float"`
	NetAmount  string `json:"netAmount"`
}

// StateResponse is returned by every session endpoint.
type StateResponse struct {
	ID        uuid.UUID       `json:"id"`
	State     session.State   `json:"state"`
	Target    denomination.ID `json:"target,omitempty"`
	Buffer    string          `json:"buffer"`
	NextLabel string          `json:"nextLabel,omitempty"`
	Rows      []RowResponse   `json:"rows"`
	Totals    TotalsResponse  `json:"totals"`
}

func convertDenomination(d denomination.Descriptor) DenominationResponse {
	return DenominationResponse{
		ID:    d.ID,
		Label: d.Label,
		Value: d.Value,
		Kind:  d.Kind,
	}
}

func buildState(id uuid.UUID, sess *session.Session, format currency.Formatter) *StateResponse {
	snap := sess.Snapshot()

	rows := make([]RowResponse, len(snap.Rows))
	for i, row := range snap.Rows {
		rows[i] = RowResponse{
			DenominationResponse: convertDenomination(row.Denomination),
			Quantity:             row.Quantity,
			Total:                row.Total,
			FormattedTotal:       format(row.Total),
			Active:               row.Active,
		}
	}

	t := snap.Totals
	return &StateResponse{
		ID:        id,
		State:     snap.State,
		Target:    snap.Target,
		Buffer:    snap.Buffer,
		NextLabel: snap.NextLabel,
		Rows:      rows,
		Totals: TotalsResponse{
			GrandTotal: t.GrandTotal,
			TotalItems: t.TotalItems,
			Float:      t.Float,
			NetAmount:  t.NetAmount,
			Short:      t.Short(),
			Formatted: FormattedTotals{
				GrandTotal: format(t.GrandTotal),
				Float:      format(t.Float),
				NetAmount:  format(t.NetAmount),
			},
		},
	}
}

// UnknownSessionError is returned for a session id the server does not hold.
type UnknownSessionError struct {
	ID string
}

func (e *UnknownSessionError) Error() string {
	return fmt.Sprintf("unknown session %q", e.ID)
}

// UnknownKeyError is returned for a key outside the keypad.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q, expected 0-9, 00 or backspace", e.Key)
}

func (e *UnknownKeyError) GetValue() string {
	return e.Key
}

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeError writes err as a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errors.NewJSONFormatter().ToJSON(err))
}
