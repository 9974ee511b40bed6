package cli

import (
	"github.com/robinvdvleuten/cashcount/currency"
	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/session"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Float          Amount `help:"Opening float deducted from the counted total." default:"300" env:"CASHCOUNT_FLOAT"`
	CurrencySymbol string `help:"Symbol printed in front of amounts." default:"$" env:"CASHCOUNT_CURRENCY_SYMBOL"`
}

// Registry returns the denomination registry used by every command.
func (g *Globals) Registry() *denomination.Registry {
	return denomination.AUD
}

// Currency returns the formatter for the configured symbol.
func (g *Globals) Currency() currency.Formatter {
	if g.CurrencySymbol == "" || g.CurrencySymbol == "$" {
		return currency.AUD
	}
	return currency.New(g.CurrencySymbol)
}

// NewSession starts a session with the configured float.
func (g *Globals) NewSession() (*session.Session, error) {
	return session.New(g.Registry(), g.Float.Decimal)
}

type Commands struct {
	Globals

	Count         CountCmd         `cmd:"" default:"1" help:"Count a till interactively in the terminal."`
	Report        ReportCmd        `cmd:"" help:"Generate a report from quantities given as flags."`
	Web           WebCmd           `cmd:"" help:"Start the keypad web server."`
	Denominations DenominationsCmd `cmd:"" help:"List the supported denominations."`
}
