package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/cashcount/output"
)

type DenominationsCmd struct{}

func (cmd *DenominationsCmd) Run(ctx *kong.Context, globals *Globals) error {
	styles := output.NewStyles(ctx.Stdout)
	money := globals.Currency()

	for _, d := range globals.Registry().List() {
		label := runewidth.FillRight(d.Label, 6)
		id := runewidth.FillRight(string(d.ID), 5)
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s %s %s\n",
			styles.Denomination(label, d.Kind, false),
			styles.Dim(id),
			runewidth.FillRight(d.Kind.String(), 5),
			money(d.Value),
		)
	}

	return nil
}
