package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/errors"
	"github.com/robinvdvleuten/cashcount/ledger"
	"github.com/robinvdvleuten/cashcount/output"
	"github.com/robinvdvleuten/cashcount/report"
	"github.com/robinvdvleuten/cashcount/session"
)

type ReportCmd struct {
	Count  map[string]int `help:"Quantity counted for a denomination, e.g. --count 50=3 --count 20c=12." short:"n" placeholder:"ID=QTY"`
	Output string         `help:"File to write the report to ('-' for stdout, default is the suggested filename)." short:"o"`
	Format string         `help:"Report format (html or text)." enum:"html,text" default:"html"`
	Footer string         `help:"Replace the report footer."`
	Force  bool           `help:"Overwrite an existing file without asking." short:"f"`

	now func() time.Time `kong:"-"`
}

func (cmd *ReportCmd) Run(ctx *kong.Context, globals *Globals) error {
	registry := globals.Registry()

	l, err := ledger.New(registry, globals.Float.Decimal)
	if err != nil {
		return err
	}

	if errs := applyCounts(l, cmd.Count); len(errs) > 0 {
		formatter := errors.NewTextFormatter(errors.WithRegistry(registry))
		_, _ = fmt.Fprintln(ctx.Stderr, formatter.FormatAll(errs))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d invalid count(s)", len(errs)))
		return NewCommandError(1)
	}

	format, err := report.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}

	opts := []report.Option{report.WithFormat(format)}
	if cmd.Footer != "" {
		opts = append(opts, report.WithFooter(cmd.Footer))
	}

	now := time.Now
	if cmd.now != nil {
		now = cmd.now
	}

	totals := ledger.Compute(registry, l)
	rep, err := report.Generate(registry, l, totals, now(), globals.Currency(), opts...)
	if err != nil {
		return err
	}

	if cmd.Output == "-" {
		_, err := ctx.Stdout.Write(rep.Document)
		return err
	}

	path := cmd.Output
	if path == "" {
		path = rep.Filename
	}

	ok, err := confirmOverwrite(ctx, path, cmd.Force)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		printError(ctx.Stderr, fmt.Sprintf("report not written, %s already exists", path))
		return NewCommandError(1)
	}

	if err := writeFile(path, rep.Document); err != nil {
		return err
	}

	money := globals.Currency()
	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote report to %s", output.NewStyles(ctx.Stdout).FilePath(path)))
	printInfof(ctx.Stdout, "Total %s, float %s, net %s", money(totals.GrandTotal), money(totals.Float), money(totals.NetAmount))

	return nil
}

// applyCounts sets every given quantity in registry order and collects the
// rejected ones. Counts are held to what the keypad could enter.
func applyCounts(l *ledger.Ledger, counts map[string]int) []error {
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	registry := l.Registry()
	slices.SortFunc(ids, func(a, b string) int {
		return cmp.Or(rank(registry, a)-rank(registry, b), strings.Compare(a, b))
	})

	var errs []error
	for _, id := range ids {
		d := denomination.ID(id)

		var err error
		if registry.Contains(d) {
			err = session.CheckCount(d, counts[id])
		}
		if err == nil {
			err = l.Set(d, counts[id])
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// rank orders known ids by registry position and unknown ones last.
func rank(registry *denomination.Registry, id string) int {
	if i := registry.IndexOf(denomination.ID(id)); i >= 0 {
		return i
	}
	return registry.Len()
}
