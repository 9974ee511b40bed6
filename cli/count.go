package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robinvdvleuten/cashcount/output"
	"github.com/robinvdvleuten/cashcount/report"
	"github.com/robinvdvleuten/cashcount/session"
	"github.com/robinvdvleuten/cashcount/tui"
)

type CountCmd struct {
	OutputDir string `help:"Directory exported reports are written to." default:"." env:"CASHCOUNT_OUTPUT_DIR" type:"path"`
	Format    string `help:"Report format (html or text)." enum:"html,text" default:"html"`
	Force     bool   `help:"Overwrite an existing report without asking." short:"f"`
}

func (cmd *CountCmd) Run(ctx *kong.Context, globals *Globals) error {
	sess, err := globals.NewSession()
	if err != nil {
		return err
	}

	model := tui.New(sess, output.NewStyles(ctx.Stdout), tui.WithCurrency(globals.Currency()))

	program := tea.NewProgram(model, tea.WithContext(context.Background()), tea.WithOutput(ctx.Stdout))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run counter: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok || !m.ExportRequested() {
		return nil
	}

	return cmd.export(ctx, globals, m.Session(), time.Now())
}

// export writes the report of sess into the output directory.
func (cmd *CountCmd) export(ctx *kong.Context, globals *Globals, sess *session.Session, now time.Time) error {
	format, err := report.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}

	rep, err := report.Generate(globals.Registry(), sess.Ledger(), sess.Totals(), now, globals.Currency(), report.WithFormat(format))
	if err != nil {
		return err
	}

	path := filepath.Join(cmd.OutputDir, rep.Filename)

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

	totals := sess.Totals()
	printSuccess(ctx.Stdout, fmt.Sprintf("Exported report to %s", output.NewStyles(ctx.Stdout).FilePath(path)))
	printInfof(ctx.Stdout, "Total %s, net %s", globals.Currency()(totals.GrandTotal), globals.Currency()(totals.NetAmount))

	return nil
}
