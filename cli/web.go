package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/cashcount/web"
)

type WebCmd struct {
	Port    int    `help:"Port to listen on." default:"8080" env:"CASHCOUNT_PORT"`
	Host    string `help:"Address to bind to." default:"127.0.0.1"`
	Footer  string `help:"Replace the report footer."`
	Verbose bool   `help:"Log debug output." short:"v"`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	version := Version
	if version == "" {
		version = "dev"
	}
	commitSHA := CommitSHA
	if commitSHA == "" {
		commitSHA = "local"
	}

	level := slog.LevelInfo
	if cmd.Verbose {
		level = slog.LevelDebug
	}

	server := web.NewWithVersion(cmd.Port, globals.Registry(), version, commitSHA)
	server.Host = cmd.Host
	server.Float = globals.Float.Decimal
	server.Currency = globals.Currency()
	server.Footer = cmd.Footer
	server.Logger = slog.New(slog.NewTextHandler(ctx.Stderr, &slog.HandlerOptions{Level: level}))

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Opening float: %s", globals.Currency()(server.Float))

	if cmd.Host != "127.0.0.1" && cmd.Host != "localhost" {
		printError(ctx.Stderr, "the server has no authentication, do not expose it to untrusted networks")
	}

	return server.Start(runCtx)
}
