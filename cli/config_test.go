package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
)

func TestYAMLLoader(t *testing.T) {
	parse := func(t *testing.T, config string, args ...string) *Commands {
		t.Helper()

		resolver, err := YAMLLoader(strings.NewReader(config))
		assert.NoError(t, err)

		var (
			cli            Commands
			stdout, stderr bytes.Buffer
		)
		parser, err := kong.New(&cli,
			kong.Writers(&stdout, &stderr),
			kong.Exit(func(int) {}),
			kong.Resolvers(resolver),
		)
		assert.NoError(t, err)

		_, err = parser.Parse(args)
		assert.NoError(t, err)
		return &cli
	}

	t.Run("ResolvesGlobalsAndCommandFlags", func(t *testing.T) {
		cli := parse(t, "float: 250.5\ncurrency_symbol: A$\nport: 9090\n", "web")

		assert.True(t, cli.Float.Equal(decimal.RequireFromString("250.5")))
		assert.Equal(t, "A$", cli.CurrencySymbol)
		assert.Equal(t, 9090, cli.Web.Port)
	})

	t.Run("CommandLineWins", func(t *testing.T) {
		cli := parse(t, "float: 250\n", "--float", "120", "denominations")

		assert.True(t, cli.Float.Equal(decimal.NewFromInt(120)))
	})

	t.Run("EmptyFile", func(t *testing.T) {
		cli := parse(t, "", "denominations")

		assert.True(t, cli.Float.Equal(decimal.NewFromInt(300)))
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		_, err := YAMLLoader(strings.NewReader("float: [\n"))
		assert.Error(t, err)
	})
}
