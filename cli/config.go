package cli

import (
	stdErrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// ConfigPaths are searched in order for a YAML configuration file. Keys are
// flag names, with dashes or underscores:
//
//	float: 250
//	currency_symbol: A$
//	output-dir: ~/Documents/tills
//	port: 9090
var ConfigPaths = []string{
	"~/.config/cashcount/config.yaml",
	".cashcount.yaml",
}

// YAMLLoader is a kong.ConfigurationLoader that resolves flags from a flat
// YAML mapping. Flags given on the command line take precedence.
func YAMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !stdErrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalized := make(map[string]any, len(values))
	for key, value := range values {
		normalized[strings.ReplaceAll(key, "_", "-")] = value
	}

	var resolver kong.ResolverFunc = func(ctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		value, ok := normalized[flag.Name]
		if !ok || value == nil {
			return nil, nil
		}
		return fmt.Sprint(value), nil
	}
	return resolver, nil
}
