package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAMLResolver loads flag defaults from a YAML mapping. Keys are flag names
// in kebab or snake case; command-line flags still take precedence.
//
//	format: both
//	page-format: Letter
//	concurrency: 4
func YAMLResolver(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			raw, ok := values[key]
			if !ok || raw == nil {
				continue
			}
			switch raw.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("config key %q must be a scalar", key)
			}
			return fmt.Sprint(raw), nil
		}
		return nil, nil
	}
	return f, nil
}
