package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sonnes/tvindex/config"
	"github.com/sonnes/tvindex/reader"
	"github.com/sonnes/tvindex/reader/jsoncat"
	"github.com/urfave/cli/v3"
)

// app holds the catalog reader registry used by CLI commands.
type app struct {
	readers map[string]func() reader.Reader
}

func newApp() *app {
	return &app{
		readers: map[string]func() reader.Reader{
			"json": func() reader.Reader { return &jsoncat.Reader{} },
		},
	}
}

func (a *app) reader(format string) (reader.Reader, error) {
	fn, ok := a.readers[format]
	if !ok {
		return nil, fmt.Errorf("unknown catalog format %q (supported: %s)", format, strings.Join(a.formats(), ", "))
	}
	return fn(), nil
}

func (a *app) formats() []string {
	names := make([]string, 0, len(a.readers))
	for name := range a.readers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// catalogFormat picks the reader for path: the explicit --format value when
// given, otherwise the file extension.
func catalogFormat(path, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// loadConfig reads the --config file, then applies command-line overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("catalog") {
		cfg.Catalog = cmd.String("catalog")
	}
	if cmd.IsSet("output") {
		cfg.Output = cmd.String("output")
	}
	if cmd.IsSet("log") {
		cfg.LogLevel = cmd.String("log")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
