package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sonnes/tvindex/generate"
	"github.com/sonnes/tvindex/render/terminal"
	"github.com/sonnes/tvindex/storage"
	"github.com/urfave/cli/v3"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate the playlist tree from a catalog",
		Description: `Loads the catalog and writes every playlist and channels.json under the
output directory. Existing files are overwritten. The run stops at the
first error; files written before it are left in place.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Path to the catalog document",
				Sources: cli.EnvVars("TVINDEX_CATALOG"),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Catalog format (default: from the file extension)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory",
				Value:   ".gh-pages",
				Sources: cli.EnvVars("TVINDEX_OUTPUT"),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a tvindex.toml file",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Do not print the summary table",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			a := newApp()
			r, err := a.reader(catalogFormat(cfg.Catalog, cmd.String("format")))
			if err != nil {
				return err
			}

			log.Info("Loading catalog", "path", cfg.Catalog)
			cat, err := r.ReadFile(cfg.Catalog)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			g := generate.New(cfg.Output, storage.Disk{})
			sum, err := g.Run(cat)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			if cmd.Bool("quiet") {
				return nil
			}
			return terminal.New().RenderSummary(os.Stdout, cfg.Output, sum)
		},
	}
}
