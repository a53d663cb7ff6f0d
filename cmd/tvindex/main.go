package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newRootCmd().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:  "tvindex",
		Usage: "Publish a channel catalog as static M3U playlists",
		Description: `Reads a channel catalog and writes a static tree of playlists:
a global index, a safe-for-work index, channels.json, indexes grouped by
country, language and category, and one playlist per country, language
and category. The tree is ready to publish as a static site.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
		},
	}
}
