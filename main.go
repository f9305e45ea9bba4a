package main

import (
	"fmt"
	"os"

	"github.com/Ziink4/Jerk/internal/scrape"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "jerk",
		Usage: "scrape motorcycle spec pages into a spreadsheet",
		Commands: []*cli.Command{
			{
				Name:   "scrape",
				Usage:  "resolve the sitemap, extract every spec page, write the workbook",
				Action: scrape.ScrapeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "config file with defaults",
						Value: "config.yaml",
					},
					&cli.StringFlag{
						Name:  "sitemap",
						Usage: "sitemap URL listing the spec pages",
					},
					&cli.StringFlag{
						Name:  "url-list",
						Usage: "page list cache file, one URL per line",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "output xlsx path",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "run archive database path (empty disables archiving)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of concurrent page workers",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "scrape only the first N pages of the list",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "log per-page worker activity",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
