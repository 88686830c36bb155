//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/asciify/internal/collect"
	"github.com/farcloser/asciify/internal/fixer"
	"github.com/farcloser/asciify/internal/output"
)

var errUnicodeFound = errors.New("unicode characters found")

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "List every non-ASCII character in matching files without modifying them",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "File name pattern to match",
				Value:   collect.DefaultPattern,
			},
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"r"},
				Usage:   "Process subdirectories",
				Value:   true,
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Exit with an error when any non-ASCII character is found",
			},
			&cli.BoolFlag{
				Name:  "nfc",
				Usage: "Compose combining character sequences (NFC) before replacing",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   consoleFormat,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errPathArgs, cmd.NArg())
			}

			set := settingsFrom(ctx)
			cfg := *set.config

			if cmd.IsSet("pattern") {
				cfg.Pattern = cmd.String("pattern")
			}

			if cmd.IsSet("recursive") {
				cfg.Recursive = cmd.Bool("recursive")
			}

			if cmd.IsSet("nfc") {
				cfg.Compose = cmd.Bool("nfc")
			}

			formatter, err := format.GetFormatter(cmd.String("format"))
			if err != nil {
				return err
			}

			root := cmd.Args().First()

			files, err := collect.Files(root, collect.Options{
				Pattern:     cfg.Pattern,
				Recursive:   cfg.Recursive,
				ExcludeDirs: cfg.ExcludeDirs,
			})
			if err != nil {
				return err
			}

			if len(files) == 0 {
				fmt.Fprintf(os.Stderr, "No files matching pattern '%s' found in %s\n", cfg.Pattern, root)

				return nil
			}

			results := fixer.Run(ctx, files, fixer.Options{
				Table:   set.table,
				Preview: true,
				Compose: cfg.Compose,
			}, max(cfg.Workers, 1), nil)

			var data []*format.Data

			for _, result := range results {
				if result.UnicodeCount == 0 && !result.Status.Failed() {
					continue
				}

				data = append(data, &format.Data{
					Object: result.File,
					Meta:   output.ResultToMap(result, true),
				})
			}

			if len(data) > 0 {
				if err := formatter.PrintAll(data, os.Stdout); err != nil {
					return err
				}
			}

			summary := output.Summarize(results)
			fmt.Fprintf(os.Stderr, "%d of %d files contain %d non-ASCII characters\n",
				summary.WithUnicode, summary.Files, summary.TotalReplacements)

			return scanOutcome(summary, cmd.Bool("strict"))
		},
	}
}

func scanOutcome(summary output.Summary, strict bool) error {
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFilesFailed, summary.Failed, summary.Files)
	}

	if strict && summary.WithUnicode > 0 {
		return fmt.Errorf("%w: %d files", errUnicodeFound, summary.WithUnicode)
	}

	return nil
}

