//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/farcloser/asciify"
	"github.com/farcloser/asciify/internal/collect"
	"github.com/farcloser/asciify/internal/fixer"
	"github.com/farcloser/asciify/internal/output"
	"github.com/farcloser/asciify/internal/report"
)

var (
	errPathArgs    = errors.New("expected exactly one argument: file or directory path")
	errFilesFailed = errors.New("some files could not be processed")
)

const rule = "============================================================"

func fixCommand() *cli.Command {
	return &cli.Command{
		Name:      "fix",
		Usage:     "Replace Unicode characters in matching files with ASCII equivalents",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "File name pattern to match",
				Value:   collect.DefaultPattern,
			},
			&cli.BoolFlag{
				Name:  "preview",
				Usage: "Show what would change without modifying files",
			},
			&cli.BoolFlag{
				Name:  "no-backup",
				Usage: "Skip creating backup files",
			},
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"r"},
				Usage:   "Process subdirectories",
				Value:   true,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show detailed output for every file with Unicode",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"j"},
				Usage:   "Number of concurrent workers",
				Value:   runtime.NumCPU(),
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
			&cli.StringFlag{
				Name:  "report",
				Usage: "Write a JSONL report of every processed file",
			},
			&cli.BoolFlag{
				Name:  "compress",
				Usage: "Also write a gzip copy of the report",
			},
			&cli.BoolFlag{
				Name:  "redact-path",
				Usage: "Strip file paths from the report",
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

			if cmd.IsSet("no-backup") {
				cfg.Backup = !cmd.Bool("no-backup")
			}

			if cmd.IsSet("workers") {
				cfg.Workers = cmd.Int("workers")
			}

			root := cmd.Args().First()
			preview := cmd.Bool("preview")

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

			mode := "PROCESSING"
			if preview {
				mode = "PREVIEW MODE"
			}

			backup := "Enabled"
			if !cfg.Backup || preview {
				backup = "Disabled"
			}

			fmt.Fprintln(os.Stderr, rule)
			fmt.Fprintf(os.Stderr, "Unicode Replacement Tool - %s\n", mode)
			fmt.Fprintln(os.Stderr, rule)
			fmt.Fprintf(os.Stderr, "Path: %s\n", root)
			fmt.Fprintf(os.Stderr, "Files found: %d\n", len(files))
			fmt.Fprintf(os.Stderr, "Pattern: %s\n", cfg.Pattern)
			fmt.Fprintf(os.Stderr, "Backup: %s\n", backup)
			fmt.Fprintf(os.Stderr, "%s\n\n", rule)

			var progress fixer.ProgressFunc
			if term.IsTerminal(int(os.Stderr.Fd())) { //nolint:gosec // file descriptors fit in int
				progress = func(done, total int, result *asciify.Result) {
					fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, total, result.File)
				}
			}

			results := fixer.Run(ctx, files, fixer.Options{
				Table:   set.table,
				Preview: preview,
				Backup:  cfg.Backup,
				Compose: cfg.Compose,
			}, max(cfg.Workers, 1), progress)

			if err := outputResults(results, cmd.String("format"), preview, cmd.Bool("verbose")); err != nil {
				return err
			}

			if path := cmd.String("report"); path != "" {
				opts := report.Options{
					Redact:   cmd.Bool("redact-path"),
					Compress: cmd.Bool("compress"),
					Verbose:  cmd.Bool("verbose"),
				}

				if err := report.Write(path, results, opts); err != nil {
					return err
				}

				fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
			}

			summary := output.Summarize(results)
			printSummary(summary, preview)

			if summary.Failed > 0 {
				return fmt.Errorf("%w: %d of %d", errFilesFailed, summary.Failed, summary.Files)
			}

			return nil
		},
	}
}

func printSummary(summary output.Summary, preview bool) {
	fmt.Fprintf(os.Stderr, "\n%s\n", rule)
	fmt.Fprintln(os.Stderr, "SUMMARY")
	fmt.Fprintln(os.Stderr, rule)
	fmt.Fprintf(os.Stderr, "Files processed: %d\n", summary.Files)
	fmt.Fprintf(os.Stderr, "Files with Unicode: %d\n", summary.WithUnicode)
	fmt.Fprintf(os.Stderr, "Total replacements: %d\n", summary.TotalReplacements)
	fmt.Fprintf(os.Stderr, "Scanned: %s\n", humanize.Bytes(uint64(max(summary.Bytes, 0))))

	if summary.WithUnicode > 1 {
		fmt.Fprintf(os.Stderr, "Per affected file: mean %.1f, stddev %.1f, max %d\n",
			summary.MeanPerFile, summary.StdDevPerFile, summary.MaxPerFile)
	}

	if summary.Lossy > 0 {
		fmt.Fprintf(os.Stderr, "Files with invalid UTF-8: %d\n", summary.Lossy)
	}

	if summary.Failed > 0 {
		fmt.Fprintf(os.Stderr, "Errors: %d\n", summary.Failed)
	}

	status := "Processing complete"
	if preview {
		status = "Preview complete"
	}

	fmt.Fprintf(os.Stderr, "Status: %s\n", status)
}
