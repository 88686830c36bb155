package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/asciify/internal/report"
)

var errDigestArgs = errors.New("expected exactly one argument: path to report.jsonl")

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "Produce a summary digest from an asciify JSONL report",
		ArgsUsage: "<report.jsonl>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "top",
				Usage: "Number of most frequent characters to list (0 lists all)",
				Value: 20,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errDigestArgs
			}

			digest, err := report.ReadDigest(cmd.Args().First())
			if err != nil {
				return err
			}

			printDigest(digest, cmd.Int("top"))

			return nil
		},
	}
}

func printDigest(digest *report.Digest, top int) {
	fmt.Println("=== asciify Report Digest ===")
	fmt.Println()
	fmt.Printf("Total files:   %d\n", digest.Records)
	fmt.Printf("Failed:        %d\n", digest.Failed)
	fmt.Printf("Unparseable:   %d\n", digest.Unparseable)
	fmt.Printf("Occurrences:   %d\n", digest.Occurrences)
	fmt.Println()

	fmt.Println("--- Status ---")

	for _, status := range []string{"no_unicode", "success", "error", "write_error", "read_error"} {
		fmt.Printf("  %-12s %d\n", status+":", digest.Statuses[status])
	}

	fmt.Println()

	fmt.Println("--- Characters By File Count ---")

	codes := digest.Codes
	if top > 0 && len(codes) > top {
		codes = codes[:top]
	}

	if len(codes) == 0 {
		fmt.Println("  none")

		return
	}

	for _, entry := range codes {
		fmt.Printf("  %-9s %s -> %-12s %d files\n", entry.Code, entry.Source, entry.Target, entry.Files)
	}
}
