//nolint:wrapcheck
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/asciify/internal/mapping"
	"github.com/farcloser/asciify/internal/output"
	"github.com/farcloser/asciify/internal/types"
)

func tableCommand() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "Print the effective replacement table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "Only show one category: status, development, operations, arrows, typography, quotes, symbols, math, fractions, custom",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   consoleFormat,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var only mapping.Category

			if name := cmd.String("category"); name != "" {
				category, err := mapping.ParseCategory(name)
				if err != nil {
					return err
				}

				only = category
			}

			formatter, err := format.GetFormatter(cmd.String("format"))
			if err != nil {
				return err
			}

			grouped := map[mapping.Category][]any{}

			for _, entry := range settingsFrom(ctx).table.Entries() {
				if only != "" && entry.Category != only {
					continue
				}

				grouped[entry.Category] = append(grouped[entry.Category],
					fmt.Sprintf("%s %s (%s) -> %s",
						types.CodeLabel(entry.Source), string(entry.Source), output.Name(entry.Source), entry.Target))
			}

			var data []*format.Data

			for _, category := range mapping.Categories() {
				entries, ok := grouped[category]
				if !ok {
					continue
				}

				data = append(data, &format.Data{
					Object: string(category),
					Meta: map[string]any{
						"count":   len(entries),
						"entries": entries,
					},
				})
			}

			if len(data) == 0 {
				fmt.Fprintln(os.Stderr, "No entries")

				return nil
			}

			return formatter.PrintAll(data, os.Stdout)
		},
	}
}
