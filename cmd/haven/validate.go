package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Parker1920/Master-Haven-sub000/internal/glyph"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <glyph>...",
		Short: "Check glyph codes for format and sentinel-value issues",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	}
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	var invalid int
	for _, arg := range args {
		outcome, err := glyph.Validate(arg)
		if err != nil {
			fmt.Fprintf(os.Stdout, "%s: invalid (%v)\n", arg, err)
			invalid++
			continue
		}
		if len(outcome.Warnings) == 0 {
			fmt.Fprintf(os.Stdout, "%s: ok\n", outcome.Canonical)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: ok with warnings\n", outcome.Canonical)
		for _, w := range outcome.Warnings {
			fmt.Fprintf(os.Stdout, "  - %s\n", w.Message)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d glyph codes failed validation", invalid, len(args))
	}
	return nil
}
