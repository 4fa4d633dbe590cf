package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Parker1920/Master-Haven-sub000/internal/glyph"
)

func glyphsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glyphs [digit...]",
		Short: "Look up glyph icon filenames by hex digit",
		Args:  cobra.ArbitraryArgs,
		RunE:  runGlyphs,
	}
	return cmd
}

func runGlyphs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for digit := 0; digit < 16; digit++ {
			name, err := glyph.IconFile(digit)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%X: %s\n", digit, name)
		}
		return nil
	}

	for _, arg := range args {
		digit, err := strconv.ParseUint(arg, 16, 8)
		if err != nil || digit > 15 {
			return fmt.Errorf("invalid glyph digit %q: must be a single hex digit", arg)
		}
		name, err := glyph.IconFile(int(digit))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%X: %s\n", digit, name)
	}
	return nil
}
