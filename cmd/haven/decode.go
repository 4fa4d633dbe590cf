package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Parker1920/Master-Haven-sub000/internal/galaxy"
)

func decodeCmd() *cobra.Command {
	var applyScale, asJSON bool
	cmd := &cobra.Command{
		Use:   "decode <glyph>...",
		Short: "Decode portal glyph codes into galaxy coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args, applyScale, asJSON)
		},
	}
	cmd.Flags().BoolVar(&applyScale, "scale", false, "Include display-scaled coordinates")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func runDecode(args []string, applyScale, asJSON bool) error {
	cfg, geo, err := loadGeometry()
	if err != nil {
		return err
	}
	if cfg.JSONOutput() {
		asJSON = true
	}

	decoded := make([]*galaxy.DecodedGlyph, 0, len(args))
	for _, arg := range args {
		d, err := geo.Decode(arg, applyScale)
		if err != nil {
			return fmt.Errorf("decoding %q: %w", arg, err)
		}
		decoded = append(decoded, d)
	}

	if asJSON {
		if len(decoded) == 1 {
			return printJSON(decoded[0])
		}
		return printJSON(decoded)
	}

	for i, d := range decoded {
		if i > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		printDecoded(d)
	}
	return nil
}
