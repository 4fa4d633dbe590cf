package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Parker1920/Master-Haven-sub000/internal/glyph"
)

func encodeCmd() *cobra.Command {
	var x, y, z, planet, system int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode signed galaxy coordinates into a portal glyph code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(x, y, z, planet, system, asJSON)
		},
	}
	cmd.Flags().IntVar(&x, "x", 0, "Signed X coordinate (-2047 to 2047)")
	cmd.Flags().IntVar(&y, "y", 0, "Signed Y coordinate (-127 to 127)")
	cmd.Flags().IntVar(&z, "z", 0, "Signed Z coordinate (-2047 to 2047)")
	cmd.Flags().IntVar(&planet, "planet", 0, "Planet index (0 to 15)")
	cmd.Flags().IntVar(&system, "system", 0, "Solar system index (1 to 4095)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")
	cmd.MarkFlagRequired("z")
	cmd.MarkFlagRequired("system")
	return cmd
}

func runEncode(x, y, z, planet, system int, asJSON bool) error {
	cfg, geo, err := loadGeometry()
	if err != nil {
		return err
	}

	code, err := geo.Encode(x, y, z, planet, system)
	if err != nil {
		return err
	}

	if asJSON || cfg.JSONOutput() {
		return printJSON(map[string]string{
			"glyph":           code,
			"glyph_formatted": glyph.Format(code),
		})
	}

	fmt.Fprintf(os.Stdout, "Glyph: %s\n", code)
	fmt.Fprintf(os.Stdout, "Formatted: %s\n", glyph.Format(code))
	return nil
}
