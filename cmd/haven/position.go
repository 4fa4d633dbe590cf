package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func positionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "position <glyph>",
		Short: "Deterministic 3D map position for a glyph's star system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPosition(args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func runPosition(arg string, asJSON bool) error {
	cfg, geo, err := loadGeometry()
	if err != nil {
		return err
	}

	decoded, err := geo.Decode(arg, false)
	if err != nil {
		return err
	}

	if asJSON || cfg.JSONOutput() {
		return printJSON(struct {
			Glyph       string  `json:"glyph"`
			SolarSystem int     `json:"solar_system"`
			X           float64 `json:"x"`
			Y           float64 `json:"y"`
			Z           float64 `json:"z"`
		}{decoded.Glyph, decoded.SolarSystem, decoded.StarX, decoded.StarY, decoded.StarZ})
	}

	fmt.Fprintf(os.Stdout, "Glyph: %s\n", decoded.Glyph)
	fmt.Fprintf(os.Stdout, "Region: (%03X, %02X, %03X)\n", decoded.Region.X, decoded.Region.Y, decoded.Region.Z)
	fmt.Fprintf(os.Stdout, "Solar system: %d\n", decoded.SolarSystem)
	fmt.Fprintf(os.Stdout, "Star position: (%.6f, %.6f, %.6f)\n", decoded.StarX, decoded.StarY, decoded.StarZ)
	return nil
}
