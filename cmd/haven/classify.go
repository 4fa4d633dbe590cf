package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "classify <glyph>",
		Short: "Classify a glyph's star system as accessible, phantom, or core void",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func runClassify(arg string, asJSON bool) error {
	cfg, geo, err := loadGeometry()
	if err != nil {
		return err
	}

	decoded, err := geo.Decode(arg, false)
	if err != nil {
		return err
	}

	class := decoded.Classification
	if asJSON || cfg.JSONOutput() {
		return printJSON(struct {
			Glyph          string `json:"glyph"`
			SolarSystem    int    `json:"solar_system"`
			IsPhantom      bool   `json:"is_phantom"`
			IsInCore       bool   `json:"is_in_core"`
			IsAccessible   bool   `json:"is_accessible"`
			Classification string `json:"classification"`
		}{decoded.Glyph, decoded.SolarSystem, class.IsPhantom, class.IsInCore, class.IsAccessible, string(class.Class)})
	}

	fmt.Fprintf(os.Stdout, "Glyph: %s\n", decoded.Glyph)
	fmt.Fprintf(os.Stdout, "Classification: %s\n", class.Class)
	fmt.Fprintf(os.Stdout, "Phantom: %t\n", class.IsPhantom)
	fmt.Fprintf(os.Stdout, "In core void: %t\n", class.IsInCore)
	fmt.Fprintf(os.Stdout, "Accessible: %t\n", class.IsAccessible)
	if text := decoded.WarningText(); text != "" {
		fmt.Fprintf(os.Stdout, "Warnings: %s\n", text)
	}
	return nil
}
