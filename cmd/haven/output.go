package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/Parker1920/Master-Haven-sub000/internal/config"
	"github.com/Parker1920/Master-Haven-sub000/internal/galaxy"
)

// loadGeometry loads the optional project config and builds the geometry
// every command works against.
func loadGeometry() (*config.Config, *galaxy.Geometry, error) {
	cfg, err := config.LoadOrDefault("")
	if err != nil {
		return nil, nil, err
	}
	return cfg, galaxy.New(cfg.GalaxyConfig()), nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

func printDecoded(d *galaxy.DecodedGlyph) {
	fmt.Fprintf(os.Stdout, "Glyph: %s (%s)\n", d.Glyph, d.GlyphFormatted)
	fmt.Fprintf(os.Stdout, "Planet: %d\n", d.Planet)
	fmt.Fprintf(os.Stdout, "Solar system: %d (%03X)\n", d.SolarSystem, d.SolarSystem)
	fmt.Fprintf(os.Stdout, "Coordinate: (%d, %d, %d)\n", d.Coordinate.X, d.Coordinate.Y, d.Coordinate.Z)
	fmt.Fprintf(os.Stdout, "Region: (%03X, %02X, %03X)\n", d.Region.X, d.Region.Y, d.Region.Z)
	fmt.Fprintf(os.Stdout, "Star position: (%.6f, %.6f, %.6f)\n", d.StarX, d.StarY, d.StarZ)
	fmt.Fprintf(os.Stdout, "Classification: %s\n", d.Classification.Class)
	if d.Scaled != nil {
		fmt.Fprintf(os.Stdout, "Scaled coordinate: (%.2f, %.2f, %.2f)\n", d.Scaled.X, d.Scaled.Y, d.Scaled.Z)
		fmt.Fprintf(os.Stdout, "Scaled star position: (%.6f, %.6f, %.6f)\n", d.Scaled.StarX, d.Scaled.StarY, d.Scaled.StarZ)
	}
	if text := d.WarningText(); text != "" {
		fmt.Fprintf(os.Stdout, "Warnings: %s\n", text)
	}
}
