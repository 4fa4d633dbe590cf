package galaxy

import (
	"fmt"

	"github.com/Parker1920/Master-Haven-sub000/internal/glyph"
)

// CoreVoidError reports an attempt to encode a coordinate inside the
// core-void ellipsoid. Encoding into the void is a hard error even though
// decoding a void glyph only warns: found glyphs must still decode, but
// the tool must not manufacture new ones there.
type CoreVoidError struct {
	X, Y, Z int
}

func (e *CoreVoidError) Error() string {
	return fmt.Sprintf("coordinate (%d, %d, %d) lies inside the galactic core void and cannot be encoded", e.X, e.Y, e.Z)
}

// DecodedGlyph is the full decode result for one portal code.
type DecodedGlyph struct {
	Glyph          string             `json:"glyph"`
	GlyphFormatted string             `json:"glyph_formatted"`
	Planet         int                `json:"planet"`
	SolarSystem    int                `json:"solar_system"`
	Coordinate     glyph.Coordinate   `json:"coordinate"`
	Region         glyph.Region       `json:"region"`
	StarX          float64            `json:"star_x"`
	StarY          float64            `json:"star_y"`
	StarZ          float64            `json:"star_z"`
	Classification Classification     `json:"classification"`
	Warnings       []glyph.Warning    `json:"warnings,omitempty"`
	Scaled         *ScaledCoordinates `json:"scaled,omitempty"`
}

// ScaledCoordinates carries the display-scaled variants of the signed
// coordinate and the star position. Presentation only.
type ScaledCoordinates struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	StarX float64 `json:"star_x"`
	StarY float64 `json:"star_y"`
	StarZ float64 `json:"star_z"`
}

// WarningText renders the warnings as the "; "-joined display string, or
// "" when there are none.
func (d *DecodedGlyph) WarningText() string {
	return glyph.JoinWarnings(d.Warnings)
}

// Decode parses a portal code into signed coordinates, region, star
// position and classification. Format errors propagate as *glyph.
// FormatError; sentinel values, phantom stars and void coordinates only
// attach warnings. When applyScale is set the result also carries the
// display-scaled coordinate block.
func (g *Geometry) Decode(code string, applyScale bool) (*DecodedGlyph, error) {
	outcome, err := glyph.Validate(code)
	if err != nil {
		return nil, err
	}

	fields := outcome.Fields
	coord := fields.Coordinate()
	region := fields.Region()
	starX, starY, starZ := g.StarPosition(region.X, region.Y, region.Z, fields.SolarSystem)
	class := g.Classify(coord.X, coord.Y, coord.Z, fields.SolarSystem)

	warnings := append([]glyph.Warning(nil), outcome.Warnings...)
	if class.IsPhantom {
		warnings = append(warnings, glyph.Warning{
			Kind:    glyph.WarningPhantomStar,
			Message: fmt.Sprintf("solar system %03X is a phantom star unreachable from the galactic map", fields.SolarSystem),
		})
	}
	if class.IsInCore {
		warnings = append(warnings, glyph.Warning{
			Kind:    glyph.WarningCoreVoid,
			Message: "coordinate lies inside the galactic core void",
		})
	}

	decoded := &DecodedGlyph{
		Glyph:          outcome.Canonical,
		GlyphFormatted: glyph.Format(outcome.Canonical),
		Planet:         fields.Planet,
		SolarSystem:    fields.SolarSystem,
		Coordinate:     coord,
		Region:         region,
		StarX:          starX,
		StarY:          starY,
		StarZ:          starZ,
		Classification: class,
		Warnings:       warnings,
	}

	if applyScale {
		decoded.Scaled = &ScaledCoordinates{
			X:     float64(coord.X) * DisplayScale,
			Y:     float64(coord.Y) * DisplayScale,
			Z:     float64(coord.Z) * DisplayScale,
			StarX: starX * DisplayScale,
			StarY: starY * DisplayScale,
			StarZ: starZ * DisplayScale,
		}
	}

	return decoded, nil
}

// Encode builds the canonical portal code for a coordinate, planet and
// solar system. It is the strict direction of the codec: range violations
// return *glyph.RangeError, void coordinates return *CoreVoidError, and a
// converted field landing on a forbidden sentinel returns *glyph.
// RangeError. Every successful encode round-trips exactly through Decode.
func (g *Geometry) Encode(x, y, z, planet, solarSystem int) (string, error) {
	if err := glyph.CheckRanges(x, y, z, planet, solarSystem); err != nil {
		return "", err
	}
	if g.InCoreVoid(x, y, z) {
		return "", &CoreVoidError{X: x, Y: y, Z: z}
	}
	fields, err := glyph.FieldsFromParts(x, y, z, planet, solarSystem)
	if err != nil {
		return "", err
	}
	return fields.Code(), nil
}
