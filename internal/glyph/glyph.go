// Package glyph implements the portal glyph codec: the bit-exact mapping
// between a 12-hex-digit portal code and its five positional sub-fields,
// including the split-range sign rule used for the X/Y/Z axes.
package glyph

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Length is the number of hex digits in a canonical portal code.
const Length = 12

// Declared coordinate and index ranges.
const (
	MinXZ = -2047
	MaxXZ = 2047
	MinY  = -127
	MaxY  = 127

	MinPlanet = 0
	MaxPlanet = 15

	MinSolarSystem = 1
	MaxSolarSystem = 4095
)

// Forbidden field values. The game never generates these, so a glyph
// carrying one is suspect and a new glyph must never be built from one.
const (
	sentinelY  = 0x80
	sentinelXZ = 0x800
)

const (
	halfXZ = 0x7FF
	modXZ  = 0x1000
	halfY  = 0x7F
	modY   = 0x100
)

// Fields holds the five positional sub-fields of a portal code:
// planet (digit 0), solar system (digits 1-3), Y (digits 4-5),
// Z (digits 6-8) and X (digits 9-11). Y, Z and X are the raw
// unsigned field values.
type Fields struct {
	Planet      int
	SolarSystem int
	Y           int
	Z           int
	X           int
}

// Coordinate is a signed galaxy coordinate.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Region is one hex-addressable cell of the galaxy grid, numerically
// identical to the raw unsigned X/Y/Z fields of a glyph.
type Region struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Normalize strips whitespace and hyphens and uppercases the input.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Format renders a canonical code in the hyphenated display form
// P-SSS-YY-ZZZ-XXX. Inputs that are not exactly 12 characters are
// returned unchanged; this is display-only and never errors.
func Format(s string) string {
	if len(s) != Length {
		return s
	}
	return s[0:1] + "-" + s[1:4] + "-" + s[4:6] + "-" + s[6:9] + "-" + s[9:12]
}

// SystemKey returns the system-identity portion of a glyph: the last 11
// characters of the canonical code, excluding the leading planet digit.
// Two glyphs with equal keys address the same star system regardless of
// planet. Returns "" when the input is not a well-formed code.
func SystemKey(s string) string {
	outcome, err := Validate(s)
	if err != nil {
		return ""
	}
	return outcome.Canonical[1:]
}

// SignedXZ converts a raw 12-bit X or Z field to its signed coordinate.
// The upper half of the range is negative.
func SignedXZ(field int) int {
	if field <= halfXZ {
		return field
	}
	return field - modXZ
}

// SignedY converts a raw 8-bit Y field to its signed coordinate.
func SignedY(field int) int {
	if field <= halfY {
		return field
	}
	return field - modY
}

// FieldXZ is the inverse of SignedXZ: negative coordinates wrap into the
// upper half of the 12-bit field.
func FieldXZ(coord int) int {
	if coord < 0 {
		return coord + modXZ
	}
	return coord
}

// FieldY is the inverse of SignedY.
func FieldY(coord int) int {
	if coord < 0 {
		return coord + modY
	}
	return coord
}

// Coordinate returns the signed coordinate encoded by the raw fields.
func (f Fields) Coordinate() Coordinate {
	return Coordinate{
		X: SignedXZ(f.X),
		Y: SignedY(f.Y),
		Z: SignedXZ(f.Z),
	}
}

// Region returns the region cell addressed by the raw fields.
func (f Fields) Region() Region {
	return Region{X: f.X, Y: f.Y, Z: f.Z}
}

// Code assembles the canonical 12-hex-digit code, uppercase and
// zero-padded.
func (f Fields) Code() string {
	return fmt.Sprintf("%01X%03X%02X%03X%03X", f.Planet, f.SolarSystem, f.Y, f.Z, f.X)
}

// fieldsFromCode slices an already-validated canonical code into its
// sub-fields. The caller guarantees length and charset.
func fieldsFromCode(code string) Fields {
	return Fields{
		Planet:      parseHex(code[0:1]),
		SolarSystem: parseHex(code[1:4]),
		Y:           parseHex(code[4:6]),
		Z:           parseHex(code[6:9]),
		X:           parseHex(code[9:12]),
	}
}

func parseHex(s string) int {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0
	}
	return int(v)
}
