package glyph

import (
	"fmt"
	"strings"
)

// WarningKind tags an advisory finding on an otherwise well-formed glyph.
type WarningKind string

const (
	// WarningUnusualSentinel marks a field carrying a value the game
	// never generates (solar system 000, Y 80, X/Z 800, all-zero code).
	WarningUnusualSentinel WarningKind = "unusual_sentinel_value"
	// WarningPhantomStar marks a solar system index that is not
	// reachable from the in-game galactic map.
	WarningPhantomStar WarningKind = "phantom_star"
	// WarningCoreVoid marks a coordinate inside the galactic core void.
	WarningCoreVoid WarningKind = "core_void"
)

// Warning is a non-fatal finding attached to a successful validate or
// decode. Callers branch on Kind; Message is display text.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

// JoinWarnings renders warnings as a single "; "-delimited string for
// display surfaces. Returns "" for an empty list.
func JoinWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	messages := make([]string, 0, len(warnings))
	for _, w := range warnings {
		messages = append(messages, w.Message)
	}
	return strings.Join(messages, "; ")
}

// Outcome is the result of validating a glyph string.
type Outcome struct {
	Valid     bool
	Canonical string
	Fields    Fields
	Warnings  []Warning
}

// Validate normalizes the input and checks it is a well-formed 12-hex
// portal code. Malformed input returns a *FormatError. Forbidden sentinel
// values on a well-formed code are warnings, never failures: glyphs found
// in game data must still decode.
func Validate(s string) (*Outcome, error) {
	code := Normalize(s)
	if len(code) != Length {
		return nil, &FormatError{
			Message: fmt.Sprintf("glyph code must be exactly %d hex digits, got %d", Length, len(code)),
		}
	}
	for i := 0; i < len(code); i++ {
		if !isHexDigit(code[i]) {
			return nil, &FormatError{
				Message: fmt.Sprintf("glyph code contains invalid character %q at position %d", code[i], i),
			}
		}
	}

	fields := fieldsFromCode(code)
	return &Outcome{
		Valid:     true,
		Canonical: code,
		Fields:    fields,
		Warnings:  sentinelWarnings(fields),
	}, nil
}

func sentinelWarnings(f Fields) []Warning {
	var warnings []Warning
	if f.SolarSystem == 0 {
		warnings = append(warnings, Warning{
			Kind:    WarningUnusualSentinel,
			Message: "solar system index 000 is a reserved value the game never generates",
		})
	}
	if f.Y == sentinelY {
		warnings = append(warnings, Warning{
			Kind:    WarningUnusualSentinel,
			Message: "Y field 80 is a forbidden sentinel value",
		})
	}
	if f.Z == sentinelXZ {
		warnings = append(warnings, Warning{
			Kind:    WarningUnusualSentinel,
			Message: "Z field 800 is a forbidden sentinel value",
		})
	}
	if f.X == sentinelXZ {
		warnings = append(warnings, Warning{
			Kind:    WarningUnusualSentinel,
			Message: "X field 800 is a forbidden sentinel value",
		})
	}
	if f.Planet == 0 && f.SolarSystem == 0 && f.X == 0 && f.Y == 0 && f.Z == 0 {
		warnings = append(warnings, Warning{
			Kind:    WarningUnusualSentinel,
			Message: "glyph code is all zeroes",
		})
	}
	return warnings
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}
