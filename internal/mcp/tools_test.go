package mcp

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Parker1920/Master-Haven-sub000/internal/galaxy"
)

func newTestServer() *Server {
	return NewServer(galaxy.New(galaxy.DefaultConfig()), "test", zerolog.Nop())
}

func TestDecodeGlyph(t *testing.T) {
	server := newTestServer()

	_, output, err := server.handleDecodeGlyph(context.Background(), nil, DecodeGlyphInput{Glyph: "10A4F3E7B2C1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Glyph != "10A4F3E7B2C1" || output.GlyphFormatted != "1-0A4-F3-E7B-2C1" {
		t.Fatalf("unexpected glyph output: %+v", output)
	}
	if output.Coordinate.X != 705 || output.Coordinate.Y != -13 || output.Coordinate.Z != -389 {
		t.Fatalf("unexpected coordinate: %+v", output.Coordinate)
	}
	if output.Classification != "accessible" || !output.IsAccessible {
		t.Fatalf("unexpected classification: %+v", output)
	}
	if output.Scaled != nil {
		t.Fatalf("scaled block must be absent unless requested")
	}
}

func TestDecodeGlyph_ApplyScale(t *testing.T) {
	server := newTestServer()

	_, output, err := server.handleDecodeGlyph(context.Background(), nil, DecodeGlyphInput{Glyph: "10A4F3E7B2C1", ApplyScale: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Scaled == nil {
		t.Fatalf("expected scaled block")
	}
	if output.Scaled.X != float64(output.Coordinate.X)*galaxy.DisplayScale {
		t.Fatalf("unexpected scaled X: %v", output.Scaled.X)
	}
}

func TestDecodeGlyph_MissingGlyph(t *testing.T) {
	server := newTestServer()

	_, _, err := server.handleDecodeGlyph(context.Background(), nil, DecodeGlyphInput{})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestDecodeGlyph_FormatError(t *testing.T) {
	server := newTestServer()

	_, _, err := server.handleDecodeGlyph(context.Background(), nil, DecodeGlyphInput{Glyph: "nope"})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestEncodeCoordinates(t *testing.T) {
	server := newTestServer()

	_, output, err := server.handleEncodeCoordinates(context.Background(), nil, EncodeCoordinatesInput{
		X: 500, Y: -50, Z: -1200, Planet: 0, SolarSystem: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Glyph != "0001CEB501F4" {
		t.Fatalf("unexpected glyph: %s", output.Glyph)
	}
	if output.GlyphFormatted != "0-001-CE-B50-1F4" {
		t.Fatalf("unexpected formatted glyph: %s", output.GlyphFormatted)
	}
}

func TestEncodeCoordinates_CoreVoid(t *testing.T) {
	server := newTestServer()

	_, _, err := server.handleEncodeCoordinates(context.Background(), nil, EncodeCoordinatesInput{
		X: 0, Y: 0, Z: 0, Planet: 1, SolarSystem: 100,
	})
	if err == nil {
		t.Fatalf("expected core-void rejection")
	}
}

func TestValidateGlyph_Invalid(t *testing.T) {
	server := newTestServer()

	_, output, err := server.handleValidateGlyph(context.Background(), nil, ValidateGlyphInput{Glyph: "ABC"})
	if err != nil {
		t.Fatalf("malformed input is a negative result, not a failure: %v", err)
	}
	if output.Valid {
		t.Fatalf("expected invalid outcome")
	}
	if output.Message == "" {
		t.Fatalf("expected a message describing the failure")
	}
}

func TestValidateGlyph_WithWarnings(t *testing.T) {
	server := newTestServer()

	_, output, err := server.handleValidateGlyph(context.Background(), nil, ValidateGlyphInput{Glyph: "000080800800"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Valid {
		t.Fatalf("sentinel values warn, they do not invalidate")
	}
	if len(output.Warnings) != 4 {
		t.Fatalf("expected 4 warnings, got %+v", output.Warnings)
	}
}

func TestClassifySystem(t *testing.T) {
	server := newTestServer()

	_, output, err := server.handleClassifySystem(context.Background(), nil, ClassifySystemInput{Glyph: "370010100200"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.IsPhantom || output.Classification != "phantom" {
		t.Fatalf("unexpected classification: %+v", output)
	}
}

func TestStarPosition_Deterministic(t *testing.T) {
	first := newTestServer()
	second := newTestServer()

	_, out1, err := first.handleStarPosition(context.Background(), nil, StarPositionInput{Glyph: "10A4F3E7B2C1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, out2, err := second.handleStarPosition(context.Background(), nil, StarPositionInput{Glyph: "10A4F3E7B2C1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out1.X != out2.X || out1.Y != out2.Y || out1.Z != out2.Z {
		t.Fatalf("positions must be bit-identical: %+v vs %+v", out1, out2)
	}
}
