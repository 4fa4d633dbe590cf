package mcp

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Parker1920/Master-Haven-sub000/internal/galaxy"
	"github.com/Parker1920/Master-Haven-sub000/internal/glyph"
)

type DecodeGlyphInput struct {
	Glyph      string `json:"glyph" jsonschema:"12-hex-digit portal glyph code"`
	ApplyScale bool   `json:"apply_scale,omitempty" jsonschema:"include display-scaled coordinates"`
}

type EncodeCoordinatesInput struct {
	X           int `json:"x" jsonschema:"signed X coordinate, -2047 to 2047"`
	Y           int `json:"y" jsonschema:"signed Y coordinate, -127 to 127"`
	Z           int `json:"z" jsonschema:"signed Z coordinate, -2047 to 2047"`
	Planet      int `json:"planet,omitempty" jsonschema:"planet index, 0 to 15"`
	SolarSystem int `json:"solar_system" jsonschema:"solar system index, 1 to 4095"`
}

type ValidateGlyphInput struct {
	Glyph string `json:"glyph" jsonschema:"glyph code to check"`
}

type ClassifySystemInput struct {
	Glyph string `json:"glyph" jsonschema:"12-hex-digit portal glyph code"`
}

type StarPositionInput struct {
	Glyph string `json:"glyph" jsonschema:"12-hex-digit portal glyph code"`
}

type WarningOutput struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type DecodeGlyphOutput struct {
	Glyph          string                    `json:"glyph"`
	GlyphFormatted string                    `json:"glyph_formatted"`
	Planet         int                       `json:"planet"`
	SolarSystem    int                       `json:"solar_system"`
	Coordinate     glyph.Coordinate          `json:"coordinate"`
	Region         glyph.Region              `json:"region"`
	StarX          float64                   `json:"star_x"`
	StarY          float64                   `json:"star_y"`
	StarZ          float64                   `json:"star_z"`
	Classification string                    `json:"classification"`
	IsAccessible   bool                      `json:"is_accessible"`
	Warnings       []WarningOutput           `json:"warnings,omitempty"`
	Scaled         *galaxy.ScaledCoordinates `json:"scaled,omitempty"`
}

type EncodeCoordinatesOutput struct {
	Glyph          string `json:"glyph"`
	GlyphFormatted string `json:"glyph_formatted"`
}

type ValidateGlyphOutput struct {
	Valid    bool            `json:"valid"`
	Glyph    string          `json:"glyph,omitempty"`
	Message  string          `json:"message,omitempty"`
	Warnings []WarningOutput `json:"warnings,omitempty"`
}

type ClassifySystemOutput struct {
	Glyph          string `json:"glyph"`
	SolarSystem    int    `json:"solar_system"`
	IsPhantom      bool   `json:"is_phantom"`
	IsInCore       bool   `json:"is_in_core"`
	IsAccessible   bool   `json:"is_accessible"`
	Classification string `json:"classification"`
}

type StarPositionOutput struct {
	Glyph       string       `json:"glyph"`
	Region      glyph.Region `json:"region"`
	SolarSystem int          `json:"solar_system"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	Z           float64      `json:"z"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "decode_glyph",
		Description: "Decode a portal glyph code into galaxy coordinates and classification",
	}, s.handleDecodeGlyph)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "encode_coordinates",
		Description: "Encode signed galaxy coordinates into a portal glyph code",
	}, s.handleEncodeCoordinates)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "validate_glyph",
		Description: "Check whether a string is a well-formed portal glyph code",
	}, s.handleValidateGlyph)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "classify_system",
		Description: "Classify a glyph's star system as accessible, phantom, or core void",
	}, s.handleClassifySystem)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "star_position",
		Description: "Deterministic 3D map position for a glyph's star system",
	}, s.handleStarPosition)
}

func (s *Server) handleDecodeGlyph(ctx context.Context, req *sdk.CallToolRequest, input DecodeGlyphInput) (*sdk.CallToolResult, DecodeGlyphOutput, error) {
	if input.Glyph == "" {
		return nil, DecodeGlyphOutput{}, fmt.Errorf("glyph is required")
	}

	decoded, err := s.geo.Decode(input.Glyph, input.ApplyScale)
	s.logCall("decode_glyph", err)
	if err != nil {
		return nil, DecodeGlyphOutput{}, err
	}

	return nil, DecodeGlyphOutput{
		Glyph:          decoded.Glyph,
		GlyphFormatted: decoded.GlyphFormatted,
		Planet:         decoded.Planet,
		SolarSystem:    decoded.SolarSystem,
		Coordinate:     decoded.Coordinate,
		Region:         decoded.Region,
		StarX:          decoded.StarX,
		StarY:          decoded.StarY,
		StarZ:          decoded.StarZ,
		Classification: string(decoded.Classification.Class),
		IsAccessible:   decoded.Classification.IsAccessible,
		Warnings:       warningOutputs(decoded.Warnings),
		Scaled:         decoded.Scaled,
	}, nil
}

func (s *Server) handleEncodeCoordinates(ctx context.Context, req *sdk.CallToolRequest, input EncodeCoordinatesInput) (*sdk.CallToolResult, EncodeCoordinatesOutput, error) {
	code, err := s.geo.Encode(input.X, input.Y, input.Z, input.Planet, input.SolarSystem)
	s.logCall("encode_coordinates", err)
	if err != nil {
		return nil, EncodeCoordinatesOutput{}, err
	}

	return nil, EncodeCoordinatesOutput{
		Glyph:          code,
		GlyphFormatted: glyph.Format(code),
	}, nil
}

func (s *Server) handleValidateGlyph(ctx context.Context, req *sdk.CallToolRequest, input ValidateGlyphInput) (*sdk.CallToolResult, ValidateGlyphOutput, error) {
	if input.Glyph == "" {
		return nil, ValidateGlyphOutput{}, fmt.Errorf("glyph is required")
	}

	outcome, err := glyph.Validate(input.Glyph)
	s.logCall("validate_glyph", err)
	if err != nil {
		var formatErr *glyph.FormatError
		if errors.As(err, &formatErr) {
			// Malformed input is a negative result, not a tool failure.
			return nil, ValidateGlyphOutput{Valid: false, Message: formatErr.Message}, nil
		}
		return nil, ValidateGlyphOutput{}, err
	}

	return nil, ValidateGlyphOutput{
		Valid:    true,
		Glyph:    outcome.Canonical,
		Warnings: warningOutputs(outcome.Warnings),
	}, nil
}

func (s *Server) handleClassifySystem(ctx context.Context, req *sdk.CallToolRequest, input ClassifySystemInput) (*sdk.CallToolResult, ClassifySystemOutput, error) {
	if input.Glyph == "" {
		return nil, ClassifySystemOutput{}, fmt.Errorf("glyph is required")
	}

	decoded, err := s.geo.Decode(input.Glyph, false)
	s.logCall("classify_system", err)
	if err != nil {
		return nil, ClassifySystemOutput{}, err
	}

	class := decoded.Classification
	return nil, ClassifySystemOutput{
		Glyph:          decoded.Glyph,
		SolarSystem:    decoded.SolarSystem,
		IsPhantom:      class.IsPhantom,
		IsInCore:       class.IsInCore,
		IsAccessible:   class.IsAccessible,
		Classification: string(class.Class),
	}, nil
}

func (s *Server) handleStarPosition(ctx context.Context, req *sdk.CallToolRequest, input StarPositionInput) (*sdk.CallToolResult, StarPositionOutput, error) {
	if input.Glyph == "" {
		return nil, StarPositionOutput{}, fmt.Errorf("glyph is required")
	}

	decoded, err := s.geo.Decode(input.Glyph, false)
	s.logCall("star_position", err)
	if err != nil {
		return nil, StarPositionOutput{}, err
	}

	return nil, StarPositionOutput{
		Glyph:       decoded.Glyph,
		Region:      decoded.Region,
		SolarSystem: decoded.SolarSystem,
		X:           decoded.StarX,
		Y:           decoded.StarY,
		Z:           decoded.StarZ,
	}, nil
}

func warningOutputs(warnings []glyph.Warning) []WarningOutput {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]WarningOutput, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, WarningOutput{Kind: string(w.Kind), Message: w.Message})
	}
	return out
}
