package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/Parker1920/Master-Haven-sub000/internal/galaxy"
)

// Server exposes the glyph codec and galaxy classification as MCP tools
// for assistant integrations. Logging goes through the injected zerolog
// logger; stdout belongs to the transport.
type Server struct {
	geo    *galaxy.Geometry
	logger zerolog.Logger
	mcp    *sdk.Server
}

func NewServer(geo *galaxy.Geometry, version string, logger zerolog.Logger) *Server {
	s := &Server{
		geo:    geo,
		logger: logger,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "haven",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	s.logger.Info().Msg("starting MCP server")
	return s.mcp.Run(ctx, transport)
}

func (s *Server) logCall(tool string, err error) {
	event := s.logger.Debug().Str("tool", tool)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg("tool call")
}
