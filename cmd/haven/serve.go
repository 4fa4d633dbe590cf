package main

import (
	"context"
	"os"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Parker1920/Master-Haven-sub000/internal/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_, geo, err := loadGeometry()
	if err != nil {
		return err
	}

	// stdout carries the MCP transport; logs go to stderr.
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("component", "mcp").Logger()

	server := mcp.NewServer(geo, version, logger)
	return server.Run(ctx, &sdk.StdioTransport{})
}
