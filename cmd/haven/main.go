package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "haven",
		Short: "Portal glyph tools for No Man's Sky galaxy data",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(decodeCmd())
	root.AddCommand(encodeCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(classifyCmd())
	root.AddCommand(positionCmd())
	root.AddCommand(glyphsCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
