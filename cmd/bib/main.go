// Package main provides the bib CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bib",
	Short: "BibTeX bibliography parser and formatter",
	Long: `bib parses BibTeX bibliographies into typed records and renders
them back out as citation strings or normalized BibTeX.

Records can be kept in a local SQLite database for listing and lookup,
and fetched by DOI straight from the doi.org resolver.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
