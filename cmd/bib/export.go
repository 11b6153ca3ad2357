package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tillbiskup/bibrecord/internal/database"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.bib>",
	Short: "Re-emit a bibliography as normalized BibTeX",
	Long: `Parse a bibliography and write it back out in canonical form:
capitalized type names, tab-indented fields, braced values.

Fields appear in each record type's declared order, so exporting is
also a way to normalize field order across a bibliography.

Examples:
  bib export literature.bib
  bib export literature.bib -o normalized.bib`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	db := database.New()
	warnings, err := db.FromFile(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading bibliography: %v", err)
	}
	printWarnings(warnings)

	blocks := make([]string, 0, db.Len())
	for _, key := range db.Keys {
		bib, err := db.Records[key].Bib()
		if err != nil {
			exitWithError(ExitDataError, "record %s: %v", key, err)
		}
		blocks = append(blocks, bib)
	}
	text := strings.Join(blocks, "\n\n") + "\n"

	if exportOutput == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(exportOutput, []byte(text), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", exportOutput, err)
	}
	if humanOutput {
		fmt.Printf("Wrote %d records to %s\n", db.Len(), exportOutput)
	} else {
		outputJSON(StatusResponse{Status: "written", Path: exportOutput})
	}
	return nil
}
