package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tillbiskup/bibrecord/internal/database"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.bib>",
	Short: "Import a bibliography into the record database",
	Long: `Import a BibTeX bibliography into the record database.

Unknown record types and duplicate keys are skipped with a warning on
stderr. Records whose key already exists in the database are replaced.

Examples:
  bib import literature.bib
  bib import literature.bib --db ~/refs.db`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResult represents the result of an import operation.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	db := database.New()
	warnings, err := db.FromFile(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading bibliography: %v", err)
	}
	printWarnings(warnings)

	store := mustOpenStore()
	defer store.Close()

	for _, key := range db.Keys {
		if err := store.Put(db.Records[key]); err != nil {
			exitWithError(ExitError, "storing %s: %v", key, err)
		}
	}

	result := ImportResult{
		Imported: db.Len(),
		Skipped:  len(warnings),
		Warnings: warnings,
	}
	if humanOutput {
		fmt.Printf("Imported %d records (%d skipped)\n", result.Imported, result.Skipped)
		return nil
	}
	return outputJSON(result)
}
