package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tillbiskup/bibrecord/internal/config"
	"github.com/tillbiskup/bibrecord/internal/database"
)

var (
	convertReverse   bool
	convertTemplates string
)

func init() {
	convertCmd.Flags().BoolVar(&convertReverse, "reverse", false, "Render names as \"Last, First\"")
	convertCmd.Flags().StringVar(&convertTemplates, "templates", "", "YAML file with citation template overrides")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file.bib>",
	Short: "Convert a bibliography to citation strings",
	Long: `Convert a BibTeX bibliography into one citation string per record.

Entries with unknown types or duplicate keys are skipped with a warning
on stderr; the remaining records are still converted.

Examples:
  bib convert literature.bib
  bib convert literature.bib --reverse --human
  bib convert literature.bib --templates citestyles.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// Citation is the JSON output for a single converted record.
type Citation struct {
	Key      string `json:"key"`
	Type     string `json:"type"`
	Citation string `json:"citation"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	templates, err := config.LoadTemplates(convertTemplates)
	if err != nil {
		exitWithError(ExitConfigError, "loading templates: %v", err)
	}

	db := database.New()
	warnings, err := db.FromFile(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading bibliography: %v", err)
	}
	printWarnings(warnings)

	citations := make([]Citation, 0, db.Len())
	for _, key := range db.Keys {
		rec := db.Records[key]
		rec.Reverse = convertReverse
		templates.Apply(rec)
		cite, err := rec.Cite()
		if err != nil {
			exitWithError(ExitDataError, "record %s: %v", key, err)
		}
		citations = append(citations, Citation{Key: key, Type: rec.Type(), Citation: cite})
	}

	if humanOutput {
		for _, c := range citations {
			fmt.Println(c.Citation)
		}
		return nil
	}
	return outputJSON(citations)
}
