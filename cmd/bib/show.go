package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tillbiskup/bibrecord/internal/storage"
)

var showBib bool

func init() {
	showCmd.Flags().BoolVar(&showBib, "bib", false, "Print the record as BibTeX instead of a citation")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show a single record from the database",
	Long: `Show a single record by citation key.

By default the record's citation string is printed; use --bib to get
the BibTeX representation instead.

Examples:
  bib show timmer2025
  bib show timmer2025 --bib
  bib show timmer2025 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// ShowResult is the JSON output for the show command.
type ShowResult struct {
	Key      string            `json:"key"`
	Type     string            `json:"type"`
	Fields   map[string]string `json:"fields,omitempty"`
	Authors  []string          `json:"authors,omitempty"`
	Editors  []string          `json:"editors,omitempty"`
	Citation string            `json:"citation,omitempty"`
	Bib      string            `json:"bib,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	store := mustOpenStore()
	defer store.Close()

	rec, err := store.GetByKey(args[0])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			exitWithError(ExitNotFound, "no record with key %s", args[0])
		}
		exitWithError(ExitError, "loading record: %v", err)
	}

	result := ShowResult{
		Key:     rec.Key,
		Type:    rec.Type(),
		Authors: rec.Names("author"),
		Editors: rec.Names("editor"),
	}
	fields := make(map[string]string)
	for _, name := range rec.Fields() {
		if v := rec.Field(name); v != "" {
			fields[name] = v
		}
	}
	result.Fields = fields

	if showBib {
		bib, err := rec.Bib()
		if err != nil {
			exitWithError(ExitDataError, "record %s: %v", rec.Key, err)
		}
		result.Bib = bib
	} else {
		cite, err := rec.Cite()
		if err != nil {
			exitWithError(ExitDataError, "record %s: %v", rec.Key, err)
		}
		result.Citation = cite
	}

	if humanOutput {
		if showBib {
			fmt.Println(result.Bib)
		} else {
			fmt.Println(result.Citation)
		}
		return nil
	}
	return outputJSON(result)
}
