package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tillbiskup/bibrecord/internal/storage"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records in the database",
	Long: `List all records in the record database, ordered by key.

Examples:
  bib list
  bib list --human`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store := mustOpenStore()
	defer store.Close()

	summaries, err := store.List()
	if err != nil {
		exitWithError(ExitError, "listing records: %v", err)
	}

	if humanOutput {
		if len(summaries) == 0 {
			fmt.Println("No records in database")
			return nil
		}
		fmt.Printf("%d records:\n\n", len(summaries))
		for _, s := range summaries {
			title := truncateString(s.Title, ListTitleMaxLen)
			fmt.Printf("  %-20s %-8s %s\n", s.Key, s.Type, title)
			if len(s.Authors) > 0 {
				fmt.Printf("  %-20s %s (%s)\n", "", formatAuthors(s.Authors, 3), s.Year)
			}
		}
		return nil
	}

	if summaries == nil {
		summaries = []storage.Summary{}
	}
	return outputJSON(summaries)
}
