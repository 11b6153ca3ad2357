package main

import (
	"os"

	"github.com/tillbiskup/bibrecord/internal/storage"
)

// DefaultDBPath is used when neither --db nor BIBRECORD_DB is set.
const DefaultDBPath = "bibrecord.db"

var dbPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the record database (default $BIBRECORD_DB or ./bibrecord.db)")
}

// resolveDBPath picks the database path from flag, environment, or default.
func resolveDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("BIBRECORD_DB"); env != "" {
		return env
	}
	return DefaultDBPath
}

// mustOpenStore opens the record database or exits with a config error.
func mustOpenStore() *storage.DB {
	db, err := storage.OpenDB(resolveDBPath())
	if err != nil {
		exitWithError(ExitConfigError, "opening database: %v", err)
	}
	return db
}
