package main

// Exit codes returned by the CLI.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (invalid template file, missing paths)
	ExitDataError   = 3 // Data error (malformed bibliography, failed record)
	ExitNotFound    = 4 // Record or DOI not found
)
