// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, rejected file).
	UserError = 1

	// DataError indicates an unreadable or invalid seed file or config.
	DataError = 2

	// UIError indicates the interactive dashboard failed to run.
	UIError = 3
)
