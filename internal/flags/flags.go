// Package flags defines canonical CLI flag names shared across the CLI and
// its tests.
//
// IMPORTANT: These are flag *names* without leading dashes.
//
//	cmd.Flags().StringVar(&cfg.Source.Mode, flags.FlagSource, "clone", "...")
//	arg := "--" + flags.FlagSource
package flags

const (
	// Acquisition
	FlagSource = "source"

	// Scoring
	FlagFailUnder = "fail-under"

	// Output
	FlagConsoleFormat = "console-format"
	FlagNoConsole     = "no-console"
	FlagNoColor       = "no-color"
	FlagReport        = "report"
	FlagOut           = "out"
	FlagOutFormat     = "out-format"

	// Runtime
	FlagStrict  = "strict"
	FlagTimeout = "timeout"
	FlagVerbose = "verbose"
)
