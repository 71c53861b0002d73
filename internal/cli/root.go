package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"readmefirst/internal/config"
	"readmefirst/internal/engine"
	"readmefirst/internal/flags"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "readmefirst [path]",
	Short: "Score how friendly a repository's README is to a first-time user",
	Long: `readmefirst is the first-run experience linter.

It checks whether a repository's README documents installation, usage,
prerequisites and example output, flags dependency and environment files the
README never mentions, and suggests the quick-start commands a newcomer needs.
It reads files only: nothing in the target repository is ever executed.

Arguments:
  path    Local directory (e.g. ".") or remote repository URL. GitHub Pages
          URLs (https://USER.github.io/REPO) are analysed as
          https://github.com/USER/REPO.

Examples:
  # Analyse the current directory
  readmefirst .

  # Analyse a remote repository (shallow clone into a temp dir)
  readmefirst https://github.com/pallets/flask

  # Read a GitHub repository through the API instead of cloning
  readmefirst --source api https://github.com/pallets/flask

  # Gate CI on a minimum score, machine-readable output
  readmefirst . --fail-under 80 --console-format json

  # List the scoring rules
  readmefirst rules list

Scoring:
  Every repository starts at 100. Missing installation or usage docs cost 15
  each, missing example output or prerequisites cost 10 each, and an
  unmentioned requirements.txt or .env.example costs 5 each. A repository
  without README.md, README.rst or README.txt scores 0.
  <50 is User-hostile, 50-79 Needs Work, 80+ Developer-friendly.

FAQ:
  Does it run my code?         No. It only reads top-level files.
  Does it need a token?        No. --source api uses GITHUB_TOKEN or
                               'gh auth token' when present, anonymous access
                               otherwise.
  Why no report for a URL?     The clone failed; the reason is printed instead.

Exit codes:
  0 = analysis attempted (also when the path is missing or the clone fails)
  1 = score below --fail-under
  2 = path or acquisition failure with --strict
  3 = invalid flags or configuration`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if code := runAnalysis(cmd, cfg, args); code != engine.ExitOK {
			os.Exit(code)
		}
	},
}

// runAnalysis validates cfg for the given target and runs the engine. With
// no target it prints help.
func runAnalysis(cmd *cobra.Command, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		_ = cmd.Help()
		return engine.ExitOK
	}
	cfg.Target.Path = args[0]

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return engine.ExitConfig
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	eng := engine.NewEngine().WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return eng.Run(ctx, cfg)
}

// bindFlags wires the analysis flags of cmd into c.
func bindFlags(cmd *cobra.Command, c *config.Config) {
	// Acquisition
	cmd.Flags().StringVar(&c.Source.Mode, flags.FlagSource, config.SourceClone, "How remote URLs are read: clone|api (api works for github.com only)")

	// Scoring
	cmd.Flags().IntVar(&c.Scoring.FailUnder, flags.FlagFailUnder, 0, "Exit 1 when the score is below this value (0 = disabled)")

	// Output
	cmd.Flags().StringVar(&c.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson")
	cmd.Flags().BoolVar(&c.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --out/--report)")
	cmd.Flags().BoolVar(&c.Output.NoColor, flags.FlagNoColor, false, "Disable colours in text output")
	cmd.Flags().StringVar(&c.Output.Report, flags.FlagReport, "", "Write a Markdown report to this path")
	cmd.Flags().StringVar(&c.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	cmd.Flags().StringVar(&c.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")

	// Runtime
	cmd.Flags().BoolVar(&c.Runtime.Strict, flags.FlagStrict, false, "Exit 2 when the path is missing or the repository cannot be acquired")
	cmd.Flags().DurationVar(&c.Runtime.Timeout, flags.FlagTimeout, 0, "Bound remote acquisition, e.g. 2m (0 = no timeout)")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Enable verbose logging to stderr (clone command, GitHub API calls, files probed)")
	bindFlags(rootCmd, cfg)
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
