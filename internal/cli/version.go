package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"readmefirst/internal/rules"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print build information and the size of the active rule set.

Scores are only comparable between runs that use the same rules.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version, commit, date := BuildInfo()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "readmefirst %s\ncommit: %s\nbuilt:  %s\n", version, commit, date)
		fmt.Fprintf(w, "rules:  %d (max deduction %d)\n", len(rules.List()), rules.MaxDeduction())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
