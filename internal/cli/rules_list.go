package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"readmefirst/internal/rules"
)

var rulesListQuiet bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the scoring rules",
	Long: `Inspect the deduction rules behind the readiness score.

Each rule subtracts a fixed number of points when it fires. Rules are applied
in a fixed order, which is also the order findings are reported in.

Examples:
  # List all rules
  readmefirst rules list

  # Explain one rule
  readmefirst rules show usage-documented
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scoring rules",
	Long: `List every deduction rule in scoring order.

Output:
  A vertical list of rules:
    ----------------------------------------
    RULE: {ID}  (-{POINTS})
    ----------------------------------------
    {TITLE}
    {DESCRIPTION}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, r := range rules.List() {
			if rulesListQuiet {
				fmt.Fprintln(w, r.ID())
				continue
			}
			printRule(w, r)
		}
		if !rulesListQuiet {
			fmt.Fprintf(w, "Maximum deduction: %d of %d points\n", rules.MaxDeduction(), rules.MaxScore)
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [rule-id]",
	Short: "Show details of a specific rule",
	Long: `Show details of a specific rule by its ID.

Examples:
  readmefirst rules show env-example-referenced
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rList, err := rules.Resolve(args[0])
		if err != nil {
			return err
		}
		if len(rList) == 0 {
			return fmt.Errorf("rule not found: %s", args[0])
		}
		printRule(cmd.OutOrStdout(), rList[0])
		return nil
	},
}

func printRule(w io.Writer, r rules.Rule) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "RULE: %s  (-%d)\n", r.ID(), r.Points())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, r.Title())
	fmt.Fprintln(w, r.Description())
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print rule IDs")
	rulesCmd.AddCommand(rulesShowCmd)
}
