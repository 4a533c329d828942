package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlanders/sextant/internal/paths"
	"github.com/mlanders/sextant/internal/rl4"
	"github.com/mlanders/sextant/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the rl4/ project-state documents",
	Long: `Checks rl4/plan.md, rl4/state.md, and rl4/log.md against their
structural contracts: required frontmatter keys and required sections.
All three documents are always reported, even when an earlier one fails.

Examples:
  sxt check
  sxt check --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result := rl4.ValidateAll(paths.RL4(getWorkspacePath()))

		if isJSONOutput() {
			if result.Valid {
				outputSuccess(result, nil)
				return nil
			}
			return handleErrorWithDetails(ErrValidationFailed,
				"rl4 documents failed structural validation",
				"Run 'sxt init' to scaffold missing documents", result)
		}

		fmt.Println(ui.Header("RL4 document check"))
		printCheckResult(result.Plan)
		printCheckResult(result.State)
		printCheckResult(result.Log)

		if !result.Valid {
			return fmt.Errorf("rl4 documents failed structural validation")
		}
		return nil
	},
}

func printCheckResult(res rl4.Result) {
	name := string(res.Category)
	if res.Valid {
		fmt.Printf("  %s\n", ui.Successf("%s %s", name, ui.Muted.Render(res.Path)))
		return
	}
	fmt.Printf("  %s\n", ui.Error(fmt.Sprintf("%s %s", name, ui.Muted.Render(res.Path))))
	for _, missing := range res.Missing {
		fmt.Printf("      missing %s\n", missing)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
