package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mlanders/sextant/internal/ui"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List configured workspaces",
	Long: `Lists all workspaces configured in the global config.

Example config:
  default_workspace = "main"

  [workspaces]
  main = "/path/to/project"
  side = "/path/to/other"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load config directly; this command skips workspace resolution.
		loadedCfg, err := loadGlobalConfig()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "Check the TOML syntax of the config file")
		}

		workspaces := loadedCfg.ListWorkspaces()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"default":    loadedCfg.DefaultWorkspace,
				"workspaces": workspaces,
			}, &Meta{Count: len(workspaces)})
			return nil
		}

		if len(workspaces) == 0 {
			fmt.Println(ui.Info("No workspaces configured"))
			fmt.Println()
			fmt.Println(ui.Hint("Add them to the config file:"))
			fmt.Println(ui.Hint(`  default_workspace = "main"`))
			fmt.Println(ui.Hint(`  [workspaces]`))
			fmt.Println(ui.Hint(`  main = "/path/to/project"`))
			return nil
		}

		names := make([]string, 0, len(workspaces))
		for name := range workspaces {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			marker := "  "
			if name == loadedCfg.DefaultWorkspace {
				marker = "* "
			}
			fmt.Printf("%s%-12s %s\n", marker, ui.CommandName(name), ui.Muted.Render(workspaces[name]))
		}

		if loadedCfg.DefaultWorkspace != "" {
			fmt.Println()
			fmt.Println(ui.Hint("* = default workspace"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
}
