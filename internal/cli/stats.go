package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlanders/sextant/internal/registry"
	"github.com/mlanders/sextant/internal/store"
	"github.com/mlanders/sextant/internal/ui"
)

// StatsResult is the JSON payload for 'sxt stats'.
type StatsResult struct {
	GeneratedAt   time.Time `json:"generatedAt"`
	TotalCommands int       `json:"totalCommands"`
	Age           string    `json:"age"`
	Stale         bool      `json:"stale"`
	RegistryPath  string    `json:"registry_path"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show registry statistics",
	Long: `Displays statistics about the persisted command registry.

Examples:
  sxt stats
  sxt stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.New(getWorkspacePath())

		reg, ok := st.Load()
		if !ok {
			return handleErrorMsg(ErrIndexFailed,
				"no registry found for this workspace",
				"Run 'sxt index' to build one")
		}

		now := time.Now()
		result := StatsResult{
			GeneratedAt:   reg.GeneratedAt,
			TotalCommands: reg.TotalCommands,
			Age:           now.Sub(reg.GeneratedAt).Round(time.Second).String(),
			Stale:         registry.IsStale(reg, now),
			RegistryPath:  st.Path(),
		}

		if isJSONOutput() {
			outputSuccess(result, nil)
			return nil
		}

		fmt.Println(ui.Header("Registry statistics"))
		fmt.Printf("%s  %s\n", ui.Muted.Render("Commands: "), ui.Accent.Render(fmt.Sprintf("%d", result.TotalCommands)))
		fmt.Printf("%s  %s\n", ui.Muted.Render("Generated:"), ui.Accent.Render(result.GeneratedAt.Local().Format(time.DateTime)))
		fmt.Printf("%s  %s\n", ui.Muted.Render("Age:      "), ui.Accent.Render(result.Age))
		fmt.Printf("%s  %s\n", ui.Muted.Render("Path:     "), ui.Accent.Render(result.RegistryPath))
		if result.Stale {
			fmt.Println()
			fmt.Println(ui.Warning("Registry is stale; run 'sxt index' to refresh it"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
