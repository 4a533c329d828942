package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlanders/sextant/internal/audit"
	"github.com/mlanders/sextant/internal/store"
	"github.com/mlanders/sextant/internal/ui"
)

var indexForce bool

// IndexResult describes the outcome of 'sxt index'.
type IndexResult struct {
	GeneratedAt   time.Time `json:"generatedAt"`
	TotalCommands int       `json:"totalCommands"`
	Rebuilt       bool      `json:"rebuilt"`
	RegistryPath  string    `json:"registry_path"`
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build or refresh the command registry",
	Long: `Scans the workspace for callable commands and persists the registry.

Without --force the persisted registry is reused while it is fresh;
a missing, empty, or expired registry triggers a full rescan.

Examples:
  sxt index
  sxt index --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspacePath := getWorkspacePath()
		st := store.New(workspacePath)
		prior, _ := st.Load()

		rtr := newRouter()
		ctx, cancel := scanContext()
		defer cancel()

		var spinner *ui.Spinner
		if !isJSONOutput() {
			spinner = ui.NewSpinner("Indexing workspace")
			spinner.Start()
		}

		var err error
		if indexForce {
			err = rtr.Rebuild(ctx)
		} else {
			err = rtr.Initialize(ctx)
		}
		if err != nil {
			if spinner != nil {
				spinner.Stop()
			}
			return handleError(ErrIndexFailed, err, "Check that the workspace path is readable")
		}

		snap := rtr.Snapshot()
		rebuilt := prior == nil || snap.GeneratedAt.After(prior.GeneratedAt)
		if spinner != nil {
			if rebuilt {
				spinner.StopWithMessage(ui.Successf("Indexed %d commands", snap.TotalCommands))
			} else {
				spinner.StopWithMessage(ui.Successf("Registry is fresh %s", ui.Count(snap.TotalCommands, "command", "commands")))
			}
		}
		if rebuilt {
			auditor := audit.New(workspacePath, getConfig().Audit)
			if auditErr := auditor.LogRegenerate(snap.TotalCommands); auditErr != nil {
				getLogger().Warn("audit log write failed", "error", auditErr)
			}
		}

		result := IndexResult{
			GeneratedAt:   snap.GeneratedAt,
			TotalCommands: snap.TotalCommands,
			Rebuilt:       rebuilt,
			RegistryPath:  st.Path(),
		}

		if isJSONOutput() {
			outputSuccess(result, &Meta{Count: snap.TotalCommands})
			return nil
		}

		fmt.Printf("  %s\n", ui.Muted.Render(st.Path()))

		return nil
	},
}

func init() {
	indexCmd.Flags().BoolVar(&indexForce, "force", false, "Rebuild the registry even if it is fresh")
	rootCmd.AddCommand(indexCmd)
}
