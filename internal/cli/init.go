package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlanders/sextant/internal/config"
	"github.com/mlanders/sextant/internal/paths"
	"github.com/mlanders/sextant/internal/rl4"
	"github.com/mlanders/sextant/internal/ui"
)

// InitResult describes what 'sxt init' created.
type InitResult struct {
	WorkspacePath string   `json:"workspace_path"`
	ConfigPath    string   `json:"config_path,omitempty"`
	Created       []string `json:"created"`
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a sextant workspace",
	Long: `Creates the workspace metadata directory and the rl4/ project-state
documents (plan.md, state.md, log.md). Existing files are left untouched.

Examples:
  sxt init
  sxt init ~/projects/myapp`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspacePath := "."
		if len(args) > 0 {
			workspacePath = args[0]
		}

		absPath, err := filepath.Abs(workspacePath)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		result := InitResult{WorkspacePath: absPath}

		if err := os.MkdirAll(paths.Metadata(absPath), 0755); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		result.Created = append(result.Created, paths.MetadataDir+string(filepath.Separator))

		rl4Dir := paths.RL4(absPath)
		if err := os.MkdirAll(rl4Dir, 0755); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		today := time.Now().Format("2006-01-02")
		for _, category := range rl4.Categories {
			docPath := filepath.Join(rl4Dir, category.FileName())
			if _, err := os.Stat(docPath); err == nil {
				continue // never overwrite existing documents
			}
			content := rl4.Template(category, today)
			if err := os.WriteFile(docPath, []byte(content), 0644); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
			result.Created = append(result.Created, filepath.Join(paths.RL4Dir, category.FileName()))
		}

		// Create the global config on first use so workspaces can be named.
		if configPath, err := config.CreateDefault(); err == nil {
			result.ConfigPath = configPath
		}

		if isJSONOutput() {
			outputSuccess(result, nil)
			return nil
		}

		fmt.Println(ui.Successf("Initialized workspace at %s", ui.FilePath(absPath)))
		for _, created := range result.Created {
			fmt.Printf("  %s\n", ui.Muted.Render(created))
		}
		fmt.Println()
		fmt.Println(ui.Hint("Run 'sxt index' to build the command registry."))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
