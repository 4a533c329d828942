package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlanders/sextant/internal/registry"
	"github.com/mlanders/sextant/internal/ui"
)

var showEdit bool

var showCmd = &cobra.Command{
	Use:   "show <command>",
	Short: "Show details for a registered command",
	Long: `Looks up a single command by function name or slug and displays it.

With --edit the command's source file is opened in your editor instead
(the 'editor' config key, falling back to $EDITOR).

Examples:
  sxt show analyzeCodebase
  sxt show analyze-codebase --json
  sxt show deploy_site --edit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		rtr := newRouter()
		ctx, cancel := scanContext()
		defer cancel()

		if err := rtr.Initialize(ctx); err != nil {
			return handleError(ErrIndexFailed, err, "Run 'sxt index --force' to rebuild the registry")
		}

		entry, ok := lookupCommand(rtr.Snapshot().Commands, name)
		if !ok {
			return handleErrorMsg(ErrCommandNotFound,
				fmt.Sprintf("command '%s' not found in registry", name),
				"Run 'sxt index --force' if the workspace changed, or 'sxt find <intent>' to search")
		}

		if showEdit {
			sourcePath := filepath.Join(getWorkspacePath(), filepath.FromSlash(entry.File))
			opened := openInEditor(sourcePath)

			if isJSONOutput() {
				outputSuccess(map[string]interface{}{
					"function": entry.Function,
					"file":     entry.File,
					"line":     entry.Line,
					"opened":   opened,
					"editor":   getConfig().GetEditor(),
				}, nil)
				return nil
			}

			if opened {
				fmt.Printf("Opening %s\n", ui.FilePath(fmt.Sprintf("%s:%d", entry.File, entry.Line)))
			} else {
				fmt.Printf("File: %s\n", ui.FilePath(sourcePath))
				fmt.Println(ui.Hint("(Set 'editor' in the config or $EDITOR to open automatically)"))
			}
			return nil
		}

		if isJSONOutput() {
			outputSuccess(entry, nil)
			return nil
		}

		display := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(commandMarkdown(entry), display.TermWidth)
		if err != nil {
			// Fall back to plain output if rendering fails.
			fmt.Println(ui.CommandName(entry.Function))
			if entry.Description != "" {
				fmt.Println(entry.Description)
			}
			fmt.Println(ui.Muted.Render(fmt.Sprintf("%s:%d", entry.File, entry.Line)))
			return nil
		}
		fmt.Print(rendered)

		return nil
	},
}

// lookupCommand finds an entry by function name or slug, case-insensitively.
func lookupCommand(commands []registry.Entry, name string) (registry.Entry, bool) {
	lower := strings.ToLower(name)
	for _, entry := range commands {
		if strings.ToLower(entry.Function) == lower || entry.Slug == lower {
			return entry, true
		}
	}
	return registry.Entry{}, false
}

func commandMarkdown(entry registry.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", entry.Function)
	if entry.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", entry.Description)
	}
	fmt.Fprintf(&b, "- **Source:** `%s:%d`\n", entry.File, entry.Line)
	fmt.Fprintf(&b, "- **Slug:** %s\n", entry.Slug)
	return b.String()
}

func init() {
	showCmd.Flags().BoolVar(&showEdit, "edit", false, "Open the command's source file in your editor")
	rootCmd.AddCommand(showCmd)
}
