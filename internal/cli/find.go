package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlanders/sextant/internal/audit"
	"github.com/mlanders/sextant/internal/history"
	"github.com/mlanders/sextant/internal/registry"
	"github.com/mlanders/sextant/internal/router"
	"github.com/mlanders/sextant/internal/ui"
)

// FindResult is the JSON payload for 'sxt find'.
type FindResult struct {
	Intent   string           `json:"intent"`
	Input    string           `json:"input,omitempty"`
	Commands []registry.Entry `json:"commands"`
}

var findCmd = &cobra.Command{
	Use:   "find <intent> [input...]",
	Short: "Resolve an intent to matching commands",
	Long: `Resolves an intent label (plus optional free-text context) against the
command registry and prints the matching commands, best match first.

Known intents: ` + strings.Join(router.Intents(), ", ") + `.
An unknown intent is matched literally against command names.

Examples:
  sxt find analyze
  sxt find test run the integration suite
  sxt find deploy --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		intent := args[0]
		inputText := strings.Join(args[1:], " ")
		start := time.Now()

		rtr := newRouter()
		ctx, cancel := scanContext()
		defer cancel()

		if err := rtr.Initialize(ctx); err != nil {
			return handleError(ErrIndexFailed, err, "Run 'sxt index --force' to rebuild the registry")
		}

		commands := nonNilEntries(rtr.FindCommands(intent, inputText))
		elapsed := time.Since(start).Milliseconds()

		recordResolution(intent, inputText, commands)

		if isJSONOutput() {
			outputSuccess(FindResult{
				Intent:   intent,
				Input:    inputText,
				Commands: commands,
			}, &Meta{Count: len(commands), QueryTimeMs: elapsed})
			return nil
		}

		if len(commands) == 0 {
			fmt.Println(ui.Info(fmt.Sprintf("No commands match intent '%s'", intent)))
			fmt.Println(ui.Hint("Try 'sxt index --force' if the workspace changed recently."))
			return nil
		}

		fmt.Printf("%s %s\n\n", ui.Header("Matches for"), ui.CommandName(intent))
		for _, entry := range commands {
			fmt.Printf("  %s\n", ui.CommandName(entry.Function))
			if entry.Description != "" {
				fmt.Printf("    %s\n", entry.Description)
			}
			fmt.Printf("    %s\n", ui.Muted.Render(fmt.Sprintf("%s:%d", entry.File, entry.Line)))
		}
		fmt.Println()
		fmt.Println(ui.Hint(fmt.Sprintf("%d matches in %dms", len(commands), elapsed)))

		return nil
	},
}

// nonNilEntries guarantees the JSON envelope carries an array, never null,
// so agents can iterate the result unconditionally.
func nonNilEntries(entries []registry.Entry) []registry.Entry {
	if entries == nil {
		return []registry.Entry{}
	}
	return entries
}

// recordResolution appends the lookup to history and the audit log.
// Both are best-effort; failures never fail the resolution itself.
func recordResolution(intent, inputText string, commands []registry.Entry) {
	workspacePath := getWorkspacePath()

	topMatch := ""
	if len(commands) > 0 {
		topMatch = commands[0].Function
	}

	if db, err := history.Open(workspacePath); err == nil {
		defer db.Close()
		if err := db.Append(history.Record{
			Intent:   intent,
			Input:    inputText,
			Matches:  len(commands),
			TopMatch: topMatch,
		}); err != nil {
			getLogger().Warn("history write failed", "error", err)
		}
	} else {
		getLogger().Warn("history unavailable", "error", err)
	}

	auditor := audit.New(workspacePath, getConfig().Audit)
	if err := auditor.LogResolve(intent, inputText, len(commands)); err != nil {
		getLogger().Warn("audit log write failed", "error", err)
	}
}

func init() {
	rootCmd.AddCommand(findCmd)
}
