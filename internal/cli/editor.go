package cli

import (
	"fmt"
	"os/exec"
	"strings"
)

// openInEditor opens a file in the user's configured editor (the 'editor'
// config key, falling back to $EDITOR). Returns true if the editor was
// launched. The process is started in the background (non-blocking).
func openInEditor(filePath string) bool {
	editor := getConfig().GetEditor()
	if editor == "" {
		return false
	}

	var cmd *exec.Cmd
	// A compound command like "open -a Cursor" needs a shell to split its
	// arguments correctly.
	if strings.Contains(editor, " ") {
		cmd = exec.Command("sh", "-c", editor+" "+shellQuote(filePath))
	} else {
		cmd = exec.Command(editor, filePath)
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("Warning: failed to open editor '%s': %v\n", editor, err)
		return false
	}
	return true
}

// shellQuote quotes a string for safe use in shell commands.
func shellQuote(s string) string {
	// Use single quotes and escape any single quotes in the string
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}
