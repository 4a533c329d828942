// Package cli implements the command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mlanders/sextant/internal/config"
	"github.com/mlanders/sextant/internal/router"
	"github.com/mlanders/sextant/internal/scanner"
	"github.com/mlanders/sextant/internal/store"
	"github.com/mlanders/sextant/internal/ui"
)

var (
	// Global flags
	workspaceName     string // Named workspace from config
	workspacePathFlag string // Explicit path (rare)
	configPath        string
	verbose           bool

	// Resolved values
	resolvedWorkspacePath string
	cfg                   *config.Config
	logger                *log.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sxt",
	Short: "Sextant - Command discovery and intent resolution for workspaces",
	Long: `Sextant indexes the callable commands of a workspace and resolves
natural-language intents to the commands that can serve them.

Like its namesake instrument, it takes a fix on where a project is:
the rl4/ documents record plan, state, and log, and 'sxt check' keeps
them structurally honest.`,
}

// rootPersistentPreRunE is assigned to rootCmd.PersistentPreRunE in init;
// it is kept out of the rootCmd literal to avoid an initialization cycle
// (the closure references preRunError, which references rootCmd).
func rootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	logger = newLogger(verbose)

	// Skip workspace resolution for commands that don't need it
	switch cmd.Name() {
	case "init", "workspaces", "completion", "help", "version":
		return nil
	}
	if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
		return nil
	}

	// Load config
	var err error
	cfg, err = loadGlobalConfig()
	if err != nil {
		return preRunError(ErrConfigInvalid,
			fmt.Errorf("failed to load config: %w", err),
			"Check the TOML syntax in "+config.DefaultPath())
	}
	ui.ConfigureTheme(cfg.UI.Accent)

	// Resolve workspace path: explicit path > named workspace > default > cwd
	if workspacePathFlag != "" {
		resolvedWorkspacePath = workspacePathFlag
	} else if workspaceName != "" {
		resolvedWorkspacePath, err = cfg.GetWorkspacePath(workspaceName)
		if err != nil {
			return preRunError(ErrWorkspaceNotFound,
				fmt.Errorf("workspace '%s' not found in config", workspaceName),
				"Add it under [workspaces] in "+config.DefaultPath()+", or run 'sxt workspaces'")
		}
	} else if cfg.DefaultWorkspace != "" {
		resolvedWorkspacePath, err = cfg.GetWorkspacePath("")
		if err != nil {
			return preRunError(ErrWorkspaceNotFound,
				fmt.Errorf("default workspace not found: %w", err),
				"Check default_workspace in "+config.DefaultPath())
		}
	} else {
		resolvedWorkspacePath, err = os.Getwd()
		if err != nil {
			return preRunError(ErrInternal,
				fmt.Errorf("failed to resolve working directory: %w", err), "")
		}
	}

	// Verify workspace exists
	if _, err := os.Stat(resolvedWorkspacePath); os.IsNotExist(err) {
		return preRunError(ErrWorkspaceNotFound,
			fmt.Errorf("workspace not found: %s", resolvedWorkspacePath),
			fmt.Sprintf("Run 'sxt init %s' to create it", resolvedWorkspacePath))
	}

	return nil
}

// preRunError reports a preflight failure. In JSON mode the structured
// envelope is emitted here and cobra's own error printing is silenced; the
// error is still returned so the process exits non-zero.
func preRunError(code string, err error, suggestion string) error {
	if jsonOutput {
		outputErrorFromErr(code, err, suggestion)
		rootCmd.SilenceErrors = true
		rootCmd.SilenceUsage = true
	}
	return err
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentPreRunE = rootPersistentPreRunE
	rootCmd.PersistentFlags().StringVarP(&workspaceName, "workspace", "w", "", "Named workspace from config")
	rootCmd.PersistentFlags().StringVar(&workspacePathFlag, "workspace-path", "", "Explicit path to workspace directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// getWorkspacePath returns the resolved workspace path.
func getWorkspacePath() string {
	return resolvedWorkspacePath
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// getLogger returns the CLI logger.
func getLogger() *log.Logger {
	if logger == nil {
		logger = newLogger(false)
	}
	return logger
}

func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}

func loadGlobalConfig() (*config.Config, error) {
	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}
	return loadedCfg, nil
}

// newRouter wires a router for the resolved workspace.
func newRouter() *router.Router {
	c := getConfig()
	ws := getWorkspacePath()
	sc := scanner.New(getLogger(), c.Scan.Exclude...)
	st := store.New(ws)
	return router.New(ws, sc, st, getLogger())
}

// scanContext returns a context bounded by the configured scan timeout,
// or an unbounded one when no timeout is set.
func scanContext() (context.Context, context.CancelFunc) {
	timeout := getConfig().ScanTimeout()
	if timeout <= 0 {
		return context.Background(), func() {}
	}
	return context.WithTimeout(context.Background(), timeout)
}
