package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestPersistentFlagsRegistered(t *testing.T) {
	want := []string{"workspace", "workspace-path", "config", "json", "verbose"}

	flags := make(map[string]struct{})
	rootCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flags[flag.Name] = struct{}{}
	})

	for _, name := range want {
		if _, ok := flags[name]; !ok {
			t.Errorf("persistent flag %q is not registered", name)
		}
	}
}

func TestExpectedCommandsRegistered(t *testing.T) {
	want := []string{"init", "index", "find", "show", "check", "history", "stats", "workspaces", "version"}

	registered := make(map[string]struct{})
	for _, child := range rootCmd.Commands() {
		registered[child.Name()] = struct{}{}
	}

	for _, name := range want {
		if _, ok := registered[name]; !ok {
			t.Errorf("command %q is not registered on the root command", name)
		}
	}
}
