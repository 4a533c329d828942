package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mlanders/sextant/internal/registry"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func entryByFunction(entries []registry.Entry, name string) (registry.Entry, bool) {
	for _, e := range entries {
		if e.Function == name {
			return e, true
		}
	}
	return registry.Entry{}, false
}

func TestScanGoSource(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tools/analyze.go", `package tools

// analyzeCodebase runs a full scan of the workspace
func analyzeCodebase(root string) error {
	return nil
}

func helper() {}
`)

	entries, err := New(nil).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	e, ok := entryByFunction(entries, "analyzeCodebase")
	if !ok {
		t.Fatalf("analyzeCodebase not discovered; got %+v", entries)
	}
	if e.Description != "analyzeCodebase runs a full scan of the workspace" {
		t.Errorf("Description = %q", e.Description)
	}
	if e.File != "tools/analyze.go" {
		t.Errorf("File = %q, want tools/analyze.go", e.File)
	}
	if e.Line != 4 {
		t.Errorf("Line = %d, want 4", e.Line)
	}
	if e.Slug != "analyzecodebase" {
		t.Errorf("Slug = %q", e.Slug)
	}

	if _, ok := entryByFunction(entries, "helper"); !ok {
		t.Error("undocumented function was not discovered")
	}
}

func TestScanJavaScriptAndPython(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/cmds.ts", `// Deploy the site to production
export async function deploySite(target: string) {}

// Clear all build artifacts
export const cleanBuild = async () => {};
`)
	writeFile(t, root, "scripts/report.py", `# Print a status report
def show_status():
    pass
`)

	entries, err := New(nil).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	tests := []struct {
		function    string
		description string
	}{
		{"deploySite", "Deploy the site to production"},
		{"cleanBuild", "Clear all build artifacts"},
		{"show_status", "Print a status report"},
	}
	for _, tt := range tests {
		e, ok := entryByFunction(entries, tt.function)
		if !ok {
			t.Errorf("%s not discovered", tt.function)
			continue
		}
		if e.Description != tt.description {
			t.Errorf("%s description = %q, want %q", tt.function, e.Description, tt.description)
		}
	}
}

func TestScanCommandDoc(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ops.commands.md", `# Operations

## rebuildIndex

Rebuild the search index from scratch.

## pruneCache

Drop cached artifacts older than a week.

## bareCommand
`)

	entries, err := New(nil).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	e, ok := entryByFunction(entries, "rebuildIndex")
	if !ok {
		t.Fatalf("rebuildIndex not discovered; got %+v", entries)
	}
	if e.Description != "Rebuild the search index from scratch." {
		t.Errorf("Description = %q", e.Description)
	}
	if e.File != "ops.commands.md" {
		t.Errorf("File = %q", e.File)
	}

	if e, ok := entryByFunction(entries, "bareCommand"); !ok || e.Description != "" {
		t.Errorf("bareCommand = %+v, ok=%v; want present with empty description", e, ok)
	}
}

func TestScanSkipsDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/lib.js", "function hidden() {}\n")
	writeFile(t, root, ".git/hook.py", "def hidden():\n    pass\n")
	writeFile(t, root, ".sextant/cache.go", "package cache\n\nfunc hidden() {}\n")
	writeFile(t, root, "generated/out.js", "function generatedFn() {}\n")
	writeFile(t, root, "main.go", "package main\n\nfunc visible() {}\n")

	entries, err := New(nil, "generated").Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if _, ok := entryByFunction(entries, "hidden"); ok {
		t.Error("entries from skipped directories were discovered")
	}
	if _, ok := entryByFunction(entries, "generatedFn"); ok {
		t.Error("entries from excluded directories were discovered")
	}
	if _, ok := entryByFunction(entries, "visible"); !ok {
		t.Error("visible function was not discovered")
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := New(nil).Scan(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestScanCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n\nfunc visible() {}\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(nil).Scan(ctx, root); err == nil {
		t.Error("expected error for cancelled context")
	}
}
