package audit

import (
	"os"
	"testing"

	"github.com/mlanders/sextant/internal/paths"
)

func TestLogAndRead(t *testing.T) {
	tmpDir := t.TempDir()
	l := New(tmpDir, true)

	if err := l.LogRegenerate(42); err != nil {
		t.Fatalf("LogRegenerate failed: %v", err)
	}
	if err := l.LogResolve("analyze", "scan it all", 3); err != nil {
		t.Fatalf("LogResolve failed: %v", err)
	}

	entries, err := l.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Read returned %d entries, want 2", len(entries))
	}

	if entries[0].Operation != "regenerate" || entries[0].Commands != 42 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Operation != "resolve" || entries[1].Intent != "analyze" || entries[1].Commands != 3 {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestDisabledLoggerIsNoop(t *testing.T) {
	tmpDir := t.TempDir()
	l := New(tmpDir, false)

	if err := l.LogRegenerate(1); err != nil {
		t.Fatalf("disabled LogRegenerate failed: %v", err)
	}
	if _, err := os.Stat(paths.Audit(tmpDir)); !os.IsNotExist(err) {
		t.Error("disabled logger wrote a file")
	}

	entries, err := l.Read()
	if err != nil || entries != nil {
		t.Errorf("disabled Read = (%v, %v), want (nil, nil)", entries, err)
	}
}

func TestReadSkipsMalformedLines(t *testing.T) {
	tmpDir := t.TempDir()
	l := New(tmpDir, true)

	if err := l.LogRegenerate(1); err != nil {
		t.Fatal(err)
	}

	f, err := os.OpenFile(paths.Audit(tmpDir), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("not json\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	entries, err := l.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Read returned %d entries, want 1", len(entries))
	}
}
