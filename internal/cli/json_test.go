package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/mlanders/sextant/internal/rl4"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

func TestPreRunErrorJSONMode(t *testing.T) {
	prevJSON := jsonOutput
	prevSilenceErr := rootCmd.SilenceErrors
	prevSilenceUsage := rootCmd.SilenceUsage
	t.Cleanup(func() {
		jsonOutput = prevJSON
		rootCmd.SilenceErrors = prevSilenceErr
		rootCmd.SilenceUsage = prevSilenceUsage
	})
	jsonOutput = true

	var runErr error
	out := captureStdout(t, func() {
		runErr = preRunError(ErrConfigInvalid, errors.New("bad toml"), "fix the config")
	})

	if runErr == nil {
		t.Fatal("preRunError returned nil; the process would exit zero")
	}
	if !rootCmd.SilenceErrors {
		t.Error("cobra error printing was not silenced in JSON mode")
	}

	var resp Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON envelope, got parse error: %v; out=%s", err, out)
	}
	if resp.OK {
		t.Error("ok = true, want false")
	}
	if resp.Error == nil || resp.Error.Code != ErrConfigInvalid {
		t.Errorf("error = %+v, want code %s", resp.Error, ErrConfigInvalid)
	}
}

func TestPreRunErrorTextMode(t *testing.T) {
	prevJSON := jsonOutput
	t.Cleanup(func() { jsonOutput = prevJSON })
	jsonOutput = false

	want := errors.New("bad toml")
	out := captureStdout(t, func() {
		if got := preRunError(ErrConfigInvalid, want, ""); got != want {
			t.Errorf("preRunError = %v, want the original error", got)
		}
	})
	if out != "" {
		t.Errorf("text mode wrote to stdout: %q", out)
	}
}

func TestHandleErrorWithDetailsJSON(t *testing.T) {
	prevJSON := jsonOutput
	t.Cleanup(func() { jsonOutput = prevJSON })
	jsonOutput = true

	details := rl4.AllResult{
		Plan: rl4.Result{Category: rl4.CategoryPlan, Missing: []string{"frontmatter.title"}},
	}

	var runErr error
	out := captureStdout(t, func() {
		runErr = handleErrorWithDetails(ErrValidationFailed, "structure check failed", "run init", details)
	})

	if runErr != nil {
		t.Fatalf("JSON mode should swallow the error, got %v", runErr)
	}
	if !strings.Contains(out, ErrValidationFailed) {
		t.Errorf("output missing error code:\n%s", out)
	}
	if !strings.Contains(out, "frontmatter.title") {
		t.Errorf("output missing structured details:\n%s", out)
	}
}

func TestFindResultJSONEmitsEmptyCommandsArray(t *testing.T) {
	data, err := json.Marshal(FindResult{
		Intent:   "analyze",
		Commands: nonNilEntries(nil),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"commands":[]`) {
		t.Errorf("commands did not marshal as an empty array: %s", data)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("envelope contains null: %s", data)
	}
}
