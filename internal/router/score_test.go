package router

import (
	"context"
	"testing"
	"time"

	"github.com/mlanders/sextant/internal/registry"
)

func TestScoreEntryPinned(t *testing.T) {
	// The weight contract: name match 10, description match 5, context
	// word match 3. These exact totals are relied on by callers comparing
	// ranking behavior across versions.
	entry := registry.Entry{Function: "analyzeCodebase", Description: "Run a full scan"}

	tests := []struct {
		name      string
		entry     registry.Entry
		intent    string
		inputText string
		want      int
	}{
		{
			name:   "name plus description",
			entry:  entry,
			intent: "analyze",
			// "analyze" hits the name (10), "scan" hits the description (5).
			want: 15,
		},
		{
			name:      "context word adds three",
			entry:     entry,
			intent:    "analyze",
			inputText: "please analyzecodebase for me",
			want:      18,
		},
		{
			name:   "case insensitive",
			entry:  registry.Entry{Function: "ANALYZECodebase"},
			intent: "Analyze",
			want:   10,
		},
		{
			name:   "description only",
			entry:  registry.Entry{Function: "runAll", Description: "full analysis pass"},
			intent: "analyze",
			want:   5,
		},
		{
			name:   "no match",
			entry:  entry,
			intent: "deploy",
			want:   0,
		},
		{
			name:   "unknown intent falls back to literal keyword",
			entry:  registry.Entry{Function: "frobnicateWidget"},
			intent: "frobnicate",
			want:   10,
		},
		{
			name:      "separator words matched against input",
			entry:     registry.Entry{Function: "deploy_site"},
			intent:    "deploy",
			inputText: "deploy the site now",
			// "deploy" in name (10) + words "deploy" and "site" in input (3+3).
			want: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreEntry(tt.entry, KeywordsFor(tt.intent), tt.inputText)
			if got != tt.want {
				t.Errorf("scoreEntry() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeywordsFor(t *testing.T) {
	kws := KeywordsFor("analyze")
	want := map[string]bool{"analyze": true, "analysis": true, "scan": true, "examine": true, "inspect": true}
	if len(kws) != len(want) {
		t.Fatalf("KeywordsFor(analyze) = %v", kws)
	}
	for _, kw := range kws {
		if !want[kw] {
			t.Errorf("unexpected keyword %q", kw)
		}
	}

	if got := KeywordsFor("  MixedCase  "); len(got) != 1 || got[0] != "mixedcase" {
		t.Errorf("KeywordsFor fallback = %v, want [mixedcase]", got)
	}
}

func newReadyRouter(t *testing.T, entries []registry.Entry) *Router {
	t.Helper()
	st := &fakeStore{reg: registry.New(entries, time.Now())}
	r := New("/ws", &fakeScanner{}, st, nil)
	if err := r.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return r
}

func TestFindCommandsRanking(t *testing.T) {
	r := newReadyRouter(t, []registry.Entry{
		{Function: "printReport", Description: "Summarize analysis output"}, // description only: 5
		{Function: "analyzeCodebase", Description: "Run a full scan"},       // name + description: 15
		{Function: "quickAnalyze"},                                          // name only: 10
		{Function: "deploySite"},                                            // no match: dropped
	})

	got := r.FindCommands("analyze", "")
	want := []string{"analyzeCodebase", "quickAnalyze", "printReport"}

	if len(got) != len(want) {
		t.Fatalf("FindCommands returned %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i, fn := range want {
		if got[i].Function != fn {
			t.Errorf("result[%d] = %q, want %q", i, got[i].Function, fn)
		}
	}
}

func TestFindCommandsStableTies(t *testing.T) {
	// Both entries score 10 (name match only); registry order must hold.
	r := newReadyRouter(t, []registry.Entry{
		{Function: "statusFirst"},
		{Function: "statusSecond"},
	})

	got := r.FindCommands("status", "")
	if len(got) != 2 {
		t.Fatalf("FindCommands returned %d entries, want 2", len(got))
	}
	if got[0].Function != "statusFirst" || got[1].Function != "statusSecond" {
		t.Errorf("tie order = [%s, %s], want registry order", got[0].Function, got[1].Function)
	}
}

func TestFindCommandsNoMatches(t *testing.T) {
	r := newReadyRouter(t, []registry.Entry{
		{Function: "analyzeCodebase", Description: "Run a full scan"},
	})

	if got := r.FindCommands("xyz123nomatch", ""); len(got) != 0 {
		t.Errorf("FindCommands for unmatched intent = %+v, want empty", got)
	}
}

func TestFindCommandsDuplicateNames(t *testing.T) {
	r := newReadyRouter(t, []registry.Entry{
		{Function: "showStatus", File: "a.go"},
		{Function: "showStatus", File: "b.go"},
	})

	got := r.FindCommands("status", "")
	if len(got) != 2 {
		t.Fatalf("FindCommands returned %d entries, want 2", len(got))
	}
	if got[0].File != "a.go" || got[1].File != "b.go" {
		t.Errorf("duplicate order = [%s, %s], want registry order", got[0].File, got[1].File)
	}
}
