package history

import (
	"testing"
	"time"
)

func TestAppendAndRecent(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	records := []Record{
		{Intent: "analyze", Input: "scan everything", Matches: 3, TopMatch: "analyzeCodebase"},
		{Intent: "status", Matches: 1, TopMatch: "showStatus"},
		{Intent: "analyze", Matches: 0},
	}
	for _, rec := range records {
		if err := db.Append(rec); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	recent, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Recent returned %d records, want 3", len(recent))
	}

	// Newest first.
	if recent[0].Intent != "analyze" || recent[0].Matches != 0 {
		t.Errorf("recent[0] = %+v, want the last appended record", recent[0])
	}
	if recent[2].TopMatch != "analyzeCodebase" {
		t.Errorf("recent[2].TopMatch = %q", recent[2].TopMatch)
	}
	if recent[0].Timestamp.IsZero() {
		t.Error("timestamp not persisted")
	}
}

func TestRecentLimit(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	for i := 0; i < 5; i++ {
		if err := db.Append(Record{Intent: "build", Matches: i}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	recent, err := db.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Recent(2) returned %d records", len(recent))
	}
}

func TestRecentForIntent(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if err := db.Append(Record{Intent: "analyze", Matches: 2}); err != nil {
		t.Fatal(err)
	}
	if err := db.Append(Record{Intent: "deploy", Matches: 1}); err != nil {
		t.Fatal(err)
	}

	got, err := db.RecentForIntent("deploy", 10)
	if err != nil {
		t.Fatalf("RecentForIntent failed: %v", err)
	}
	if len(got) != 1 || got[0].Intent != "deploy" {
		t.Errorf("RecentForIntent = %+v, want one deploy record", got)
	}
}

func TestAppendSetsTimestamp(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	before := time.Now().Add(-time.Minute)
	if err := db.Append(Record{Intent: "test", Matches: 1}); err != nil {
		t.Fatal(err)
	}

	recent, err := db.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].Timestamp.Before(before) {
		t.Errorf("timestamp = %v, want recent", recent[0].Timestamp)
	}
}
