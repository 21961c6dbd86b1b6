package main

import (
	"testing"
)

func TestReconcileExcludeMergeFlow(t *testing.T) {
	env := setupCLITestEnv(t, 0)
	path := writeAlbumsJSON(t, env.baseDir, `[
		{"id": "mb-1", "artist": "Metallica", "title": "Master of Puppets", "release_date": "1986-03-03"},
		{"id": "mb-2", "artist": "Metalica", "title": "Master of Puppets"}
	]`)

	if _, _, err := runCLI(t, []string{"import", path}, env.configPath); err != nil {
		t.Fatalf("import: %v", err)
	}

	out, _, err := runCLI(t, []string{"reconcile"}, env.configPath)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	requireContains(t, out, "Scanned 2 records")
	requireContains(t, out, "1 duplicate pairs, 0 exclusion pairs")
	requireContains(t, out, "mb-1")
	requireContains(t, out, "mb-2")

	out, _, err = runCLI(t, []string{"exclude", "mb-1", "mb-2"}, env.configPath)
	if err != nil {
		t.Fatalf("exclude: %v", err)
	}
	requireContains(t, out, "Recorded exclusion pair")

	out, _, err = runCLI(t, []string{"reconcile"}, env.configPath)
	if err != nil {
		t.Fatalf("reconcile after exclude: %v", err)
	}
	requireContains(t, out, "0 duplicate pairs, 1 exclusion pairs")

	out, _, err = runCLI(t, []string{"merge", "mb-1", "mb-2"}, env.configPath)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, "Merged mb-2 into mb-1")

	// The losing record is gone and retrying is a no-op.
	if _, _, err := runCLI(t, []string{"show", "mb-2"}, env.configPath); err == nil {
		t.Fatal("expected show of deleted record to fail")
	}
	out, _, err = runCLI(t, []string{"merge", "mb-1", "mb-2"}, env.configPath)
	if err != nil {
		t.Fatalf("merge retry: %v", err)
	}
	requireContains(t, out, "already gone")

	// Merging purged the exclusion pair that mentioned the deleted id.
	out, _, err = runCLI(t, []string{"reconcile"}, env.configPath)
	if err != nil {
		t.Fatalf("reconcile after merge: %v", err)
	}
	requireContains(t, out, "Scanned 1 records")
	requireContains(t, out, "0 duplicate pairs, 0 exclusion pairs")
}

func TestReconcileThresholdFlagClamps(t *testing.T) {
	env := setupCLITestEnv(t, 0)
	path := writeAlbumsJSON(t, env.baseDir, `[
		{"id": "mb-1", "artist": "Metallica", "title": "Master of Puppets"}
	]`)
	if _, _, err := runCLI(t, []string{"import", path}, env.configPath); err != nil {
		t.Fatalf("import: %v", err)
	}

	out, _, err := runCLI(t, []string{"reconcile", "--threshold", "0.9"}, env.configPath)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	requireContains(t, out, "threshold 0.50")

	out, _, err = runCLI(t, []string{"reconcile", "--threshold", "0.01"}, env.configPath)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	requireContains(t, out, "threshold 0.03")
}
