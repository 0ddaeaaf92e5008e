package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestChainCommandWritesOneFilePerDay(t *testing.T) {
	scenarioPath := writeTestScenario(t)
	outDir := filepath.Join(t.TempDir(), "days")

	if err := runRoot(t, "chain", "--scenario", scenarioPath, "--days", "3", "--out-dir", outDir); err != nil {
		t.Fatalf("chain command failed: %v", err)
	}

	for day := 0; day < 3; day++ {
		path := filepath.Join(outDir, fmt.Sprintf("day-%d.json", day))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected final state file for day %d at %s: %v", day, path, err)
		}
	}
}

func TestChainCommandRejectsZeroDays(t *testing.T) {
	scenarioPath := writeTestScenario(t)
	outDir := t.TempDir()

	if err := runRoot(t, "chain", "--scenario", scenarioPath, "--days", "0", "--out-dir", outDir); err == nil {
		t.Fatalf("expected an error for --days 0")
	}
}

func TestChainCommandRequiresOutDir(t *testing.T) {
	scenarioPath := writeTestScenario(t)

	if err := runRoot(t, "chain", "--scenario", scenarioPath, "--days", "1"); err == nil {
		t.Fatalf("expected an error when --out-dir is missing")
	}
}
