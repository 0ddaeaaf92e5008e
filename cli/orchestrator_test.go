package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/JeffJassky/pyhsim/config"
)

func testScenario() config.ScenarioConfig {
	return config.ScenarioConfig{
		Grid: config.GridConfig{StartMinute: 0, EndMinute: 60, StepMinutes: 5},
		Subject: config.SubjectConfig{
			Sex: "male", AgeYears: 30, WeightKg: 80, HeightCm: 180,
		},
	}
}

func TestRunOnceWritesFinalStateFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "state.json")
	o := NewOrchestrator("unused.toml", outPath, "")
	o.loadScenarioFn = func(string) (config.ScenarioConfig, error) {
		return testScenario(), nil
	}

	resp, err := o.RunOnce(nil)
	if err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected a successful run, got %v", resp.Error)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("expected final state file at %s: %v", outPath, err)
	}
}

func TestRunOnceSurfacesScenarioLoadErrors(t *testing.T) {
	o := NewOrchestrator("unused.toml", "", "")
	wantErr := fmt.Errorf("boom")
	o.loadScenarioFn = func(string) (config.ScenarioConfig, error) {
		return config.ScenarioConfig{}, wantErr
	}

	if _, err := o.RunOnce(nil); err == nil {
		t.Fatalf("expected RunOnce to propagate the scenario load error")
	}
}

func TestRunOnceSurfacesSimulationErrors(t *testing.T) {
	o := NewOrchestrator("unused.toml", "", "")
	sc := testScenario()
	sc.Grid.StepMinutes = -1 // invalid, fails simulate.Run's own validation
	o.loadScenarioFn = func(string) (config.ScenarioConfig, error) {
		return sc, nil
	}

	if _, err := o.RunOnce(nil); err == nil {
		t.Fatalf("expected RunOnce to surface a simulation validation error")
	}
}

func TestRunOnceChainsInitialState(t *testing.T) {
	o := NewOrchestrator("unused.toml", "", "")
	sc := testScenario()
	o.loadScenarioFn = func(string) (config.ScenarioConfig, error) {
		return sc, nil
	}

	first, err := o.RunOnce(nil)
	if err != nil {
		t.Fatalf("first RunOnce failed: %v", err)
	}

	carried := first.FinalState
	second, err := o.RunOnce(&carried)
	if err != nil {
		t.Fatalf("second RunOnce failed: %v", err)
	}
	if second.Error != nil {
		t.Fatalf("expected a successful chained run, got %v", second.Error)
	}
}
