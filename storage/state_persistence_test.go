package storage_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/pk"
	"github.com/JeffJassky/pyhsim/registry"
	"github.com/JeffJassky/pyhsim/simcontext"
	"github.com/JeffJassky/pyhsim/simulate"
	"github.com/JeffJassky/pyhsim/storage"
)

func testPersistenceRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	flat := func(v float64) registry.InitialValueFunc {
		return func(simcontext.Context) float64 { return v }
	}
	reg, err := registry.New(
		[]registry.SignalDefinition{
			{Key: registry.Cortisol, Label: "cortisol", Tau: 60, Setpoint: flat(10), InitialValue: flat(10)},
		},
		[]registry.AuxDefinition{
			{Key: "scratchPool", Label: "scratch", Tau: 10, Policy: registry.PolicyReset, InitialValue: flat(0)},
			{Key: "exposureLoad", Label: "exposure", Tau: 500, Policy: registry.PolicyCarry, InitialValue: flat(0)},
		},
	)
	if err != nil {
		t.Fatalf("registry.New failed: %v", err)
	}
	return reg
}

func TestSaveAndLoadStateRoundTrips(t *testing.T) {
	reg := testPersistenceRegistry(t)
	filePath := filepath.Join(t.TempDir(), "state.json")

	original := simulate.State{
		Signals: map[common.SignalKey]float64{
			registry.Cortisol: 12.5,
		},
		Auxiliary: map[common.AuxKey]float64{
			"scratchPool":  0.3,
			"exposureLoad": 48.125,
		},
		PK: map[string]pk.Compartments{
			"caffeine-1": {Absorption: 1.5, Central: 0.75, Peripheral: 0.1},
		},
	}

	if err := storage.SaveState(filePath, reg, original); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	loaded, err := storage.LoadState(filePath)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	if loaded.Signals[registry.Cortisol] != original.Signals[registry.Cortisol] {
		t.Errorf("signal cortisol: expected %v, got %v", original.Signals[registry.Cortisol], loaded.Signals[registry.Cortisol])
	}
	if loaded.Auxiliary["scratchPool"] != original.Auxiliary["scratchPool"] {
		t.Errorf("aux scratchPool: expected %v, got %v", original.Auxiliary["scratchPool"], loaded.Auxiliary["scratchPool"])
	}
	if loaded.Auxiliary["exposureLoad"] != original.Auxiliary["exposureLoad"] {
		t.Errorf("aux exposureLoad: expected %v, got %v", original.Auxiliary["exposureLoad"], loaded.Auxiliary["exposureLoad"])
	}
	gotPK := loaded.PK["caffeine-1"]
	wantPK := original.PK["caffeine-1"]
	if gotPK != wantPK {
		t.Errorf("pk compartments: expected %+v, got %+v", wantPK, gotPK)
	}
}

func TestSaveStateSplitsAuxiliaryByAccumulatorPolicy(t *testing.T) {
	reg := testPersistenceRegistry(t)
	filePath := filepath.Join(t.TempDir(), "state.json")

	state := simulate.State{
		Signals: map[common.SignalKey]float64{registry.Cortisol: 9},
		Auxiliary: map[common.AuxKey]float64{
			"scratchPool":  0.3,
			"exposureLoad": 48.125,
		},
		PK: map[string]pk.Compartments{},
	}
	if err := storage.SaveState(filePath, reg, state); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("failed to read state file: %v", err)
	}
	var raw map[string]map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to unmarshal raw state file: %v", err)
	}
	if _, ok := raw["accumulators"]["exposureLoad"]; !ok {
		t.Errorf("expected PolicyCarry entry exposureLoad in \"accumulators\" section, raw=%v", raw)
	}
	if _, ok := raw["auxiliary"]["scratchPool"]; !ok {
		t.Errorf("expected PolicyReset entry scratchPool in \"auxiliary\" section, raw=%v", raw)
	}
}

func TestLoadStateFailsWhenFileMissing(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "does-not-exist.json")
	if _, err := storage.LoadState(filePath); err == nil {
		t.Fatalf("LoadState should have failed for a missing file, got nil error")
	}
}

func TestLoadStateFailsOnMalformedJSON(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "malformed.json")
	if err := os.WriteFile(filePath, []byte(`{"signals": "not-an-object"}`), 0644); err != nil {
		t.Fatalf("failed to write malformed state file: %v", err)
	}
	if _, err := storage.LoadState(filePath); err == nil {
		t.Fatalf("LoadState should have failed for malformed JSON, got nil error")
	}
}
