// Package storage persists a simulation's final state to JSON for scenario
// chaining, and logs completed runs to SQLite for later inspection and CSV
// export.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/pk"
	"github.com/JeffJassky/pyhsim/registry"
	"github.com/JeffJassky/pyhsim/simulate"
)

// persistedCompartments mirrors pk.Compartments with exported JSON tags;
// pk.Compartments itself carries none, since the ODE layer never
// serializes it directly.
type persistedCompartments struct {
	Absorption float64 `json:"absorption"`
	Central    float64 `json:"central"`
	Peripheral float64 `json:"peripheral"`
}

// persistedState is the on-disk layout: signals and within-day auxiliary
// scratch state in their own sections, long-horizon exposure accumulators
// (PolicyCarry auxiliary entries) broken out into a third section so a
// human skimming the file can tell at a glance which values are meant to
// carry across a day boundary, plus a sparse per-item PK section.
type persistedState struct {
	Signals      map[string]float64                `json:"signals"`
	Auxiliary    map[string]float64                `json:"auxiliary"`
	Accumulators map[string]float64                `json:"accumulators"`
	PK           map[string]persistedCompartments  `json:"pk,omitempty"`
}

// SaveState writes state to filePath as indented JSON. Auxiliary entries
// are split into "auxiliary" and "accumulators" by the registry's
// per-entry AccumulatorPolicy; encoding/json's float64 formatting already
// round-trips exactly, so no custom float encoding is needed.
func SaveState(filePath string, reg *registry.Registry, state simulate.State) error {
	out := persistedState{
		Signals:      make(map[string]float64, len(state.Signals)),
		Auxiliary:    make(map[string]float64),
		Accumulators: make(map[string]float64),
		PK:           make(map[string]persistedCompartments, len(state.PK)),
	}
	for k, v := range state.Signals {
		out.Signals[string(k)] = v
	}

	policy := make(map[string]registry.AccumulatorPolicy, len(reg.Auxiliary))
	for _, def := range reg.Auxiliary {
		policy[string(def.Key)] = def.Policy
	}
	for k, v := range state.Auxiliary {
		if policy[string(k)] == registry.PolicyCarry {
			out.Accumulators[string(k)] = v
		} else {
			out.Auxiliary[string(k)] = v
		}
	}
	for id, c := range state.PK {
		out.PK[id] = persistedCompartments{Absorption: c.Absorption, Central: c.Central, Peripheral: c.Peripheral}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: failed to serialize state: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("storage: failed to write state file %s: %w", filePath, err)
	}
	return nil
}

// LoadState reads a JSON state file written by SaveState, recombining the
// auxiliary and accumulators sections back into a single simulate.State
// map, since the split exists only for on-disk readability.
func LoadState(filePath string) (simulate.State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return simulate.State{}, fmt.Errorf("storage: state file %s not found: %w", filePath, err)
		}
		return simulate.State{}, fmt.Errorf("storage: failed to read state file %s: %w", filePath, err)
	}

	var in persistedState
	if err := json.Unmarshal(data, &in); err != nil {
		return simulate.State{}, fmt.Errorf("storage: failed to unmarshal state from %s: %w", filePath, err)
	}

	out := simulate.State{
		Signals:   make(map[common.SignalKey]float64, len(in.Signals)),
		Auxiliary: make(map[common.AuxKey]float64, len(in.Auxiliary)+len(in.Accumulators)),
		PK:        make(map[string]pk.Compartments, len(in.PK)),
	}
	for k, v := range in.Signals {
		out.Signals[common.SignalKey(k)] = v
	}
	for k, v := range in.Auxiliary {
		out.Auxiliary[common.AuxKey(k)] = v
	}
	for k, v := range in.Accumulators {
		out.Auxiliary[common.AuxKey(k)] = v
	}
	for id, c := range in.PK {
		out.PK[id] = pk.Compartments{Absorption: c.Absorption, Central: c.Central, Peripheral: c.Peripheral}
	}
	return out, nil
}
