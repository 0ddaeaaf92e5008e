// Package cli provides the command-line orchestrator for the physiological
// simulation core. It decodes a scenario, drives simulate.Run, and persists
// the result, mirroring how crownet's cli.Orchestrator sequences network
// construction and the simulation loop around its configuration.
package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/JeffJassky/pyhsim/config"
	"github.com/JeffJassky/pyhsim/registry"
	"github.com/JeffJassky/pyhsim/simulate"
	"github.com/JeffJassky/pyhsim/storage"
)

// Orchestrator drives one simulate.Run from a decoded scenario file, then
// writes the resulting state and, if configured, logs the run to SQLite.
type Orchestrator struct {
	ScenarioPath string
	OutPath      string
	DbPath       string

	// Registry is the signal/auxiliary catalog the run is validated and
	// persisted against. Defaults to registry.NewDefaultRegistry() when nil.
	Registry *registry.Registry

	// GridOverride, if set, replaces the scenario's own grid window and/or
	// step before the run, letting one scenario file be replayed over a
	// different day or at a different resolution from the command line.
	GridOverride *GridOverride

	// loadScenarioFn allows tests to inject a fake scenario loader, the same
	// dependency-injection shape crownet's Orchestrator uses for weight
	// persistence.
	loadScenarioFn func(path string) (config.ScenarioConfig, error)
}

// GridOverride carries CLI-flag overrides for a scenario's grid. Day moves
// the window's start to Day*1440 and keeps the scenario's span (EndMinute -
// StartMinute); the DayChanged/StepMinutesChanged
// flags mirror cobra's Flags().Changed so an override is only applied when
// the corresponding flag was actually passed.
type GridOverride struct {
	Day                int
	DayChanged         bool
	StepMinutes        float64
	StepMinutesChanged bool
}

const minutesPerDay = 1440

func (g *GridOverride) apply(grid config.GridConfig) config.GridConfig {
	if g == nil {
		return grid
	}
	if g.DayChanged {
		span := grid.EndMinute - grid.StartMinute
		grid.StartMinute = float64(g.Day * minutesPerDay)
		grid.EndMinute = grid.StartMinute + span
	}
	if g.StepMinutesChanged {
		grid.StepMinutes = g.StepMinutes
	}
	return grid
}

// NewOrchestrator builds an Orchestrator that reads scenarioPath, runs the
// simulation, and writes its final state to outPath. dbPath, if non-empty,
// additionally logs the run to a SQLite database for later CSV export.
func NewOrchestrator(scenarioPath, outPath, dbPath string) *Orchestrator {
	return &Orchestrator{
		ScenarioPath:   scenarioPath,
		OutPath:        outPath,
		DbPath:         dbPath,
		loadScenarioFn: loadScenarioFromFile,
	}
}

// loadScenarioFromFile decodes a TOML scenario file and validates it.
func loadScenarioFromFile(path string) (config.ScenarioConfig, error) {
	var sc config.ScenarioConfig
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return sc, fmt.Errorf("cli: failed to decode scenario file %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("cli: invalid scenario %s: %w", path, err)
	}
	return sc, nil
}

// RunOnce decodes the configured scenario, runs one simulation, writes the
// final state to OutPath, and logs the run to DbPath if set. It returns the
// Response so callers (the chain command) can inspect FinalState, Flags, and
// MonitorResults without re-reading the output file.
func (o *Orchestrator) RunOnce(initialState *simulate.State) (simulate.Response, error) {
	sc, err := o.loadScenarioFn(o.ScenarioPath)
	if err != nil {
		return simulate.Response{}, err
	}

	subj, err := sc.Subject.ToSubject()
	if err != nil {
		return simulate.Response{}, fmt.Errorf("cli: %w", err)
	}

	reg := o.Registry
	if reg == nil {
		reg = registry.NewDefaultRegistry()
	}

	grid := o.GridOverride.apply(sc.Grid)

	if initialState == nil && sc.Options.InitialStateFile != "" {
		loaded, err := storage.LoadState(sc.Options.InitialStateFile)
		if err != nil {
			return simulate.Response{}, fmt.Errorf("cli: %w", err)
		}
		initialState = &loaded
	}

	req := simulate.Request{
		Grid:         simulate.Grid(grid),
		Subject:      subj,
		Timeline:     sc.ToTimeline(),
		Registry:     reg,
		SignalFilter: sc.Options.SignalKeys(),
		InitialState: initialState,
	}

	resp := simulate.Run(req)
	if resp.Error != nil {
		return resp, fmt.Errorf("cli: simulation failed: %w", resp.Error)
	}

	if o.OutPath != "" {
		if err := storage.SaveState(o.OutPath, reg, resp.FinalState); err != nil {
			return resp, fmt.Errorf("cli: failed to write final state to %s: %w", o.OutPath, err)
		}
		fmt.Printf("Final state written to %s\n", o.OutPath)
	}

	if o.DbPath != "" {
		if err := o.logRun(resp); err != nil {
			return resp, err
		}
	}

	if len(resp.Flags) > 0 {
		log.Printf("run completed with %d flag(s): %v", len(resp.Flags), resp.Flags)
	}
	for _, r := range resp.MonitorResults {
		fmt.Printf("monitor %s: %s at minute %.1f (value %.3f)\n", r.ID, r.Outcome, r.DetectedAtMinute, r.TriggerValue)
	}

	return resp, nil
}

func (o *Orchestrator) logRun(resp simulate.Response) error {
	validatedPath, err := validateWritablePath(o.DbPath)
	if err != nil {
		return fmt.Errorf("cli: invalid --db path %q: %w", o.DbPath, err)
	}
	logger, err := storage.NewSQLiteLogger(validatedPath)
	if err != nil {
		return fmt.Errorf("cli: failed to open SQLite log at %s: %w", validatedPath, err)
	}
	defer func() {
		if errClose := logger.Close(); errClose != nil {
			log.Printf("cli: error closing SQLite logger: %v", errClose)
		}
	}()
	runID, err := logger.LogRun(resp)
	if err != nil {
		return fmt.Errorf("cli: failed to log run to %s: %w", validatedPath, err)
	}
	fmt.Printf("Run logged to %s (RunID %d)\n", validatedPath, runID)
	return nil
}

// validateWritablePath cleans and absolutizes path, confirming its parent
// directory exists, following crownet's cli.Orchestrator.validatePath.
func validateWritablePath(path string) (string, error) {
	cleaned := filepath.Clean(path)
	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("could not determine absolute path for %q: %w", cleaned, err)
	}
	parent := filepath.Dir(abs)
	if info, err := os.Stat(parent); err != nil {
		return "", fmt.Errorf("parent directory %q does not exist: %w", parent, err)
	} else if !info.IsDir() {
		return "", fmt.Errorf("parent path %q is not a directory", parent)
	}
	return abs, nil
}
