// Package simulate owns the integrator loop: it drives the ODE assembler
// across a uniform time grid with the classical RK4 procedure, clamps and
// records each signal, and threads final state forward for scenario
// chaining. Everything here is a pure function of its Request — no
// package-level mutable state, so many simulations may run concurrently
// provided each gets its own Request and Registry handle.
package simulate

import (
	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/intervention"
	"github.com/JeffJassky/pyhsim/monitor"
	"github.com/JeffJassky/pyhsim/pk"
	"github.com/JeffJassky/pyhsim/profile"
	"github.com/JeffJassky/pyhsim/registry"
	"github.com/JeffJassky/pyhsim/subject"
)

// Grid is a uniform time grid: numPoints = round((EndMinute-StartMinute)/StepMinutes) + 1.
type Grid struct {
	StartMinute float64
	EndMinute   float64
	StepMinutes float64
}

// NumPoints returns the number of dense samples a Series for this grid
// holds, including both endpoints.
func (g Grid) NumPoints() int {
	if g.StepMinutes <= 0 {
		return 0
	}
	n := int((g.EndMinute-g.StartMinute)/g.StepMinutes + 0.5)
	return n + 1
}

// CancellationToken is polled once per grid step. A caller running a long
// simulation on a background worker can flip it to abort early and still
// receive the partial response.
type CancellationToken interface {
	Cancelled() bool
}

// State is the structured, engine-external view of a simulation's state:
// current signal and auxiliary values, plus the sparse per-item PK
// compartments. It is what Request.InitialState accepts and
// Response.FinalState returns — storage and chaining code never reaches
// into the ode package directly.
type State struct {
	Signals   map[common.SignalKey]float64
	Auxiliary map[common.AuxKey]float64
	PK        map[string]pk.Compartments
}

// Request is Run's single input: a time grid, a subject, a
// compiled-at-request-time timeline against an intervention catalog,
// optional carried-forward state, and an optional cancellation token.
type Request struct {
	Grid     Grid
	Subject  subject.Subject
	Timeline []intervention.TimelineItem

	// InterventionRegistry is the catalog TimelineItem.Key resolves
	// against. Defaults to intervention.DefaultCatalog() when nil.
	InterventionRegistry map[string]intervention.Definition

	// Registry is the static signal/auxiliary catalog. Defaults to
	// registry.NewDefaultRegistry() when nil; callers running many
	// requests should build one Registry once and share it across them,
	// since it carries no per-run mutable state.
	Registry *registry.Registry

	// ConditionCatalog resolves subject.Condition.Key for the profile
	// composer. Defaults to profile.DefaultCatalog() when nil.
	ConditionCatalog map[string]profile.Definition

	// SignalFilter, if non-empty, restricts which keys populate
	// Response.Series/AuxiliarySeries to the requested keys plus their
	// transitive production/clearance/coupling dependencies. The
	// integrator always advances the full coupled system regardless —
	// skipping integration of a signal that silently feeds a requested
	// one through a coupling would be unsound in general.
	SignalFilter []common.SignalKey

	// InitialState, if set, seeds the run instead of each entry's
	// registry InitialValue. Auxiliary entries whose AccumulatorPolicy is
	// PolicyReset are still re-seeded from InitialValue even when
	// InitialState is supplied; PK compartments are always reset to zero
	// for the new run's compiled intervention list, since the prior run's
	// compiled item ids have no stable correspondence to this run's.
	InitialState *State

	Cancel CancellationToken
}

// Response is Run's single output.
type Response struct {
	Grid            Grid
	Series          map[common.SignalKey][]float64
	AuxiliarySeries map[common.AuxKey][]float64
	FinalState      State
	MonitorResults  []monitor.Result
	Flags           []string
	Error           *SimError
}
