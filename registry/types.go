// Package registry is the static catalog of signal and auxiliary
// definitions: each entry's setpoint, relaxation time constant, production
// and clearance terms, couplings, and bounds. The registry is built once
// (by NewDefaultRegistry or a caller-supplied variant) and is immutable and
// read-only for the remainder of a process's lifetime — safe to share
// across concurrently running simulations.
//
// Production terms source from a signal key, an auxiliary key, or one of
// the two reserved literals "constant" (always 1.0) and "circadian" (a
// generic cos(phase) driver in [-1,1], peaking at minute 0). Coefficients
// are authored assuming the engine never implicitly converts units: a
// production term whose source lives in a different unit than its target
// must already have the scale ratio folded into its coefficient.
package registry

import (
	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/simcontext"
	"github.com/JeffJassky/pyhsim/units"
)

// Snapshot is the minimal read interface the ODE assembler exposes back
// into registry-defined functions, so transforms and couplings can resolve
// other state without registry importing the (higher-level) ode package.
type Snapshot interface {
	// Value resolves a source key to its current value: a signal key, an
	// auxiliary key, "constant" (1.0), or "circadian" (cos(phase)).
	Value(source string) float64
	// Activity resolves a receptor/transporter/enzyme key to its current
	// activity multiplier (baseline 1.0).
	Activity(key string) float64
	// Delayed resolves a source's value at (current minute - delayMinutes),
	// using zero-order hold at the boundaries of recorded history.
	Delayed(source string, delayMinutes float64) float64
}

// SetpointFunc returns a signal's or auxiliary's target equilibrium value
// for the given context. Must not read Snapshot — setpoints are pure
// functions of context only.
type SetpointFunc func(ctx simcontext.Context) float64

// InitialValueFunc returns an entry's value at t=0 given the starting
// context.
type InitialValueFunc func(ctx simcontext.Context) float64

// Transform maps a resolved source value, plus the current snapshot and
// context, to the actual contribution multiplier. A nil Transform is
// identity: f(x) = x.
type Transform func(sourceValue float64, snap Snapshot, ctx simcontext.Context) float64

// ProductionTerm contributes coefficient * transform(source_value) to dx/dt.
type ProductionTerm struct {
	Source      string
	Coefficient float64
	Transform   Transform // optional, defaults to identity
}

// ClearanceKind distinguishes the three clearance term shapes.
type ClearanceKind int

const (
	ClearanceLinear ClearanceKind = iota
	ClearanceSaturable
	ClearanceEnzymeDependent
)

// ClearanceTerm contributes a non-positive amount to dx/dt:
//   - Linear:           -Rate * x
//   - Saturable:        -Vmax * x / (Km + x)
//   - EnzymeDependent:   -Rate * activity(Enzyme) * x
//
// Transform, if set, is applied as an extra multiplier on the raw
// contribution (pre-negation), i.e. the final term is
// -(raw) * transform(x, snap, ctx).
type ClearanceTerm struct {
	Kind      ClearanceKind
	Rate      float64 // Linear, EnzymeDependent
	Vmax      float64 // Saturable
	Km        float64 // Saturable
	Enzyme    string  // EnzymeDependent: key into Snapshot.Activity
	Transform Transform
}

// CouplingEffect is the sign convention for a Coupling term.
type CouplingEffect int

const (
	Stimulate CouplingEffect = iota
	Inhibit
)

// Coupling contributes ±Strength*source_value to dx/dt (+ for Stimulate,
// - for Inhibit). DelayMinutes, if > 0, resolves the source through the
// assembler's history ring instead of the instantaneous snapshot.
type Coupling struct {
	Source       string
	Effect       CouplingEffect
	Strength     float64
	DelayMinutes float64
}

// AccumulatorPolicy governs what happens to an auxiliary's value when a run
// is chained into a subsequent day.
type AccumulatorPolicy int

const (
	// PolicyCarry threads the final value forward as the next day's
	// initial value.
	PolicyCarry AccumulatorPolicy = iota
	// PolicyReset re-seeds the entry from InitialValue at the start of
	// each chained day.
	PolicyReset
)

// SignalDefinition is the complete, immutable description of one signal's
// dynamics and metadata.
type SignalDefinition struct {
	Key            common.SignalKey
	Label          string
	Unit           units.Unit
	ReferenceRange units.ReferenceRange
	Tendency       common.IdealTendency

	Setpoint SetpointFunc
	Tau      float64 // minutes; -(x-setpoint)/Tau is always added to dx/dt

	Production []ProductionTerm
	Clearance  []ClearanceTerm
	Couplings  []Coupling

	InitialValue InitialValueFunc

	Min *float64
	Max *float64
}

// AuxDefinition has the same shape as SignalDefinition but denotes hidden
// state not surfaced to the user (vesicle pools, enzyme reserves, adenosine
// pressure, glycogen, insulin action, and similar accumulators).
type AuxDefinition struct {
	Key      common.AuxKey
	Label    string
	Setpoint SetpointFunc
	Tau      float64

	Production []ProductionTerm
	Clearance  []ClearanceTerm
	Couplings  []Coupling

	InitialValue InitialValueFunc

	Min *float64
	Max *float64

	Policy AccumulatorPolicy
}

// Registry is the immutable catalog of signal and auxiliary definitions,
// plus key indexes into them; iteration follows the order the definitions
// were given in. Construct with New or
// NewDefaultRegistry; never mutate a Registry's slices after construction.
type Registry struct {
	Signals      []SignalDefinition
	Auxiliary    []AuxDefinition
	signalIndex  map[common.SignalKey]int
	auxIndex     map[common.AuxKey]int
}

// New builds a Registry from explicit signal and auxiliary lists, validating
// the dependency graph (every production/coupling source must
// resolve to a known signal, auxiliary, "constant", or "circadian").
// Signals and auxiliary entries are indexed in the order given, and that
// order is the fixed iteration order the ODE assembler uses for
// deterministic summation.
func New(signals []SignalDefinition, auxiliary []AuxDefinition) (*Registry, error) {
	r := &Registry{
		Signals:     signals,
		Auxiliary:   auxiliary,
		signalIndex: make(map[common.SignalKey]int, len(signals)),
		auxIndex:    make(map[common.AuxKey]int, len(auxiliary)),
	}
	for i, s := range signals {
		r.signalIndex[s.Key] = i
	}
	for i, a := range auxiliary {
		r.auxIndex[a.Key] = i
	}
	if err := validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

// HasSignal reports whether key names a registered signal.
func (r *Registry) HasSignal(key common.SignalKey) bool {
	_, ok := r.signalIndex[key]
	return ok
}

// HasAux reports whether key names a registered auxiliary.
func (r *Registry) HasAux(key common.AuxKey) bool {
	_, ok := r.auxIndex[key]
	return ok
}

// Signal returns the signal definition for key.
func (r *Registry) Signal(key common.SignalKey) (SignalDefinition, bool) {
	i, ok := r.signalIndex[key]
	if !ok {
		return SignalDefinition{}, false
	}
	return r.Signals[i], true
}

// Aux returns the auxiliary definition for key.
func (r *Registry) Aux(key common.AuxKey) (AuxDefinition, bool) {
	i, ok := r.auxIndex[key]
	if !ok {
		return AuxDefinition{}, false
	}
	return r.Auxiliary[i], true
}
