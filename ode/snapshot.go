package ode

import (
	"math"

	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/kernel"
	"github.com/JeffJassky/pyhsim/pd"
	"github.com/JeffJassky/pyhsim/profile"
	"github.com/JeffJassky/pyhsim/simcontext"
)

const (
	sourceConstant  = "constant"
	sourceCircadian = "circadian"
)

// stepSnapshot implements registry.Snapshot for one instant: it resolves
// signal/auxiliary values out of a State, activity out of a profile
// baseline overlaid with the step's PD multipliers, and delayed lookups out
// of a HistoryRing. One stepSnapshot is built per RK4 stage, never mutated
// after construction.
type stepSnapshot struct {
	state   State
	ctx     simcontext.Context
	history *HistoryRing
	profile profile.ActivityMaps
	pd      pd.Result
}

func newStepSnapshot(state State, ctx simcontext.Context, history *HistoryRing, act profile.ActivityMaps, pdRes pd.Result) stepSnapshot {
	return stepSnapshot{state: state, ctx: ctx, history: history, profile: act, pd: pdRes}
}

// Value resolves a source key to its current value: a signal key, an
// auxiliary key, "constant" (1.0), or "circadian" (cos(phase) in [-1,1],
// peaking at minute 0).
func (s stepSnapshot) Value(source string) float64 {
	switch source {
	case sourceConstant:
		return 1.0
	case sourceCircadian:
		phase := kernel.MinuteToPhase(s.ctx.CircadianMinuteOfDay)
		return math.Cos(phase)
	}
	if v, ok := s.state.Signals[common.SignalKey(source)]; ok {
		return v
	}
	if v, ok := s.state.Auxiliary[common.AuxKey(source)]; ok {
		return v
	}
	return 0
}

// Activity resolves a receptor/transporter/enzyme key to its current
// activity multiplier: the profile composer's baseline for that key, times
// the step's PD multiplier (both default to 1.0, so an unmodified,
// unmedicated key reads as exactly 1.0).
func (s stepSnapshot) Activity(key string) float64 {
	rKey := common.ReceptorKey(key)
	tKey := common.TransporterKey(key)
	eKey := common.EnzymeKey(key)

	baseline := 1.0
	pdMultiplier := 1.0

	switch {
	case isKnownReceptor(rKey):
		baseline = s.profile.ReceptorActivity(rKey)
		if v, ok := s.pd.ReceptorMultiplier[rKey]; ok {
			pdMultiplier = v
		}
	case isKnownTransporter(tKey):
		baseline = s.profile.TransporterActivity(tKey)
		if v, ok := s.pd.TransporterMultiplier[tKey]; ok {
			pdMultiplier = v
		}
	default:
		baseline = s.profile.EnzymeActivity(eKey)
		if v, ok := s.pd.EnzymeMultiplier[eKey]; ok {
			pdMultiplier = v
		}
	}
	return baseline * pdMultiplier
}

// Delayed resolves source's value at (current minute - delayMinutes),
// reading the immutable history ring populated by prior committed steps,
// with zero-order hold before the earliest recorded minute. delayMinutes
// <= 0 falls back to the instantaneous value.
func (s stepSnapshot) Delayed(source string, delayMinutes float64) float64 {
	if delayMinutes <= 0 || s.history == nil {
		return s.Value(source)
	}
	return s.history.ValueAt(source, s.ctx.MinuteOfSim-delayMinutes)
}

// isKnownReceptor/isKnownTransporter distinguish which of the three
// activity namespaces a bare string key names. Keys are disjoint by
// construction (registry/keys.go), so checking receptor then transporter
// then defaulting to enzyme is exhaustive.
func isKnownReceptor(key common.ReceptorKey) bool {
	switch key {
	case "D2", "5HT1A", "GR", "Beta1", "Orexin1", "InsulinR", "ADORA1", "ADORA2A":
		return true
	default:
		return false
	}
}

func isKnownTransporter(key common.TransporterKey) bool {
	switch key {
	case "DAT", "SERT":
		return true
	default:
		return false
	}
}
