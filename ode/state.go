// Package ode assembles the physiological derivative at a single instant by
// walking the signal/auxiliary registry, applying profile and PD activity
// overlays, and resolving couplings (including delayed ones) against a
// snapshot of the current integration state: every signal reads a
// consistent snapshot of the whole registry for the step, the same way a
// network cycle reads prior-cycle potentials rather than partially updated
// ones.
package ode

import (
	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/pk"
)

// State is the full integration vector: every signal and auxiliary value,
// plus one PK compartment set per active compiled intervention, keyed by
// its compiled item ID. State implements kernel.Stateful[State] so the
// generic RK4Step can advance physiology and pharmacokinetics together in
// lockstep.
type State struct {
	Signals   map[common.SignalKey]float64
	Auxiliary map[common.AuxKey]float64
	PK        map[string]pk.Compartments
}

// NewState allocates an empty State with initialized maps.
func NewState() State {
	return State{
		Signals:   make(map[common.SignalKey]float64),
		Auxiliary: make(map[common.AuxKey]float64),
		PK:        make(map[string]pk.Compartments),
	}
}

// Clone makes a deep-enough copy (new top-level maps, same compartment
// struct values) so two States never alias each other's mutable contents.
func (s State) Clone() State {
	out := NewState()
	for k, v := range s.Signals {
		out.Signals[k] = v
	}
	for k, v := range s.Auxiliary {
		out.Auxiliary[k] = v
	}
	for k, v := range s.PK {
		out.PK[k] = v
	}
	return out
}

// Add implements kernel.Stateful. Map iteration order does not affect the
// result here: addition over each key is independent and commutative.
// Determinism of the overall integration comes from the registry's fixed
// iteration order at the point derivatives are assembled, not from map
// order here.
func (s State) Add(o State) State {
	out := NewState()
	for k, v := range s.Signals {
		out.Signals[k] = v + o.Signals[k]
	}
	for k, v := range s.Auxiliary {
		out.Auxiliary[k] = v + o.Auxiliary[k]
	}
	for k, v := range s.PK {
		ov := o.PK[k]
		out.PK[k] = pk.Compartments{
			Absorption: v.Absorption + ov.Absorption,
			Central:    v.Central + ov.Central,
			Peripheral: v.Peripheral + ov.Peripheral,
		}
	}
	return out
}

// Scale implements kernel.Stateful.
func (s State) Scale(factor float64) State {
	out := NewState()
	for k, v := range s.Signals {
		out.Signals[k] = v * factor
	}
	for k, v := range s.Auxiliary {
		out.Auxiliary[k] = v * factor
	}
	for k, v := range s.PK {
		out.PK[k] = v.Scale(factor)
	}
	return out
}
