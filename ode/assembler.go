package ode

import (
	"github.com/JeffJassky/pyhsim/intervention"
	"github.com/JeffJassky/pyhsim/pd"
	"github.com/JeffJassky/pyhsim/pk"
	"github.com/JeffJassky/pyhsim/profile"
	"github.com/JeffJassky/pyhsim/registry"
	"github.com/JeffJassky/pyhsim/simcontext"
)

// Assembler computes the physiological-plus-pharmacokinetic derivative at a
// single instant. One Assembler is built per run: its Registry and
// composed Profile result are both immutable and constant for the run's
// duration, so the same Assembler value is shared across every RK4
// sub-stage and every grid step.
type Assembler struct {
	Registry *registry.Registry
	Profile  profile.Result
}

// NewAssembler builds an Assembler over reg, with composed clinical-profile
// activity overlays and setpoint shifts already resolved for the run.
func NewAssembler(reg *registry.Registry, composed profile.Result) *Assembler {
	return &Assembler{Registry: reg, Profile: composed}
}

// NewInitialState seeds Signals and Auxiliary from the registry's
// InitialValue functions evaluated at ctx, and gives every compiled
// intervention's PK compartment set a zero-valued starting entry so every
// RK4 sub-state carries the same map keys throughout the run.
func NewInitialState(reg *registry.Registry, compiled []intervention.CompiledIntervention, ctx simcontext.Context) State {
	state := NewState()
	for _, def := range reg.Signals {
		state.Signals[def.Key] = def.InitialValue(ctx)
	}
	for _, def := range reg.Auxiliary {
		state.Auxiliary[def.Key] = def.InitialValue(ctx)
	}
	for _, ci := range compiled {
		state.PK[ci.ItemID] = pk.Compartments{}
	}
	return state
}

// ApplyBolusDeposits performs the discrete mass injections a bolus delivery
// makes at its first active grid step. This happens once per grid step,
// outside the RK4 derivative evaluation — a bolus deposit is an
// instantaneous jump in state, not a flow integrated over time.
func ApplyBolusDeposits(state State, compiled []intervention.CompiledIntervention, stepMinutes, minuteOfSim float64) State {
	out := state.Clone()
	for _, ci := range compiled {
		if pk.IsBolusDepositMinute(ci.PK.Mode, ci.PK.StartMinute, stepMinutes, minuteOfSim) {
			out.PK[ci.ItemID] = pk.Deposit(out.PK[ci.ItemID], ci.PK)
		}
	}
	return out
}

// Derivative computes dState/dt at time t, given the current state, its
// evaluation context, the run's full compiled intervention list, and the
// history ring for delayed coupling lookups. compiled is the constant,
// whole-run list: items that have not yet started still contribute a (zero)
// PK derivative and a (zero-concentration, hence inert) PD effect, and items
// past their window keep eliminating the mass they hold, so every RK4
// sub-state advances the same set of map keys.
func (a *Assembler) Derivative(state State, t float64, ctx simcontext.Context, compiled []intervention.CompiledIntervention, history *HistoryRing) State {
	out := NewState()

	var activeEffects []pd.ActiveEffect
	for _, ci := range compiled {
		pkState := state.PK[ci.ItemID]
		out.PK[ci.ItemID] = pk.Derivative(pkState, t, ci.PK)
		c := pk.Concentration(pkState)
		for _, eff := range ci.PDEffects {
			activeEffects = append(activeEffects, pd.ActiveEffect{Effect: eff, Concentration: c})
		}
	}
	pdResult := pd.Apply(activeEffects)

	snap := newStepSnapshot(state, ctx, history, a.Profile.Activity, pdResult)

	for _, def := range a.Registry.Signals {
		x := state.Signals[def.Key]
		setpoint := def.Setpoint(ctx) * (1 + a.Profile.SetpointShift[def.Key])
		dx := (setpoint - x) / def.Tau
		dx += sumProduction(def.Production, snap, ctx)
		dx -= sumClearance(def.Clearance, x, snap, ctx)
		dx += sumCouplings(def.Couplings, snap)
		dx += a.Profile.ReceptorSignalBias[def.Key]
		dx += pdResult.SignalForcing[def.Key]
		out.Signals[def.Key] = dx
	}

	for _, def := range a.Registry.Auxiliary {
		x := state.Auxiliary[def.Key]
		setpoint := def.Setpoint(ctx)
		dx := (setpoint - x) / def.Tau
		dx += sumProduction(def.Production, snap, ctx)
		dx -= sumClearance(def.Clearance, x, snap, ctx)
		dx += sumCouplings(def.Couplings, snap)
		dx += pdResult.AuxForcing[def.Key]
		out.Auxiliary[def.Key] = dx
	}

	return out
}

func sumProduction(terms []registry.ProductionTerm, snap stepSnapshot, ctx simcontext.Context) float64 {
	var total float64
	for _, p := range terms {
		srcValue := snap.Value(p.Source)
		if p.Transform != nil {
			total += p.Coefficient * p.Transform(srcValue, snap, ctx)
		} else {
			total += p.Coefficient * srcValue
		}
	}
	return total
}

// sumClearance returns the non-negative magnitude to subtract from dx/dt;
// callers always subtract this return value.
func sumClearance(terms []registry.ClearanceTerm, x float64, snap stepSnapshot, ctx simcontext.Context) float64 {
	var total float64
	for _, cl := range terms {
		var raw float64
		switch cl.Kind {
		case registry.ClearanceSaturable:
			raw = cl.Vmax * x / (cl.Km + x)
		case registry.ClearanceEnzymeDependent:
			raw = cl.Rate * snap.Activity(cl.Enzyme) * x
		default: // ClearanceLinear
			raw = cl.Rate * x
		}
		if cl.Transform != nil {
			raw *= cl.Transform(x, snap, ctx)
		}
		total += raw
	}
	return total
}

func sumCouplings(terms []registry.Coupling, snap stepSnapshot) float64 {
	var total float64
	for _, cp := range terms {
		var srcValue float64
		if cp.DelayMinutes > 0 {
			srcValue = snap.Delayed(cp.Source, cp.DelayMinutes)
		} else {
			srcValue = snap.Value(cp.Source)
		}
		sign := 1.0
		if cp.Effect == registry.Inhibit {
			sign = -1.0
		}
		total += sign * cp.Strength * srcValue
	}
	return total
}
