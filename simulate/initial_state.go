package simulate

import (
	"github.com/JeffJassky/pyhsim/intervention"
	"github.com/JeffJassky/pyhsim/ode"
	"github.com/JeffJassky/pyhsim/pk"
	"github.com/JeffJassky/pyhsim/registry"
	"github.com/JeffJassky/pyhsim/subject"
)

// seedInitialState builds the run's t=0 state. With no InitialState it is
// exactly ode.NewInitialState. With one supplied (scenario chaining), every
// signal and every PolicyCarry auxiliary is carried forward verbatim;
// PolicyReset auxiliaries are re-seeded from InitialValue regardless of
// what was carried, since they represent within-day scratch state that
// should not leak across the day boundary. PK compartments always start
// empty for the new day's compiled intervention list — the previous day's
// drug presence has no stable item-id correspondence to today's timeline,
// and its physiological consequences are already folded into the carried
// signal values.
func seedInitialState(reg *registry.Registry, compiled []intervention.CompiledIntervention, req Request, phys subject.Physiology) ode.State {
	ctx0 := contextAt(req.Grid.StartMinute, req.Timeline, req.Subject, phys)

	if req.InitialState == nil {
		return ode.NewInitialState(reg, compiled, ctx0)
	}

	state := ode.NewState()
	for _, def := range reg.Signals {
		if v, ok := req.InitialState.Signals[def.Key]; ok {
			state.Signals[def.Key] = v
		} else {
			state.Signals[def.Key] = def.InitialValue(ctx0)
		}
	}
	for _, def := range reg.Auxiliary {
		if def.Policy == registry.PolicyReset {
			state.Auxiliary[def.Key] = def.InitialValue(ctx0)
			continue
		}
		if v, ok := req.InitialState.Auxiliary[def.Key]; ok {
			state.Auxiliary[def.Key] = v
		} else {
			state.Auxiliary[def.Key] = def.InitialValue(ctx0)
		}
	}
	for _, ci := range compiled {
		state.PK[ci.ItemID] = pk.Compartments{}
	}
	return state
}
