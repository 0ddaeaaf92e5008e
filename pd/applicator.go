package pd

import "github.com/JeffJassky/pyhsim/common"

// ActiveEffect pairs a compiled Effect with the current concentration of
// its owning PK primitive, as resolved by the caller for this step.
type ActiveEffect struct {
	Effect        Effect
	Concentration float64
}

// Result is the per-step PD output: multiplicative overlays on top of the
// profile composer's baseline activity maps, plus additive direct-signal
// production contributions. Multiple effects on the same target compose
// multiplicatively for activity and additively for direct signal forcing.
type Result struct {
	ReceptorMultiplier    map[common.ReceptorKey]float64
	TransporterMultiplier map[common.TransporterKey]float64
	EnzymeMultiplier      map[common.EnzymeKey]float64
	SignalForcing         map[common.SignalKey]float64
	AuxForcing            map[common.AuxKey]float64
}

func newResult() Result {
	return Result{
		ReceptorMultiplier:    make(map[common.ReceptorKey]float64),
		TransporterMultiplier: make(map[common.TransporterKey]float64),
		EnzymeMultiplier:      make(map[common.EnzymeKey]float64),
		SignalForcing:         make(map[common.SignalKey]float64),
		AuxForcing:            make(map[common.AuxKey]float64),
	}
}

// Apply folds every active effect into a Result. Activity maps are the only
// place PK enters the ODE: this function is the single funnel all PK
// concentrations pass through before reaching signal dynamics.
func Apply(effects []ActiveEffect) Result {
	res := newResult()
	for _, ae := range effects {
		switch ae.Effect.TargetKind {
		case TargetReceptor:
			key := common.ReceptorKey(ae.Effect.Target)
			res.ReceptorMultiplier[key] = multiplierOrDefault(res.ReceptorMultiplier, key) * ae.Effect.ActivityMultiplier(ae.Concentration)
		case TargetTransporter:
			key := common.TransporterKey(ae.Effect.Target)
			res.TransporterMultiplier[key] = multiplierOrDefaultT(res.TransporterMultiplier, key) * ae.Effect.ActivityMultiplier(ae.Concentration)
		case TargetEnzyme:
			key := common.EnzymeKey(ae.Effect.Target)
			res.EnzymeMultiplier[key] = multiplierOrDefaultE(res.EnzymeMultiplier, key) * ae.Effect.ActivityMultiplier(ae.Concentration)
		case TargetSignal:
			key := common.SignalKey(ae.Effect.Target)
			res.SignalForcing[key] += ae.Effect.DirectSignalForcing(ae.Concentration)
		case TargetAux:
			key := common.AuxKey(ae.Effect.Target)
			res.AuxForcing[key] += ae.Effect.DirectSignalForcing(ae.Concentration)
		}
	}
	return res
}

func multiplierOrDefault(m map[common.ReceptorKey]float64, k common.ReceptorKey) float64 {
	if v, ok := m[k]; ok {
		return v
	}
	return 1.0
}

func multiplierOrDefaultT(m map[common.TransporterKey]float64, k common.TransporterKey) float64 {
	if v, ok := m[k]; ok {
		return v
	}
	return 1.0
}

func multiplierOrDefaultE(m map[common.EnzymeKey]float64, k common.EnzymeKey) float64 {
	if v, ok := m[k]; ok {
		return v
	}
	return 1.0
}
