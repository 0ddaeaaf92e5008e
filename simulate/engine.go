package simulate

import (
	"fmt"
	"math"

	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/intervention"
	"github.com/JeffJassky/pyhsim/kernel"
	"github.com/JeffJassky/pyhsim/ode"
	"github.com/JeffJassky/pyhsim/pk"
	"github.com/JeffJassky/pyhsim/profile"
	"github.com/JeffJassky/pyhsim/registry"
	"github.com/JeffJassky/pyhsim/subject"
)

// genericBlowUpThreshold guards signals that declare no Max bound.
const genericBlowUpThreshold = 1e6

// Run drives one simulation from req.Grid.StartMinute to req.Grid.EndMinute,
// returning a dense Response. Validation failures (ValidationError,
// ConfigError) are returned before any integration work; a NumericError
// aborts mid-run and returns the partial series built so far; a tripped
// CancellationToken likewise returns the partial series with ErrCancelled.
func Run(req Request) Response {
	if err := validateRequest(req); err != nil {
		return Response{Grid: req.Grid, Error: err}
	}

	reg := req.Registry
	if reg == nil {
		reg = registry.NewDefaultRegistry()
	}
	conditionCatalog := req.ConditionCatalog
	if conditionCatalog == nil {
		conditionCatalog = profile.DefaultCatalog()
	}
	interventionCatalog := req.InterventionRegistry
	if interventionCatalog == nil {
		interventionCatalog = intervention.DefaultCatalog()
	}

	refs := make([]profile.ConditionRef, 0, len(req.Subject.Conditions))
	for _, c := range req.Subject.Conditions {
		refs = append(refs, profile.ConditionRef{Key: c.Key, Severity: c.Severity, Params: c.Params})
	}
	composed := profile.NewComposer(conditionCatalog).Compose(refs)

	compiler := intervention.NewCompiler(interventionCatalog)
	compiled, err := compiler.Compile(req.Timeline)
	if err != nil {
		return Response{Grid: req.Grid, Error: validationErrorf("%s", err)}
	}

	phys := subject.DerivePhysiology(req.Subject)
	assembler := ode.NewAssembler(reg, composed)

	numPoints := req.Grid.NumPoints()
	if numPoints <= 0 {
		return Response{Grid: req.Grid, Error: validationErrorf("grid produces no sample points")}
	}

	reqSignals, reqAux := requiredKeys(reg, req.SignalFilter)

	resp := Response{Grid: req.Grid}
	resp.Series = make(map[common.SignalKey][]float64, len(reqSignals))
	for k := range reqSignals {
		resp.Series[k] = make([]float64, 0, numPoints)
	}
	resp.AuxiliarySeries = make(map[common.AuxKey][]float64, len(reqAux))
	for k := range reqAux {
		resp.AuxiliarySeries[k] = make([]float64, 0, numPoints)
	}

	history := ode.NewHistoryRing(numPoints)
	state := seedInitialState(reg, compiled, req, phys)

	dt := req.Grid.StepMinutes
	t := req.Grid.StartMinute

	flagSet := make(map[string]bool)
	addFlag := func(f string) {
		if !flagSet[f] {
			flagSet[f] = true
			resp.Flags = append(resp.Flags, f)
		}
	}

	derivAt := func(s ode.State, tt float64) ode.State {
		ctx := contextAt(tt, req.Timeline, req.Subject, phys)
		return assembler.Derivative(s, tt, ctx, compiled, history)
	}

	for i := 0; i < numPoints; i++ {
		appendSample(resp, reg, reqSignals, reqAux, state)
		history.Record(t, state)

		if req.Cancel != nil && req.Cancel.Cancelled() {
			resp.Error = &SimError{Kind: ErrCancelled, Minute: t, Detail: "cancellation token tripped"}
			resp.FinalState = fromODEState(state)
			return resp
		}

		if i == numPoints-1 {
			break
		}

		state = applyBolusDeposits(state, compiled, dt, t)

		n := microstepCountFor(compiled, t, dt)
		if n > 1 {
			addFlag(fmt.Sprintf("pkMicrostepSubdivision:%d@%.1f", n, t))
		}
		subDt := dt / float64(n)
		ok := true
		for sub := 0; sub < n; sub++ {
			subT := t + float64(sub)*subDt
			next := kernel.RK4Step(state, subT, subDt, derivAt)
			if kind, sig, detail, blown := detectBlowUp(reg, next); blown {
				resp.Error = &SimError{Kind: kind, SignalKey: sig, Minute: subT + subDt, Detail: detail}
				resp.FinalState = fromODEState(state)
				ok = false
				break
			}
			state = next
		}
		if !ok {
			return resp
		}

		t += dt
		var clampedFlags []string
		state, clampedFlags = clampState(reg, state, t)
		for _, f := range clampedFlags {
			addFlag(f)
		}
	}

	resp.FinalState = fromODEState(state)
	resp.MonitorResults = runMonitors(req, resp)
	return resp
}

func validateRequest(req Request) *SimError {
	if req.Grid.StepMinutes <= 0 {
		return validationErrorf("grid.stepMinutes must be positive, got %f", req.Grid.StepMinutes)
	}
	if req.Grid.EndMinute < req.Grid.StartMinute {
		return validationErrorf("grid.endMinute (%f) precedes grid.startMinute (%f)", req.Grid.EndMinute, req.Grid.StartMinute)
	}
	if err := req.Subject.Validate(); err != nil {
		return configErrorf(err)
	}
	return nil
}

func appendSample(resp Response, reg *registry.Registry, reqSignals map[common.SignalKey]bool, reqAux map[common.AuxKey]bool, state ode.State) {
	for _, def := range reg.Signals {
		if !reqSignals[def.Key] {
			continue
		}
		resp.Series[def.Key] = append(resp.Series[def.Key], state.Signals[def.Key])
	}
	for _, def := range reg.Auxiliary {
		if !reqAux[def.Key] {
			continue
		}
		resp.AuxiliarySeries[def.Key] = append(resp.AuxiliarySeries[def.Key], state.Auxiliary[def.Key])
	}
}

func applyBolusDeposits(state ode.State, compiled []intervention.CompiledIntervention, stepMinutes, minuteOfSim float64) ode.State {
	return ode.ApplyBolusDeposits(state, compiled, stepMinutes, minuteOfSim)
}

// microstepCountFor returns the PK microstep count to use for the grid step
// starting at t: the maximum, over every compiled intervention already
// dosed by t (StartMinute <= t — its compartments keep decaying past
// EndMinute for infusion/continuous modes and past the single bolus
// deposit, so there is no natural "no longer active" cutoff for the
// stiffness check), of the stiffness-guarded count pk.MicrostepCount
// computes from its elimination rate. Michaelis-Menten kinetics use
// Vmax/Km as the pseudo-first-order rate at low concentration, the
// steepest part of the elimination curve.
func microstepCountFor(compiled []intervention.CompiledIntervention, t, dt float64) int {
	n := 1
	for _, ci := range compiled {
		if t < ci.PK.StartMinute {
			continue
		}
		k := ci.PK.Kinetics
		ke := k.Ke
		if k.Kind == pk.MichaelisMenten && k.Km > 0 {
			ke = k.Vmax / k.Km
		}
		if c := pk.MicrostepCount(ke, dt); c > n {
			n = c
		}
	}
	return n
}

func detectBlowUp(reg *registry.Registry, state ode.State) (ErrorKind, common.SignalKey, string, bool) {
	for _, def := range reg.Signals {
		v := state.Signals[def.Key]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNumeric, def.Key, fmt.Sprintf("value is NaN/Inf (%v)", v), true
		}
		limit := genericBlowUpThreshold
		if def.Max != nil && *def.Max > 0 {
			limit = 10 * (*def.Max)
		}
		if math.Abs(v) > limit {
			return ErrNumeric, def.Key, fmt.Sprintf("value %.4f exceeds blow-up threshold %.4f", v, limit), true
		}
	}
	return "", "", "", false
}

func clampState(reg *registry.Registry, state ode.State, minuteOfSim float64) (ode.State, []string) {
	var flags []string
	out := state.Clone()
	for _, def := range reg.Signals {
		v := out.Signals[def.Key]
		clamped := clampValue(v, def.Min, def.Max)
		if clamped != v {
			flags = append(flags, fmt.Sprintf("clamp:%s@%.1f", def.Key, minuteOfSim))
		}
		out.Signals[def.Key] = clamped
	}
	for _, def := range reg.Auxiliary {
		v := out.Auxiliary[def.Key]
		clamped := clampValue(v, def.Min, def.Max)
		if clamped != v {
			flags = append(flags, fmt.Sprintf("clamp:%s@%.1f", def.Key, minuteOfSim))
		}
		out.Auxiliary[def.Key] = clamped
	}
	return out, flags
}

func clampValue(v float64, min, max *float64) float64 {
	if min != nil && v < *min {
		return *min
	}
	if max != nil && v > *max {
		return *max
	}
	return v
}
