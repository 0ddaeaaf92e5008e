package profile

import "github.com/JeffJassky/pyhsim/common"

// Composer composes a subject's enabled conditions against a catalog of
// Definitions into per-run activity maps and setpoint shifts. Composition
// runs once per simulation (the subject's condition list is static for the
// run's duration) unless the caller changes the subject mid-run.
type Composer struct {
	catalog map[string]Definition
}

// NewComposer builds a Composer over catalog.
func NewComposer(catalog map[string]Definition) *Composer {
	return &Composer{catalog: catalog}
}

// Result holds the composed activity maps plus the setpoint percentage
// shifts and receptor-driven signal bias the ODE assembler folds into each
// signal's effective setpoint.
type Result struct {
	Activity          ActivityMaps
	SetpointShift     map[common.SignalKey]float64 // multiplicative, e.g. 0.15 = +15%
	ReceptorSignalBias map[common.SignalKey]float64 // additive production bias from receptor density/sensitivity deltas
}

// paramOverride looks up paramKey in a condition's Params, falling back to
// fallback when absent or the condition carries no override.
func paramOverride(c map[string]float64, paramKey string, fallback float64) float64 {
	if paramKey == "" {
		return fallback
	}
	if v, ok := c[paramKey]; ok {
		return v
	}
	return fallback
}

// Compose walks conditions, accumulating additive deltas scaled by severity
// into the three activity maps (baseline 1.0 + sum of severity*delta),
// summing setpoint percentage shifts, and deriving a receptor-driven
// production bias by combining each receptor's density and sensitivity
// deltas through ReceptorSignalMap / ReceptorSensitivityGain.
func (c *Composer) Compose(conditions []ConditionRef) Result {
	res := Result{
		Activity:           newActivityMaps(),
		SetpointShift:      make(map[common.SignalKey]float64),
		ReceptorSignalBias: make(map[common.SignalKey]float64),
	}

	receptorDensityDelta := make(map[common.ReceptorKey]float64)
	receptorSensitivityDelta := make(map[common.ReceptorKey]float64)

	for _, cond := range conditions {
		if cond.Severity <= 0 {
			continue
		}
		def, ok := c.catalog[cond.Key]
		if !ok {
			continue
		}
		for _, m := range def.ReceptorModifiers {
			density := paramOverride(cond.Params, m.ParamKey, m.DensityDelta)
			sensitivity := paramOverride(cond.Params, m.ParamKey, m.SensitivityDelta)
			receptorDensityDelta[m.ReceptorKey] += cond.Severity * density
			receptorSensitivityDelta[m.ReceptorKey] += cond.Severity * sensitivity
		}
		for _, m := range def.TransporterModifiers {
			delta := paramOverride(cond.Params, m.ParamKey, m.ActivityDelta)
			res.Activity.Transporter[m.TransporterKey] += cond.Severity * delta
		}
		for _, m := range def.EnzymeModifiers {
			delta := paramOverride(cond.Params, m.ParamKey, m.ActivityDelta)
			res.Activity.Enzyme[m.EnzymeKey] += cond.Severity * delta
		}
		for _, m := range def.SignalModifiers {
			delta := paramOverride(cond.Params, m.ParamKey, m.PercentDelta)
			res.SetpointShift[m.SignalKey] += cond.Severity * delta
		}
	}

	// baseline 1.0 plus accumulated deltas, for every receptor/transporter/
	// enzyme key touched by any enabled condition.
	for k, delta := range receptorDensityDelta {
		res.Activity.Receptor[k] = 1.0 + delta
	}
	for k := range res.Activity.Transporter {
		res.Activity.Transporter[k] = 1.0 + res.Activity.Transporter[k]
	}
	for k := range res.Activity.Enzyme {
		res.Activity.Enzyme[k] = 1.0 + res.Activity.Enzyme[k]
	}

	for receptor, densityDelta := range receptorDensityDelta {
		gain := ReceptorSensitivityGain[receptor]
		sensitivityDelta := receptorSensitivityDelta[receptor]
		for _, edge := range ReceptorSignalMap[receptor] {
			res.ReceptorSignalBias[edge.Signal] += edge.GainPerDensity * gain * (densityDelta + sensitivityDelta)
		}
	}

	return res
}

// ConditionRef is the minimal view of a subject.Condition the composer
// needs; kept local to avoid an import cycle with the subject package.
type ConditionRef struct {
	Key      string
	Severity float64
	Params   map[string]float64
}
