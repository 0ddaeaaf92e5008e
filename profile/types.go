// Package profile applies enabled clinical conditions to baseline
// receptor/transporter/enzyme activity maps and signal setpoint shifts. The
// composition is additive across conditions and scaled by each condition's
// severity, the same additive-accumulation shape synaptic weight updates
// use, generalized from a single scalar weight to three parallel activity
// maps plus a setpoint-shift map. Composed values are not clamped.
package profile

import "github.com/JeffJassky/pyhsim/common"

// ReceptorModifier shifts a receptor's density and/or sensitivity. ParamKey,
// if set, lets a condition's Params override the delta at composition time
// (e.g. a condition with a custom receptor-density override); the override
// replaces both DensityDelta and SensitivityDelta.
type ReceptorModifier struct {
	ReceptorKey      common.ReceptorKey
	DensityDelta     float64
	SensitivityDelta float64
	ParamKey         string
}

// TransporterModifier shifts a transporter's activity.
type TransporterModifier struct {
	TransporterKey common.TransporterKey
	ActivityDelta  float64
	ParamKey       string
}

// EnzymeModifier shifts an enzyme's activity.
type EnzymeModifier struct {
	EnzymeKey     common.EnzymeKey
	ActivityDelta float64
	ParamKey      string
}

// SignalModifier shifts a signal's setpoint by a percentage (e.g. -0.15
// lowers the setpoint 15%), applied multiplicatively at composition.
type SignalModifier struct {
	SignalKey    common.SignalKey
	PercentDelta float64
	ParamKey     string
}

// Definition is one clinical condition's full modifier set. Definitions are
// looked up by Condition.Key on a subject.
type Definition struct {
	Key                 string
	Label               string
	ReceptorModifiers    []ReceptorModifier
	TransporterModifiers []TransporterModifier
	EnzymeModifiers      []EnzymeModifier
	SignalModifiers      []SignalModifier
}

// ActivityMaps holds the three composed, per-run activity maps. Every
// lookup defaults to 1.0 (no effect) for keys with no applicable modifier.
type ActivityMaps struct {
	Receptor    map[common.ReceptorKey]float64
	Transporter map[common.TransporterKey]float64
	Enzyme      map[common.EnzymeKey]float64
}

func newActivityMaps() ActivityMaps {
	return ActivityMaps{
		Receptor:    make(map[common.ReceptorKey]float64),
		Transporter: make(map[common.TransporterKey]float64),
		Enzyme:      make(map[common.EnzymeKey]float64),
	}
}

// TransporterActivity returns the composed activity for key, defaulting to 1.0.
func (m ActivityMaps) TransporterActivity(key common.TransporterKey) float64 {
	if v, ok := m.Transporter[key]; ok {
		return v
	}
	return 1.0
}

// EnzymeActivity returns the composed activity for key, defaulting to 1.0.
func (m ActivityMaps) EnzymeActivity(key common.EnzymeKey) float64 {
	if v, ok := m.Enzyme[key]; ok {
		return v
	}
	return 1.0
}

// ReceptorActivity returns the composed density-scaled activity for key,
// defaulting to 1.0.
func (m ActivityMaps) ReceptorActivity(key common.ReceptorKey) float64 {
	if v, ok := m.Receptor[key]; ok {
		return v
	}
	return 1.0
}
