package profile

import "github.com/JeffJassky/pyhsim/common"

// SignalGain is one (signal, gainPerDensity) edge in RECEPTOR_SIGNAL_MAP:
// a unit of receptor density delta contributes GainPerDensity to the named
// signal's production, scaled again by RECEPTOR_SENSITIVITY_GAIN.
type SignalGain struct {
	Signal         common.SignalKey
	GainPerDensity float64
}

// ReceptorSignalMap is the static graph from receptor key to the signals its
// density influences. Grounded on the registry's own production terms: a
// receptor's density delta nudges the same signal its activity multiplier
// already gates, so profile effects and PD effects land on the same target.
var ReceptorSignalMap = map[common.ReceptorKey][]SignalGain{
	"D2":      {{Signal: "dopamine", GainPerDensity: 0.4}},
	"5HT1A":   {{Signal: "serotonin", GainPerDensity: 0.3}},
	"GR":      {{Signal: "cortisol", GainPerDensity: -0.2}},
	"Beta1":   {{Signal: "heartRate", GainPerDensity: 0.15}},
	"Orexin1": {{Signal: "orexin", GainPerDensity: 0.5}},
	"ADORA1":  {{Signal: "gaba", GainPerDensity: 0.25}},
}

// ReceptorSensitivityGain scales a receptor's SensitivityDelta into an
// additional multiplier on top of its density-driven signal gain — distinct
// physiological levers (how many receptors vs. how responsive each one is).
var ReceptorSensitivityGain = map[common.ReceptorKey]float64{
	"D2":      1.0,
	"5HT1A":   0.8,
	"GR":      1.2,
	"Beta1":   1.0,
	"Orexin1": 0.9,
	"ADORA1":  1.0,
}
