package intervention

import (
	"github.com/JeffJassky/pyhsim/pd"
	"github.com/JeffJassky/pyhsim/pk"
)

// DefaultCatalog returns the built-in intervention definitions referenced by
// the concrete test scenarios: caffeine, methylphenidate, exogenous
// melatonin, ethanol, hydrocortisone, a high-carbohydrate meal, and
// continuous exercise.
func DefaultCatalog() map[string]Definition {
	defs := []Definition{
		{
			Key: "caffeine", Label: "Caffeine (oral)",
			Pharmacology: Pharmacology{Static: []Primitive{
				{
					PK: PKPrimitive{
						Mode: pk.Bolus,
						Kinetics: pk.Kinetics{
							Kind: pk.OneCompartment,
							Ka:   0.012, Ke: 0.0046, V: 36, Bioavailability: 1.0,
						},
					},
					PD: []PDPrimitive{
						{
							Target: "adenosinePressure", TargetKind: pd.TargetAux,
							Mechanism: pd.Antagonist, IntrinsicEfficacy: 0.6, Affinity: 15, HillCoefficient: 1,
						},
						{
							Target: "ADORA1", TargetKind: pd.TargetReceptor,
							Mechanism: pd.Antagonist, IntrinsicEfficacy: 0.7, Affinity: 10, HillCoefficient: 1,
						},
					},
				},
			}},
		},
		{
			Key: "methylphenidate", Label: "Methylphenidate (oral)",
			Pharmacology: Pharmacology{Static: []Primitive{
				{
					PK: PKPrimitive{
						Mode: pk.Bolus,
						Kinetics: pk.Kinetics{
							Kind: pk.OneCompartment,
							Ka:   0.023, Ke: 0.012, V: 200, Bioavailability: 0.3,
						},
					},
					PD: []PDPrimitive{
						{
							Target: "DAT", TargetKind: pd.TargetTransporter,
							Mechanism: pd.Inhibitor, IntrinsicEfficacy: 0.75, Affinity: 4, HillCoefficient: 1.2,
						},
					},
				},
			}},
		},
		{
			Key: "melatoninSupplement", Label: "Melatonin supplement (oral)",
			Pharmacology: Pharmacology{Static: []Primitive{
				{
					PK: PKPrimitive{
						Mode: pk.Bolus,
						Kinetics: pk.Kinetics{
							Kind: pk.OneCompartment,
							Ka:   0.1, Ke: 0.2, V: 35, Bioavailability: 0.15,
						},
					},
					PD: []PDPrimitive{
						{
							Target: "melatonin", TargetKind: pd.TargetSignal,
							Mechanism: pd.Agonist, IntrinsicEfficacy: 0.8, Affinity: 1, HillCoefficient: 1,
						},
					},
				},
			}},
		},
		{
			Key: "ethanol", Label: "Ethanol (oral)",
			Pharmacology: Pharmacology{Static: []Primitive{
				{
					PK: PKPrimitive{
						Mode: pk.Bolus,
						Kinetics: pk.Kinetics{
							Kind: pk.MichaelisMenten,
							Vmax: 0.15, Km: 1.0, V: 40, Bioavailability: 0.9,
						},
					},
					PD: []PDPrimitive{
						{Target: "gaba", TargetKind: pd.TargetSignal, Mechanism: pd.Agonist, IntrinsicEfficacy: 0.4, Affinity: 1, HillCoefficient: 1},
						{Target: "glutamate", TargetKind: pd.TargetSignal, Mechanism: pd.Antagonist, IntrinsicEfficacy: 0.3, Affinity: 1, HillCoefficient: 1},
					},
				},
			}},
		},
		{
			Key: "highCarbMeal", Label: "High-carbohydrate meal",
			Pharmacology: Pharmacology{Static: []Primitive{
				{
					PK: PKPrimitive{
						Mode: pk.Bolus,
						Kinetics: pk.Kinetics{
							Kind: pk.OneCompartment,
							Ka:   0.035, Ke: 0.02, V: 1, Bioavailability: 1.0,
						},
					},
					PD: []PDPrimitive{
						{Target: "glucose", TargetKind: pd.TargetSignal, Mechanism: pd.Agonist, IntrinsicEfficacy: 0.12, Affinity: 1, HillCoefficient: 1},
					},
				},
			}},
		},
		{
			Key: "hydrocortisone", Label: "Hydrocortisone (oral)",
			Pharmacology: Pharmacology{Static: []Primitive{
				{
					PK: PKPrimitive{
						Mode: pk.Bolus,
						Kinetics: pk.Kinetics{
							Kind: pk.TwoCompartment,
							Ka:   0.04, Ke: 0.01, V: 30, K12: 0.03, K21: 0.015, Bioavailability: 0.96,
						},
					},
					PD: []PDPrimitive{
						{Target: "cortisol", TargetKind: pd.TargetSignal, Mechanism: pd.Agonist, IntrinsicEfficacy: 12, Affinity: 1, HillCoefficient: 1},
					},
				},
			}},
		},
		{
			Key: "exercise", Label: "Continuous aerobic exercise",
			Pharmacology: Pharmacology{Static: []Primitive{
				{
					PK: PKPrimitive{
						Mode: pk.Continuous,
						Kinetics: pk.Kinetics{
							Kind: pk.OneCompartment,
							Ka:   0.2, Ke: 0.15, V: 1, Bioavailability: 1.0,
						},
					},
					PD: []PDPrimitive{
						{Target: "norepinephrine", TargetKind: pd.TargetSignal, Mechanism: pd.Agonist, IntrinsicEfficacy: 300, Affinity: 1, HillCoefficient: 1},
						{Target: "epinephrine", TargetKind: pd.TargetSignal, Mechanism: pd.Agonist, IntrinsicEfficacy: 60, Affinity: 1, HillCoefficient: 1},
					},
				},
			}},
		},
	}

	out := make(map[string]Definition, len(defs))
	for _, d := range defs {
		out[d.Key] = d
	}
	return out
}
