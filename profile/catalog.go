package profile

// DefaultCatalog returns the built-in clinical condition definitions. Keys
// match the Condition.Key values a Subject enables.
func DefaultCatalog() map[string]Definition {
	defs := []Definition{
		{
			Key: "adhd", Label: "ADHD-like dopaminergic profile",
			TransporterModifiers: []TransporterModifier{
				{TransporterKey: "DAT", ActivityDelta: 0.9},
			},
			ReceptorModifiers: []ReceptorModifier{
				{ReceptorKey: "D2", SensitivityDelta: -0.3},
			},
			SignalModifiers: []SignalModifier{
				{SignalKey: "dopamine", PercentDelta: -0.1},
			},
		},
		{
			Key: "hypothyroid", Label: "Hypothyroidism",
			EnzymeModifiers: []EnzymeModifier{
				{EnzymeKey: "COMT", ActivityDelta: -0.2},
			},
			SignalModifiers: []SignalModifier{
				{SignalKey: "bodyTemperature", PercentDelta: -0.01},
				{SignalKey: "heartRate", PercentDelta: -0.08},
			},
		},
		{
			Key: "insulinResistance", Label: "Insulin resistance",
			ReceptorModifiers: []ReceptorModifier{
				{ReceptorKey: "InsulinR", DensityDelta: -0.5},
			},
			SignalModifiers: []SignalModifier{
				{SignalKey: "glucose", PercentDelta: 0.15},
				{SignalKey: "insulin", PercentDelta: 0.3},
			},
		},
		{
			Key: "chronicStress", Label: "Chronic HPA-axis dysregulation",
			ReceptorModifiers: []ReceptorModifier{
				{ReceptorKey: "GR", DensityDelta: -0.4, SensitivityDelta: -0.2},
			},
			SignalModifiers: []SignalModifier{
				{SignalKey: "cortisol", PercentDelta: 0.25},
				{SignalKey: "norepinephrine", PercentDelta: 0.1},
			},
		},
		{
			Key: "perimenopause", Label: "Perimenopausal hormone decline",
			SignalModifiers: []SignalModifier{
				{SignalKey: "estrogen", PercentDelta: -0.4},
				{SignalKey: "progesterone", PercentDelta: -0.6},
				{SignalKey: "fsh", PercentDelta: 0.8},
			},
		},
	}

	out := make(map[string]Definition, len(defs))
	for _, d := range defs {
		out[d.Key] = d
	}
	return out
}
