package monitor

// DefaultDefinitions returns a small built-in monitor set covering the
// signals the concrete test scenarios care about: a cortisol awakening
// spike, a melatonin onset crossing, sustained glucose excursions, and
// rapid heart-rate changes.
// Callers assembling a scenario are expected to supply their own
// definitions when these defaults don't fit; this catalog exists so
// `pyhsim simulate` has something to report out of the box.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			ID: "cortisol-awakening-spike", Signal: "cortisol", Kind: Threshold,
			ThresholdValue: 15, Direction: CrossAbove,
			Outcome: OutcomeWin, Message: "cortisol awakening response detected",
		},
		{
			ID: "melatonin-onset", Signal: "melatonin", Kind: Threshold,
			ThresholdValue: 10, Direction: CrossAbove,
			Outcome: OutcomeWin, Message: "evening melatonin onset detected",
		},
		{
			ID: "sustained-hyperglycemia", Signal: "glucose", Kind: RangeResidence,
			RangeLow: 140, RangeHigh: 1e9, Inside: true, MinDurationMinutes: 120,
			Outcome: OutcomeWarning, Message: "glucose elevated above 140 mg/dL for 2+ hours",
		},
		{
			ID: "rapid-heart-rate-rise", Signal: "heartRate", Kind: Slope,
			SlopeMagnitude: 2.0, WindowMinutes: 5,
			Outcome: OutcomeWarning, Message: "heart rate changing faster than 2 bpm/min",
		},
	}
}
