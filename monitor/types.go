// Package monitor scans a completed run's output series for threshold
// crossings, slope events, and range-residence patterns, producing a
// sorted list of Results. Monitors are a pure post-hoc read over
// already-integrated series: they never feed back into the integrator,
// the same one-way relationship crownet's log exporter has to the
// simulation it reads from.
package monitor

import "github.com/JeffJassky/pyhsim/common"

// Kind distinguishes the three scan patterns a Definition describes.
type Kind int

const (
	Threshold Kind = iota
	Slope
	RangeResidence
)

// Direction is the crossing direction a Threshold definition watches for.
type Direction int

const (
	CrossAbove Direction = iota
	CrossBelow
)

// Outcome is the severity a triggered Result carries.
type Outcome string

const (
	OutcomeWin      Outcome = "win"
	OutcomeWarning  Outcome = "warning"
	OutcomeCritical Outcome = "critical"
)

// severityRank orders Outcome values for Result sorting, most severe first.
func (o Outcome) severityRank() int {
	switch o {
	case OutcomeCritical:
		return 0
	case OutcomeWarning:
		return 1
	default:
		return 2
	}
}

// Definition is one monitor's declarative pattern. Only the fields
// relevant to Kind are consulted.
type Definition struct {
	ID     string
	Signal common.SignalKey
	Kind   Kind

	// Threshold
	ThresholdValue float64
	Direction      Direction

	// Slope: a finite-difference magnitude over WindowMinutes exceeding
	// SlopeMagnitude (signal units per minute) triggers.
	SlopeMagnitude float64

	// RangeResidence: the signal must stay inside (Inside=true) or
	// outside (Inside=false) [RangeLow,RangeHigh] for at least
	// MinDurationMinutes of contiguous grid points.
	RangeLow, RangeHigh float64
	Inside              bool
	MinDurationMinutes  float64

	// WindowMinutes restricts Threshold/Slope/RangeResidence scanning to
	// [WindowStartMinute, WindowEndMinute] of simulation time; zero values
	// on both mean "the whole run".
	WindowStartMinute float64
	WindowEndMinute   float64
	WindowMinutes     float64

	Outcome Outcome
	Message string
}

// Result is one triggered monitor hit.
type Result struct {
	ID               string
	Signal           common.SignalKey
	DetectedAtMinute float64
	TriggerValue     float64
	Outcome          Outcome
	Message          string
}
