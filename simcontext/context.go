// Package simcontext defines the per-step evaluation context threaded
// through setpoint functions, production/clearance transforms, and coupling
// resolution. It sits below the registry and ODE packages so both can
// depend on it without a cycle.
package simcontext

import "github.com/JeffJassky/pyhsim/subject"

// Context is read by setpoint and transform functions. It is a pure,
// immutable snapshot for the instant being evaluated: setpoints never read
// other signal state, only this context — setpoints are pure functions
// of context.
type Context struct {
	MinuteOfSim float64
	// MinuteOfDay is MinuteOfSim mod 1440.
	MinuteOfDay float64
	// CircadianMinuteOfDay equals MinuteOfDay unless a forced oscillator
	// component is driving a phase-shifted internal clock (not implemented
	// in this core; reserved for a future forced-oscillator component).
	CircadianMinuteOfDay float64
	// IsAsleep is derived from the sleep-state predicate over active
	// timeline interventions for the current minute.
	IsAsleep bool

	Subject     subject.Subject
	Physiology  subject.Physiology
	CycleHorm   subject.MenstrualHormones
}

// New builds a Context for minuteOfSim, deriving MinuteOfDay the standard
// way. CircadianMinuteOfDay defaults to MinuteOfDay (no oscillator).
func New(minuteOfSim float64, isAsleep bool, subj subject.Subject, phys subject.Physiology) Context {
	minuteOfDay := minuteOfSim - 1440*float64(int(minuteOfSim/1440))
	if minuteOfDay < 0 {
		minuteOfDay += 1440
	}
	var horm subject.MenstrualHormones
	if subj.Sex.String() == "female" {
		horm = subject.GetMenstrualHormones(subj.CycleDay+minuteOfSim/1440, subj.CycleLengthDays)
	}
	return Context{
		MinuteOfSim:          minuteOfSim,
		MinuteOfDay:          minuteOfDay,
		CircadianMinuteOfDay: minuteOfDay,
		IsAsleep:             isAsleep,
		Subject:              subj,
		Physiology:           phys,
		CycleHorm:            horm,
	}
}
