// Package subject models the simulated individual: demographics, enabled
// clinical conditions, and the physiological quantities derived from them
// (volume of distribution, clearance scalars, cycle-day hormone levels).
// Everything here is a pure function of its inputs — no package-level
// mutable state, so a Subject can be shared freely across concurrent runs.
package subject

import (
	"fmt"

	"github.com/JeffJassky/pyhsim/common"
)

// Condition is an enabled clinical condition on a Subject. Severity is
// conventionally in [0,1]; Params carries optional sub-parameters a
// Profile definition may consult (e.g. a specific receptor's extra gain).
type Condition struct {
	Key      string
	Severity float64
	Params   map[string]float64
}

// Subject captures the demographics and enabled conditions driving the
// simulation's static, once-per-run derived quantities.
type Subject struct {
	Sex             common.Sex
	AgeYears        float64
	WeightKg        float64
	HeightCm        float64
	CycleLengthDays float64 // only meaningful when Sex == Female
	CycleDay        float64 // 1-indexed day within the current cycle
	Conditions      []Condition
}

// Validate checks for configuration contradictions that the core refuses to
// simulate (surfaced by simulate.Run as an ErrConfig SimError before any
// integration work begins).
func (s Subject) Validate() error {
	if s.WeightKg <= 0 {
		return fmt.Errorf("subject: weightKg must be positive, got %f", s.WeightKg)
	}
	if s.HeightCm <= 0 {
		return fmt.Errorf("subject: heightCm must be positive, got %f", s.HeightCm)
	}
	if s.AgeYears < 0 {
		return fmt.Errorf("subject: ageYears must be non-negative, got %f", s.AgeYears)
	}
	if s.Sex == common.Male && (s.CycleDay != 0 || s.CycleLengthDays != 0) {
		return fmt.Errorf("subject: cycleDay/cycleLengthDays set on a male subject")
	}
	if s.Sex == common.Female {
		if s.CycleLengthDays <= 0 {
			return fmt.Errorf("subject: cycleLengthDays must be positive for a female subject, got %f", s.CycleLengthDays)
		}
		if s.CycleDay < 1 || s.CycleDay > s.CycleLengthDays {
			return fmt.Errorf("subject: cycleDay (%f) out of range [1, %f]", s.CycleDay, s.CycleLengthDays)
		}
	}
	for _, c := range s.Conditions {
		if c.Severity < 0 || c.Severity > 1 {
			return fmt.Errorf("subject: condition %q severity %f out of [0,1]", c.Key, c.Severity)
		}
	}
	return nil
}

// ConditionSeverity returns the severity of an enabled condition, or 0 if
// the condition is not present (equivalent to "disabled").
func (s Subject) ConditionSeverity(key string) float64 {
	for _, c := range s.Conditions {
		if c.Key == key {
			return c.Severity
		}
	}
	return 0
}
