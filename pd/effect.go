// Package pd applies pharmacodynamic effects: mapping a PK primitive's
// current plasma concentration through a dose-response function onto its
// target's activity (receptor, transporter, enzyme) or, for direct signal
// targets, onto the signal's production.
package pd

import "github.com/JeffJassky/pyhsim/kernel"

// Mechanism is the pharmacological action a PD effect exerts on its target.
type Mechanism int

const (
	Agonist Mechanism = iota
	Antagonist
	Inhibitor
	PAM // positive allosteric modulator
	NAM // negative allosteric modulator
)

// TargetKind is what category of entity a PD effect's target names.
type TargetKind int

const (
	TargetSignal TargetKind = iota
	TargetAux
	TargetReceptor
	TargetTransporter
	TargetEnzyme
)

// Effect is one compiled PD primitive: a concentration-to-target-effect
// mapping, resolved fresh at every integration step from the owning PK
// primitive's current concentration.
type Effect struct {
	Target           string
	TargetKind       TargetKind
	Mechanism        Mechanism
	IntrinsicEfficacy float64 // 0..1 (or up to ~1.2 for supraphysiologic agonists) for activity targets; for signal/aux targets, a forcing coefficient per unit concentration with no upper bound
	Affinity         float64 // EC50/IC50, same units as the driving concentration
	HillCoefficient  float64 // defaults to 1 if <= 0
}

func (e Effect) hillN() float64 {
	if e.HillCoefficient <= 0 {
		return 1
	}
	return e.HillCoefficient
}

// occupancy is the fraction of target engaged at concentration c, via the
// standard Hill/Emax form with Emax=1 (a pure occupancy fraction).
func (e Effect) occupancy(c float64) float64 {
	return kernel.HillResponse(c, 1.0, e.Affinity, e.hillN())
}

// ActivityMultiplier returns the multiplicative adjustment this effect
// applies to baseline (1.0) activity at concentration c. Only meaningful
// for receptor/transporter/enzyme targets.
func (e Effect) ActivityMultiplier(c float64) float64 {
	occ := e.occupancy(c)
	switch e.Mechanism {
	case Agonist, PAM:
		return 1 + e.IntrinsicEfficacy*occ
	case Antagonist, NAM:
		return 1 - e.IntrinsicEfficacy*occ
	case Inhibitor:
		mult := 1 - e.IntrinsicEfficacy*occ
		if mult < 0 {
			return 0
		}
		return mult
	default:
		return 1
	}
}

// DirectSignalForcing returns the additive contribution this effect adds to
// a signal's or auxiliary's production when TargetKind is TargetSignal or
// TargetAux. Agonist/PAM mechanisms force the target up (e.g. exogenous
// melatonin); Antagonist/NAM mechanisms force it down (e.g. caffeine's
// functional reduction of perceived adenosine pressure). Inhibitor has no
// direct-forcing meaning here — it targets enzymes/transporters instead.
func (e Effect) DirectSignalForcing(c float64) float64 {
	if e.TargetKind != TargetSignal && e.TargetKind != TargetAux {
		return 0
	}
	switch e.Mechanism {
	case Agonist, PAM:
		return e.IntrinsicEfficacy * c
	case Antagonist, NAM:
		return -e.IntrinsicEfficacy * c
	default:
		return 0
	}
}
