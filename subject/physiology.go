package subject

import (
	"math"

	"github.com/JeffJassky/pyhsim/common"
)

// Physiology holds the quantities derived once from a Subject at the start
// of a run: volume of distribution inputs, clearance scalars, and
// sex-hormone baselines. These never change during integration.
type Physiology struct {
	TotalBodyWaterL   float64 // liters, used as a default volume of distribution basis
	LeanBodyMassKg    float64
	MetabolicCapacity float64 // dimensionless scalar, 1.0 = reference adult
	RenalClearance    float64 // dimensionless scalar, 1.0 = reference adult
	HepaticClearance  float64 // dimensionless scalar, 1.0 = reference adult
	TestosteroneFloorFactor float64 // fraction of youth baseline, applies to male subjects
}

// DerivePhysiology computes the static, subject-dependent quantities the PK
// and signal-registry layers consume. Total body water uses the 0.6 * mass
// rule of thumb; lean body mass uses the classic Boer formulas; renal and
// hepatic clearance scalars decline gently with age past 40.
func DerivePhysiology(s Subject) Physiology {
	tbw := s.WeightKg * 0.6

	var lbm float64
	if s.Sex == common.Female {
		lbm = 0.252*s.WeightKg + 0.473*s.HeightCm - 48.3
	} else {
		lbm = 0.407*s.WeightKg + 0.267*s.HeightCm - 19.2
	}
	if lbm <= 0 {
		lbm = s.WeightKg * 0.7
	}

	ageOver40 := math.Max(0, s.AgeYears-40)
	renal := 1.0 - 0.005*ageOver40
	hepatic := 1.0 - 0.003*ageOver40
	renal = clamp(renal, 0.4, 1.0)
	hepatic = clamp(hepatic, 0.4, 1.0)

	metabolic := 1.0
	if s.Sex == common.Male {
		metabolic = 1.0 + 0.1*(lbm/70.0-1.0)
	} else {
		metabolic = 1.0 + 0.1*(lbm/50.0-1.0)
	}

	floor := 1.0
	if s.Sex == common.Male {
		yearsOver30 := math.Max(0, s.AgeYears-30)
		floor = clamp(1.0-0.01*yearsOver30, 0.5, 1.0)
	}

	return Physiology{
		TotalBodyWaterL:         tbw,
		LeanBodyMassKg:          lbm,
		MetabolicCapacity:       metabolic,
		RenalClearance:          renal,
		HepaticClearance:        hepatic,
		TestosteroneFloorFactor: floor,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MenstrualHormones holds normalized [0,1] hormone curves for a given cycle
// day; signal setpoints scale these into physiological units.
type MenstrualHormones struct {
	Estrogen     float64
	Progesterone float64
	LH           float64
	FSH          float64
}

// GetMenstrualHormones returns normalized hormone levels for the given
// 1-indexed cycle day and cycle length, modeling a idealized 28-day-style
// cycle rescaled to cycleLengthDays. Follicular phase (days 1 to ~ovulation)
// features rising estrogen and FSH; ovulation produces an LH surge; the
// luteal phase features a progesterone plateau that falls before menses.
func GetMenstrualHormones(cycleDay, cycleLengthDays float64) MenstrualHormones {
	if cycleLengthDays <= 0 {
		cycleLengthDays = 28
	}
	frac := math.Mod(cycleDay-1, cycleLengthDays) / cycleLengthDays // [0,1)
	ovulationFrac := 14.0 / 28.0

	// Estrogen: rises through the follicular phase, peaks just before
	// ovulation, dips, then a smaller luteal-phase secondary rise.
	estrogen := 0.3 + 0.7*math.Exp(-40*(frac-ovulationFrac)*(frac-ovulationFrac))
	estrogen += 0.25 * math.Exp(-30*(frac-0.75)*(frac-0.75))
	estrogen = clamp(estrogen, 0, 1)

	// LH: sharp surge at ovulation.
	lh := math.Exp(-300 * (frac - ovulationFrac) * (frac - ovulationFrac))

	// FSH: elevated early follicular, modest mid-cycle surge alongside LH.
	fsh := 0.4*math.Exp(-60*frac*frac) + 0.5*math.Exp(-200*(frac-ovulationFrac)*(frac-ovulationFrac))
	fsh = clamp(fsh, 0, 1)

	// Progesterone: near zero until ovulation, plateaus through the luteal
	// phase, falls before the next cycle.
	var progesterone float64
	if frac > ovulationFrac {
		lutealFrac := (frac - ovulationFrac) / (1 - ovulationFrac) // 0..1 across luteal phase
		progesterone = math.Sin(math.Pi * lutealFrac)
		if progesterone < 0 {
			progesterone = 0
		}
	}

	return MenstrualHormones{
		Estrogen:     estrogen,
		Progesterone: progesterone,
		LH:           lh,
		FSH:          fsh,
	}
}
