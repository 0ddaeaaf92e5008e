package registry

import (
	"math"

	"github.com/JeffJassky/pyhsim/kernel"
	"github.com/JeffJassky/pyhsim/simcontext"
)

// phaseOf converts a context's circadian minute-of-day into a phase angle.
func phaseOf(ctx simcontext.Context) float64 {
	return kernel.MinuteToPhase(ctx.CircadianMinuteOfDay)
}

// cortisolSetpoint models the cortisol awakening response: a von Mises bump
// centered at 08:00 riding on a low overnight floor.
func cortisolSetpoint(ctx simcontext.Context) float64 {
	const trough, peak = 3.5, 16.0
	bump := kernel.GaussianPhase(phaseOf(ctx), kernel.HourToPhase(8), 2.0)
	return trough + (peak-trough)*bump
}

// melatoninSetpoint is near-zero through the day and ramps up across a
// half-cosine window spanning 21:00-06:00 (wraps midnight).
func melatoninSetpoint(ctx simcontext.Context) float64 {
	const dayFloor, nightPeak = 2.0, 40.0
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(21), kernel.HourToPhase(6), kernel.HourToPhase(1.5))
	return dayFloor + (nightPeak-dayFloor)*w
}

// dopamineSetpoint is a mild tonic baseline with a small daytime elevation;
// the bulk of dopamine's dynamics come from vesicle-release production and
// DAT-mediated clearance rather than the setpoint itself.
func dopamineSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(7), kernel.HourToPhase(22), kernel.HourToPhase(2))
	return 8.0 + 3.0*w
}

func norepinephrineSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(6), kernel.HourToPhase(21), kernel.HourToPhase(2))
	return 150.0 + 100.0*w
}

func epinephrineSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(6), kernel.HourToPhase(21), kernel.HourToPhase(2))
	return 30.0 + 20.0*w
}

func serotoninSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(8), kernel.HourToPhase(20), kernel.HourToPhase(2))
	return 80.0 + 30.0*w
}

// glucoseSetpoint holds a fasting plateau; meal-driven excursions enter via
// production terms and PD direct forcing, not the setpoint.
func glucoseSetpoint(ctx simcontext.Context) float64 {
	return 90.0
}

func insulinSetpoint(ctx simcontext.Context) float64 {
	return 8.0
}

func glucagonSetpoint(ctx simcontext.Context) float64 {
	return 90.0
}

// testosteroneSetpoint is sex-dependent: male values ride a morning-peaked
// circadian curve scaled by the age-derived floor factor; female values are
// a flat, much lower baseline.
func testosteroneSetpoint(ctx simcontext.Context) float64 {
	if ctx.Subject.Sex.String() != "male" {
		return 35.0
	}
	bump := kernel.GaussianPhase(phaseOf(ctx), kernel.HourToPhase(7), 1.2)
	base := 450.0 + 150.0*bump
	return base * ctx.Physiology.TestosteroneFloorFactor
}

func estrogenSetpoint(ctx simcontext.Context) float64 {
	if ctx.Subject.Sex.String() != "female" {
		return 20.0
	}
	return 40.0 + 160.0*ctx.CycleHorm.Estrogen
}

func progesteroneSetpoint(ctx simcontext.Context) float64 {
	if ctx.Subject.Sex.String() != "female" {
		return 0.3
	}
	return 0.5 + 14.0*ctx.CycleHorm.Progesterone
}

func lhSetpoint(ctx simcontext.Context) float64 {
	if ctx.Subject.Sex.String() != "female" {
		return 4.0
	}
	return 3.0 + 40.0*ctx.CycleHorm.LH
}

func fshSetpoint(ctx simcontext.Context) float64 {
	if ctx.Subject.Sex.String() != "female" {
		return 3.0
	}
	return 3.0 + 12.0*ctx.CycleHorm.FSH
}

// growthHormoneSetpoint pulses during the sleep window, its dominant
// secretory episode in real physiology.
func growthHormoneSetpoint(ctx simcontext.Context) float64 {
	base := 0.5
	if ctx.IsAsleep {
		base += 4.0
	}
	return base
}

// ghrelinSetpoint rises before conventional mealtimes (07:00, 12:00, 18:30)
// and falls after, modeled as three narrow Gaussian bumps on the circle.
func ghrelinSetpoint(ctx simcontext.Context) float64 {
	p := phaseOf(ctx)
	bump := math.Max(kernel.GaussianPhase(p, kernel.HourToPhase(7), 6),
		math.Max(kernel.GaussianPhase(p, kernel.HourToPhase(12), 6), kernel.GaussianPhase(p, kernel.HourToPhase(18.5), 6)))
	return 400.0 + 400.0*bump
}

func leptinSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(22), kernel.HourToPhase(6), kernel.HourToPhase(2))
	return 10.0 + 6.0*w
}

func heartRateSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(7), kernel.HourToPhase(22), kernel.HourToPhase(2))
	if ctx.IsAsleep {
		return 52.0
	}
	return 62.0 + 8.0*w
}

func systolicBPSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(7), kernel.HourToPhase(22), kernel.HourToPhase(2))
	if ctx.IsAsleep {
		return 108.0
	}
	return 115.0 + 8.0*w
}

// bodyTemperatureSetpoint troughs around 04:30-05:00 and peaks in the
// evening, the canonical circadian core-temperature curve.
func bodyTemperatureSetpoint(ctx simcontext.Context) float64 {
	bump := kernel.GaussianPhase(phaseOf(ctx), kernel.HourToPhase(18), 1.5)
	return 36.4 + 0.7*bump
}

func gabaSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(21), kernel.HourToPhase(7), kernel.HourToPhase(2))
	return 40.0 + 30.0*w
}

func glutamateSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(7), kernel.HourToPhase(21), kernel.HourToPhase(2))
	return 50.0 + 25.0*w
}

func orexinSetpoint(ctx simcontext.Context) float64 {
	if ctx.IsAsleep {
		return 10.0
	}
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(7), kernel.HourToPhase(22), kernel.HourToPhase(2))
	return 15.0 + 35.0*w
}

func acthSetpoint(ctx simcontext.Context) float64 {
	bump := kernel.GaussianPhase(phaseOf(ctx), kernel.HourToPhase(7.5), 2.2)
	return 15.0 + 45.0*bump
}

func tshSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(22), kernel.HourToPhase(4), kernel.HourToPhase(1.5))
	return 1.5 + 1.2*w
}

func thyroxineSetpoint(ctx simcontext.Context) float64 {
	return 8.0
}

func triiodothyronineSetpoint(ctx simcontext.Context) float64 {
	return 120.0
}

// prolactinSetpoint pulses during the sleep window, like growth hormone.
func prolactinSetpoint(ctx simcontext.Context) float64 {
	base := 8.0
	if ctx.IsAsleep {
		base += 12.0
	}
	return base
}

func vasopressinSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(22), kernel.HourToPhase(6), kernel.HourToPhase(2))
	return 2.0 + 1.0*w
}

func aldosteroneSetpoint(ctx simcontext.Context) float64 {
	bump := kernel.GaussianPhase(phaseOf(ctx), kernel.HourToPhase(8), 2.0)
	return 6.0 + 4.0*bump
}

func histamineSetpoint(ctx simcontext.Context) float64 {
	return 1.0
}

func acetylcholineSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(7), kernel.HourToPhase(22), kernel.HourToPhase(2))
	return 10.0 + 5.0*w
}

func betaEndorphinSetpoint(ctx simcontext.Context) float64 {
	return 10.0
}

func diastolicBPSetpoint(ctx simcontext.Context) float64 {
	w := kernel.WindowPhase(phaseOf(ctx), kernel.HourToPhase(7), kernel.HourToPhase(22), kernel.HourToPhase(2))
	if ctx.IsAsleep {
		return 65.0
	}
	return 72.0 + 6.0*w
}

func respiratoryRateSetpoint(ctx simcontext.Context) float64 {
	if ctx.IsAsleep {
		return 12.0
	}
	return 15.0
}

func adiponectinSetpoint(ctx simcontext.Context) float64 {
	return 9.0
}

func ldlCholesterolSetpoint(ctx simcontext.Context) float64 {
	return 100.0
}

func hdlCholesterolSetpoint(ctx simcontext.Context) float64 {
	return 55.0
}

func triglyceridesSetpoint(ctx simcontext.Context) float64 {
	return 110.0
}

func crpSetpoint(ctx simcontext.Context) float64 {
	return 0.8
}

// alertnessIndexSetpoint has no intrinsic target of its own; it is driven
// almost entirely by its couplings to orexin, adenosine pressure, and GABA,
// so the setpoint just anchors a mid-scale resting value.
func alertnessIndexSetpoint(ctx simcontext.Context) float64 {
	return 50.0
}
