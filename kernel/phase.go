// Package kernel provides the small, dependency-free numerical primitives
// the rest of the core is built on: phase/angle helpers for circadian and
// cycle-day modulation, Hill-family response curves for dose-response and
// receptor occupancy, and a generic fixed-step RK4 integrator.
package kernel

import "math"

const fullTurn = 2 * math.Pi

// MinuteToPhase maps a minute-of-day value (conventionally in [0,1440)) onto
// the unit circle, so that circadian functions are continuous across
// midnight. Values outside [0,1440) are accepted and wrap naturally.
func MinuteToPhase(minuteOfDay float64) float64 {
	return (minuteOfDay / 1440.0) * fullTurn
}

// HourToPhase maps an hour-of-day value (in [0,24)) onto the unit circle.
func HourToPhase(hourOfDay float64) float64 {
	return (hourOfDay / 24.0) * fullTurn
}

// circularDistance returns the shortest signed distance from a to b on the
// circle, in (-pi, pi].
func circularDistance(a, b float64) float64 {
	d := math.Mod(b-a, fullTurn)
	if d > math.Pi {
		d -= fullTurn
	} else if d < -math.Pi {
		d += fullTurn
	}
	return d
}

// GaussianPhase evaluates a von Mises-shaped bump on the circle, peaking at
// 1.0 when theta equals centerTheta. kappa controls concentration: larger
// kappa gives a narrower peak.
func GaussianPhase(theta, centerTheta, kappa float64) float64 {
	d := circularDistance(centerTheta, theta)
	return math.Exp(kappa * (math.Cos(d) - 1))
}

// WindowPhase returns a value in [0,1] that is 1 inside the (possibly
// wrap-around) window [startTheta, endTheta) and 0 outside it, with a
// half-cosine ramp of angular width `transition` at each edge: the value is
// 0 exactly at startTheta and endTheta, rises to 1 over the first
// transition/2 of the window, stays at 1 through the middle, and falls back
// to 0 over the last transition/2. Wrap-around (the window crosses the
// theta=0/2pi seam) is handled automatically since all positions are
// measured modulo a full turn; it is in effect whenever, after normalizing,
// endTheta's position relative to startTheta requires going the "long way"
// around (i.e. endTheta < startTheta before normalization).
func WindowPhase(theta, startTheta, endTheta, transition float64) float64 {
	norm := func(x float64) float64 {
		x = math.Mod(x, fullTurn)
		if x < 0 {
			x += fullTurn
		}
		return x
	}
	th := norm(theta)
	start := norm(startTheta)
	end := norm(endTheta)

	span := end - start
	if span <= 0 {
		span += fullTurn
	}
	if span <= 0 {
		return 0
	}

	pos := th - start
	if pos < 0 {
		pos += fullTurn
	}
	if pos >= span {
		return 0
	}

	if transition <= 0 {
		return 1
	}
	half := transition / 2
	if half > span/2 {
		half = span / 2
	}
	if pos < half {
		frac := pos / half
		return 0.5 - 0.5*math.Cos(math.Pi*frac)
	}
	if pos > span-half {
		frac := (span - pos) / half
		return 0.5 - 0.5*math.Cos(math.Pi*frac)
	}
	return 1
}

// SigmoidPhase is a logistic function of the signed circular distance from
// theta to centerTheta: it rises from 0 to 1 as theta sweeps past
// centerTheta, with `steepness` controlling the transition sharpness.
func SigmoidPhase(theta, centerTheta, steepness float64) float64 {
	d := circularDistance(centerTheta, theta)
	return 1.0 / (1.0 + math.Exp(-steepness*d))
}
