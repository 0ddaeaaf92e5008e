package kernel

import (
	"math"
	"testing"
)

func TestGaussianPhasePeaksAtCenter(t *testing.T) {
	center := MinuteToPhase(480) // 08:00
	peak := GaussianPhase(center, center, 4.0)
	if math.Abs(peak-1.0) > 1e-9 {
		t.Errorf("peak got %f, want 1.0", peak)
	}
	off := GaussianPhase(MinuteToPhase(0), center, 4.0)
	if off >= peak {
		t.Errorf("off-center value %f should be less than peak %f", off, peak)
	}
}

func TestWindowPhaseInsideOutside(t *testing.T) {
	start := MinuteToPhase(22 * 60)  // 22:00
	end := MinuteToPhase(6 * 60)     // 06:00, wraps past midnight
	transition := MinuteToPhase(60) // 1h ramp

	t.Run("middle of window is 1", func(t *testing.T) {
		mid := MinuteToPhase(2 * 60) // 02:00
		got := WindowPhase(mid, start, end, transition)
		if got < 0.99 {
			t.Errorf("got %f, want ~1.0", got)
		}
	})

	t.Run("outside window is 0", func(t *testing.T) {
		noon := MinuteToPhase(12 * 60)
		got := WindowPhase(noon, start, end, transition)
		if got != 0 {
			t.Errorf("got %f, want 0", got)
		}
	})

	t.Run("exactly at edges is 0", func(t *testing.T) {
		got := WindowPhase(start, start, end, transition)
		if math.Abs(got) > 1e-9 {
			t.Errorf("got %f, want 0 at start edge", got)
		}
	})
}

func TestSigmoidPhaseMonotonic(t *testing.T) {
	center := MinuteToPhase(720)
	before := SigmoidPhase(MinuteToPhase(700), center, 2.0)
	at := SigmoidPhase(center, center, 2.0)
	after := SigmoidPhase(MinuteToPhase(740), center, 2.0)
	if !(before < at && at < after) {
		t.Errorf("expected monotonic rise, got %f, %f, %f", before, at, after)
	}
}

func TestHillResponseSaturates(t *testing.T) {
	low := HillResponse(1, 100, 10, 2)
	high := HillResponse(1000, 100, 10, 2)
	if high <= low {
		t.Errorf("expected response to increase with dose, got low=%f high=%f", low, high)
	}
	if high > 100.0001 {
		t.Errorf("expected response to saturate near Emax=100, got %f", high)
	}
}

func TestInverseHillDecreases(t *testing.T) {
	low := InverseHill(0, 1.0, 10, 2)
	high := InverseHill(1000, 1.0, 10, 2)
	if low != 1.0 {
		t.Errorf("InverseHill at x=0 got %f, want Imax=1.0", low)
	}
	if high >= low {
		t.Errorf("expected response to decrease with dose, got low=%f high=%f", low, high)
	}
}

// vecState is a minimal Stateful implementation for exercising RK4Step.
type vecState struct{ x, y float64 }

func (v vecState) Add(o vecState) vecState   { return vecState{v.x + o.x, v.y + o.y} }
func (v vecState) Scale(f float64) vecState { return vecState{v.x * f, v.y * f} }

func TestRK4StepExponentialDecay(t *testing.T) {
	// dx/dt = -x, analytic solution x(t) = x0*exp(-t).
	x := vecState{x: 1.0, y: 0}
	deriv := func(s vecState, t float64) vecState {
		return vecState{x: -s.x, y: 0}
	}
	dt := 0.01
	steps := 500 // t = 5
	for i := 0; i < steps; i++ {
		x = RK4Step(x, float64(i)*dt, dt, deriv)
	}
	want := math.Exp(-5)
	if math.Abs(x.x-want) > 1e-4 {
		t.Errorf("RK4 exponential decay got %f, want %f", x.x, want)
	}
}
