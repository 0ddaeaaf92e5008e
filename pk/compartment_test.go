package pk

import (
	"math"
	"testing"

	"github.com/JeffJassky/pyhsim/kernel"
)

func TestDepositAddsFullBioavailableDose(t *testing.T) {
	item := Item{Dose: 200, Kinetics: Kinetics{Bioavailability: 0.8}}
	out := Deposit(Compartments{}, item)
	if math.Abs(out.Absorption-160) > 1e-9 {
		t.Errorf("expected 160 absorbed, got %f", out.Absorption)
	}
}

func TestOneCompartmentDecaysTowardZero(t *testing.T) {
	item := Item{
		StartMinute: 0, EndMinute: 0, Mode: Bolus, Dose: 200,
		Kinetics: Kinetics{Kind: OneCompartment, Ka: 0.05, Ke: 0.01, V: 40, Bioavailability: 1.0},
	}
	state := Deposit(Compartments{}, item)

	deriv := func(x Compartments, t float64) Compartments {
		return Derivative(x, t, item)
	}

	for i := 0; i < 2000; i++ {
		state = kernel.RK4Step(state, float64(i), 1.0, deriv)
		state = state.Clamp()
	}

	if state.Absorption < 0 || state.Central < 0 {
		t.Fatalf("PK mass went negative: %+v", state)
	}
	if state.Central > 1 {
		t.Errorf("expected near-total elimination after 2000 min, got central=%f", state.Central)
	}
}

func TestTwoCompartmentConservesMassDirection(t *testing.T) {
	item := Item{
		StartMinute: 0, EndMinute: 0, Mode: Bolus, Dose: 200,
		Kinetics: Kinetics{Kind: TwoCompartment, Ka: 0.04, Ke: 0.01, V: 30, K12: 0.03, K21: 0.015, Bioavailability: 1.0},
	}
	state := Deposit(Compartments{}, item)

	deriv := func(x Compartments, t float64) Compartments {
		return Derivative(x, t, item)
	}

	peakPeripheral := 0.0
	for i := 0; i < 3000; i++ {
		state = kernel.RK4Step(state, float64(i), 1.0, deriv)
		state = state.Clamp()
		if state.Peripheral > peakPeripheral {
			peakPeripheral = state.Peripheral
		}
	}

	if state.Absorption < 0 || state.Central < 0 || state.Peripheral < 0 {
		t.Fatalf("PK mass went negative: %+v", state)
	}
	if peakPeripheral <= 0 {
		t.Errorf("expected peripheral compartment to accumulate mass via K12 exchange, peak=%f", peakPeripheral)
	}
	if state.Central > 1 {
		t.Errorf("expected near-total elimination after 3000 min, got central=%f", state.Central)
	}
}

func TestMichaelisMentenNeverNegative(t *testing.T) {
	item := Item{
		Mode: Continuous, Intensity: 0.5, StartMinute: 0, EndMinute: 1000,
		Kinetics: Kinetics{Kind: MichaelisMenten, Vmax: 0.3, Km: 10, V: 1, Bioavailability: 1.0},
	}
	state := Compartments{Central: 50}
	deriv := func(x Compartments, t float64) Compartments { return Derivative(x, t, item) }
	for i := 0; i < 500; i++ {
		state = kernel.RK4Step(state, float64(i), 1.0, deriv).Clamp()
	}
	if state.Central < 0 {
		t.Fatalf("concentration went negative: %f", state.Central)
	}
}

func TestMicrostepCountRespectsStiffnessGuard(t *testing.T) {
	n := MicrostepCount(0.5, 5) // ke*dt = 2.5, needs subdivision
	if n < 2 {
		t.Errorf("expected microstepping for stiff ke*dt, got N=%d", n)
	}
	perStep := 0.5 * (5.0 / float64(n))
	if perStep >= 0.2 {
		t.Errorf("microstep elimination rate %f exceeds 0.2 guard", perStep)
	}
}

func TestInputRateWindowsCorrectly(t *testing.T) {
	if r := InputRate(Infusion, 10, 20, 100, 0, 5); r != 0 {
		t.Errorf("expected 0 before window start, got %f", r)
	}
	if r := InputRate(Infusion, 10, 20, 100, 0, 15); r != 10 {
		t.Errorf("expected dose/duration=10, got %f", r)
	}
	if r := InputRate(Continuous, 10, 20, 0, 2.5, 15); r != 2.5 {
		t.Errorf("expected continuous intensity 2.5, got %f", r)
	}
}
