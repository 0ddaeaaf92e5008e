package ode

import (
	"math"
	"testing"

	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/intervention"
	"github.com/JeffJassky/pyhsim/kernel"
	"github.com/JeffJassky/pyhsim/pd"
	"github.com/JeffJassky/pyhsim/pk"
	"github.com/JeffJassky/pyhsim/profile"
	"github.com/JeffJassky/pyhsim/registry"
	"github.com/JeffJassky/pyhsim/simcontext"
	"github.com/JeffJassky/pyhsim/subject"
)

func testSubjectContext(minute float64) simcontext.Context {
	subj := subject.Subject{Sex: common.Male, AgeYears: 30, WeightKg: 80, HeightCm: 180}
	phys := subject.DerivePhysiology(subj)
	return simcontext.New(minute, false, subj, phys)
}

func flatSetpoint(v float64) registry.SetpointFunc {
	return func(simcontext.Context) float64 { return v }
}

func flatInitial(v float64) registry.InitialValueFunc {
	return func(simcontext.Context) float64 { return v }
}

func TestDerivativeIsZeroAtRestWithNoTerms(t *testing.T) {
	reg, err := registry.New([]registry.SignalDefinition{
		{
			Key: "x", Tau: 10, Setpoint: flatSetpoint(5), InitialValue: func(simcontext.Context) float64 { return 5 },
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := NewAssembler(reg, profile.Result{})
	state := NewState()
	state.Signals["x"] = 5
	ctx := testSubjectContext(0)
	deriv := a.Derivative(state, 0, ctx, nil, nil)
	if math.Abs(deriv.Signals["x"]) > 1e-12 {
		t.Errorf("expected zero derivative at setpoint with no other terms, got %f", deriv.Signals["x"])
	}
}

func TestDerivativePullsTowardSetpoint(t *testing.T) {
	reg, err := registry.New([]registry.SignalDefinition{
		{Key: "x", Tau: 10, Setpoint: flatSetpoint(10), InitialValue: flatInitial(0)},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := NewAssembler(reg, profile.Result{})
	state := NewState()
	state.Signals["x"] = 0
	ctx := testSubjectContext(0)
	deriv := a.Derivative(state, 0, ctx, nil, nil)
	want := (10.0 - 0.0) / 10.0
	if math.Abs(deriv.Signals["x"]-want) > 1e-9 {
		t.Errorf("expected dx/dt = %f, got %f", want, deriv.Signals["x"])
	}
}

func TestStimulateCouplingAddsPositiveContribution(t *testing.T) {
	reg, err := registry.New([]registry.SignalDefinition{
		{Key: "source", Tau: 1e9, Setpoint: flatSetpoint(0), InitialValue: flatInitial(0)},
		{
			Key: "target", Tau: 1e9, Setpoint: flatSetpoint(0), InitialValue: flatInitial(0),
			Couplings: []registry.Coupling{{Source: "source", Effect: registry.Stimulate, Strength: 0.5}},
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := NewAssembler(reg, profile.Result{})
	state := NewState()
	state.Signals["source"] = 4
	state.Signals["target"] = 0
	ctx := testSubjectContext(0)
	deriv := a.Derivative(state, 0, ctx, nil, nil)
	if math.Abs(deriv.Signals["target"]-2.0) > 1e-9 {
		t.Errorf("expected coupling contribution 2.0, got %f", deriv.Signals["target"])
	}
}

func TestInhibitCouplingAddsNegativeContribution(t *testing.T) {
	reg, err := registry.New([]registry.SignalDefinition{
		{Key: "source", Tau: 1e9, Setpoint: flatSetpoint(0), InitialValue: flatInitial(0)},
		{
			Key: "target", Tau: 1e9, Setpoint: flatSetpoint(0), InitialValue: flatInitial(0),
			Couplings: []registry.Coupling{{Source: "source", Effect: registry.Inhibit, Strength: 0.5}},
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := NewAssembler(reg, profile.Result{})
	state := NewState()
	state.Signals["source"] = 4
	ctx := testSubjectContext(0)
	deriv := a.Derivative(state, 0, ctx, nil, nil)
	if math.Abs(deriv.Signals["target"]+2.0) > 1e-9 {
		t.Errorf("expected coupling contribution -2.0, got %f", deriv.Signals["target"])
	}
}

func TestLinearClearanceSubtractsRateTimesValue(t *testing.T) {
	reg, err := registry.New([]registry.SignalDefinition{
		{
			Key: "x", Tau: 1e9, Setpoint: flatSetpoint(0), InitialValue: flatInitial(0),
			Clearance: []registry.ClearanceTerm{{Kind: registry.ClearanceLinear, Rate: 0.1}},
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := NewAssembler(reg, profile.Result{})
	state := NewState()
	state.Signals["x"] = 20
	ctx := testSubjectContext(0)
	deriv := a.Derivative(state, 0, ctx, nil, nil)
	// rate * x = 0.1 * 20 = 2.0, plus the relaxation term (0 - 20) / 1e9
	want := -2.0 + (0.0-20.0)/1e9
	if math.Abs(deriv.Signals["x"]-want) > 1e-12 {
		t.Errorf("expected %.10f from linear clearance, got %.10f", want, deriv.Signals["x"])
	}
}

func TestEnzymeDependentClearanceScalesWithActivity(t *testing.T) {
	reg, err := registry.New([]registry.SignalDefinition{
		{
			Key: "x", Tau: 1e9, Setpoint: flatSetpoint(0), InitialValue: flatInitial(0),
			Clearance: []registry.ClearanceTerm{{Kind: registry.ClearanceEnzymeDependent, Rate: 0.1, Enzyme: "COMT"}},
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	composed := profile.Result{Activity: profile.ActivityMaps{Enzyme: map[common.EnzymeKey]float64{"COMT": 2.0}}}
	a := NewAssembler(reg, composed)
	state := NewState()
	state.Signals["x"] = 10
	ctx := testSubjectContext(0)
	deriv := a.Derivative(state, 0, ctx, nil, nil)
	// rate * activity * x = 0.1 * 2.0 * 10 = 2.0, plus the relaxation term
	// (0 - 10) / 1e9
	want := -2.0 + (0.0-10.0)/1e9
	if math.Abs(deriv.Signals["x"]-want) > 1e-12 {
		t.Errorf("expected %.10f scaled by enzyme activity, got %.10f", want, deriv.Signals["x"])
	}
}

func TestDirectSignalForcingFromCompiledIntervention(t *testing.T) {
	reg, err := registry.New([]registry.SignalDefinition{
		{Key: "melatonin", Tau: 1e9, Setpoint: flatSetpoint(0), InitialValue: flatInitial(0)},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := NewAssembler(reg, profile.Result{})

	compiled := []intervention.CompiledIntervention{
		{
			ItemID: "dose#0", StartMinute: 0, EndMinute: 0,
			PK: pk.Item{ID: "dose#0", Mode: pk.Bolus, Dose: 3, Kinetics: pk.Kinetics{Kind: pk.OneCompartment, Ka: 0.1, Ke: 0.2, V: 35, Bioavailability: 1}},
			PDEffects: []pd.Effect{
				{Target: "melatonin", TargetKind: pd.TargetSignal, Mechanism: pd.Agonist, IntrinsicEfficacy: 0.8, Affinity: 1, HillCoefficient: 1},
			},
		},
	}
	state := NewInitialState(reg, compiled, testSubjectContext(0))
	state = ApplyBolusDeposits(state, compiled, 1, 0)
	if state.PK["dose#0"].Absorption == 0 {
		t.Fatal("expected bolus deposit to add absorption mass")
	}

	// Give the compartment a non-zero central concentration directly to
	// isolate the PD forcing path from PK transit dynamics.
	cs := state.PK["dose#0"]
	cs.Central = 5
	state.PK["dose#0"] = cs

	deriv := a.Derivative(state, 0, testSubjectContext(0), compiled, nil)
	if deriv.Signals["melatonin"] <= 0 {
		t.Errorf("expected positive forcing on melatonin from agonist effect, got %f", deriv.Signals["melatonin"])
	}
}

func TestHistoryRingZeroOrderHoldBeforeEarliestRecord(t *testing.T) {
	ring := NewHistoryRing(4)
	s := NewState()
	s.Signals["x"] = 7
	ring.Record(100, s)
	if v := ring.ValueAt("x", 0); v != 7 {
		t.Errorf("expected zero-order hold of earliest record (7), got %f", v)
	}
}

func TestHistoryRingReturnsMostRecentAtOrBeforeTarget(t *testing.T) {
	ring := NewHistoryRing(4)
	s1 := NewState()
	s1.Signals["x"] = 1
	ring.Record(0, s1)
	s2 := NewState()
	s2.Signals["x"] = 2
	ring.Record(10, s2)
	s3 := NewState()
	s3.Signals["x"] = 3
	ring.Record(20, s3)

	if v := ring.ValueAt("x", 15); v != 2 {
		t.Errorf("expected value at minute 10 (2), got %f", v)
	}
	if v := ring.ValueAt("x", 25); v != 3 {
		t.Errorf("expected latest recorded value (3), got %f", v)
	}
}

func TestDelayedCouplingReadsHistoryNotCurrentState(t *testing.T) {
	reg, err := registry.New([]registry.SignalDefinition{
		{Key: "source", Tau: 1e9, Setpoint: flatSetpoint(0), InitialValue: flatInitial(0)},
		{
			Key: "target", Tau: 1e9, Setpoint: flatSetpoint(0), InitialValue: flatInitial(0),
			Couplings: []registry.Coupling{{Source: "source", Effect: registry.Stimulate, Strength: 1, DelayMinutes: 30}},
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := NewAssembler(reg, profile.Result{})

	history := NewHistoryRing(4)
	past := NewState()
	past.Signals["source"] = 9
	history.Record(0, past)

	state := NewState()
	state.Signals["source"] = 100 // current value must be ignored for the delayed coupling
	state.Signals["target"] = 0

	deriv := a.Derivative(state, 30, testSubjectContext(30), nil, history)
	if math.Abs(deriv.Signals["target"]-9.0) > 1e-9 {
		t.Errorf("expected delayed coupling to read history value 9, got %f", deriv.Signals["target"])
	}
}

func TestRK4StepIntegratesTowardSetpoint(t *testing.T) {
	reg, err := registry.New([]registry.SignalDefinition{
		{Key: "x", Tau: 60, Setpoint: flatSetpoint(100), InitialValue: flatInitial(0)},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := NewAssembler(reg, profile.Result{})
	ctx := testSubjectContext(0)
	state := NewInitialState(reg, nil, ctx)

	deriv := func(s State, tt float64) State {
		return a.Derivative(s, tt, testSubjectContext(tt), nil, nil)
	}

	dt := 1.0
	tt := 0.0
	for i := 0; i < 600; i++ {
		state = kernel.RK4Step(state, tt, dt, deriv)
		tt += dt
	}
	if state.Signals["x"] <= 50 || state.Signals["x"] >= 100 {
		t.Errorf("expected x to have relaxed partway toward 100 after 600 minutes, got %f", state.Signals["x"])
	}
}
