package simulate

import (
	"testing"

	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/intervention"
	"github.com/JeffJassky/pyhsim/registry"
	"github.com/JeffJassky/pyhsim/simcontext"
	"github.com/JeffJassky/pyhsim/subject"
)

func testSubject() subject.Subject {
	return subject.Subject{Sex: common.Male, AgeYears: 30, WeightKg: 80, HeightCm: 180}
}

func TestRunRejectsNonPositiveStep(t *testing.T) {
	resp := Run(Request{
		Grid:    Grid{StartMinute: 0, EndMinute: 60, StepMinutes: 0},
		Subject: testSubject(),
	})
	if resp.Error == nil || resp.Error.Kind != ErrValidation {
		t.Fatalf("expected ValidationError, got %v", resp.Error)
	}
}

func TestRunRejectsInvertedGrid(t *testing.T) {
	resp := Run(Request{
		Grid:    Grid{StartMinute: 100, EndMinute: 0, StepMinutes: 1},
		Subject: testSubject(),
	})
	if resp.Error == nil || resp.Error.Kind != ErrValidation {
		t.Fatalf("expected ValidationError, got %v", resp.Error)
	}
}

func TestRunRejectsContradictorySubject(t *testing.T) {
	subj := testSubject()
	subj.CycleDay = 5 // males carry no cycle
	resp := Run(Request{
		Grid:    Grid{StartMinute: 0, EndMinute: 60, StepMinutes: 1},
		Subject: subj,
	})
	if resp.Error == nil || resp.Error.Kind != ErrConfig {
		t.Fatalf("expected ConfigError, got %v", resp.Error)
	}
}

func TestRunRejectsUnknownTimelineKey(t *testing.T) {
	resp := Run(Request{
		Grid:     Grid{StartMinute: 0, EndMinute: 60, StepMinutes: 1},
		Subject:  testSubject(),
		Timeline: []intervention.TimelineItem{{ID: "a", Key: "notARealIntervention", StartMinute: 0, EndMinute: 0}},
	})
	if resp.Error == nil || resp.Error.Kind != ErrValidation {
		t.Fatalf("expected ValidationError for unknown intervention key, got %v", resp.Error)
	}
}

func TestRunProducesDenseSeriesOverTheWholeGrid(t *testing.T) {
	grid := Grid{StartMinute: 0, EndMinute: 120, StepMinutes: 5}
	resp := Run(Request{Grid: grid, Subject: testSubject()})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	want := grid.NumPoints()
	for key, series := range resp.Series {
		if len(series) != want {
			t.Errorf("signal %s: expected %d points, got %d", key, want, len(series))
		}
	}
	for key, series := range resp.AuxiliarySeries {
		if len(series) != want {
			t.Errorf("auxiliary %s: expected %d points, got %d", key, want, len(series))
		}
	}
}

func TestRunKeepsEverySignalWithinItsRegisteredBounds(t *testing.T) {
	grid := Grid{StartMinute: 0, EndMinute: 1440, StepMinutes: 5}
	resp := Run(Request{Grid: grid, Subject: testSubject()})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	reg := registry.NewDefaultRegistry()
	for _, def := range reg.Signals {
		series := resp.Series[def.Key]
		for i, v := range series {
			if def.Min != nil && v < *def.Min-1e-9 {
				t.Errorf("signal %s below min at index %d: %f < %f", def.Key, i, v, *def.Min)
			}
			if def.Max != nil && v > *def.Max+1e-9 {
				t.Errorf("signal %s above max at index %d: %f > %f", def.Key, i, v, *def.Max)
			}
		}
	}
}

func TestRunOnBaselineDayHoldsCortisolNearItsCircadianSetpoint(t *testing.T) {
	grid := Grid{StartMinute: 0, EndMinute: 1440, StepMinutes: 5}
	resp := Run(Request{Grid: grid, Subject: testSubject()})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	series := resp.Series[registry.Cortisol]
	if len(series) == 0 {
		t.Fatal("expected a cortisol series")
	}
	for i, v := range series {
		if v < 0.5 || v > 60 {
			t.Fatalf("cortisol left its registered range at index %d: %f", i, v)
		}
	}
}

func TestRunSignalFilterPrunesOutputButNotIntegration(t *testing.T) {
	grid := Grid{StartMinute: 0, EndMinute: 60, StepMinutes: 5}
	resp := Run(Request{
		Grid:         grid,
		Subject:      testSubject(),
		SignalFilter: []common.SignalKey{registry.Cortisol},
	})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	if _, ok := resp.Series[registry.Cortisol]; !ok {
		t.Fatal("expected the filtered signal to be present")
	}
	if _, ok := resp.Series[registry.HeartRate]; ok {
		t.Error("expected an unrelated, unreferenced signal to be pruned from output")
	}
	// A coupling source of the filtered signal must still surface, since it
	// feeds the requested signal and pruning it would be unsound.
	if _, ok := resp.Series[registry.Melatonin]; !ok {
		t.Error("expected cortisol's coupling source (melatonin) to still be included")
	}
}

func TestRunBolusCaffeineLowersMeasuredAdenosinePressure(t *testing.T) {
	grid := Grid{StartMinute: 0, EndMinute: 180, StepMinutes: 2}
	withCaffeine := Run(Request{
		Grid:    grid,
		Subject: testSubject(),
		Timeline: []intervention.TimelineItem{
			{ID: "dose1", Key: "caffeine", StartMinute: 10, EndMinute: 10, Params: map[string]float64{"dose": 200}},
		},
	})
	if withCaffeine.Error != nil {
		t.Fatalf("unexpected error: %v", withCaffeine.Error)
	}
	baseline := Run(Request{Grid: grid, Subject: testSubject()})
	if baseline.Error != nil {
		t.Fatalf("unexpected baseline error: %v", baseline.Error)
	}

	pkState := withCaffeine.FinalState.PK["dose1#0"]
	if pkState.Absorption == 0 && pkState.Central == 0 {
		t.Fatal("expected caffeine's compartments to carry nonzero mass by the end of the run")
	}

	adenosineWith := withCaffeine.AuxiliarySeries[registry.AdenosinePressure]
	adenosineBase := baseline.AuxiliarySeries[registry.AdenosinePressure]
	if len(adenosineWith) == 0 || len(adenosineBase) == 0 {
		t.Fatal("expected an adenosine pressure series in both runs")
	}
	last := len(adenosineWith) - 1
	if adenosineWith[last] >= adenosineBase[last] {
		t.Errorf("expected caffeine's adenosine-receptor antagonism to leave measured adenosine pressure below baseline, got %f vs %f", adenosineWith[last], adenosineBase[last])
	}
}

func TestRunCancellationReturnsPartialSeriesWithCancelledError(t *testing.T) {
	tok := &countingCancel{cancelAfter: 3}
	resp := Run(Request{
		Grid:    Grid{StartMinute: 0, EndMinute: 1000, StepMinutes: 1},
		Subject: testSubject(),
		Cancel:  tok,
	})
	if resp.Error == nil || resp.Error.Kind != ErrCancelled {
		t.Fatalf("expected Cancelled, got %v", resp.Error)
	}
	series := resp.Series[registry.Cortisol]
	if len(series) == 0 || len(series) >= 1001 {
		t.Errorf("expected a short partial series, got %d points", len(series))
	}
}

type countingCancel struct {
	calls       int
	cancelAfter int
}

func (c *countingCancel) Cancelled() bool {
	c.calls++
	return c.calls > c.cancelAfter
}

func flatSetpoint(v float64) registry.SetpointFunc {
	return func(simcontext.Context) float64 { return v }
}

func flatInitial(v float64) registry.InitialValueFunc {
	return func(simcontext.Context) float64 { return v }
}

func ptrF(v float64) *float64 { return &v }

func TestRunDetectsNumericBlowUp(t *testing.T) {
	// A negative time constant drives the pull term away from, not toward,
	// the setpoint: the signal diverges exponentially and must trip the
	// blow-up guard well before the grid's end.
	reg, err := registry.New([]registry.SignalDefinition{
		{
			Key: "unstable", Tau: -0.1,
			Setpoint:     flatSetpoint(0),
			InitialValue: flatInitial(1),
			Max:          ptrF(10),
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected registry error: %v", err)
	}
	resp := Run(Request{
		Grid:     Grid{StartMinute: 0, EndMinute: 1000, StepMinutes: 1},
		Subject:  testSubject(),
		Registry: reg,
	})
	if resp.Error == nil || resp.Error.Kind != ErrNumeric {
		t.Fatalf("expected NumericError, got %v", resp.Error)
	}
}
