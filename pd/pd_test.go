package pd

import (
	"testing"

	"github.com/JeffJassky/pyhsim/common"
)

func TestAgonistIncreasesActivity(t *testing.T) {
	e := Effect{Mechanism: Agonist, IntrinsicEfficacy: 0.8, Affinity: 10, HillCoefficient: 1}
	lo := e.ActivityMultiplier(1)
	hi := e.ActivityMultiplier(100)
	if !(hi > lo && lo >= 1 && hi > 1) {
		t.Errorf("expected increasing multiplier with dose, got lo=%f hi=%f", lo, hi)
	}
}

func TestInhibitorFlooredAtZero(t *testing.T) {
	e := Effect{Mechanism: Inhibitor, IntrinsicEfficacy: 1.5, Affinity: 1, HillCoefficient: 1}
	m := e.ActivityMultiplier(1000)
	if m < 0 {
		t.Errorf("expected inhibitor multiplier floored at 0, got %f", m)
	}
}

func TestDirectSignalForcingSignFollowsMechanism(t *testing.T) {
	e := Effect{TargetKind: TargetSignal, Mechanism: Agonist, IntrinsicEfficacy: 0.5}
	if f := e.DirectSignalForcing(10); f != 5 {
		t.Errorf("expected 5, got %f", f)
	}
	antagonist := Effect{TargetKind: TargetSignal, Mechanism: Antagonist, IntrinsicEfficacy: 0.5}
	if f := antagonist.DirectSignalForcing(10); f != -5 {
		t.Errorf("expected -5 direct forcing for antagonist signal target, got %f", f)
	}
}

func TestApplyAggregatesMultipleEffectsOnSameTarget(t *testing.T) {
	effects := []ActiveEffect{
		{Effect: Effect{Target: "DAT", TargetKind: TargetTransporter, Mechanism: Inhibitor, IntrinsicEfficacy: 0.5, Affinity: 10, HillCoefficient: 1}, Concentration: 10},
		{Effect: Effect{Target: "DAT", TargetKind: TargetTransporter, Mechanism: Inhibitor, IntrinsicEfficacy: 0.5, Affinity: 10, HillCoefficient: 1}, Concentration: 10},
	}
	res := Apply(effects)
	v := res.TransporterMultiplier[common.TransporterKey("DAT")]
	if v >= 1 {
		t.Errorf("expected compounded inhibition below 1, got %f", v)
	}
}
