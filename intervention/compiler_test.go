package intervention

import (
	"testing"

	"github.com/JeffJassky/pyhsim/pk"
)

func TestCompileUnknownKeyFails(t *testing.T) {
	c := NewCompiler(DefaultCatalog())
	_, err := c.Compile([]TimelineItem{{ID: "x", Key: "notARealDrug", StartMinute: 0, EndMinute: 10}})
	if err == nil {
		t.Fatal("expected error for unknown intervention key")
	}
}

func TestCompileCaffeineProducesOnePrimitive(t *testing.T) {
	c := NewCompiler(DefaultCatalog())
	items := []TimelineItem{
		{ID: "coffee1", Key: "caffeine", StartMinute: 480, EndMinute: 480, Params: map[string]float64{"dose": 200}},
	}
	out, err := c.Compile(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 compiled primitive, got %d", len(out))
	}
	if out[0].PK.Dose != 200 {
		t.Errorf("expected dose 200, got %f", out[0].PK.Dose)
	}
	if out[0].PK.Mode != pk.Bolus {
		t.Errorf("expected bolus delivery, got %v", out[0].PK.Mode)
	}
	if len(out[0].PDEffects) == 0 {
		t.Error("expected at least one PD effect")
	}
}

func TestCompileZeroDoseBolusProducesNoNetEffect(t *testing.T) {
	c := NewCompiler(DefaultCatalog())
	items := []TimelineItem{
		{ID: "coffee1", Key: "caffeine", StartMinute: 480, EndMinute: 480, Params: map[string]float64{"dose": 0}},
	}
	out, err := c.Compile(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deposited := pk.Deposit(pk.Compartments{}, out[0].PK)
	if deposited.Absorption != 0 {
		t.Errorf("expected zero deposit for zero dose, got %f", deposited.Absorption)
	}
}

func TestEndBeforeStartRejected(t *testing.T) {
	c := NewCompiler(DefaultCatalog())
	_, err := c.Compile([]TimelineItem{{ID: "x", Key: "caffeine", StartMinute: 100, EndMinute: 50}})
	if err == nil {
		t.Fatal("expected error for endMinute < startMinute")
	}
}
