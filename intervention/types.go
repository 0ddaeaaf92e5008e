// Package intervention compiles timeline items into flat PK/PD primitives.
// A definition's pharmacology is either a static primitive list or a pure
// factory function of the item's params — the same factory pattern used
// elsewhere for pluggable per-phase behavior, here expanded once at
// compile time instead of dispatched at runtime, since compiled
// primitives never need further polymorphism.
package intervention

import (
	"github.com/JeffJassky/pyhsim/pd"
	"github.com/JeffJassky/pyhsim/pk"
)

// PKPrimitive is a declarative PK recipe, independent of any specific dose —
// Dose/Intensity are supplied per timeline item at compile time.
type PKPrimitive struct {
	Mode     pk.DeliveryMode
	Kinetics pk.Kinetics
}

// PDPrimitive is a declarative PD recipe tied to the owning PKPrimitive's
// concentration.
type PDPrimitive struct {
	Target            string
	TargetKind        pd.TargetKind
	Mechanism         pd.Mechanism
	IntrinsicEfficacy float64
	Affinity          float64
	HillCoefficient   float64
}

// Primitive bundles one PK recipe with the PD effects it drives.
type Primitive struct {
	PK PKPrimitive
	PD []PDPrimitive
}

// Factory expands an item's params into one or more primitives. Pure and
// side-effect free: the same params always produce the same primitives.
type Factory func(params map[string]float64, intensity float64) []Primitive

// Pharmacology is either a static primitive list or a Factory. Exactly one
// of Static or Build should be set; Build takes precedence when both are
// (Static is then treated as a fallback default, unused in practice).
type Pharmacology struct {
	Static []Primitive
	Build  Factory
}

// Resolve returns the primitive list for the given params/intensity.
func (p Pharmacology) Resolve(params map[string]float64, intensity float64) []Primitive {
	if p.Build != nil {
		return p.Build(params, intensity)
	}
	return p.Static
}

// Definition is one catalog entry: a key, label, and its pharmacology.
type Definition struct {
	Key          string
	Label        string
	Pharmacology Pharmacology
}
