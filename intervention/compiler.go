package intervention

import (
	"fmt"

	"github.com/JeffJassky/pyhsim/pd"
	"github.com/JeffJassky/pyhsim/pk"
)

// TimelineItem is one scheduled occurrence of an intervention: a drug dose,
// meal, exercise bout, light exposure, or sleep window.
type TimelineItem struct {
	ID          string
	StartMinute float64
	EndMinute   float64
	Key         string
	Params      map[string]float64
	Intensity   float64
}

// CompiledIntervention is one flattened PK/PD primitive, ready for the
// integrator: a resolved delivery schedule plus the PD effects that consume
// its concentration. A single TimelineItem whose pharmacology factory
// returns multiple primitives compiles to multiple CompiledInterventions,
// one per primitive, sharing SourceItemID.
type CompiledIntervention struct {
	ItemID       string
	SourceItemID string
	StartMinute  float64
	EndMinute    float64
	PK           pk.Item
	PDEffects    []pd.Effect
}

// Compiler expands a timeline against a catalog into a flat primitive list.
type Compiler struct {
	Catalog map[string]Definition
}

// NewCompiler builds a Compiler over catalog.
func NewCompiler(catalog map[string]Definition) *Compiler {
	return &Compiler{Catalog: catalog}
}

// Compile walks items in order, resolving each against the catalog. Returns
// an error naming the first unknown key — compilation is all-or-nothing;
// the caller never integrates a partially compiled timeline.
func (c *Compiler) Compile(items []TimelineItem) ([]CompiledIntervention, error) {
	var out []CompiledIntervention
	for _, item := range items {
		if item.EndMinute < item.StartMinute {
			return nil, fmt.Errorf("intervention: item %q has endMinute < startMinute", item.ID)
		}
		def, ok := c.Catalog[item.Key]
		if !ok {
			return nil, fmt.Errorf("intervention: unknown intervention key %q for item %q", item.Key, item.ID)
		}
		primitives := def.Pharmacology.Resolve(item.Params, item.Intensity)
		for i, prim := range primitives {
			subID := fmt.Sprintf("%s#%d", item.ID, i)

			dose := item.Params["dose"]
			intensity := item.Intensity
			if prim.PK.Mode == pk.Continuous && dose > 0 {
				intensity *= dose
			}

			pkItem := pk.Item{
				ID:          subID,
				StartMinute: item.StartMinute,
				EndMinute:   item.EndMinute,
				Mode:        prim.PK.Mode,
				Dose:        dose,
				Intensity:   intensity,
				Kinetics:    prim.PK.Kinetics,
			}

			effects := make([]pd.Effect, 0, len(prim.PD))
			for _, pdp := range prim.PD {
				effects = append(effects, pd.Effect{
					Target:            pdp.Target,
					TargetKind:        pdp.TargetKind,
					Mechanism:         pdp.Mechanism,
					IntrinsicEfficacy: pdp.IntrinsicEfficacy,
					Affinity:          pdp.Affinity,
					HillCoefficient:   pdp.HillCoefficient,
				})
			}

			out = append(out, CompiledIntervention{
				ItemID:       subID,
				SourceItemID: item.ID,
				StartMinute:  item.StartMinute,
				EndMinute:    item.EndMinute,
				PK:           pkItem,
				PDEffects:    effects,
			})
		}
	}
	return out, nil
}
