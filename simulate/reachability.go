package simulate

import (
	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/registry"
)

// requiredKeys computes which signal and auxiliary keys must appear in the
// response: the filtered set plus every key transitively reachable by
// walking production, clearance, and coupling source edges backwards (a key
// referenced as a source of a required key is itself required). An empty
// filter means "everything" — the common case of an unfiltered run.
func requiredKeys(reg *registry.Registry, filter []common.SignalKey) (signals map[common.SignalKey]bool, aux map[common.AuxKey]bool) {
	signals = make(map[common.SignalKey]bool, len(reg.Signals))
	aux = make(map[common.AuxKey]bool, len(reg.Auxiliary))

	if len(filter) == 0 {
		for _, s := range reg.Signals {
			signals[s.Key] = true
		}
		for _, a := range reg.Auxiliary {
			aux[a.Key] = true
		}
		return signals, aux
	}

	for _, k := range filter {
		signals[k] = true
	}

	// Fixed-point closure over dependency edges. The registry is small
	// (tens of entries), so a naive repeated scan is simpler than a
	// topological precomputation and still runs in a handful of passes.
	for changed := true; changed; {
		changed = false
		for _, s := range reg.Signals {
			if !signals[s.Key] {
				continue
			}
			for _, src := range sourcesOf(s.Production, s.Clearance, s.Couplings) {
				if sk := common.SignalKey(src); reg.HasSignal(sk) && !signals[sk] {
					signals[sk] = true
					changed = true
				}
				if ak := common.AuxKey(src); reg.HasAux(ak) && !aux[ak] {
					aux[ak] = true
					changed = true
				}
			}
		}
		for _, a := range reg.Auxiliary {
			if !aux[a.Key] {
				continue
			}
			for _, src := range sourcesOf(a.Production, a.Clearance, a.Couplings) {
				if sk := common.SignalKey(src); reg.HasSignal(sk) && !signals[sk] {
					signals[sk] = true
					changed = true
				}
				if ak := common.AuxKey(src); reg.HasAux(ak) && !aux[ak] {
					aux[ak] = true
					changed = true
				}
			}
		}
	}
	return signals, aux
}

func sourcesOf(production []registry.ProductionTerm, clearance []registry.ClearanceTerm, couplings []registry.Coupling) []string {
	out := make([]string, 0, len(production)+len(clearance)+len(couplings))
	for _, p := range production {
		out = append(out, p.Source)
	}
	for _, c := range clearance {
		if c.Enzyme != "" {
			out = append(out, c.Enzyme)
		}
	}
	for _, c := range couplings {
		out = append(out, c.Source)
	}
	return out
}
