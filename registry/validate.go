package registry

import (
	"fmt"

	"github.com/JeffJassky/pyhsim/common"
)

const (
	sourceConstant  = "constant"
	sourceCircadian = "circadian"
)

// validate checks that every production and coupling source resolves to a
// known signal, auxiliary, or one of the two reserved literals. Clearance
// terms of kind EnzymeDependent reference an activity key, not a
// signal/aux source, and are not checked here — activity keys are resolved
// against the profile composer's maps at run time, not the static registry.
func validate(r *Registry) error {
	resolvable := func(src string) bool {
		if src == sourceConstant || src == sourceCircadian {
			return true
		}
		if _, ok := r.signalIndex[common.SignalKey(src)]; ok {
			return true
		}
		if _, ok := r.auxIndex[common.AuxKey(src)]; ok {
			return true
		}
		return false
	}

	for _, s := range r.Signals {
		for _, p := range s.Production {
			if !resolvable(p.Source) {
				return fmt.Errorf("registry: signal %q production references unknown source %q", s.Key, p.Source)
			}
		}
		for _, c := range s.Couplings {
			if !resolvable(c.Source) {
				return fmt.Errorf("registry: signal %q coupling references unknown source %q", s.Key, c.Source)
			}
		}
	}
	for _, a := range r.Auxiliary {
		for _, p := range a.Production {
			if !resolvable(p.Source) {
				return fmt.Errorf("registry: auxiliary %q production references unknown source %q", a.Key, p.Source)
			}
		}
		for _, c := range a.Couplings {
			if !resolvable(c.Source) {
				return fmt.Errorf("registry: auxiliary %q coupling references unknown source %q", a.Key, c.Source)
			}
		}
	}
	return nil
}
