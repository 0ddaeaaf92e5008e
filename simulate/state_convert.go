package simulate

import (
	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/ode"
	"github.com/JeffJassky/pyhsim/pk"
)

func toODEState(s State) ode.State {
	out := ode.NewState()
	for k, v := range s.Signals {
		out.Signals[k] = v
	}
	for k, v := range s.Auxiliary {
		out.Auxiliary[k] = v
	}
	for k, v := range s.PK {
		out.PK[k] = v
	}
	return out
}

func fromODEState(s ode.State) State {
	out := State{
		Signals:   make(map[common.SignalKey]float64, len(s.Signals)),
		Auxiliary: make(map[common.AuxKey]float64, len(s.Auxiliary)),
		PK:        make(map[string]pk.Compartments, len(s.PK)),
	}
	for k, v := range s.Signals {
		out.Signals[k] = v
	}
	for k, v := range s.Auxiliary {
		out.Auxiliary[k] = v
	}
	for k, v := range s.PK {
		out.PK[k] = v
	}
	return out
}
