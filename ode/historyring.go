package ode

import "github.com/JeffJassky/pyhsim/common"

// HistoryRing records one entry per committed grid step (never per RK4
// sub-stage) so delayed couplings can look back in time without ever
// observing a partially-integrated intermediate state. Entries are
// append-only for the life of a run and stay sorted by minute, since the
// integrator only ever advances forward.
type HistoryRing struct {
	minutes []float64
	states  []State
}

// NewHistoryRing allocates an empty ring with capacity hinted by the
// expected number of grid steps.
func NewHistoryRing(capacityHint int) *HistoryRing {
	return &HistoryRing{
		minutes: make([]float64, 0, capacityHint),
		states:  make([]State, 0, capacityHint),
	}
}

// Record appends the committed state at minuteOfSim. Must be called once
// per grid step, in increasing minute order.
func (h *HistoryRing) Record(minuteOfSim float64, state State) {
	h.minutes = append(h.minutes, minuteOfSim)
	h.states = append(h.states, state)
}

// ValueAt resolves source's value at targetMinute via zero-order hold: the
// most recent recorded state at or before targetMinute, or the earliest
// recorded state if targetMinute predates all history (the delay reaches
// before the run's start).
func (h *HistoryRing) ValueAt(source string, targetMinute float64) float64 {
	if len(h.minutes) == 0 {
		return 0
	}
	if targetMinute <= h.minutes[0] {
		return valueFromState(h.states[0], source)
	}
	// Minutes are monotonic increasing; scan from the end since delayed
	// lookups during a run tend to land near the most recent history.
	idx := len(h.minutes) - 1
	for idx > 0 && h.minutes[idx] > targetMinute {
		idx--
	}
	return valueFromState(h.states[idx], source)
}

func valueFromState(s State, source string) float64 {
	if v, ok := s.Signals[common.SignalKey(source)]; ok {
		return v
	}
	if v, ok := s.Auxiliary[common.AuxKey(source)]; ok {
		return v
	}
	return 0
}
