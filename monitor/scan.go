package monitor

import (
	"math"
	"sort"

	"github.com/JeffJassky/pyhsim/common"
)

// Scan runs every definition against series (keyed by signal, dense arrays
// of length len(series[key]) spaced stepMinutes apart starting at
// startMinute) and returns the triggered Results sorted by severity, ties
// broken by detection time. A definition whose signal has no series entry
// is silently skipped — callers filtering Response.Series via
// SignalFilter should not have to also filter their monitor definitions.
func Scan(series map[common.SignalKey][]float64, startMinute, stepMinutes float64, defs []Definition) []Result {
	var results []Result
	for _, def := range defs {
		values, ok := series[def.Signal]
		if !ok || len(values) == 0 {
			continue
		}
		lo, hi := windowBounds(def, startMinute, stepMinutes, len(values))
		switch def.Kind {
		case Threshold:
			if r, hit := scanThreshold(def, values, startMinute, stepMinutes, lo, hi); hit {
				results = append(results, r)
			}
		case Slope:
			if r, hit := scanSlope(def, values, startMinute, stepMinutes, lo, hi); hit {
				results = append(results, r)
			}
		case RangeResidence:
			if r, hit := scanRangeResidence(def, values, startMinute, stepMinutes, lo, hi); hit {
				results = append(results, r)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Outcome.severityRank() != results[j].Outcome.severityRank() {
			return results[i].Outcome.severityRank() < results[j].Outcome.severityRank()
		}
		return results[i].DetectedAtMinute < results[j].DetectedAtMinute
	})
	return results
}

// windowBounds converts a definition's minute-based window into an index
// range [lo,hi) over values, clamped to the series length.
func windowBounds(def Definition, startMinute, stepMinutes float64, n int) (int, int) {
	lo, hi := 0, n
	if def.WindowStartMinute != 0 || def.WindowEndMinute != 0 {
		lo = int((def.WindowStartMinute - startMinute) / stepMinutes)
		hi = int((def.WindowEndMinute-startMinute)/stepMinutes) + 1
	}
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

func minuteAt(startMinute, stepMinutes float64, index int) float64 {
	return startMinute + float64(index)*stepMinutes
}

func scanThreshold(def Definition, values []float64, startMinute, stepMinutes float64, lo, hi int) (Result, bool) {
	for i := lo + 1; i < hi; i++ {
		prev, cur := values[i-1], values[i]
		crossed := false
		switch def.Direction {
		case CrossAbove:
			crossed = prev < def.ThresholdValue && cur >= def.ThresholdValue
		case CrossBelow:
			crossed = prev > def.ThresholdValue && cur <= def.ThresholdValue
		}
		if crossed {
			return Result{
				ID: def.ID, Signal: def.Signal,
				DetectedAtMinute: minuteAt(startMinute, stepMinutes, i),
				TriggerValue:     cur,
				Outcome:          def.Outcome,
				Message:          def.Message,
			}, true
		}
	}
	return Result{}, false
}

func scanSlope(def Definition, values []float64, startMinute, stepMinutes float64, lo, hi int) (Result, bool) {
	windowSteps := int(def.WindowMinutes/stepMinutes + 0.5)
	if windowSteps < 1 {
		windowSteps = 1
	}
	for i := lo + windowSteps; i < hi; i++ {
		slope := (values[i] - values[i-windowSteps]) / (float64(windowSteps) * stepMinutes)
		if math.Abs(slope) >= def.SlopeMagnitude {
			return Result{
				ID: def.ID, Signal: def.Signal,
				DetectedAtMinute: minuteAt(startMinute, stepMinutes, i),
				TriggerValue:     slope,
				Outcome:          def.Outcome,
				Message:          def.Message,
			}, true
		}
	}
	return Result{}, false
}

func scanRangeResidence(def Definition, values []float64, startMinute, stepMinutes float64, lo, hi int) (Result, bool) {
	minSteps := int(def.MinDurationMinutes/stepMinutes + 0.5)
	if minSteps < 1 {
		minSteps = 1
	}
	runStart := -1
	for i := lo; i < hi; i++ {
		inBand := values[i] >= def.RangeLow && values[i] <= def.RangeHigh
		residing := inBand == def.Inside
		if !residing {
			runStart = -1
			continue
		}
		if runStart == -1 {
			runStart = i
		}
		if i-runStart+1 >= minSteps {
			return Result{
				ID: def.ID, Signal: def.Signal,
				DetectedAtMinute: minuteAt(startMinute, stepMinutes, i),
				TriggerValue:     values[i],
				Outcome:          def.Outcome,
				Message:          def.Message,
			}, true
		}
	}
	return Result{}, false
}
