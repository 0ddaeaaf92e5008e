package simulate

import (
	"github.com/JeffJassky/pyhsim/intervention"
	"github.com/JeffJassky/pyhsim/simcontext"
	"github.com/JeffJassky/pyhsim/subject"
)

// sleepWindowStart/End define the nocturnal fallback sleep window (23:00 to
// 07:00, minute-of-day) used when the timeline carries no explicit "sleep"
// item. A real scenario is expected to schedule its own sleep item; the
// fallback exists so a bare baseline-day request (no timeline at all)
// still drives the sleep-dependent setpoints (growth hormone, adenosine
// pressure) the concrete test scenarios assert against.
const (
	sleepWindowStart = 1380.0 // 23:00
	sleepWindowEnd   = 420.0  // 07:00
	sleepItemKey     = "sleep"
)

// isAsleepAt derives the sleep-state predicate for minuteOfSim: true while
// any "sleep" timeline item is active. If the timeline declares no sleep
// item at all, falls back to the nocturnal window on minuteOfDay.
func isAsleepAt(timeline []intervention.TimelineItem, minuteOfSim, minuteOfDay float64) bool {
	hasSleepItem := false
	for _, item := range timeline {
		if item.Key != sleepItemKey {
			continue
		}
		hasSleepItem = true
		if minuteOfSim >= item.StartMinute && minuteOfSim < item.EndMinute {
			return true
		}
	}
	if hasSleepItem {
		return false
	}
	return minuteOfDay >= sleepWindowStart || minuteOfDay < sleepWindowEnd
}

// contextAt builds the evaluation context for an arbitrary minute, including
// RK4 sub-stage minutes that fall between grid points.
func contextAt(minuteOfSim float64, timeline []intervention.TimelineItem, subj subject.Subject, phys subject.Physiology) simcontext.Context {
	ctx := simcontext.New(minuteOfSim, false, subj, phys)
	ctx.IsAsleep = isAsleepAt(timeline, minuteOfSim, ctx.MinuteOfDay)
	return ctx
}
