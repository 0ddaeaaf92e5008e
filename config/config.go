// Package config decodes a scenario description from TOML into the types
// simulate.Run consumes: a time grid, a subject, and an intervention
// timeline, plus a handful of run-level options.
package config

import (
	"fmt"
	"strings"

	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/intervention"
	"github.com/JeffJassky/pyhsim/subject"
)

// GridConfig mirrors simulate.Grid with TOML-friendly field names.
type GridConfig struct {
	StartMinute float64 `toml:"startMinute"`
	EndMinute   float64 `toml:"endMinute"`
	StepMinutes float64 `toml:"stepMinutes"`
}

// ConditionConfig mirrors subject.Condition.
type ConditionConfig struct {
	Key      string             `toml:"key"`
	Severity float64            `toml:"severity"`
	Params   map[string]float64 `toml:"params"`
}

// SubjectConfig mirrors subject.Subject, with Sex spelled as a TOML string
// ("male" or "female") rather than subject's internal common.Sex enum.
type SubjectConfig struct {
	Sex             string            `toml:"sex"`
	AgeYears        float64           `toml:"ageYears"`
	WeightKg        float64           `toml:"weightKg"`
	HeightCm        float64           `toml:"heightCm"`
	CycleLengthDays float64           `toml:"cycleLengthDays"`
	CycleDay        float64           `toml:"cycleDay"`
	Conditions      []ConditionConfig `toml:"conditions"`
}

// TimelineItemConfig mirrors intervention.TimelineItem.
type TimelineItemConfig struct {
	ID          string             `toml:"id"`
	StartMinute float64            `toml:"startMinute"`
	EndMinute   float64            `toml:"endMinute"`
	Key         string             `toml:"key"`
	Params      map[string]float64 `toml:"params"`
	Intensity   float64            `toml:"intensity"`
}

// RunOptionsConfig carries run-level options that don't belong on Grid,
// Subject, or Timeline.
type RunOptionsConfig struct {
	// SignalFilter, if non-empty, restricts which series the run reports;
	// see simulate.Request.SignalFilter.
	SignalFilter []string `toml:"signalFilter"`
	// InitialStateFile, if set, is a path to a JSON file written by
	// storage.SaveState, loaded to seed the run instead of registry
	// defaults. It is ignored when the caller passes a state to
	// cli.Orchestrator.RunOnce; the chain command passes each day's final
	// state that way.
	InitialStateFile string `toml:"initialStateFile"`
}

// ScenarioConfig is the full TOML-decodable description of one simulation
// run: grid, subject, intervention timeline, and options.
type ScenarioConfig struct {
	Grid     GridConfig           `toml:"grid"`
	Subject  SubjectConfig        `toml:"subject"`
	Timeline []TimelineItemConfig `toml:"timeline"`
	Options  RunOptionsConfig     `toml:"options"`
}

// Validate checks ScenarioConfig for the kinds of contradictions that should
// be rejected before any TOML-decoded value reaches the integrator:
// a non-positive grid step or inverted grid window, malformed sex strings,
// and inverted or empty-key timeline items. Cycle-day fields are not checked
// here. Subject-level numeric constraints (positive weight and
// height, etc.) are re-checked by subject.Subject.Validate once ToSubject
// has run, since that is the authoritative check the core itself applies.
func (sc *ScenarioConfig) Validate() error {
	if sc.Grid.StepMinutes <= 0 {
		return fmt.Errorf("config: grid.stepMinutes must be positive, got %f", sc.Grid.StepMinutes)
	}
	if sc.Grid.EndMinute < sc.Grid.StartMinute {
		return fmt.Errorf("config: grid.endMinute (%f) precedes grid.startMinute (%f)", sc.Grid.EndMinute, sc.Grid.StartMinute)
	}

	sex := strings.ToLower(strings.TrimSpace(sc.Subject.Sex))
	if sex != "male" && sex != "female" {
		return fmt.Errorf("config: subject.sex must be \"male\" or \"female\", got %q", sc.Subject.Sex)
	}

	for _, item := range sc.Timeline {
		if item.EndMinute < item.StartMinute {
			return fmt.Errorf("config: timeline item %q endMinute (%f) precedes startMinute (%f)", item.ID, item.EndMinute, item.StartMinute)
		}
		if strings.TrimSpace(item.Key) == "" {
			return fmt.Errorf("config: timeline item %q has an empty key", item.ID)
		}
	}

	if _, err := sc.Subject.toSubject(); err != nil {
		return err
	}
	return nil
}

// toSubject converts SubjectConfig to subject.Subject, translating the TOML
// sex string to common.Sex.
func (sub *SubjectConfig) toSubject() (subject.Subject, error) {
	var sex common.Sex
	switch strings.ToLower(strings.TrimSpace(sub.Sex)) {
	case "male":
		sex = common.Male
	case "female":
		sex = common.Female
	default:
		return subject.Subject{}, fmt.Errorf("config: subject.sex must be \"male\" or \"female\", got %q", sub.Sex)
	}

	conditions := make([]subject.Condition, 0, len(sub.Conditions))
	for _, c := range sub.Conditions {
		conditions = append(conditions, subject.Condition{Key: c.Key, Severity: c.Severity, Params: c.Params})
	}

	return subject.Subject{
		Sex:             sex,
		AgeYears:        sub.AgeYears,
		WeightKg:        sub.WeightKg,
		HeightCm:        sub.HeightCm,
		CycleLengthDays: sub.CycleLengthDays,
		CycleDay:        sub.CycleDay,
		Conditions:      conditions,
	}, nil
}

// ToSubject exposes toSubject for callers outside this package (the cmd and
// cli packages building a simulate.Request from a decoded ScenarioConfig).
func (sub *SubjectConfig) ToSubject() (subject.Subject, error) {
	return sub.toSubject()
}

// ToTimeline converts the decoded timeline into intervention.TimelineItems.
func (sc *ScenarioConfig) ToTimeline() []intervention.TimelineItem {
	items := make([]intervention.TimelineItem, 0, len(sc.Timeline))
	for _, t := range sc.Timeline {
		items = append(items, intervention.TimelineItem{
			ID:          t.ID,
			StartMinute: t.StartMinute,
			EndMinute:   t.EndMinute,
			Key:         t.Key,
			Params:      t.Params,
			Intensity:   t.Intensity,
		})
	}
	return items
}

// SignalKeys converts Options.SignalFilter into common.SignalKey values.
func (ro *RunOptionsConfig) SignalKeys() []common.SignalKey {
	if len(ro.SignalFilter) == 0 {
		return nil
	}
	keys := make([]common.SignalKey, len(ro.SignalFilter))
	for i, s := range ro.SignalFilter {
		keys[i] = common.SignalKey(s)
	}
	return keys
}
