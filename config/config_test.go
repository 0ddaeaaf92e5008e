package config_test

import (
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/config"
)

const sampleScenarioTOML = `
[grid]
startMinute = 0
endMinute = 1440
stepMinutes = 5

[subject]
sex = "female"
ageYears = 32
weightKg = 65
heightCm = 168
cycleLengthDays = 28
cycleDay = 14

[[subject.conditions]]
key = "hypothyroidism"
severity = 0.4

[[timeline]]
id = "morning-coffee"
startMinute = 480
endMinute = 480
key = "caffeine"
intensity = 1.0

[options]
signalFilter = ["cortisol", "glucose"]
`

func decodeSample(t *testing.T) config.ScenarioConfig {
	t.Helper()
	var sc config.ScenarioConfig
	if _, err := toml.Decode(sampleScenarioTOML, &sc); err != nil {
		t.Fatalf("toml.Decode failed: %v", err)
	}
	return sc
}

func TestScenarioConfigDecodesGridSubjectAndTimeline(t *testing.T) {
	sc := decodeSample(t)

	if sc.Grid.StartMinute != 0 || sc.Grid.EndMinute != 1440 || sc.Grid.StepMinutes != 5 {
		t.Errorf("unexpected grid: %+v", sc.Grid)
	}
	if sc.Subject.Sex != "female" || sc.Subject.CycleDay != 14 {
		t.Errorf("unexpected subject: %+v", sc.Subject)
	}
	if len(sc.Subject.Conditions) != 1 || sc.Subject.Conditions[0].Key != "hypothyroidism" {
		t.Errorf("unexpected conditions: %+v", sc.Subject.Conditions)
	}
	if len(sc.Timeline) != 1 || sc.Timeline[0].Key != "caffeine" {
		t.Errorf("unexpected timeline: %+v", sc.Timeline)
	}
}

func TestScenarioConfigValidateAcceptsWellFormedScenario(t *testing.T) {
	sc := decodeSample(t)
	if err := sc.Validate(); err != nil {
		t.Fatalf("Validate failed for a well-formed scenario: %v", err)
	}
}

func TestScenarioConfigValidateRejectsNonPositiveStep(t *testing.T) {
	sc := decodeSample(t)
	sc.Grid.StepMinutes = 0
	if err := sc.Validate(); err == nil {
		t.Fatalf("expected Validate to reject a zero stepMinutes")
	}
}

func TestScenarioConfigValidateRejectsInvertedGrid(t *testing.T) {
	sc := decodeSample(t)
	sc.Grid.EndMinute = sc.Grid.StartMinute - 1
	if err := sc.Validate(); err == nil {
		t.Fatalf("expected Validate to reject endMinute before startMinute")
	}
}

func TestScenarioConfigValidateRejectsUnknownSex(t *testing.T) {
	sc := decodeSample(t)
	sc.Subject.Sex = "unspecified"
	if err := sc.Validate(); err == nil {
		t.Fatalf("expected Validate to reject an unrecognized sex string")
	}
}

func TestScenarioConfigValidateRejectsInvertedTimelineItem(t *testing.T) {
	sc := decodeSample(t)
	sc.Timeline[0].EndMinute = sc.Timeline[0].StartMinute - 1
	if err := sc.Validate(); err == nil {
		t.Fatalf("expected Validate to reject a timeline item with endMinute before startMinute")
	}
}

func TestScenarioConfigValidateRejectsEmptyTimelineKey(t *testing.T) {
	sc := decodeSample(t)
	sc.Timeline[0].Key = ""
	if err := sc.Validate(); err == nil {
		t.Fatalf("expected Validate to reject a timeline item with an empty key")
	}
}

func TestSubjectConfigToSubjectTranslatesSexAndConditions(t *testing.T) {
	sc := decodeSample(t)
	subj, err := sc.Subject.ToSubject()
	if err != nil {
		t.Fatalf("ToSubject failed: %v", err)
	}
	if subj.Sex != common.Female {
		t.Errorf("expected Female, got %v", subj.Sex)
	}
	if len(subj.Conditions) != 1 || subj.Conditions[0].Key != "hypothyroidism" || subj.Conditions[0].Severity != 0.4 {
		t.Errorf("unexpected translated conditions: %+v", subj.Conditions)
	}
}

func TestScenarioConfigToTimelineConvertsEveryItem(t *testing.T) {
	sc := decodeSample(t)
	items := sc.ToTimeline()
	if len(items) != 1 {
		t.Fatalf("expected 1 timeline item, got %d", len(items))
	}
	if items[0].ID != "morning-coffee" || items[0].Key != "caffeine" || items[0].Intensity != 1.0 {
		t.Errorf("unexpected converted timeline item: %+v", items[0])
	}
}

func TestRunOptionsConfigSignalKeysConvertsStrings(t *testing.T) {
	sc := decodeSample(t)
	keys := sc.Options.SignalKeys()
	if len(keys) != 2 || keys[0] != common.SignalKey("cortisol") || keys[1] != common.SignalKey("glucose") {
		t.Errorf("unexpected signal keys: %+v", keys)
	}
}

func TestRunOptionsConfigSignalKeysReturnsNilWhenUnset(t *testing.T) {
	ro := config.RunOptionsConfig{}
	if keys := ro.SignalKeys(); keys != nil {
		t.Errorf("expected nil signal keys for an unset filter, got %+v", keys)
	}
}
