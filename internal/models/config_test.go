package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateAcceptsMatchedSplit(t *testing.T) {
	in := HourInput{
		Destinations: []Route{
			{From: ED, To: Target(CC), Count: 2},
			{From: ED, To: Out, Count: 1},
		},
	}
	in.ReadyToExit.Set(ED, 3)

	if err := in.Validate(); err != nil {
		t.Errorf("Expected valid input, got %v", err)
	}
}

func TestValidateRejectsMismatchedSplit(t *testing.T) {
	tests := []struct {
		name   string
		ready  int
		routes []Route
	}{
		{"over-specified", 2, []Route{{From: SD, To: Out, Count: 3}}},
		{"under-specified", 3, []Route{{From: SD, To: Out, Count: 1}}},
		{"missing split", 2, nil},
		{"split without exits", 0, []Route{{From: SD, To: Out, Count: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := HourInput{Destinations: tt.routes}
			in.ReadyToExit.Set(SD, tt.ready)
			if err := in.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestValidateRejectsBadRoutes(t *testing.T) {
	tests := []struct {
		name  string
		route Route
	}{
		{"unknown source", Route{From: "ICU", To: Out, Count: 1}},
		{"unknown target", Route{From: SD, To: "ICU", Count: 1}},
		{"self route", Route{From: SD, To: Target(SD), Count: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := HourInput{Destinations: []Route{tt.route}}
			in.ReadyToExit.Set(SD, 1)
			if err := in.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestValidateClampsNegativeCounts(t *testing.T) {
	// Negative ready-to-exit clamps to 0, so an empty split matches
	var in HourInput
	in.ReadyToExit.Set(CC, -5)

	if err := in.Validate(); err != nil {
		t.Errorf("Expected negative ready-to-exit to clamp, got %v", err)
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	content := `{
		"flow_reward": 500,
		"hours": [
			{
				"ed_walkin_arrivals": 3,
				"external_arrivals": {"SD": 2},
				"ready_to_exit": {"SU": 1},
				"destinations": [{"from": "SU", "to": "OUT", "count": 1}]
			}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}

	if s.QualityWeight != DefaultQualityWeight {
		t.Errorf("Expected default quality weight %.1f, got %.1f", DefaultQualityWeight, s.QualityWeight)
	}
	if s.FlowReward != 500 {
		t.Errorf("Expected flow reward 500, got %.1f", s.FlowReward)
	}
	if len(s.Hours) != 1 {
		t.Fatalf("Expected 1 hour, got %d", len(s.Hours))
	}
	if s.Hours[0].EDWalkinArrivals != 3 || s.Hours[0].ExternalArrivals.SD != 2 {
		t.Error("Hour input fields not parsed")
	}
}

func TestLoadScenarioRejectsInvalidHour(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	content := `{
		"hours": [
			{"ready_to_exit": {"SD": 2}, "destinations": [{"from": "SD", "to": "OUT", "count": 1}]}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadScenario(path); err == nil {
		t.Error("Expected error for mismatched split, got nil")
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
