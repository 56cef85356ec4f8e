package models

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// DefaultQualityWeight scales the quality penalty in the hourly objective
	DefaultQualityWeight = 1.0
	// DefaultFlowReward is the per-admission reward in the hourly objective
	DefaultFlowReward = 300.0
)

// Scenario is a replayable game session: objective weights plus the
// ordered card data for each hour.
type Scenario struct {
	QualityWeight float64     `json:"quality_weight"`
	FlowReward    float64     `json:"flow_reward"`
	Hours         []HourInput `json:"hours"`
}

// LoadScenario loads a scenario from a JSON file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := &Scenario{
		QualityWeight: DefaultQualityWeight,
		FlowReward:    DefaultFlowReward,
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	for i := range s.Hours {
		if err := s.Hours[i].Validate(); err != nil {
			return nil, fmt.Errorf("hour %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Validate checks one hour of card data before it is allowed to touch
// game state. Negative counts in arrivals, exits, and routes are treated
// as zero (staff deltas stay signed); a destination split whose total
// does not match the declared ready-to-exit count is an error.
func (in *HourInput) Validate() error {
	for _, r := range in.Destinations {
		if !r.From.Valid() {
			return fmt.Errorf("unknown source department %q in destination split", r.From)
		}
		if !r.To.Valid() {
			return fmt.Errorf("unknown destination %q in split from %s", r.To, r.From)
		}
		if Dept(r.To) == r.From {
			return fmt.Errorf("%s routes patients to itself", r.From)
		}
	}

	for _, d := range AllDepts() {
		ready := ClampNonNegative(in.ReadyToExit.Get(d))
		split := 0
		for _, r := range in.Destinations {
			if r.From == d {
				split += ClampNonNegative(r.Count)
			}
		}
		if split != ready {
			return fmt.Errorf("%s destination split is %d, but ready-to-exit is %d",
				d.DisplayName(), split, ready)
		}
	}
	return nil
}
