// Package hospital decides one hour of the Friday Night at the ER game:
// it applies the hour's card data to the department queues, solves a
// one-hour admission/diversion/staffing MILP, and commits the solved
// decision back into game state with cumulative scoring.
package hospital

import (
	"fmt"

	"github.com/napolitain/solver-er/internal/milp"
	"github.com/napolitain/solver-er/internal/models"
)

// Options are the caller-supplied objective weights
type Options struct {
	QualityWeight float64
	FlowReward    float64
}

// DefaultOptions returns the weights used by the physical game aid
func DefaultOptions() Options {
	return Options{
		QualityWeight: models.DefaultQualityWeight,
		FlowReward:    models.DefaultFlowReward,
	}
}

// Metrics summarizes one optimized hour for the caller
type Metrics struct {
	FinancialTotal int     `json:"financial_total"`
	QualityTotal   int     `json:"quality_total"`
	Admitted       int     `json:"admitted_this_hour"`
	Discharged     int     `json:"discharged_this_hour"`
	ObjectiveValue float64 `json:"objective_value"`
}

// HourReport is the outcome of one successful hourly call
type HourReport struct {
	State     *models.GameState  `json:"state"`
	Decisions models.DecisionSet `json:"decisions"`
	Metrics   Metrics            `json:"metrics"`
}

// SolveError reports a non-optimal solver outcome for one hour. The
// caller's state is untouched when it is returned.
type SolveError struct {
	Hour   int
	Status milp.Status
	Model  *milp.Model
	Err    error // backend failure, if any
}

func (e *SolveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("optimization failed at hour %d: %v", e.Hour, e.Err)
	}
	return fmt.Sprintf("optimization failed at hour %d: status %s", e.Hour, e.Status)
}

func (e *SolveError) Unwrap() error { return e.Err }

// OptimizeHour runs one full game hour against gs: transition, solve,
// and decision application. The whole step is atomic; on a validation
// error or a non-optimal solve, gs is left exactly as it was. Callers
// must not invoke it concurrently against the same state.
func OptimizeHour(solver milp.Solver, gs *models.GameState, in *models.HourInput, opts Options) (*HourReport, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// Work on a snapshot; commit only after an optimal solve
	work := gs.Clone()

	discharged := applyHourStart(work, in)
	hm := buildModel(work, opts.QualityWeight, opts.FlowReward)

	sol, err := solver.Solve(hm.model)
	if err != nil {
		return nil, &SolveError{Hour: work.Hour, Status: milp.StatusError, Model: hm.model, Err: err}
	}
	if sol.Status != milp.StatusOptimal {
		return nil, &SolveError{Hour: work.Hour, Status: sol.Status, Model: hm.model}
	}

	decisions := applyDecision(work, hm, sol)
	admitted, dischargedTotal := accumulateTotals(work, &decisions, discharged)
	work.Hour++

	*gs = *work

	return &HourReport{
		State:     gs,
		Decisions: decisions,
		Metrics: Metrics{
			FinancialTotal: gs.Totals.FinancialCost(),
			QualityTotal:   gs.Totals.QualityPenalty(),
			Admitted:       admitted,
			Discharged:     dischargedTotal,
			ObjectiveValue: sol.Objective,
		},
	}, nil
}
