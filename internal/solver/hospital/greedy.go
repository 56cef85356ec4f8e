package hospital

import (
	"github.com/napolitain/solver-er/internal/milp"
	"github.com/napolitain/solver-er/internal/models"
)

// GreedyHour plays one hour with a rule-based policy instead of the
// integer program: admit into free rooms in order of holding cost, call
// an extra staff-hour whenever a held patient costs more than the call,
// and never divert. It shares the transition, application, and scoring
// path with OptimizeHour and exists as a baseline to check it against.
func GreedyHour(gs *models.GameState, in *models.HourInput, opts Options) (*HourReport, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	work := gs.Clone()

	discharged := applyHourStart(work, in)
	hm := buildModel(work, opts.QualityWeight, opts.FlowReward)
	sol := greedyAssign(work, hm, opts)

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

// greedyAssign fills a feasible assignment for the hour model by rule.
func greedyAssign(gs *models.GameState, hm *hourModel, opts Options) *milp.Solution {
	values := make([]float64, len(hm.model.Vars))

	// Extra staff costs the same in every department
	extraCost := float64(models.FinancialCosts.ED.ExtraStaff) +
		opts.QualityWeight*float64(models.QualityCosts.ED.ExtraStaff)

	for _, d := range models.AllDepts() {
		dept := gs.Depts.Get(d)
		rooms := models.RoomCapacity(d) - dept.Patients
		staffFree := dept.Staff - dept.Patients
		admits := 0

		// take admits up to avail patients from one queue, spending a
		// room each and buying staff only when the held unit costs more
		take := func(avail int, benefit float64, v milp.Var) {
			n := 0
			for n < avail && rooms > 0 {
				if staffFree-admits <= 0 && benefit <= extraCost {
					break
				}
				n++
				admits++
				rooms--
			}
			values[v] += float64(n)
		}

		if d == models.ED {
			// Walk-ins, ambulances, and requests share the ED holding cost
			benefit := float64(models.FinancialCosts.ED.Waiting) +
				opts.QualityWeight*float64(models.QualityCosts.ED.Waiting) +
				opts.FlowReward
			take(dept.EDWalkinWaiting, benefit, hm.admitEDWalkin)
			take(dept.EDAmbulanceWaiting, benefit, hm.admitEDAmbul)
			take(dept.ReqWaitingMature, benefit, hm.admitReq[d])
		} else {
			fc := models.FinancialCosts.Ward(d)
			qc := models.QualityCosts.Ward(d)
			take(dept.ExtWaiting,
				float64(fc.ArrivalsWaiting)+opts.QualityWeight*float64(qc.ArrivalsWaiting)+opts.FlowReward,
				hm.admitExt[d])
			take(dept.ReqWaitingMature,
				opts.QualityWeight*float64(qc.RequestsWaiting)+opts.FlowReward,
				hm.admitReq[d])
		}

		// Staffing shortfalls are always covered, admissions or not
		if extra := dept.Patients + admits - dept.Staff; extra > 0 {
			values[hm.extraStaff[d]] = float64(extra)
		}
	}

	return &milp.Solution{
		Status:    milp.StatusOptimal,
		Objective: hm.model.Objective.Eval(values),
		Values:    values,
	}
}
