package hospital

import "github.com/napolitain/solver-er/internal/models"

// rollRequestAge makes last hour's new transfer requests admissible.
// Runs at hour start, before this hour's departures create new ones, so a
// request created in hour h is never admissible before hour h+1.
func rollRequestAge(gs *models.GameState) {
	gs.Depts.Each(func(_ models.Dept, dept *models.Department) {
		dept.ReqWaitingMature += dept.ReqWaitingNew
		dept.ReqWaitingNew = 0
	})
}

// applyDepartures removes departing patients and routes them to their
// destinations. The split is consumed in a fixed order, discharge first
// and then the other departments in enumeration order, each entry clipped
// to the departures still unallocated. Whatever the split leaves
// unallocated counts as discharged. Returns per-department discharges.
func applyDepartures(gs *models.GameState, in *models.HourInput) models.DeptInts {
	var discharged models.DeptInts

	for _, d := range models.AllDepts() {
		dept := gs.Depts.Get(d)
		requested := models.ClampNonNegative(in.ReadyToExit.Get(d))
		actual := min(requested, dept.Patients)
		dept.Patients -= actual

		remaining := actual
		out := min(in.DestinationCount(d, models.Out), remaining)
		remaining -= out
		discharged.Set(d, out)

		for _, t := range models.AllDepts() {
			if t == d || remaining <= 0 {
				continue
			}
			routed := min(in.DestinationCount(d, models.Target(t)), remaining)
			gs.Depts.Get(t).ReqWaitingNew += routed
			remaining -= routed
		}

		// Under-specified split: spill the rest as discharged
		if remaining > 0 {
			discharged.Add(d, remaining)
		}
	}
	return discharged
}

// applyArrivalsAndStaffing queues this hour's arrivals and applies the
// staffing shock. Negative arrival counts are clamped; staff never drops
// below zero.
func applyArrivalsAndStaffing(gs *models.GameState, in *models.HourInput) {
	for _, d := range models.AllDepts() {
		dept := gs.Depts.Get(d)
		if d == models.ED {
			dept.EDWalkinWaiting += models.ClampNonNegative(in.EDWalkinArrivals)
			dept.EDAmbulanceWaiting += models.ClampNonNegative(in.EDAmbulanceArrivals)
		} else {
			dept.ExtWaiting += models.ClampNonNegative(in.ExternalArrivals.Get(d))
		}
		dept.Staff = models.ClampNonNegative(dept.Staff + in.StaffDelta.Get(d))
	}
}

// applyHourStart runs the full pre-optimization transition for one hour
// and returns the per-department discharge counts.
func applyHourStart(gs *models.GameState, in *models.HourInput) models.DeptInts {
	rollRequestAge(gs)
	discharged := applyDepartures(gs, in)
	applyArrivalsAndStaffing(gs, in)
	return discharged
}
