package hospital

import "github.com/napolitain/solver-er/internal/models"

// accumulateTotals folds this hour's outcome into the cumulative scoring
// counters. Runs after decision application, so the waiting figures are
// the end-of-hour queues.
func accumulateTotals(gs *models.GameState, decisions *models.DecisionSet, discharged models.DeptInts) (admitted, dischargedTotal int) {
	ed := gs.Depts.Get(models.ED)
	t := &gs.Totals

	t.EDDiversions += decisions.ED.DivertAmbulances
	t.EDWaiting += ed.EDWalkinWaiting + ed.EDAmbulanceWaiting + ed.ReqWaitingMature
	t.EDExtraStaff += decisions.ED.CallExtraStaff

	for _, d := range models.Wards() {
		dept := gs.Depts.Get(d)
		t.ArrivalsWaiting.Add(d, dept.ExtWaiting)
		t.RequestsWaiting.Add(d, dept.ReqWaitingMature+dept.ReqWaitingNew)
		t.ExtraStaff.Add(d, decisions.Get(d).CallExtraStaff)
	}

	decisions.Each(func(_ models.Dept, rec *models.Decision) {
		admitted += rec.AdmitExternal + rec.AdmitRequests
	})
	discharged.Each(func(_ models.Dept, n int) {
		dischargedTotal += n
	})

	t.Admitted += admitted
	t.Discharged += dischargedTotal
	return admitted, dischargedTotal
}
