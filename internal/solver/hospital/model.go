package hospital

import (
	"fmt"

	"github.com/napolitain/solver-er/internal/milp"
	"github.com/napolitain/solver-er/internal/models"
)

// hourModel is the integer program for one hour plus the variable handles
// needed to read the solution back out.
type hourModel struct {
	model *milp.Model

	admitExt       map[models.Dept]milp.Var // wards only; ED admits through the split queues
	admitReq       map[models.Dept]milp.Var
	extraStaff     map[models.Dept]milp.Var
	admitEDWalkin  milp.Var
	admitEDAmbul   milp.Var
	divertED       milp.Var
}

// buildModel constructs the hourly admission/diversion/staffing program
// over the post-transition state.
func buildModel(gs *models.GameState, qualityWeight, flowReward float64) *hourModel {
	m := milp.NewModel(fmt.Sprintf("fnater_hour_%d", gs.Hour), milp.Minimize)
	hm := &hourModel{
		model:      m,
		admitExt:   make(map[models.Dept]milp.Var),
		admitReq:   make(map[models.Dept]milp.Var),
		extraStaff: make(map[models.Dept]milp.Var),
	}

	ed := gs.Depts.Get(models.ED)

	// Admission variables, bounded by their queues
	for _, d := range models.Wards() {
		hm.admitExt[d] = m.AddIntVar(fmt.Sprintf("admit_ext_%s", d), 0, float64(gs.Depts.Get(d).ExtWaiting))
	}
	hm.admitEDWalkin = m.AddIntVar("admit_ed_walkin", 0, float64(ed.EDWalkinWaiting))
	hm.admitEDAmbul = m.AddIntVar("admit_ed_ambulance", 0, float64(ed.EDAmbulanceWaiting))
	for _, d := range models.AllDepts() {
		hm.admitReq[d] = m.AddIntVar(fmt.Sprintf("admit_req_%s", d), 0, float64(gs.Depts.Get(d).ReqWaitingMature))
	}
	for _, d := range models.AllDepts() {
		hm.extraStaff[d] = m.AddUnboundedIntVar(fmt.Sprintf("extra_staff_%s", d), 0)
	}
	hm.divertED = m.AddIntVar("divert_ed", 0, float64(ed.EDAmbulanceWaiting))

	// An ambulance arrival is either admitted or diverted, never both
	var split milp.Expr
	split.Add(hm.admitEDAmbul, 1)
	split.Add(hm.divertED, 1)
	m.AddConstraint("ed_arrival_split", split, milp.LessEq, float64(ed.EDAmbulanceWaiting))

	// Room capacity and staffing per department
	for _, d := range models.AllDepts() {
		dept := gs.Depts.Get(d)

		var patientsEnd milp.Expr
		patientsEnd.AddConst(float64(dept.Patients))
		if d == models.ED {
			patientsEnd.Add(hm.admitEDWalkin, 1)
			patientsEnd.Add(hm.admitEDAmbul, 1)
		} else {
			patientsEnd.Add(hm.admitExt[d], 1)
		}
		patientsEnd.Add(hm.admitReq[d], 1)

		m.AddConstraint(fmt.Sprintf("room_capacity_%s", d), patientsEnd, milp.LessEq, float64(models.RoomCapacity(d)))

		var staffRow milp.Expr
		staffRow.AddExpr(patientsEnd, 1)
		staffRow.Add(hm.extraStaff[d], -1)
		m.AddConstraint(fmt.Sprintf("staff_capacity_%s", d), staffRow, milp.LessEq, float64(dept.Staff))
	}

	m.SetObjective(hm.objective(gs, qualityWeight, flowReward))
	return hm
}

// endOfHourWaits returns the end-of-hour queue expressions used by both
// scoring dimensions of the objective.
func (hm *hourModel) endOfHourWaits(gs *models.GameState) (extWait map[models.Dept]milp.Expr, edWait milp.Expr, reqWait map[models.Dept]milp.Expr) {
	ed := gs.Depts.Get(models.ED)

	extWait = make(map[models.Dept]milp.Expr)
	for _, d := range models.Wards() {
		var e milp.Expr
		e.AddConst(float64(gs.Depts.Get(d).ExtWaiting))
		e.Add(hm.admitExt[d], -1)
		extWait[d] = e
	}

	// ED "waiting" aggregates walk-ins, ambulances, and requests
	edWait.AddConst(float64(ed.EDWalkinWaiting + ed.EDAmbulanceWaiting))
	edWait.Add(hm.admitEDWalkin, -1)
	edWait.Add(hm.admitEDAmbul, -1)
	edWait.Add(hm.divertED, -1)

	reqWait = make(map[models.Dept]milp.Expr)
	for _, d := range models.AllDepts() {
		dept := gs.Depts.Get(d)
		var e milp.Expr
		e.AddConst(float64(dept.ReqWaitingMature + dept.ReqWaitingNew))
		e.Add(hm.admitReq[d], -1)
		reqWait[d] = e
	}
	return extWait, edWait, reqWait
}

// objective is financial + qualityWeight*quality - flowReward*throughput
func (hm *hourModel) objective(gs *models.GameState, qualityWeight, flowReward float64) milp.Expr {
	extWait, edWait, reqWait := hm.endOfHourWaits(gs)

	var edCombined milp.Expr
	edCombined.AddExpr(edWait, 1)
	edCombined.AddExpr(reqWait[models.ED], 1)

	var financial milp.Expr
	financial.Add(hm.divertED, float64(models.FinancialCosts.ED.Diversion))
	financial.AddExpr(edCombined, float64(models.FinancialCosts.ED.Waiting))
	financial.Add(hm.extraStaff[models.ED], float64(models.FinancialCosts.ED.ExtraStaff))
	for _, d := range models.Wards() {
		c := models.FinancialCosts.Ward(d)
		financial.AddExpr(extWait[d], float64(c.ArrivalsWaiting))
		financial.Add(hm.extraStaff[d], float64(c.ExtraStaff))
	}

	var quality milp.Expr
	quality.Add(hm.divertED, float64(models.QualityCosts.ED.Diversion))
	quality.AddExpr(edCombined, float64(models.QualityCosts.ED.Waiting))
	quality.Add(hm.extraStaff[models.ED], float64(models.QualityCosts.ED.ExtraStaff))
	for _, d := range models.Wards() {
		c := models.QualityCosts.Ward(d)
		quality.AddExpr(extWait[d], float64(c.ArrivalsWaiting))
		quality.AddExpr(reqWait[d], float64(c.RequestsWaiting))
		quality.Add(hm.extraStaff[d], float64(c.ExtraStaff))
	}

	var throughput milp.Expr
	throughput.Add(hm.admitEDWalkin, 1)
	throughput.Add(hm.admitEDAmbul, 1)
	for _, d := range models.Wards() {
		throughput.Add(hm.admitExt[d], 1)
	}
	for _, d := range models.AllDepts() {
		throughput.Add(hm.admitReq[d], 1)
	}

	var obj milp.Expr
	obj.AddExpr(financial, 1)
	obj.AddExpr(quality, qualityWeight)
	obj.AddExpr(throughput, -flowReward)
	return obj
}
