package hospital

import (
	"github.com/napolitain/solver-er/internal/milp"
	"github.com/napolitain/solver-er/internal/models"
)

// applyDecision writes the solved assignment back into department state
// and produces the per-department decision records. Solved values are
// rounded to the nearest integer and then reconciled so that no queue
// goes negative and patients never exceed rooms or staff.
func applyDecision(gs *models.GameState, hm *hourModel, sol *milp.Solution) models.DecisionSet {
	var decisions models.DecisionSet

	for _, d := range models.AllDepts() {
		dept := gs.Depts.Get(d)
		rec := decisions.Get(d)

		extraStaff := models.ClampNonNegative(sol.IntValue(hm.extraStaff[d]))
		admitReq := clampRange(sol.IntValue(hm.admitReq[d]), dept.ReqWaitingMature)

		if d == models.ED {
			walkins := clampRange(sol.IntValue(hm.admitEDWalkin), dept.EDWalkinWaiting)
			ambulance := clampRange(sol.IntValue(hm.admitEDAmbul), dept.EDAmbulanceWaiting)
			walkins, ambulance, admitReq = reconcile3(d, dept, extraStaff, walkins, ambulance, admitReq)

			dept.Patients += walkins + ambulance + admitReq
			dept.EDWalkinWaiting -= walkins
			dept.EDAmbulanceWaiting -= ambulance

			rec.AdmitWalkins = walkins
			rec.AdmitAmbulance = ambulance
			rec.AdmitExternal = walkins + ambulance
		} else {
			admitExt := clampRange(sol.IntValue(hm.admitExt[d]), dept.ExtWaiting)
			admitExt, admitReq = reconcile2(d, dept, extraStaff, admitExt, admitReq)

			dept.Patients += admitExt + admitReq
			dept.ExtWaiting -= admitExt

			rec.AdmitExternal = admitExt
		}

		dept.ReqWaitingMature -= admitReq
		dept.Staff += extraStaff

		rec.AdmitRequests = admitReq
		rec.CallExtraStaff = extraStaff
	}

	// Diversion only draws from the ambulance queue
	ed := gs.Depts.Get(models.ED)
	diverted := clampRange(sol.IntValue(hm.divertED), ed.EDAmbulanceWaiting)
	ed.EDAmbulanceWaiting -= diverted
	decisions.ED.DivertAmbulances = diverted

	return decisions
}

// admissionRoom returns how many admissions d can take given rooms and
// staff including the called extras.
func admissionRoom(d models.Dept, dept *models.Department, extraStaff int) int {
	room := models.RoomCapacity(d) - dept.Patients
	staffed := dept.Staff + extraStaff - dept.Patients
	return models.ClampNonNegative(min(room, staffed))
}

// reconcile2 trims rounded admissions that would breach capacity,
// dropping request admissions before external ones.
func reconcile2(d models.Dept, dept *models.Department, extraStaff, admitExt, admitReq int) (int, int) {
	room := admissionRoom(d, dept, extraStaff)
	if admitExt+admitReq <= room {
		return admitExt, admitReq
	}
	over := admitExt + admitReq - room
	cut := min(over, admitReq)
	admitReq -= cut
	over -= cut
	admitExt -= min(over, admitExt)
	return admitExt, admitReq
}

func reconcile3(d models.Dept, dept *models.Department, extraStaff, walkins, ambulance, admitReq int) (int, int, int) {
	room := admissionRoom(d, dept, extraStaff)
	if walkins+ambulance+admitReq <= room {
		return walkins, ambulance, admitReq
	}
	over := walkins + ambulance + admitReq - room
	cut := min(over, admitReq)
	admitReq -= cut
	over -= cut
	cut = min(over, ambulance)
	ambulance -= cut
	over -= cut
	walkins -= min(over, walkins)
	return walkins, ambulance, admitReq
}

func clampRange(n, upper int) int {
	return models.ClampNonNegative(min(n, upper))
}
