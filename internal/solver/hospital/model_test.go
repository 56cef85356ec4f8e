package hospital

import (
	"math"
	"testing"

	"github.com/napolitain/solver-er/internal/milp"
	"github.com/napolitain/solver-er/internal/models"
)

func testState() *models.GameState {
	gs := models.NewGameState()
	gs.Depts.ED.EDWalkinWaiting = 3
	gs.Depts.ED.EDAmbulanceWaiting = 5
	gs.Depts.ED.ReqWaitingMature = 1
	gs.Depts.SD.ExtWaiting = 7
	gs.Depts.CC.ReqWaitingMature = 2
	return gs
}

func findVar(m *milp.Model, name string) (milp.Var, *milp.VarDef) {
	for i := range m.Vars {
		if m.Vars[i].Name == name {
			return milp.Var(i), &m.Vars[i]
		}
	}
	return -1, nil
}

func findConstraint(m *milp.Model, name string) *milp.Constraint {
	for i := range m.Constraints {
		if m.Constraints[i].Name == name {
			return &m.Constraints[i]
		}
	}
	return nil
}

func coefOf(e milp.Expr, v milp.Var) float64 {
	var c float64
	for _, term := range e.Terms {
		if term.Var == v {
			c += term.Coef
		}
	}
	return c
}

func TestBuildModelVariableBounds(t *testing.T) {
	hm := buildModel(testState(), 1.0, 300.0)
	m := hm.model

	tests := []struct {
		name  string
		upper float64
	}{
		{"admit_ed_walkin", 3},
		{"admit_ed_ambulance", 5},
		{"divert_ed", 5},
		{"admit_ext_SD", 7},
		{"admit_ext_CC", 0},
		{"admit_req_ED", 1},
		{"admit_req_CC", 2},
		{"admit_req_SU", 0},
	}
	for _, tt := range tests {
		_, def := findVar(m, tt.name)
		if def == nil {
			t.Errorf("Missing variable %s", tt.name)
			continue
		}
		if def.Lower != 0 || def.Upper != tt.upper || !def.Integer {
			t.Errorf("%s: got bounds [%f, %f] integer=%v, want [0, %f] integer",
				tt.name, def.Lower, def.Upper, def.Integer, tt.upper)
		}
	}

	// Emergency admits only through the walk-in/ambulance queues
	if _, def := findVar(m, "admit_ext_ED"); def != nil {
		t.Error("ED must not have an external-admission variable")
	}

	for _, d := range models.AllDepts() {
		_, def := findVar(m, "extra_staff_"+string(d))
		if def == nil {
			t.Fatalf("Missing extra_staff_%s", d)
		}
		if !math.IsInf(def.Upper, 1) {
			t.Errorf("extra_staff_%s should be unbounded above", d)
		}
	}
}

func TestBuildModelAmbulanceSplit(t *testing.T) {
	hm := buildModel(testState(), 1.0, 300.0)

	c := findConstraint(hm.model, "ed_arrival_split")
	if c == nil {
		t.Fatal("Missing ed_arrival_split constraint")
	}
	if c.Type != milp.LessEq || c.RHS != 5 {
		t.Errorf("Split constraint wrong: type=%d rhs=%f", c.Type, c.RHS)
	}
	if coefOf(c.Expr, hm.admitEDAmbul) != 1 || coefOf(c.Expr, hm.divertED) != 1 {
		t.Error("Split constraint must cover admitted plus diverted ambulances")
	}
}

func TestBuildModelCapacityConstraints(t *testing.T) {
	gs := testState()
	hm := buildModel(gs, 1.0, 300.0)

	for _, d := range models.AllDepts() {
		room := findConstraint(hm.model, "room_capacity_"+string(d))
		if room == nil {
			t.Fatalf("Missing room_capacity_%s", d)
		}
		if room.RHS != float64(models.RoomCapacity(d)) {
			t.Errorf("%s room RHS = %f, want %d", d, room.RHS, models.RoomCapacity(d))
		}
		if room.Expr.Const != float64(gs.Depts.Get(d).Patients) {
			t.Errorf("%s room constant = %f, want current patients", d, room.Expr.Const)
		}
		if coefOf(room.Expr, hm.admitReq[d]) != 1 {
			t.Errorf("%s room constraint missing request admissions", d)
		}

		staff := findConstraint(hm.model, "staff_capacity_"+string(d))
		if staff == nil {
			t.Fatalf("Missing staff_capacity_%s", d)
		}
		if staff.RHS != float64(gs.Depts.Get(d).Staff) {
			t.Errorf("%s staff RHS = %f, want current staff", d, staff.RHS)
		}
		if coefOf(staff.Expr, hm.extraStaff[d]) != -1 {
			t.Errorf("%s staffing must be relaxed by extra staff", d)
		}
	}

	// ED admits through both split queues
	room := findConstraint(hm.model, "room_capacity_ED")
	if coefOf(room.Expr, hm.admitEDWalkin) != 1 || coefOf(room.Expr, hm.admitEDAmbul) != 1 {
		t.Error("ED room constraint must include walk-in and ambulance admissions")
	}
}

func TestObjectiveCoefficients(t *testing.T) {
	hm := buildModel(testState(), 1.0, 300.0)
	obj := hm.model.Objective

	// divert: financial 5000 + quality 200, minus the waiting unit it
	// removes from the end-of-hour ED queue (150 + 20)
	if got := coefOf(obj, hm.divertED); got != 5030 {
		t.Errorf("divert_ed coefficient = %f, want 5030", got)
	}
	// ED extra staff: 40 + 5
	if got := coefOf(obj, hm.extraStaff[models.ED]); got != 45 {
		t.Errorf("extra_staff_ED coefficient = %f, want 45", got)
	}
	// SD external admission: removes a waiting arrival (-3750 financial,
	// -20 quality) and earns the flow reward (-300)
	if got := coefOf(obj, hm.admitExt[models.SD]); got != -4070 {
		t.Errorf("admit_ext_SD coefficient = %f, want -4070", got)
	}
	// ED walk-in admission: leaves the combined ED waiting term
	// (-150 financial, -20 quality) and earns the reward
	if got := coefOf(obj, hm.admitEDWalkin); got != -470 {
		t.Errorf("admit_ed_walkin coefficient = %f, want -470", got)
	}
	// Ward request admission: quality requests-waiting only (-20) plus reward
	if got := coefOf(obj, hm.admitReq[models.CC]); got != -320 {
		t.Errorf("admit_req_CC coefficient = %f, want -320", got)
	}
}

func TestObjectiveWeights(t *testing.T) {
	hm := buildModel(testState(), 2.0, 500.0)
	obj := hm.model.Objective

	// divert: 5000 + 2*200 - (150 + 2*20)
	if got := coefOf(obj, hm.divertED); got != 5210 {
		t.Errorf("divert_ed coefficient = %f, want 5210", got)
	}
	// SD admission: -(3750 + 2*20 + 500)
	if got := coefOf(obj, hm.admitExt[models.SD]); got != -4290 {
		t.Errorf("admit_ext_SD coefficient = %f, want -4290", got)
	}
}

func TestModelNameCarriesHour(t *testing.T) {
	gs := testState()
	gs.Hour = 7
	hm := buildModel(gs, 1.0, 300.0)
	if hm.model.Name != "fnater_hour_7" {
		t.Errorf("Model name = %q", hm.model.Name)
	}
}
