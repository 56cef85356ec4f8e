package glpk

import (
	"testing"

	"github.com/napolitain/solver-er/internal/milp"
)

func TestSolveSimpleMinimization(t *testing.T) {
	// min 3x + 2y  s.t.  x + y >= 4, x <= 3
	m := milp.NewModel("simple", milp.Minimize)
	x := m.AddIntVar("x", 0, 3)
	y := m.AddIntVar("y", 0, 10)

	var cover milp.Expr
	cover.Add(x, 1)
	cover.Add(y, 1)
	m.AddConstraint("cover", cover, milp.GreaterEq, 4)

	var obj milp.Expr
	obj.Add(x, 3)
	obj.Add(y, 2)
	m.SetObjective(obj)

	sol, err := New().Solve(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.Status != milp.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", sol.Status)
	}

	// Cheapest cover is y alone
	if sol.IntValue(x) != 0 || sol.IntValue(y) != 4 {
		t.Errorf("Expected x=0 y=4, got x=%d y=%d", sol.IntValue(x), sol.IntValue(y))
	}
	if sol.Objective != 8 {
		t.Errorf("Objective = %f, want 8", sol.Objective)
	}
}

func TestSolveMaximizationWithEquality(t *testing.T) {
	// max x + 2y  s.t.  x + y = 5, y <= 3
	m := milp.NewModel("eq", milp.Maximize)
	x := m.AddIntVar("x", 0, 10)
	y := m.AddIntVar("y", 0, 3)

	var sum milp.Expr
	sum.Add(x, 1)
	sum.Add(y, 1)
	m.AddConstraint("total", sum, milp.Equal, 5)

	var obj milp.Expr
	obj.Add(x, 1)
	obj.Add(y, 2)
	m.SetObjective(obj)

	sol, err := New().Solve(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.Status != milp.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", sol.Status)
	}
	if sol.IntValue(x) != 2 || sol.IntValue(y) != 3 {
		t.Errorf("Expected x=2 y=3, got x=%d y=%d", sol.IntValue(x), sol.IntValue(y))
	}
}

func TestSolveUnboundedVariableStaysFinite(t *testing.T) {
	// extra-staff style: unbounded var only pulled up by a covering constraint
	m := milp.NewModel("unbounded-var", milp.Minimize)
	x := m.AddUnboundedIntVar("x", 0)

	var need milp.Expr
	need.Add(x, 1)
	m.AddConstraint("need", need, milp.GreaterEq, 7)

	var obj milp.Expr
	obj.Add(x, 1)
	m.SetObjective(obj)

	sol, err := New().Solve(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.Status != milp.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", sol.Status)
	}
	if sol.IntValue(x) != 7 {
		t.Errorf("Expected x=7, got %d", sol.IntValue(x))
	}
}

func TestSolveObjectiveConstant(t *testing.T) {
	// Constant terms shift the reported objective value
	m := milp.NewModel("const", milp.Minimize)
	x := m.AddIntVar("x", 2, 2)

	var obj milp.Expr
	obj.Add(x, 1)
	obj.AddConst(10)
	m.SetObjective(obj)

	sol, err := New().Solve(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.Objective != 12 {
		t.Errorf("Objective = %f, want 12", sol.Objective)
	}
}
