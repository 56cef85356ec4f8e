// Package glpk solves milp models with the GNU Linear Programming Kit.
package glpk

import (
	"fmt"
	"math"

	glp "github.com/lukpank/go-glpk/glpk"

	"github.com/napolitain/solver-er/internal/milp"
)

// Solver is a milp.Solver backed by GLPK's simplex + branch-and-cut
type Solver struct{}

// New creates a GLPK-backed solver
func New() *Solver {
	return &Solver{}
}

// Solve translates the model into a GLPK problem, runs the LP relaxation
// and the integer optimizer, and extracts the MIP solution.
func (s *Solver) Solve(m *milp.Model) (*milp.Solution, error) {
	lp := glp.New()
	defer lp.Delete()

	lp.SetProbName(m.Name)
	if m.Sense == milp.Maximize {
		lp.SetObjDir(glp.ObjDir(glp.MAX))
	} else {
		lp.SetObjDir(glp.ObjDir(glp.MIN))
	}

	// Columns (1-based in GLPK)
	if len(m.Vars) > 0 {
		lp.AddCols(len(m.Vars))
	}
	for i, v := range m.Vars {
		col := i + 1
		lp.SetColName(col, v.Name)
		if v.Integer {
			lp.SetColKind(col, glp.VarType(glp.IV))
		}
		switch {
		case math.IsInf(v.Upper, 1):
			lp.SetColBnds(col, glp.BndsType(glp.LO), v.Lower, 0)
		case v.Lower == v.Upper:
			lp.SetColBnds(col, glp.BndsType(glp.FX), v.Lower, v.Upper)
		default:
			lp.SetColBnds(col, glp.BndsType(glp.DB), v.Lower, v.Upper)
		}
	}

	// Rows; constants move to the right-hand side
	if len(m.Constraints) > 0 {
		lp.AddRows(len(m.Constraints))
	}
	for i, c := range m.Constraints {
		row := i + 1
		lp.SetRowName(row, c.Name)
		rhs := c.RHS - c.Expr.Const
		switch c.Type {
		case milp.LessEq:
			lp.SetRowBnds(row, glp.BndsType(glp.UP), 0, rhs)
		case milp.GreaterEq:
			lp.SetRowBnds(row, glp.BndsType(glp.LO), rhs, 0)
		case milp.Equal:
			lp.SetRowBnds(row, glp.BndsType(glp.FX), rhs, rhs)
		}

		// Coefficient arrays are 1-based; element 0 is ignored by GLPK
		coefs := collectCoefs(c.Expr, len(m.Vars))
		ind := []int32{0}
		val := []float64{0}
		for j, coef := range coefs {
			if coef != 0 {
				ind = append(ind, int32(j+1))
				val = append(val, coef)
			}
		}
		lp.SetMatRow(row, ind, val)
	}

	// Objective; index 0 carries the constant term
	for j, coef := range collectCoefs(m.Objective, len(m.Vars)) {
		if coef != 0 {
			lp.SetObjCoef(j+1, coef)
		}
	}
	if m.Objective.Const != 0 {
		lp.SetObjCoef(0, m.Objective.Const)
	}

	smcp := glp.NewSmcp()
	smcp.SetMsgLev(glp.MsgLev(glp.MSG_ERR))
	if err := lp.Simplex(smcp); err != nil {
		return nil, fmt.Errorf("glpk simplex: %w", err)
	}

	iocp := glp.NewIocp()
	iocp.SetPresolve(true)
	iocp.SetMsgLev(glp.MsgLev(glp.MSG_ERR))
	if err := lp.Intopt(iocp); err != nil {
		return nil, fmt.Errorf("glpk intopt: %w", err)
	}

	sol := &milp.Solution{
		Status: statusOf(lp.MipStatus()),
		Values: make([]float64, len(m.Vars)),
	}
	if sol.Status == milp.StatusOptimal {
		sol.Objective = lp.MipObjVal()
		for i := range m.Vars {
			sol.Values[i] = lp.MipColVal(i + 1)
		}
	}
	return sol, nil
}

// collectCoefs folds duplicate terms into one dense coefficient row
func collectCoefs(e milp.Expr, n int) []float64 {
	coefs := make([]float64, n)
	for _, t := range e.Terms {
		coefs[t.Var] += t.Coef
	}
	return coefs
}

func statusOf(st glp.SolStat) milp.Status {
	switch st {
	case glp.OPT:
		return milp.StatusOptimal
	case glp.NOFEAS:
		return milp.StatusInfeasible
	case glp.UNBND:
		return milp.StatusUnbounded
	}
	return milp.StatusError
}
