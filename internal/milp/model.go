// Package milp defines a small mixed-integer linear programming surface:
// a model of bounded variables, linear constraints, and a linear objective,
// solved through a pluggable backend.
package milp

import "math"

// Sense is the objective direction
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// Status is the outcome reported by a solver backend
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusUnbounded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Var is a handle to a model variable
type Var int

// VarDef describes one decision variable
type VarDef struct {
	Name    string
	Lower   float64
	Upper   float64 // math.Inf(1) for no upper bound
	Integer bool
}

// Term is one coefficient*variable product of a linear expression
type Term struct {
	Var  Var
	Coef float64
}

// Expr is a linear expression: sum of terms plus a constant
type Expr struct {
	Terms []Term
	Const float64
}

// Add appends a term to the expression
func (e *Expr) Add(v Var, coef float64) {
	e.Terms = append(e.Terms, Term{Var: v, Coef: coef})
}

// AddConst adds a constant to the expression
func (e *Expr) AddConst(c float64) {
	e.Const += c
}

// AddExpr adds scale*o to the expression
func (e *Expr) AddExpr(o Expr, scale float64) {
	for _, t := range o.Terms {
		e.Terms = append(e.Terms, Term{Var: t.Var, Coef: t.Coef * scale})
	}
	e.Const += o.Const * scale
}

// Eval computes the expression value under an assignment indexed by Var
func (e *Expr) Eval(values []float64) float64 {
	total := e.Const
	for _, t := range e.Terms {
		if int(t.Var) >= 0 && int(t.Var) < len(values) {
			total += t.Coef * values[t.Var]
		}
	}
	return total
}

// BoundType is the relation of a constraint to its right-hand side
type BoundType int

const (
	LessEq BoundType = iota
	GreaterEq
	Equal
)

// Constraint is one linear constraint row
type Constraint struct {
	Name string
	Expr Expr
	Type BoundType
	RHS  float64
}

// Model is a mixed-integer linear program
type Model struct {
	Name        string
	Sense       Sense
	Vars        []VarDef
	Constraints []Constraint
	Objective   Expr
}

// NewModel creates an empty model
func NewModel(name string, sense Sense) *Model {
	return &Model{Name: name, Sense: sense}
}

// AddIntVar adds a bounded integer variable and returns its handle
func (m *Model) AddIntVar(name string, lower, upper float64) Var {
	m.Vars = append(m.Vars, VarDef{Name: name, Lower: lower, Upper: upper, Integer: true})
	return Var(len(m.Vars) - 1)
}

// AddUnboundedIntVar adds an integer variable with no upper bound
func (m *Model) AddUnboundedIntVar(name string, lower float64) Var {
	return m.AddIntVar(name, lower, math.Inf(1))
}

// AddConstraint adds a linear constraint row
func (m *Model) AddConstraint(name string, expr Expr, typ BoundType, rhs float64) {
	m.Constraints = append(m.Constraints, Constraint{Name: name, Expr: expr, Type: typ, RHS: rhs})
}

// SetObjective sets the linear objective expression
func (m *Model) SetObjective(e Expr) {
	m.Objective = e
}

// Solution carries a solved assignment: one value per variable
type Solution struct {
	Status    Status
	Objective float64
	Values    []float64 // indexed by Var
}

// Value returns the solved value of a variable
func (s *Solution) Value(v Var) float64 {
	if int(v) < 0 || int(v) >= len(s.Values) {
		return 0
	}
	return s.Values[v]
}

// IntValue returns the solved value rounded to the nearest integer
func (s *Solution) IntValue(v Var) int {
	return int(math.Round(s.Value(v)))
}

// Solver solves a model. Implementations report non-optimal outcomes
// through Solution.Status; an error means the backend itself failed.
type Solver interface {
	Solve(m *Model) (*Solution, error)
}
