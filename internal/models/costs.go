package models

// EDCost holds the Emergency unit costs for one scoring dimension
type EDCost struct {
	Diversion  int
	Waiting    int // per patient held in any ED queue at end of hour
	ExtraStaff int
}

// WardCost holds the non-Emergency unit costs for one scoring dimension
type WardCost struct {
	ArrivalsWaiting int
	RequestsWaiting int // 0 where the dimension has no request term
	ExtraStaff      int
}

// CostTable is a statically checked per-department unit-cost lookup
type CostTable struct {
	ED EDCost
	SD WardCost
	CC WardCost
	SU WardCost
}

// Ward returns the cost entry for a non-Emergency department
func (c *CostTable) Ward(d Dept) WardCost {
	switch d {
	case SD:
		return c.SD
	case CC:
		return c.CC
	case SU:
		return c.SU
	}
	return WardCost{}
}

// FinancialCosts are the dollar unit costs from the game's scoring sheet
var FinancialCosts = CostTable{
	ED: EDCost{Diversion: 5000, Waiting: 150, ExtraStaff: 40},
	SD: WardCost{ArrivalsWaiting: 3750, ExtraStaff: 40},
	CC: WardCost{ArrivalsWaiting: 3750, ExtraStaff: 40},
	SU: WardCost{ArrivalsWaiting: 3750, ExtraStaff: 40},
}

// QualityCosts are the quality-penalty unit costs from the game's scoring sheet
var QualityCosts = CostTable{
	ED: EDCost{Diversion: 200, Waiting: 20, ExtraStaff: 5},
	SD: WardCost{ArrivalsWaiting: 20, RequestsWaiting: 20, ExtraStaff: 5},
	CC: WardCost{ArrivalsWaiting: 20, RequestsWaiting: 20, ExtraStaff: 5},
	SU: WardCost{ArrivalsWaiting: 20, RequestsWaiting: 20, ExtraStaff: 5},
}

// Totals holds the cumulative scoring counters for a game session.
// Counters only ever increase, so the derived cost figures are
// non-decreasing across hours.
type Totals struct {
	EDDiversions int `json:"ed_diversions"`
	EDWaiting    int `json:"ed_waiting"` // walk-in + ambulance + request queues at end of hour
	EDExtraStaff int `json:"ed_extra_staff"`

	ArrivalsWaiting DeptInts `json:"arrivals_waiting"` // wards only
	RequestsWaiting DeptInts `json:"requests_waiting"` // wards only
	ExtraStaff      DeptInts `json:"extra_staff"`      // wards only

	Admitted   int `json:"admitted"`
	Discharged int `json:"discharged"`
}

// FinancialCost returns the cumulative dollar cost
func (t *Totals) FinancialCost() int {
	total := t.EDDiversions*FinancialCosts.ED.Diversion +
		t.EDWaiting*FinancialCosts.ED.Waiting +
		t.EDExtraStaff*FinancialCosts.ED.ExtraStaff
	for _, d := range Wards() {
		c := FinancialCosts.Ward(d)
		total += t.ArrivalsWaiting.Get(d) * c.ArrivalsWaiting
		total += t.ExtraStaff.Get(d) * c.ExtraStaff
	}
	return total
}

// QualityPenalty returns the cumulative quality penalty
func (t *Totals) QualityPenalty() int {
	total := t.EDDiversions*QualityCosts.ED.Diversion +
		t.EDWaiting*QualityCosts.ED.Waiting +
		t.EDExtraStaff*QualityCosts.ED.ExtraStaff
	for _, d := range Wards() {
		c := QualityCosts.Ward(d)
		total += t.ArrivalsWaiting.Get(d) * c.ArrivalsWaiting
		total += t.RequestsWaiting.Get(d) * c.RequestsWaiting
		total += t.ExtraStaff.Get(d) * c.ExtraStaff
	}
	return total
}
