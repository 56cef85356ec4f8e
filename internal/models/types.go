package models

// Dept identifies one of the four hospital departments
type Dept string

const (
	ED Dept = "ED" // Emergency Department
	SD Dept = "SD" // Step Down
	CC Dept = "CC" // Critical Care
	SU Dept = "SU" // Surgery
)

// AllDepts returns all departments in deterministic order
func AllDepts() []Dept {
	return []Dept{ED, SD, CC, SU}
}

// Wards returns the non-Emergency departments in deterministic order
func Wards() []Dept {
	return []Dept{SD, CC, SU}
}

// Valid reports whether d is a known department
func (d Dept) Valid() bool {
	switch d {
	case ED, SD, CC, SU:
		return true
	}
	return false
}

// DisplayName returns the full department name
func (d Dept) DisplayName() string {
	switch d {
	case ED:
		return "Emergency Department"
	case SD:
		return "Step Down"
	case CC:
		return "Critical Care"
	case SU:
		return "Surgery"
	}
	return string(d)
}

// RoomCapacity returns the fixed number of rooms per department
func RoomCapacity(d Dept) int {
	switch d {
	case ED:
		return 25
	case SD:
		return 30
	case CC:
		return 18
	case SU:
		return 9
	}
	return 0
}

// DeptInts is a deterministic per-department int holder (replaces map[Dept]int)
type DeptInts struct {
	ED int `json:"ED"`
	SD int `json:"SD"`
	CC int `json:"CC"`
	SU int `json:"SU"`
}

// Get returns the value for a department
func (v *DeptInts) Get(d Dept) int {
	switch d {
	case ED:
		return v.ED
	case SD:
		return v.SD
	case CC:
		return v.CC
	case SU:
		return v.SU
	}
	return 0
}

// Set sets the value for a department
func (v *DeptInts) Set(d Dept, n int) {
	switch d {
	case ED:
		v.ED = n
	case SD:
		v.SD = n
	case CC:
		v.CC = n
	case SU:
		v.SU = n
	}
}

// Add adds n to the value for a department
func (v *DeptInts) Add(d Dept, n int) {
	v.Set(d, v.Get(d)+n)
}

// Each iterates over all departments in deterministic order
func (v *DeptInts) Each(fn func(Dept, int)) {
	fn(ED, v.ED)
	fn(SD, v.SD)
	fn(CC, v.CC)
	fn(SU, v.SU)
}

// Department holds the mutable per-department state for one hour
type Department struct {
	Patients int `json:"patients"`
	Staff    int `json:"staff"`

	// Queues, all non-negative
	ExtWaiting         int `json:"ext_waiting"`          // external arrivals (wards only)
	EDWalkinWaiting    int `json:"ed_walkin_waiting"`    // ED only
	EDAmbulanceWaiting int `json:"ed_ambulance_waiting"` // ED only
	ReqWaitingMature   int `json:"req_waiting_mature"`   // transfer requests admissible this hour
	ReqWaitingNew      int `json:"req_waiting_new"`      // transfer requests created this hour
}

// Departments is a deterministic per-department state holder
type Departments struct {
	ED Department `json:"ED"`
	SD Department `json:"SD"`
	CC Department `json:"CC"`
	SU Department `json:"SU"`
}

// Get returns a pointer to the state of a department
func (ds *Departments) Get(d Dept) *Department {
	switch d {
	case ED:
		return &ds.ED
	case SD:
		return &ds.SD
	case CC:
		return &ds.CC
	case SU:
		return &ds.SU
	}
	return nil
}

// Each iterates over all department states in deterministic order
func (ds *Departments) Each(fn func(Dept, *Department)) {
	fn(ED, &ds.ED)
	fn(SD, &ds.SD)
	fn(CC, &ds.CC)
	fn(SU, &ds.SU)
}

// GameState represents the full simulation state for one game session.
// It contains only value types, so assignment is a deep copy.
type GameState struct {
	Hour   int         `json:"hour"`
	Depts  Departments `json:"depts"`
	Totals Totals      `json:"totals"`
}

// NewGameState creates the fixed State-0 configuration at hour 1
func NewGameState() *GameState {
	return &GameState{
		Hour: 1,
		Depts: Departments{
			ED: Department{Patients: 16, Staff: 18},
			SD: Department{Patients: 22, Staff: 24},
			CC: Department{Patients: 12, Staff: 13},
			SU: Department{Patients: 4, Staff: 6},
		},
	}
}

// Clone returns a deep copy of the state
func (gs *GameState) Clone() *GameState {
	c := *gs
	return &c
}

// Target is a routing destination: a department, or Out for discharge
type Target string

// Out routes a departing patient out of the facility entirely
const Out Target = "OUT"

// Valid reports whether t is a department or Out
func (t Target) Valid() bool {
	return t == Out || Dept(t).Valid()
}

// Route is one destination-split entry of an hour's card data
type Route struct {
	From  Dept   `json:"from"`
	To    Target `json:"to"`
	Count int    `json:"count"`
}

// HourInput carries one hour of card data collected from the physical game
type HourInput struct {
	ExternalArrivals    DeptInts `json:"external_arrivals"` // wards only; ED field ignored
	EDWalkinArrivals    int      `json:"ed_walkin_arrivals"`
	EDAmbulanceArrivals int      `json:"ed_ambulance_arrivals"`
	StaffDelta          DeptInts `json:"staff_delta"` // signed: staff called away or returning
	ReadyToExit         DeptInts `json:"ready_to_exit"`
	Destinations        []Route  `json:"destinations"`
}

// DestinationCount returns the (clamped) routed count from one department to a target
func (in *HourInput) DestinationCount(from Dept, to Target) int {
	n := 0
	for _, r := range in.Destinations {
		if r.From == from && r.To == to {
			n += ClampNonNegative(r.Count)
		}
	}
	return n
}

// ClampNonNegative floors a count at zero
func ClampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Decision is the solved action set for one department for one hour
type Decision struct {
	AdmitExternal  int `json:"admit_external"`
	AdmitRequests  int `json:"admit_requests"`
	CallExtraStaff int `json:"call_extra_staff"`

	// ED only
	AdmitWalkins     int `json:"admit_walkins,omitempty"`
	AdmitAmbulance   int `json:"admit_ambulance,omitempty"`
	DivertAmbulances int `json:"divert_ambulances,omitempty"`
}

// DecisionSet holds one decision record per department
type DecisionSet struct {
	ED Decision `json:"ED"`
	SD Decision `json:"SD"`
	CC Decision `json:"CC"`
	SU Decision `json:"SU"`
}

// Get returns a pointer to the decision for a department
func (s *DecisionSet) Get(d Dept) *Decision {
	switch d {
	case ED:
		return &s.ED
	case SD:
		return &s.SD
	case CC:
		return &s.CC
	case SU:
		return &s.SU
	}
	return nil
}

// Each iterates over all decisions in deterministic order
func (s *DecisionSet) Each(fn func(Dept, *Decision)) {
	fn(ED, &s.ED)
	fn(SD, &s.SD)
	fn(CC, &s.CC)
	fn(SU, &s.SU)
}
