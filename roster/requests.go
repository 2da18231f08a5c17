package roster

// =============================================================================
// SHIFT REQUEST - Standing employee request for a specific date
// =============================================================================

// RequestType is a two-variant tag: an employee either must rest on a date
// or wants to work on it. The stored tags ("holiday"/"work") match the
// upstream request-submission system.
type RequestType string

const (
	RequestRest RequestType = "holiday"
	RequestWork RequestType = "work"
)

func (t RequestType) Valid() bool {
	return t == RequestRest || t == RequestWork
}

// ShiftRequest is one (employee, date) request. The generator consumes
// requests read-only; ID and Notes exist for the storage collaborator.
type ShiftRequest struct {
	ID         int64
	EmployeeID EmployeeID
	Date       Date
	Type       RequestType
	Notes      string
}

// =============================================================================
// REQUEST CLASSIFIER - Partition requests into rest/work lookup sets
// =============================================================================

// RequestSets holds the classified requests keyed by (employee, date).
type RequestSets struct {
	Rest map[EmployeeID]map[Date]bool
	Work map[EmployeeID]map[Date]bool
}

func (rs RequestSets) WantsRest(id EmployeeID, d Date) bool { return rs.Rest[id][d] }
func (rs RequestSets) WantsWork(id EmployeeID, d Date) bool { return rs.Work[id][d] }

// ClassifyRequests partitions the requests whose date falls in the period.
// Upstream enforces one request per employee per date, but if the same slot
// somehow carries both variants, REST wins: the rest set is built first and
// a work request never lands on a date already marked rest.
func ClassifyRequests(requests []ShiftRequest, p Period) RequestSets {
	sets := RequestSets{
		Rest: make(map[EmployeeID]map[Date]bool),
		Work: make(map[EmployeeID]map[Date]bool),
	}

	for _, r := range requests {
		if r.Type != RequestRest || !p.Contains(r.Date) {
			continue
		}
		if sets.Rest[r.EmployeeID] == nil {
			sets.Rest[r.EmployeeID] = make(map[Date]bool)
		}
		sets.Rest[r.EmployeeID][r.Date] = true
	}

	for _, r := range requests {
		if r.Type != RequestWork || !p.Contains(r.Date) {
			continue
		}
		if sets.Rest[r.EmployeeID][r.Date] {
			continue // rest takes precedence
		}
		if sets.Work[r.EmployeeID] == nil {
			sets.Work[r.EmployeeID] = make(map[Date]bool)
		}
		sets.Work[r.EmployeeID][r.Date] = true
	}

	return sets
}
