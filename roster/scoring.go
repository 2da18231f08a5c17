/*
scoring.go - Fairness ranking of candidates for an open slot

PURPOSE:
  When several employees could fill a slot, the engine prefers whoever is
  furthest below the roster's average accumulated hours, with a flat bonus
  for covering a team not yet represented that day. Scoring is a pure
  function of the current schedule snapshot; the roster average is
  recomputed once per fill pass, not incrementally cached, to keep the
  ranking auditable.

SCORE:
  100 + (rosterAverageHours - employeeHours) [+ 40 if the employee's group
  has no worker on the date yet]

  Ties break by roster iteration order, which the engine fixes to
  ascending employee id - output must be deterministic.

SEE ALSO:
  - engine.go: Uses PickCandidate during the iterating passes
  - constraints.go: Filters candidates before they are scored
*/
package roster

const (
	baseScore  = 100.0
	groupBonus = 40.0
)

// AverageHours returns the mean accumulated net hours across the roster.
// An empty roster averages to zero.
func AverageHours(employees []Employee, s *Schedule) float64 {
	if len(employees) == 0 {
		return 0
	}
	var total float64
	for _, e := range employees {
		total += s.TotalNetHours(e.ID)
	}
	return total / float64(len(employees))
}

// Score ranks one candidate for a slot on the given date.
func Score(e Employee, d Date, s *Schedule, averageHours float64, groupsOnDay map[string]bool) float64 {
	score := baseScore + (averageHours - s.TotalNetHours(e.ID))
	if e.Group != "" && !groupsOnDay[e.Group] {
		score += groupBonus
	}
	return score
}

// GroupsOn returns the set of group tags already represented among the
// date's work assignments.
func GroupsOn(d Date, s *Schedule, employees []Employee) map[string]bool {
	byID := make(map[EmployeeID]Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	groups := make(map[string]bool)
	for _, id := range s.WorkersOn(d) {
		if e, ok := byID[id]; ok && e.Group != "" {
			groups[e.Group] = true
		}
	}
	return groups
}

// PickCandidate returns the highest-scoring employee eligible for the slot,
// or false when nobody can take it. Employees must already be sorted in
// ascending id order; a strict greater-than comparison makes the first
// candidate win ties.
func PickCandidate(employees []Employee, d Date, s *Schedule, averageHours float64) (Employee, bool) {
	groups := GroupsOn(d, s, employees)

	var best Employee
	bestScore := 0.0
	found := false

	for _, e := range employees {
		if !CanWork(e, d, s) {
			continue
		}
		score := Score(e, d, s, averageHours, groups)
		if !found || score > bestScore {
			best = e
			bestScore = score
			found = true
		}
	}
	return best, found
}
