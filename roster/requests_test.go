package roster_test

import (
	"testing"
	"time"

	"github.com/kairo/roster-engine/roster"
)

func TestClassifyRequests_Partition(t *testing.T) {
	// GIVEN: Mixed rest and work requests inside the period
	// WHEN: Classifying
	// THEN: Each lands in its own set, keyed by (employee, date)

	mon := roster.NewDate(2025, time.March, 10)
	p := roster.Period{Start: mon, End: mon.AddDays(6)}

	sets := roster.ClassifyRequests([]roster.ShiftRequest{
		{EmployeeID: 1, Date: mon, Type: roster.RequestRest},
		{EmployeeID: 1, Date: mon.AddDays(1), Type: roster.RequestWork},
		{EmployeeID: 2, Date: mon, Type: roster.RequestWork},
	}, p)

	if !sets.WantsRest(1, mon) {
		t.Error("employee 1 should want rest on Monday")
	}
	if !sets.WantsWork(1, mon.AddDays(1)) {
		t.Error("employee 1 should want work on Tuesday")
	}
	if !sets.WantsWork(2, mon) {
		t.Error("employee 2 should want work on Monday")
	}
	if sets.WantsWork(1, mon) || sets.WantsRest(2, mon) {
		t.Error("sets leaked across types")
	}
}

func TestClassifyRequests_OutOfRangeDropped(t *testing.T) {
	mon := roster.NewDate(2025, time.March, 10)
	p := roster.Period{Start: mon, End: mon.AddDays(6)}

	sets := roster.ClassifyRequests([]roster.ShiftRequest{
		{EmployeeID: 1, Date: mon.AddDays(-1), Type: roster.RequestRest},
		{EmployeeID: 1, Date: mon.AddDays(30), Type: roster.RequestWork},
	}, p)

	if sets.WantsRest(1, mon.AddDays(-1)) || sets.WantsWork(1, mon.AddDays(30)) {
		t.Error("requests outside the period must be ignored")
	}
}

func TestClassifyRequests_RestPrecedence(t *testing.T) {
	// GIVEN: The same (employee, date) carries both a rest and a work request
	//        (upstream should prevent this, but the classifier must stay predictable)
	// WHEN: Classifying in either submission order
	// THEN: Rest wins, the work request is dropped

	mon := roster.NewDate(2025, time.March, 10)
	p := roster.Period{Start: mon, End: mon}

	orders := [][]roster.ShiftRequest{
		{
			{EmployeeID: 1, Date: mon, Type: roster.RequestRest},
			{EmployeeID: 1, Date: mon, Type: roster.RequestWork},
		},
		{
			{EmployeeID: 1, Date: mon, Type: roster.RequestWork},
			{EmployeeID: 1, Date: mon, Type: roster.RequestRest},
		},
	}

	for i, reqs := range orders {
		sets := roster.ClassifyRequests(reqs, p)
		if !sets.WantsRest(1, mon) {
			t.Errorf("order %d: rest should win", i)
		}
		if sets.WantsWork(1, mon) {
			t.Errorf("order %d: work request should be dropped", i)
		}
	}
}
