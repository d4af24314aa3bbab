package models

import "sort"

// CashFlowEvent is a single signed cash movement, Day offset from trial start.
// Outflows are negative, inflows positive.
type CashFlowEvent struct {
	Day    int
	Amount float64
}

// CashFlowSchedule is an ordered series of cash flow events.
type CashFlowSchedule []CashFlowEvent

// Sum is the net signed total of the schedule.
func (schedule CashFlowSchedule) Sum() float64 {
	total := 0.0
	for _, event := range schedule {
		total += event.Amount
	}
	return total
}

// Inflows is the total of positive amounts only.
func (schedule CashFlowSchedule) Inflows() float64 {
	total := 0.0
	for _, event := range schedule {
		if event.Amount > 0 {
			total += event.Amount
		}
	}
	return total
}

// Outflows is the total of negative amounts only.
func (schedule CashFlowSchedule) Outflows() float64 {
	total := 0.0
	for _, event := range schedule {
		if event.Amount < 0 {
			total += event.Amount
		}
	}
	return total
}

// FinalDay is the largest day offset in the schedule, 0 when empty.
func (schedule CashFlowSchedule) FinalDay() int {
	final := 0
	for _, event := range schedule {
		if event.Day > final {
			final = event.Day
		}
	}
	return final
}

// Merged sorts the schedule by day and combines events that land on the same
// day. Amounts are accumulated in day order so the float sums are stable
// across runs.
func (schedule CashFlowSchedule) Merged() CashFlowSchedule {
	if len(schedule) == 0 {
		return nil
	}
	sorted := make(CashFlowSchedule, len(schedule))
	copy(sorted, schedule)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })

	merged := make(CashFlowSchedule, 0, len(sorted))
	for _, event := range sorted {
		if n := len(merged); n > 0 && merged[n-1].Day == event.Day {
			merged[n-1].Amount += event.Amount
		} else {
			merged = append(merged, event)
		}
	}
	return merged
}
