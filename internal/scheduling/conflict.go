package scheduling

import "iter"

// BookedSlot is the part of an already stored slot needed for conflict checks.
// Date is YYYY-MM-DD.
type BookedSlot struct {
	Date       string
	TimeStart  string
	TimeFinish string
}

// ResolveConflicts keeps the candidates that do not overlap any booked slot
// on the same date. Candidates are not compared with one another: expansion
// produces at most one candidate per date.
// Booked slots with unparsable times never conflict.
func ResolveConflicts(candidates iter.Seq[Candidate], booked []BookedSlot) (accepted, skipped []Candidate) {
	byDate := make(map[string][]Interval, len(booked))
	for _, slot := range booked {
		interval, err := ParseInterval(slot.TimeStart, slot.TimeFinish)
		if err != nil {
			continue
		}
		byDate[slot.Date] = append(byDate[slot.Date], interval)
	}

	for candidate := range candidates {
		interval, err := ParseInterval(candidate.TimeStart, candidate.TimeFinish)
		if err != nil {
			skipped = append(skipped, candidate)
			continue
		}
		if conflicts(byDate[candidate.DateKey()], interval) {
			skipped = append(skipped, candidate)
			continue
		}
		accepted = append(accepted, candidate)
	}
	return accepted, skipped
}

func conflicts(existing []Interval, candidate Interval) bool {
	for _, interval := range existing {
		if interval.Overlaps(candidate) {
			return true
		}
	}
	return false
}
