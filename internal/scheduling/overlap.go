package scheduling

// Interval is a half-open span of minutes since midnight on a single day.
type Interval struct {
	Start  int
	Finish int
}

// ParseInterval converts a pair of wall-clock times into an Interval.
func ParseInterval(start, finish string) (Interval, error) {
	from, err := ClockMinutes(start)
	if err != nil {
		return Interval{}, err
	}
	to, err := ClockMinutes(finish)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: from, Finish: to}, nil
}

// Overlaps reports whether other shares at least one minute with i.
// An interval that starts exactly when i finishes, or finishes exactly when
// i starts, does not overlap it.
func (i Interval) Overlaps(other Interval) bool {
	startsInside := other.Start >= i.Start && other.Start < i.Finish
	finishesInside := other.Finish > i.Start && other.Finish <= i.Finish
	covers := other.Start <= i.Start && other.Finish >= i.Finish
	return startsInside || finishesInside || covers
}
