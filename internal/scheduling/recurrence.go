package scheduling

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

// Template describes the slot to repeat on every matching weekday.
type Template struct {
	DoctorID   uuid.UUID
	Day        string
	TimeStart  string
	TimeFinish string
	Quota      int
	Status     bool
}

// Candidate is a dated slot produced by expansion that has not been checked
// for conflicts or persisted yet.
type Candidate struct {
	DoctorID   uuid.UUID
	Day        string
	TimeStart  string
	TimeFinish string
	Quota      int
	Status     bool
	Date       time.Time
}

// DateKey returns the candidate date as YYYY-MM-DD.
func (c Candidate) DateKey() string {
	return c.Date.Format(DateLayout)
}

// Expand yields one candidate per date in the range, endpoints included,
// whose weekday matches the template day. The sequence can be ranged over
// any number of times. A reversed range or an unknown day yields nothing.
func Expand(tmpl Template, dateRange DateRange) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		target, ok := ParseDay(tmpl.Day)
		if !ok {
			return
		}
		for date := dateRange.Start; !date.After(dateRange.End); date = date.AddDate(0, 0, 1) {
			if date.Weekday() != target {
				continue
			}
			candidate := Candidate{
				DoctorID:   tmpl.DoctorID,
				Day:        tmpl.Day,
				TimeStart:  tmpl.TimeStart,
				TimeFinish: tmpl.TimeFinish,
				Quota:      tmpl.Quota,
				Status:     tmpl.Status,
				Date:       date,
			}
			if !yield(candidate) {
				return
			}
		}
	}
}
