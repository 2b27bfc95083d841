package scheduling

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for ranges and stored slot dates.
const DateLayout = "2006-01-02"

const rangeSeparator = " to "

var ErrInvalidDateRange = errors.New("invalid date range format")

// DateRange is an inclusive span of calendar dates. Start after End is
// representable and simply covers no dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange parses "YYYY-MM-DD to YYYY-MM-DD".
func ParseDateRange(s string) (DateRange, error) {
	parts := strings.Split(s, rangeSeparator)
	if len(parts) != 2 {
		return DateRange{}, fmt.Errorf("%w: expected exactly one %q separator", ErrInvalidDateRange, strings.TrimSpace(rangeSeparator))
	}

	start, err := time.Parse(DateLayout, parts[0])
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start date: %v", ErrInvalidDateRange, err)
	}
	end, err := time.Parse(DateLayout, parts[1])
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end date: %v", ErrInvalidDateRange, err)
	}

	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether date falls inside the range, endpoints included.
func (r DateRange) Contains(date time.Time) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + rangeSeparator + r.End.Format(DateLayout)
}
