package scheduling

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

const (
	msgInvalidDay       = "Invalid day."
	msgInvalidDateRange = `Invalid date range format. Please use "YYYY-MM-DD to YYYY-MM-DD".`
	msgInvalidTime      = "Invalid time format. Please use HH:mm."
	msgInvalidTimeOrder = "time_finish must be after time_start."
	msgInvalidQuota     = "Invalid quota. It must be a positive integer."
	msgInvalidStatus    = "Invalid status. It must be true or false."
)

// Input is a recurring schedule request as received at the boundary. Quota
// and Status keep their raw JSON tokens so their types can be checked
// explicitly instead of being coerced.
type Input struct {
	Day        string
	DateRange  string
	TimeStart  string
	TimeFinish string
	Quota      json.RawMessage
	Status     json.RawMessage
}

// ValidationError reports the first field of an Input that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

type check struct {
	field   string
	message string
	// applies gates the check; nil means always run.
	applies func(Input) bool
	valid   func(Input) bool
}

var inputChecks = []check{
	{
		field:   "day",
		message: msgInvalidDay,
		valid:   func(in Input) bool { return IsValidDay(in.Day) },
	},
	{
		field:   "date_range",
		message: msgInvalidDateRange,
		valid: func(in Input) bool {
			_, err := ParseDateRange(in.DateRange)
			return err == nil
		},
	},
	{
		field:   "time_start",
		message: msgInvalidTime,
		valid:   func(in Input) bool { return IsValidClock(in.TimeStart) },
	},
	{
		field:   "time_finish",
		message: msgInvalidTime,
		valid:   func(in Input) bool { return IsValidClock(in.TimeFinish) },
	},
	{
		field:   "time_order",
		message: msgInvalidTimeOrder,
		applies: func(in Input) bool { return IsValidClock(in.TimeStart) && IsValidClock(in.TimeFinish) },
		valid:   validTimeOrder,
	},
	{
		field:   "quota",
		message: msgInvalidQuota,
		valid: func(in Input) bool {
			_, err := ParseQuota(in.Quota)
			return err == nil
		},
	},
	{
		field:   "status",
		message: msgInvalidStatus,
		valid: func(in Input) bool {
			_, err := ParseStatus(in.Status)
			return err == nil
		},
	},
}

// validTimeOrder anchors both times on the first date of the range. An
// unparsable range fails here too, but the date_range check reports first.
func validTimeOrder(in Input) bool {
	dateRange, err := ParseDateRange(in.DateRange)
	if err != nil {
		return false
	}
	return FinishesAfter(dateRange.Start, in.TimeStart, in.TimeFinish)
}

// Validate runs the input checks in order and returns the first failure as a
// *ValidationError, or nil when every check passes.
func Validate(in Input) error {
	for _, c := range inputChecks {
		if c.applies != nil && !c.applies(in) {
			continue
		}
		if !c.valid(in) {
			return &ValidationError{Field: c.field, Message: c.message}
		}
	}
	return nil
}

var (
	errNotInteger = errors.New("value is not a JSON integer")
	errNotBoolean = errors.New("value is not a JSON boolean")
)

// ParseQuota accepts only a positive JSON integer literal.
func ParseQuota(raw json.RawMessage) (int, error) {
	value, err := decodeToken(raw)
	if err != nil {
		return 0, err
	}
	number, ok := value.(json.Number)
	if !ok {
		return 0, errNotInteger
	}
	quota, err := number.Int64()
	if err != nil {
		return 0, errNotInteger
	}
	if quota <= 0 || quota > math.MaxInt32 {
		return 0, fmt.Errorf("quota %d out of range", quota)
	}
	return int(quota), nil
}

// ParseStatus accepts only the JSON literals true and false.
func ParseStatus(raw json.RawMessage) (bool, error) {
	value, err := decodeToken(raw)
	if err != nil {
		return false, err
	}
	status, ok := value.(bool)
	if !ok {
		return false, errNotBoolean
	}
	return status, nil
}

func decodeToken(raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("value is missing")
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}
