package scheduling

import (
	"encoding/json"
	"errors"
	"testing"
)

func validInput() Input {
	return Input{
		Day:        "Monday",
		DateRange:  "2024-12-01 to 2024-12-10",
		TimeStart:  "09:00",
		TimeFinish: "17:00",
		Quota:      json.RawMessage(`10`),
		Status:     json.RawMessage(`true`),
	}
}

func TestValidate_AllValid(t *testing.T) {
	if err := Validate(validInput()); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidate_ReportsFirstFailure(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantMsg string
	}{
		{
			name:    "invalid day",
			mutate:  func(in *Input) { in.Day = "someday" },
			wantMsg: "day: Invalid day.",
		},
		{
			name:    "invalid date range",
			mutate:  func(in *Input) { in.DateRange = "2024-12-01" },
			wantMsg: `date_range: Invalid date range format. Please use "YYYY-MM-DD to YYYY-MM-DD".`,
		},
		{
			name:    "invalid time start",
			mutate:  func(in *Input) { in.TimeStart = "9am" },
			wantMsg: "time_start: Invalid time format. Please use HH:mm.",
		},
		{
			name:    "invalid time finish",
			mutate:  func(in *Input) { in.TimeFinish = "24:00" },
			wantMsg: "time_finish: Invalid time format. Please use HH:mm.",
		},
		{
			name:    "finish before start",
			mutate:  func(in *Input) { in.TimeStart, in.TimeFinish = "17:00", "09:00" },
			wantMsg: "time_order: time_finish must be after time_start.",
		},
		{
			name:    "finish equals start",
			mutate:  func(in *Input) { in.TimeFinish = "09:00" },
			wantMsg: "time_order: time_finish must be after time_start.",
		},
		{
			name:    "zero quota",
			mutate:  func(in *Input) { in.Quota = json.RawMessage(`0`) },
			wantMsg: "quota: Invalid quota. It must be a positive integer.",
		},
		{
			name:    "status not boolean",
			mutate:  func(in *Input) { in.Status = json.RawMessage(`"true"`) },
			wantMsg: "status: Invalid status. It must be true or false.",
		},
		{
			name: "day reported before everything else",
			mutate: func(in *Input) {
				in.Day = "x"
				in.DateRange = "bad"
				in.TimeStart = "bad"
				in.Quota = nil
				in.Status = nil
			},
			wantMsg: "day: Invalid day.",
		},
		{
			name: "time start reported before quota",
			mutate: func(in *Input) {
				in.TimeStart = "25:00"
				in.Quota = json.RawMessage(`-1`)
			},
			wantMsg: "time_start: Invalid time format. Please use HH:mm.",
		},
		{
			name: "order skipped when a time is malformed",
			mutate: func(in *Input) {
				in.TimeFinish = "bad"
			},
			wantMsg: "time_finish: Invalid time format. Please use HH:mm.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := Validate(in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestParseQuota(t *testing.T) {
	got, err := ParseQuota(json.RawMessage(` 12 `))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12 {
		t.Errorf("expected 12, got %d", got)
	}

	for _, raw := range []string{"", "0", "-3", "1.5", "10.0", `"10"`, "true", "null", "1e1", "1e2", "[]", "99999999999"} {
		if _, err := ParseQuota(json.RawMessage(raw)); err == nil {
			t.Errorf("ParseQuota(%s): expected error", raw)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for raw, want := range map[string]bool{"true": true, "false": false} {
		got, err := ParseStatus(json.RawMessage(raw))
		if err != nil {
			t.Fatalf("ParseStatus(%s): unexpected error: %v", raw, err)
		}
		if got != want {
			t.Errorf("ParseStatus(%s) = %v, want %v", raw, got, want)
		}
	}

	for _, raw := range []string{"", `"true"`, "1", "0", "null", `"false"`, "{}"} {
		if _, err := ParseStatus(json.RawMessage(raw)); err == nil {
			t.Errorf("ParseStatus(%s): expected error", raw)
		}
	}
}
