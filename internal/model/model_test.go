package model

import (
	"strings"
	"testing"
	"time"

	"github.com/teambition/rrule-go"
)

func TestWorkStatusTexts(t *testing.T) {
	tests := []struct {
		name     string
		status   WorkStatus
		category string
		mentions string
	}{
		{name: "free carries no annotations", status: WorkFree},
		{name: "de facto cites Semesterlagen", status: WorkDeFacto, mentions: "Semesterlagen"},
		{name: "depends carries category and note", status: WorkDepends, category: "Ledighet enligt avtal", mentions: "kollektivavtal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			desc := tt.status.Description()
			if tt.mentions == "" {
				if desc != "" {
					t.Errorf("Description() = %q, want empty", desc)
				}
				return
			}
			if !strings.Contains(desc, tt.mentions) {
				t.Errorf("Description() = %q, want it to mention %q", desc, tt.mentions)
			}
		})
	}
}

func TestRecurrenceRRule(t *testing.T) {
	tests := []struct {
		name string
		rec  Recurrence
		want string
		ok   bool
	}{
		{
			name: "none",
			rec:  Recurrence{},
		},
		{
			name: "yearly on the anchor date",
			rec:  Recurrence{Kind: RecurYearly},
			want: "FREQ=YEARLY",
			ok:   true,
		},
		{
			name: "window within a single month",
			rec: Recurrence{
				Kind:      RecurYearlyWindow,
				Weekday:   time.Friday,
				MonthDays: []int{19, 20, 21, 22, 23, 24, 25},
				Months:    []time.Month{time.June},
			},
			want: "FREQ=YEARLY;BYMONTH=6;BYMONTHDAY=19,20,21,22,23,24,25;BYDAY=FR",
			ok:   true,
		},
		{
			name: "window wrapping a month boundary",
			rec: Recurrence{
				Kind:      RecurYearlyWindow,
				Weekday:   time.Saturday,
				MonthDays: []int{31, 1, 2, 3, 4, 5, 6},
				Months:    []time.Month{time.October, time.November},
			},
			want: "FREQ=YEARLY;BYMONTH=10,11;BYMONTHDAY=31,1,2,3,4,5,6;BYDAY=SA",
			ok:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.rec.RRule()
			if ok != tt.ok {
				t.Fatalf("RRule() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("RRule() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every emitted rule must be parseable by the recurrence library itself,
// candidate-set order included.
func TestRecurrenceRRuleParses(t *testing.T) {
	recs := []Recurrence{
		{Kind: RecurYearly},
		{
			Kind:      RecurYearlyWindow,
			Weekday:   time.Friday,
			MonthDays: []int{30, 31, 1, 2, 3, 4, 5},
			Months:    []time.Month{time.October, time.November},
		},
	}
	for _, rec := range recs {
		value, ok := rec.RRule()
		if !ok {
			t.Fatalf("RRule() returned no value for kind %v", rec.Kind)
		}
		if _, err := rrule.StrToRRule(value); err != nil {
			t.Errorf("StrToRRule(%q) failed: %v", value, err)
		}
	}
}
