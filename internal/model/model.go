package model

import (
	"time"

	"github.com/teambition/rrule-go"
)

// WorkStatus classifies how a holiday affects work obligations. It only
// controls the descriptive text attached to an event and never affects
// scheduling.
type WorkStatus int

const (
	// WorkFree is a statutory non-working day.
	WorkFree WorkStatus = iota
	// WorkDeFacto is treated as a non-working day by law or convention
	// without being individually named a public holiday.
	WorkDeFacto
	// WorkDepends is non-working only under collective or local agreements.
	WorkDepends
)

func (w WorkStatus) String() string {
	switch w {
	case WorkFree:
		return "free"
	case WorkDeFacto:
		return "de facto"
	case WorkDepends:
		return "depends"
	default:
		return "unknown"
	}
}

// Category returns the category tag attached to events with this work
// status, or "" when the status carries none.
func (w WorkStatus) Category() string {
	if w == WorkDepends {
		return "Ledighet enligt avtal"
	}
	return ""
}

// Description returns the explanatory note attached to events with this
// work status, or "" when the status carries none.
func (w WorkStatus) Description() string {
	switch w {
	case WorkDeFacto:
		return "Denna dag räknas som söndag enligt 3 a § i Semesterlagen och är därmed arbetsfri."
	case WorkDepends:
		return "Denna dag har inte lagstadgad ställning som arbetsfri dag. Många arbetsplatser har ändå förkortad arbetstid enligt kollektivavtal eller lokala avtal."
	default:
		return ""
	}
}

// RecurrenceKind discriminates the recurrence shapes an event can carry.
type RecurrenceKind int

const (
	// RecurNone is a single concrete instance with no recurrence.
	RecurNone RecurrenceKind = iota
	// RecurYearly repeats every year on the anchor's month and day.
	RecurYearly
	// RecurYearlyWindow repeats every year on Weekday, restricted to the
	// MonthDays/Months candidate sets.
	RecurYearlyWindow
)

// Recurrence describes how an event repeats. Kind selects the variant;
// Weekday, MonthDays and Months are meaningful only for RecurYearlyWindow,
// where they hold exactly one target weekday, an ordered set of 7
// consecutive month-day candidates (possibly wrapping a month boundary)
// and one or two target months.
type Recurrence struct {
	Kind RecurrenceKind

	Weekday   time.Weekday
	MonthDays []int
	Months    []time.Month
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// RRule returns the RFC 5545 RRULE value for the recurrence, or ("", false)
// for RecurNone. Candidate sets are emitted in declared order so serialized
// rules stay byte-stable across runs.
func (r Recurrence) RRule() (string, bool) {
	switch r.Kind {
	case RecurYearly:
		opt := rrule.ROption{Freq: rrule.YEARLY}
		return opt.String(), true
	case RecurYearlyWindow:
		opt := rrule.ROption{
			Freq:       rrule.YEARLY,
			Bymonthday: append([]int(nil), r.MonthDays...),
			Byweekday:  []rrule.Weekday{rruleWeekdays[r.Weekday]},
		}
		for _, m := range r.Months {
			opt.Bymonth = append(opt.Bymonth, int(m))
		}
		return opt.String(), true
	default:
		return "", false
	}
}

// Event is one holiday observance instance as it will appear in the
// serialized calendar.
type Event struct {
	UID     string
	Summary string

	// Date is the anchor date (whole day, no time component). For recurring
	// events the year only picks the first occurrence.
	Date time.Time

	Work       WorkStatus
	Recurrence Recurrence
}

// Document is an ordered collection of events plus calendar-level metadata.
// It is append-only during construction and treated as immutable afterwards.
type Document struct {
	ProductID string
	Version   string
	Events    []Event
}
