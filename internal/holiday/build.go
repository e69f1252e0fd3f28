package holiday

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"helgdagar/internal/model"
)

// Year range the Easter computation is defined for: the first full year of
// the Gregorian calendar through the end of the published computus tables.
const (
	MinYear = 1583
	MaxYear = 4099
)

// Calendar header metadata.
const (
	ProductID = "-//Mozilla.org/NONSGML Mozilla Calendar V1.1//"
	Version   = "2.0"
)

var (
	// ErrInvalidArgument reports an unusable year count or start year.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDateComputation reports a year the Easter computation is not
	// defined for.
	ErrDateComputation = errors.New("date computation failed")
)

// EasterSunday returns the Gregorian date of Easter Sunday for the given
// year, at midnight UTC.
func EasterSunday(year int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year %d outside %d-%d", ErrDateComputation, year, MinYear, MaxYear)
	}
	date, _ := Paskdagen.Calc(year)
	return date, nil
}

// EasterEvents returns the eight Easter-anchored holidays of the given year
// as non-recurring events, ordered by offset from Easter Sunday.
func EasterEvents(year int) ([]model.Event, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%w: year %d outside %d-%d", ErrDateComputation, year, MinYear, MaxYear)
	}
	events := make([]model.Event, 0, len(easterRelative))
	for _, def := range easterRelative {
		date, _ := def.holiday.Calc(year)
		events = append(events, newEvent(def, date))
	}
	return events, nil
}

// FixedEvents returns the fixed-date holidays anchored in the given year,
// each carrying a yearly recurrence.
func FixedEvents(year int) []model.Event {
	events := make([]model.Event, 0, len(fixedDates))
	for _, def := range fixedDates {
		date, _ := def.holiday.Calc(year)
		events = append(events, newEvent(def, date))
	}
	return events
}

// WindowEvents returns the weekday-window holidays anchored at their actual
// occurrence in the given year, each carrying its weekday-window recurrence.
func WindowEvents(year int) []model.Event {
	events := make([]model.Event, 0, len(weekdayWindows))
	for _, def := range weekdayWindows {
		date, _ := def.holiday.Calc(year)
		events = append(events, newEvent(def, date))
	}
	return events
}

// Build assembles the holiday calendar covering years consecutive years
// from startYear: the Easter-relative events for every year of the span,
// then the fixed-date and weekday-window events once, anchored in
// startYear. The whole span must lie within the supported year range. The
// event order is stable across calls; only UIDs differ.
func Build(startYear, years int) (model.Document, error) {
	if years < 1 {
		return model.Document{}, fmt.Errorf("%w: year count %d, need at least 1", ErrInvalidArgument, years)
	}
	if startYear < MinYear || startYear > MaxYear {
		return model.Document{}, fmt.Errorf("%w: start year %d outside %d-%d", ErrInvalidArgument, startYear, MinYear, MaxYear)
	}
	// Bound the span without computing startYear+years, which wraps around
	// for huge counts.
	if years > MaxYear-startYear+1 {
		return model.Document{}, fmt.Errorf("%w: %d years from %d runs past %d", ErrDateComputation, years, startYear, MaxYear)
	}

	doc := model.Document{
		ProductID: ProductID,
		Version:   Version,
	}
	for year := startYear; year < startYear+years; year++ {
		events, err := EasterEvents(year)
		if err != nil {
			return model.Document{}, err
		}
		doc.Events = append(doc.Events, events...)
	}
	doc.Events = append(doc.Events, FixedEvents(startYear)...)
	doc.Events = append(doc.Events, WindowEvents(startYear)...)
	return doc, nil
}

func newEvent(def definition, date time.Time) model.Event {
	return model.Event{
		UID:        uuid.New().String(),
		Summary:    def.holiday.Name,
		Date:       date,
		Work:       def.work,
		Recurrence: def.rule,
	}
}
