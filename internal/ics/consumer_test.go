package ics

import (
	"io"
	"strings"
	"testing"
	"time"

	ical "github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"helgdagar/internal/holiday"
)

// The encoded calendar must survive a second, independent iCalendar
// implementation so that real calendar clients can consume the feed.
func TestEncodeSurvivesIndependentParser(t *testing.T) {
	doc, err := holiday.Build(2024, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	out := Encode(doc, EncodeOptions{Now: fixedClock})

	dec := ical.NewDecoder(strings.NewReader(out))
	parsed, err := dec.Decode()
	if err != nil {
		t.Fatalf("independent decode failed: %v", err)
	}

	if got := parsed.Props.Get(ical.PropVersion).Value; got != doc.Version {
		t.Errorf("VERSION = %q, want %q", got, doc.Version)
	}
	if got := parsed.Props.Get(ical.PropProductID).Value; got != doc.ProductID {
		t.Errorf("PRODID = %q, want %q", got, doc.ProductID)
	}

	events := 0
	rules := 0
	for _, child := range parsed.Children {
		if child.Name != ical.CompEvent {
			continue
		}
		events++
		if p := child.Props.Get(ical.PropUID); p == nil || p.Value == "" {
			t.Error("event lost its UID in the round trip")
		}
		if p := child.Props.Get(ical.PropSummary); p == nil || p.Value == "" {
			t.Error("event lost its SUMMARY in the round trip")
		}
		start := child.Props.Get(ical.PropDateTimeStart)
		if start == nil {
			t.Error("event lost its DTSTART in the round trip")
			continue
		}
		if _, err := start.DateTime(time.UTC); err != nil {
			t.Errorf("DTSTART %q does not parse as a date: %v", start.Value, err)
		}
		if p := child.Props.Get(ical.PropRecurrenceRule); p != nil {
			rules++
			if _, err := rrule.StrToRRule(p.Value); err != nil {
				t.Errorf("RRULE %q does not parse: %v", p.Value, err)
			}
		}
	}
	if events != len(doc.Events) {
		t.Errorf("independent parser saw %d events, want %d", events, len(doc.Events))
	}
	// 10 fixed-date and 4 window events carry rules; Easter events do not.
	if rules != 14 {
		t.Errorf("independent parser saw %d recurrence rules, want 14", rules)
	}

	if _, err := dec.Decode(); err != io.EOF {
		t.Errorf("expected end of stream after one calendar, got %v", err)
	}
}
