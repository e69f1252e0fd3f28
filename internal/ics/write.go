// Package ics renders holiday documents as RFC 5545 iCalendar text.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"helgdagar/internal/model"
)

// EncodeOptions controls calendar-level headers that are not part of the
// document itself.
type EncodeOptions struct {
	// Publish marks the output as a published feed (METHOD:PUBLISH) and
	// enables the X-WR-CALNAME and X-PUBLISHED-TTL headers below.
	Publish bool

	// CalendarName, if non-empty, is the feed's display name (X-WR-CALNAME).
	CalendarName string

	// PublishedTTL, if non-empty, is the refresh interval suggested to
	// subscribers (X-PUBLISHED-TTL), an ISO 8601 duration such as "PT24H".
	PublishedTTL string

	// Now supplies DTSTAMP values; time.Now is used when nil.
	Now func() time.Time
}

// Encode renders the document as iCalendar text. Events are written in
// document order, each as a VEVENT with UID, DTSTAMP, TRANSP, a date-only
// DTSTART and SUMMARY, plus the optional CATEGORIES/DESCRIPTION derived
// from the work status and the optional RRULE.
func Encode(doc model.Document, opts EncodeOptions) string {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	c := ical.NewCalendar()
	if doc.Version != "" {
		c.SetVersion(doc.Version)
	}
	if doc.ProductID != "" {
		c.SetProductId(doc.ProductID)
	}
	if opts.Publish {
		c.SetMethod(ical.MethodPublish)
		if opts.CalendarName != "" {
			c.SetXWRCalName(opts.CalendarName)
		}
		if opts.PublishedTTL != "" {
			c.SetXPublishedTTL(opts.PublishedTTL)
		}
	}

	for _, ev := range doc.Events {
		ve := c.AddEvent(ev.UID)
		ve.SetDtStampTime(now().UTC())
		ve.SetTimeTransparency(ical.TransparencyTransparent)
		ve.SetAllDayStartAt(ev.Date)
		ve.SetSummary(ev.Summary)
		if cat := ev.Work.Category(); cat != "" {
			ve.SetProperty(ical.ComponentPropertyCategories, cat)
		}
		if desc := ev.Work.Description(); desc != "" {
			ve.SetDescription(desc)
		}
		if rule, ok := ev.Recurrence.RRule(); ok {
			ve.AddRrule(rule)
		}
	}

	return c.Serialize()
}
