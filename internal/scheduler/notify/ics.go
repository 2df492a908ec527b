package notify

import (
	"errors"
	"time"

	ics "github.com/arran4/golang-ical"
)

const productID = "-//aussiebroadwan//scheduler//EN"

// DefaultEventDuration is used when an Event has no Duration.
const DefaultEventDuration = time.Hour

// Calendar renders e as an iCalendar METHOD:REQUEST invite with the attendee
// marked as needing action.
func (e Event) Calendar(stamp time.Time) (string, error) {
	if e.UID == "" {
		return "", errors.New("notify: event has no uid")
	}
	if e.StartsAt.IsZero() {
		return "", errors.New("notify: event has no start")
	}

	d := e.Duration
	if d <= 0 {
		d = DefaultEventDuration
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId(productID)

	ev := cal.AddEvent(e.UID)
	ev.SetDtStampTime(stamp.UTC())
	ev.SetStartAt(e.StartsAt.UTC())
	ev.SetEndAt(e.StartsAt.Add(d).UTC())
	ev.SetSummary(e.Summary)
	if e.Description != "" {
		ev.SetDescription(e.Description)
	}
	if e.Location != "" {
		ev.SetLocation(e.Location)
	}
	if e.Organizer != "" {
		ev.SetOrganizer("mailto:" + e.Organizer)
	}
	if e.Attendee != "" {
		ev.AddAttendee(e.Attendee,
			ics.CalendarUserTypeIndividual,
			ics.ParticipationStatusNeedsAction,
			ics.ParticipationRoleReqParticipant,
			ics.WithRSVP(true),
		)
	}

	return cal.Serialize(), nil
}
