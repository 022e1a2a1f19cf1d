package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"lifehub/internal/db"
)

// WriteCalendarICS encodes the owner's events for a range as a VCALENDAR
// stream, for import into external calendar clients.
func (s *EventService) WriteCalendarICS(ctx context.Context, w io.Writer, ownerID string, rangeStart, rangeEnd time.Time) error {
	events, err := s.Repo.ListEvents(ctx, ownerID, rangeStart, rangeEnd)
	if err != nil {
		return fmt.Errorf("fetching events for export: %w", err)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//lifehub//EN")

	for i := range events {
		cal.Children = append(cal.Children, eventToICal(&events[i]))
	}

	return ical.NewEncoder(w).Encode(cal)
}

func eventToICal(ev *db.Event) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, ev.ID)
	ve.Props.SetText(ical.PropSummary, ev.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, ev.Start)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, ev.End)
	if ev.Description != "" {
		ve.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.Location != "" {
		ve.Props.SetText(ical.PropLocation, ev.Location)
	}
	if ev.Status != "" {
		ve.Props.SetText(ical.PropStatus, ev.Status)
	}
	for _, a := range ev.Attendees {
		p := ical.NewProp(ical.PropAttendee)
		if a.Name != "" {
			p.Params.Set(ical.ParamCommonName, a.Name)
		}
		p.SetText("mailto:" + a.Email)
		ve.Props.Add(p)
	}
	return ve
}
