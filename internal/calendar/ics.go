package calendar

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
)

const productID = "-//monthcal//EN"

// WriteICS writes days as an iCalendar document with one all-day VEVENT
// per event. now is used for DTSTAMP.
func WriteICS(w io.Writer, days []DayEvents, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, d := range days {
		start, err := Decode(d.Day)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", d.Day, err)
		}
		for _, ev := range d.Events {
			ve := cal.AddEvent(ev.ID)
			ve.SetDtStampTime(now)
			ve.SetSummary(ev.Title)
			ve.SetAllDayStartAt(start)
			ve.SetAllDayEndAt(start.AddDate(0, 0, 1))
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
