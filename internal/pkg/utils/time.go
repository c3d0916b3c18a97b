package utils

import (
	"context"
	"healthagent-service/internal/pkg/constvars"
	"time"
)

// CalendarDay drops the clock part of t, keeping its location.
func CalendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func ParseCalendarDate(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	return time.ParseInLocation(constvars.DateLayoutISO, value, location)
}

// AgeOn counts whole years from birth to reference, minus one when the birthday has not
// come around yet in the reference year.
func AgeOn(birth, reference time.Time) int {
	age := reference.Year() - birth.Year()
	if reference.Month() < birth.Month() || (reference.Month() == birth.Month() && reference.Day() < birth.Day()) {
		age--
	}
	return age
}

func WithReferenceDate(ctx context.Context, reference time.Time) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REFERENCE_DATE_KEY, CalendarDay(reference))
}

// ReferenceDateFromContext falls back to today in the local timezone.
func ReferenceDateFromContext(ctx context.Context) time.Time {
	if reference, ok := ctx.Value(constvars.CONTEXT_REFERENCE_DATE_KEY).(time.Time); ok {
		return reference
	}
	return CalendarDay(time.Now())
}
