package kernel

import "time"

// DisplayDayOffset is added to timestamps before they are truncated by ShiftedISODate.
const DisplayDayOffset = 24 * time.Hour

const (
	isoDateLayout    = "2006-01-02"
	localeDateLayout = "02/01/2006"
)

// ShiftedISODate returns the UTC calendar date of t + DisplayDayOffset.
//
// Example:
//
//	ShiftedISODate(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) // "2024-01-11"
func ShiftedISODate(t time.Time) string {
	return t.Add(DisplayDayOffset).UTC().Format(isoDateLayout)
}

// ShiftedISODatePtr is ShiftedISODate for optional timestamps.
func ShiftedISODatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := ShiftedISODate(*t)
	return &s
}

// LocaleDate formats t as DD/MM/YYYY in loc. A nil loc means UTC.
func LocaleDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(localeDateLayout)
}

// LocaleDatePtr is LocaleDate for optional timestamps.
func LocaleDatePtr(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := LocaleDate(*t, loc)
	return &s
}
