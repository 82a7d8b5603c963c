package datefmt

import (
	"fmt"
	"time"
)

const (
	LabelToday     = "today"
	LabelYesterday = "yesterday"
)

// FormatInput renders the value a date field is pre-filled with:
// "2024-03-07" for picker fields, "2024.03.07" for plain text fields.
func FormatInput(t time.Time, sep string) string {
	return fmt.Sprintf("%04d%s%02d%s%02d", t.Year(), sep, int(t.Month()), sep, t.Day())
}

// FormatDisplayDate renders "07.03.2024".
func FormatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year())
}

func FormatClock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// FormatLabel renders the date/time line shown under a comment:
// "today, 14:05", "yesterday, 09:30" or "07.03.2024, 18:00".
//
// Calendar days are compared in now's location.
func FormatLabel(t, now time.Time) string {
	t = t.In(now.Location())

	day := FormatDisplayDate(t)
	switch {
	case SameDay(t, now):
		day = LabelToday
	case SameDay(t, now.AddDate(0, 0, -1)):
		day = LabelYesterday
	}
	return day + ", " + FormatClock(t)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysIn returns the number of days in the given month. Month must be 1..12.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
